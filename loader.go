package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-audio/wav"
	log "github.com/sirupsen/logrus"
)

// Recording is a sequence of integer samples, index is the time step.
type Recording []int64

func (r Recording) Float64() []float64 {
	res := make([]float64, len(r))
	for i, v := range r {
		res[i] = float64(v)
	}
	return res
}

type Format string

const (
	FormatAuto  Format = "auto"
	FormatText  Format = "text"
	FormatS16LE Format = "s16le"
	FormatWav   Format = "wav"
)

func parseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatText, FormatS16LE, FormatWav:
		return f, nil
	}
	return "", fmt.Errorf("unknown input format %q", s)
}

// resolve picks a concrete format for name when f is FormatAuto.
func (f Format) resolve(name string) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav", ".wave":
		return FormatWav
	case ".raw", ".pcm", ".s16":
		return FormatS16LE
	}
	return FormatText
}

func loadFile(name string, format Format) (Recording, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	format = format.resolve(name)
	log.Tracef("Loading %s as %s", name, format)
	switch format {
	case FormatText:
		return loadSamples(file)
	case FormatS16LE:
		return loadS16LE(file)
	case FormatWav:
		return loadWav(file)
	}
	return nil, fmt.Errorf("unsupported input format %q", format)
}

// loadSamples reads one signed base-10 integer per line.
func loadSamples(r io.Reader) (Recording, error) {
	res := make(Recording, 0)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		res = append(res, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	if len(res) == 0 {
		return nil, ErrEmptyInput
	}
	return res, nil
}

// loadS16LE reads raw 16 bit little endian mono PCM, the format produced by
// aplay -t raw -f S16_LE -c1.
func loadS16LE(r io.Reader) (Recording, error) {
	br := bufio.NewReader(r)
	res := make(Recording, 0)
	for {
		var v int16
		err := binary.Read(br, binary.LittleEndian, &v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", len(res), err)
		}
		res = append(res, int64(v))
	}
	if len(res) == 0 {
		return nil, ErrEmptyInput
	}
	return res, nil
}

func loadWav(r io.ReadSeeker) (Recording, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, errors.New("not a valid wav file")
	}
	if decoder.NumChans != 1 {
		return nil, fmt.Errorf("wav has %d channels, only mono is supported", decoder.NumChans)
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	log.Debugf("Wav: %d Hz, %d bit, %d samples", decoder.SampleRate, decoder.BitDepth, len(buf.Data))
	if len(buf.Data) == 0 {
		return nil, ErrEmptyInput
	}
	res := make(Recording, len(buf.Data))
	for i, v := range buf.Data {
		res[i] = int64(v)
	}
	return res, nil
}
