package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func squareLines(n, period, amplitude int) []string {
	lines := make([]string, n)
	for i := range lines {
		v := amplitude
		if i%period >= period/2 {
			v = -amplitude
		}
		lines[i] = fmt.Sprint(v)
	}
	return lines
}

func sawtoothLines(n, period, amplitude int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprint(-amplitude + 2*amplitude*(i%period)/period)
	}
	return lines
}

func TestAnalyzeRecordingToy(t *testing.T) {
	cfg := defaultConfig()
	cfg.SampleRate = 4
	a, err := analyzeRecording(Recording{0, 100, 0, -100}, cfg, goDSPHalf)
	if err != nil {
		t.Fatal(err)
	}
	requireSliceNearlyEqual(t, a.Signal, []float64{0, 1, 0, -1}, 0)
	requireSliceNearlyEqual(t, a.Time, []float64{0, 100.0 / 3, 200.0 / 3, 100}, 1e-12)
	requireSliceNearlyEqual(t, a.Spectrum.Frequencies, []float64{0, 1, 2}, 0)
	requireSliceNearlyEqual(t, a.Spectrum.Magnitudes, []float64{0, 2, 0}, 1e-12)
}

func TestAnalyzeAllAndPresent(t *testing.T) {
	square := writeTemp(t, "square.txt", squareLines(4410, 100, 16000)...)
	sawtooth := writeTemp(t, "sawtooth.txt", sawtoothLines(4410, 49, 12000)...)

	analyses, err := analyzeAll([]Waveform{{"Square", square}, {"Sawtooth", sawtooth}}, defaultConfig())
	if err != nil {
		t.Fatalf("analyzeAll: %v", err)
	}
	r := &recordingPresenter{}
	if err := present(analyses, r); err != nil {
		t.Fatalf("present: %v", err)
	}

	want := []struct {
		title  string
		xLabel string
		yLabel string
		scale  Scale
		n      int
	}{
		{"Time Domain Square Wave", "Time (ms)", "Amplitude", ScaleLinear, 4410},
		{"Time Domain Sawtooth Wave", "Time (ms)", "Amplitude", ScaleLinear, 4410},
		{"Square Wave Discrete Fourier Transform", "Frequency (Hz)", "Magnitude", ScaleLog, 2206},
		{"Sawtooth Wave Discrete Fourier Transform", "Frequency (Hz)", "Magnitude", ScaleLog, 2206},
	}
	if len(r.plots) != len(want) {
		t.Fatalf("got %d plots, want %d", len(r.plots), len(want))
	}
	for i, w := range want {
		p := r.plots[i]
		if p.Title != w.title || p.XLabel != w.xLabel || p.YLabel != w.yLabel || p.XScale != w.scale || !p.Grid {
			t.Errorf("plot %d: got %q %q %q %v grid=%v", i, p.Title, p.XLabel, p.YLabel, p.XScale, p.Grid)
		}
		if len(p.X) != w.n || len(p.Y) != w.n {
			t.Errorf("plot %d: %d x and %d y values, want %d", i, len(p.X), len(p.Y), w.n)
		}
	}

	// 100 sample period at 44100 Hz is 441 Hz.
	if got := analyses[0].Spectrum.Dominant(); math.Abs(got-441) > 10 {
		t.Errorf("square dominant frequency %v, want 441", got)
	}
	if &analyses[0].Signal[0] == &analyses[1].Signal[0] {
		t.Error("waveforms share a signal buffer")
	}
}

func TestAnalyzeAllErrors(t *testing.T) {
	good := writeTemp(t, "good.txt", "1", "-1")
	tests := []struct {
		name  string
		path  string
		check func(error) bool
	}{
		{"parse", writeTemp(t, "bad.txt", "3", "abc", "5"), func(err error) bool {
			var pe *ParseError
			return errors.As(err, &pe) && pe.Line == 2
		}},
		{"empty", writeTemp(t, "empty.txt"), func(err error) bool {
			return errors.Is(err, ErrEmptyInput)
		}},
		{"zeros", writeTemp(t, "zeros.txt", "0", "0", "0"), func(err error) bool {
			return errors.Is(err, ErrDegenerateSignal) && strings.Contains(err.Error(), "normalize")
		}},
		{"missing", good + ".missing", func(err error) bool { return err != nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzeAll([]Waveform{{"Square", good}, {"Sawtooth", tt.path}}, defaultConfig())
			if !tt.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(err.Error(), tt.path) || !strings.Contains(err.Error(), "Sawtooth") {
				t.Fatalf("error doesn't name the waveform and file: %v", err)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"gonum", func(c *Config) { c.Backend = "gonum" }, true},
		{"zero rate", func(c *Config) { c.SampleRate = 0 }, false},
		{"negative duration", func(c *Config) { c.DurationMs = -1 }, false},
		{"nan duration", func(c *Config) { c.DurationMs = math.NaN() }, false},
		{"backend", func(c *Config) { c.Backend = "fftw" }, false},
		{"format", func(c *Config) { c.Format = "mp3" }, false},
	}
	for _, tt := range tests {
		cfg := defaultConfig()
		tt.modify(&cfg)
		if err := cfg.validate(); (err == nil) != tt.ok {
			t.Errorf("%s: validate returned %v", tt.name, err)
		}
	}
}

func TestCalibrationWarning(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	cfg := defaultConfig()

	warnCalibration(Waveform{"Square", "square.txt"}, 4410, cfg)
	if len(hook.AllEntries()) != 0 {
		t.Fatalf("unexpected log entries: %v", hook.AllEntries())
	}

	warnCalibration(Waveform{"Square", "square.txt"}, 1000, cfg)
	entry := hook.LastEntry()
	if entry == nil || entry.Level != log.WarnLevel || !strings.Contains(entry.Message, "1000 samples") {
		t.Fatalf("expected a calibration warning, got %+v", entry)
	}
}
