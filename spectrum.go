package main

import (
	"sort"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Spectrum is a one-sided magnitude spectrum. Frequencies are in Hz.
type Spectrum struct {
	Frequencies []float64
	Magnitudes  []float64
}

func analyzeSpectrum(signal []float64, sampleRate int, transform fftFunc) (*Spectrum, error) {
	n := len(signal)
	if n == 0 {
		return nil, &InvalidLengthError{Op: "spectrum", Len: 0, Min: 1}
	}
	coeffs := transform(signal)
	magnitudes := ToAbs(coeffs)
	log.Tracef("Spectrum: %d samples, %d bins", n, len(magnitudes))

	// Scaled by the peak of the time domain signal, not by the spectrum's own
	// peak. For a normalized input this divides by 1; callers passing raw
	// samples get magnitudes relative to their amplitude.
	if peak := maxAbsV(signal); peak != 0 {
		magnitudes = divNVS(magnitudes, peak)
	}

	frequencies := make([]float64, len(magnitudes))
	fs := float64(sampleRate)
	for k := range frequencies {
		frequencies[k] = float64(k) * fs / float64(n)
	}
	return &Spectrum{Frequencies: frequencies, Magnitudes: magnitudes}, nil
}

func (s *Spectrum) Len() int {
	return len(s.Frequencies)
}

// Dominant returns the frequency of the strongest bin, skipping DC when
// there is anything else to choose from.
func (s *Spectrum) Dominant() float64 {
	if len(s.Magnitudes) == 0 {
		return 0
	}
	if len(s.Magnitudes) == 1 {
		return s.Frequencies[0]
	}
	return s.Frequencies[1+floats.MaxIdx(s.Magnitudes[1:])]
}

type SpectrumUnit struct {
	Bin  int
	Freq float64
	Magn float64
}

type byMagnitude []SpectrumUnit

var _ sort.Interface = byMagnitude{}

func (u byMagnitude) Len() int {
	return len(u)
}

func (u byMagnitude) Less(i, j int) bool {
	if u[i].Magn == u[j].Magn {
		return u[i].Bin < u[j].Bin
	}
	return u[i].Magn > u[j].Magn
}

func (u byMagnitude) Swap(i, j int) {
	u[i], u[j] = u[j], u[i]
}

// Peaks returns up to n bins ordered from the strongest.
func (s *Spectrum) Peaks(n int) []SpectrumUnit {
	units := make(byMagnitude, s.Len())
	for i := range units {
		units[i] = SpectrumUnit{i, s.Frequencies[i], s.Magnitudes[i]}
	}
	sort.Sort(units)
	if n < 0 {
		n = 0
	}
	if n < len(units) {
		units = units[:n]
	}
	return units
}
