package main

import (
	"fmt"
	"sort"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// fftFunc returns the non-negative frequency half, len(x)/2+1 coefficients,
// of the forward transform of a real signal.
type fftFunc func(x []float64) []complex128

const defaultBackend = "go-dsp"

var backends = map[string]fftFunc{
	"go-dsp": goDSPHalf,
	"gonum":  gonumHalf,
}

func lookupBackend(name string) (fftFunc, error) {
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown fft backend %q, expected one of %v", name, backendNames())
	}
	return f, nil
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// go-dsp falls back to Bluestein for lengths that aren't a power of two.
func goDSPHalf(x []float64) []complex128 {
	full := fft.FFTReal(x)
	return full[0 : len(x)/2+1]
}

func gonumHalf(x []float64) []complex128 {
	return fourier.NewFFT(len(x)).Coefficients(nil, x)
}
