package main

import (
	"gonum.org/v1/gonum/floats"
)

// timeAxis returns n timestamps evenly spread over [0, durationMs].
func timeAxis(n int, durationMs float64) ([]float64, error) {
	if n < 1 {
		return nil, &InvalidLengthError{Op: "time axis", Len: n, Min: 1}
	}
	if n == 1 {
		return []float64{0}, nil
	}
	res := floats.Span(make([]float64, n), 0, durationMs)
	res[n-1] = durationMs
	return res, nil
}
