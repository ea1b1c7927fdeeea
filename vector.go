package main

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

func divNVS(dst []float64, s float64) (res []float64) {
	res = make([]float64, len(dst))
	for i := 0; i < len(dst); i++ {
		res[i] = dst[i] / s
	}
	return res
}

// maxAbsV returns max(|v|), 0 for an empty vector.
func maxAbsV(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(v, math.Inf(1))
}

func ToAbs(a []complex128) []float64 {
	r := make([]float64, len(a))
	for i := 0; i < len(a); i++ {
		r[i] = cmplx.Abs(a[i])
	}
	return r
}
