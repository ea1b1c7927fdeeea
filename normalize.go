package main

// normalize scales v so that its largest absolute value becomes 1.
// The input is left untouched.
func normalize(v []float64) ([]float64, error) {
	if len(v) == 0 {
		return nil, &InvalidLengthError{Op: "normalize", Len: 0, Min: 1}
	}
	peak := maxAbsV(v)
	if peak == 0 {
		return nil, ErrDegenerateSignal
	}
	return divNVS(v, peak), nil
}
