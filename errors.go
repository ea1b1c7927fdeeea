package main

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput       = errors.New("no samples in input")
	ErrDegenerateSignal = errors.New("all samples are zero, signal can't be normalized")
)

// ParseError reports a line that doesn't hold a base-10 integer.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q is not an integer sample", e.Line, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type InvalidLengthError struct {
	Op  string
	Len int
	Min int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("%s: length %d is less than %d", e.Op, e.Len, e.Min)
}
