package main

import (
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// requireSliceNearlyEqual fails t if got and want differ in length or if any
// element pair is further apart than eps.
func requireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// directDFT evaluates the non-negative half of the DFT from its definition.
func directDFT(x []float64) []complex128 {
	n := len(x)
	res := make([]complex128, n/2+1)
	for k := range res {
		var sum complex128
		for i, v := range x {
			angle := -2 * math.Pi * float64(k) * float64(i) / float64(n)
			sum += complex(v, 0) * cmplx.Exp(complex(0, angle))
		}
		res[k] = sum
	}
	return res
}

func sine(freq float64, sampleRate float64, n int) []float64 {
	res := make([]float64, n)
	step := 2 * math.Pi * freq / sampleRate
	for i := range res {
		res[i] = math.Sin(step * float64(i))
	}
	return res
}

func writeTemp(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// recordingPresenter keeps every plot it is given.
type recordingPresenter struct {
	plots  []*Plot
	closed bool
}

func (r *recordingPresenter) Render(p *Plot) error {
	r.plots = append(r.plots, p)
	return nil
}

func (r *recordingPresenter) Close() error {
	r.closed = true
	return nil
}
