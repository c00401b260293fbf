// Public domain.

// Package smooth computes centered moving averages of light curves.
package smooth

import "fmt"

// DefaultWindow is the window used when none is configured.
const DefaultWindow = 20

// Edges selects how outputs near the ends of a series are computed,
// where a centered window would extend past the data.
type Edges int

const (
	// Legacy repeats the nearest fully windowed average out to each end.
	Legacy Edges = iota
	// Shrink averages only the samples of the window that exist.
	Shrink
)

func (e Edges) String() string {
	switch e {
	case Legacy:
		return "legacy"
	case Shrink:
		return "shrink"
	}
	return fmt.Sprintf("Edges(%d)", int(e))
}

// ParseEdges parses the names returned by Edges.String.
func ParseEdges(s string) (Edges, error) {
	switch s {
	case "legacy", "":
		return Legacy, nil
	case "shrink":
		return Shrink, nil
	}
	return 0, fmt.Errorf("unknown edge handling %q", s)
}

// WindowError reports a window size that cannot be applied.
type WindowError struct {
	Window, N int
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("moving average: window %d invalid for %d values", e.Window, e.N)
}

// Smooth returns the moving average of x with window w and the given
// edge handling.  The result has the same length as x.
// w must satisfy 1 <= w <= len(x).
func Smooth(x []float64, w int, edges Edges) ([]float64, error) {
	if edges == Shrink {
		return ShrinkingAverage(x, w)
	}
	return MovingAverage(x, w)
}

// start returns the index of the first sample of the window centered on
// i, aligned as a "same" mode convolution with a uniform kernel aligns it.
// For even w the window holds w/2 samples before i and w/2-1 after.
func start(i, w int) int {
	return i + (w-1)/2 - w + 1
}

func check(x []float64, w int) error {
	if w < 1 || w > len(x) {
		return &WindowError{Window: w, N: len(x)}
	}
	return nil
}

// MovingAverage returns the centered moving average of x, each output
// being the mean of the w samples around it.
//
// Outputs whose window would extend past either end of x are not
// averaged.  The first and last w/2 outputs instead repeat the nearest
// fully windowed value.  When w == len(x) and w is even, the single full
// window, the mean of x, fills the result.
func MovingAverage(x []float64, w int) ([]float64, error) {
	if err := check(x, w); err != nil {
		return nil, err
	}
	n := len(x)
	lo, hi := w/2, n-w/2
	if lo >= hi {
		hi = lo + 1
	}
	k := 1 / float64(w)
	r := make([]float64, n)
	for i := lo; i < hi; i++ {
		var s float64
		for _, v := range x[start(i, w) : start(i, w)+w] {
			s += v * k
		}
		r[i] = s
	}
	for i := 0; i < lo; i++ {
		r[i] = r[lo]
	}
	for i := hi; i < n; i++ {
		r[i] = r[hi-1]
	}
	return r, nil
}

// ShrinkingAverage is MovingAverage with windows truncated at the ends
// of x rather than padded.  Each output is the mean of the samples of its
// window that exist.
func ShrinkingAverage(x []float64, w int) ([]float64, error) {
	if err := check(x, w); err != nil {
		return nil, err
	}
	n := len(x)
	r := make([]float64, n)
	for i := range x {
		s0 := max(start(i, w), 0)
		s1 := min(start(i, w)+w, n)
		var s float64
		for _, v := range x[s0:s1] {
			s += v
		}
		r[i] = s / float64(s1-s0)
	}
	return r, nil
}
