// Public domain.

package smooth_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/soniakeys/varphot/internal/smooth"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

// expected values computed with a uniform kernel "same" mode convolution,
// trimmed and padded at the ends with the nearest full window value.
var movingAverageTestCases = []struct {
	x    []float64
	w    int
	want []float64
}{
	{[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 4,
		[]float64{2.5, 2.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5, 7.5, 7.5}},
	{[]float64{1, 2, 3, 4, 5, 6, 7}, 3,
		[]float64{2, 2, 3, 4, 5, 6, 6}},
	{[]float64{2, 4, 6, 8, 10}, 5,
		[]float64{6, 6, 6, 6, 6}},
	{[]float64{1, 1, 1, 1, 9}, 1,
		[]float64{1, 1, 1, 1, 9}},
	{[]float64{1, 2, 3, 6}, 4,
		[]float64{3, 3, 3, 3}},
	{[]float64{5}, 1, []float64{5}},
}

func TestMovingAverage(t *testing.T) {
	for _, tc := range movingAverageTestCases {
		got, err := smooth.MovingAverage(tc.x, tc.w)
		if err != nil {
			t.Errorf("%v w=%d: %v", tc.x, tc.w, err)
			continue
		}
		if d := cmp.Diff(tc.want, got, approx); d != "" {
			t.Errorf("%v w=%d (-want +got):\n%s", tc.x, tc.w, d)
		}
	}
}

func ExampleShrinkingAverage() {
	s, _ := smooth.ShrinkingAverage([]float64{1, 2, 3, 4, 5, 6, 7}, 3)
	fmt.Println(s)
	// Output:
	// [1.5 2 3 4 5 6 6.5]
}

// output length equals input length for every valid window.
func TestLength(t *testing.T) {
	x := make([]float64, 23)
	for i := range x {
		x[i] = float64(i * i % 7)
	}
	for n := 1; n <= len(x); n++ {
		for w := 1; w <= n; w++ {
			for _, e := range []smooth.Edges{smooth.Legacy, smooth.Shrink} {
				s, err := smooth.Smooth(x[:n], w, e)
				if err != nil {
					t.Fatalf("n=%d w=%d %s: %v", n, w, e, err)
				}
				if len(s) != n {
					t.Fatalf("n=%d w=%d %s: len %d", n, w, e, len(s))
				}
			}
		}
	}
}

func TestWindowError(t *testing.T) {
	for _, w := range []int{0, -1, 4} {
		_, err := smooth.MovingAverage([]float64{1, 2, 3}, w)
		var we *smooth.WindowError
		if !errors.As(err, &we) {
			t.Errorf("w=%d: got %v, want WindowError", w, err)
		}
		if _, err = smooth.ShrinkingAverage([]float64{1, 2, 3}, w); err == nil {
			t.Errorf("shrink w=%d accepted", w)
		}
	}
}

func TestParseEdges(t *testing.T) {
	for _, e := range []smooth.Edges{smooth.Legacy, smooth.Shrink} {
		got, err := smooth.ParseEdges(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEdges(%q) = %v, %v", e, got, err)
		}
	}
	if _, err := smooth.ParseEdges("cubic"); err == nil {
		t.Error("unknown edge handling accepted")
	}
}
