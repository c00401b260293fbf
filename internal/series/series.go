// Public domain.

// Package series holds the derived light curve type shared by the
// photometry commands, along with the summary statistics reported for it.
package series

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series is an ordered light curve.  JD and Values are parallel slices.
//
// JD values have Prefix subtracted.  Prefix is typically the integer part
// of the first timestamp, or the fixed 2400000 offset written by
// AstroImageJ.
type Series struct {
	Name   string
	Prefix float64
	JD     []float64
	Values []float64
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.Values) }

// WithValues returns a copy of s sharing timestamps but carrying v.
// v must be the same length as s.Values.
func (s *Series) WithValues(v []float64) *Series {
	return &Series{Name: s.Name, Prefix: s.Prefix, JD: s.JD, Values: v}
}

// Median returns the median of x, averaging the two central values when
// len(x) is even.  The median of an empty slice is NaN.  x is not modified.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	s := slices.Clone(x)
	slices.Sort(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) * .5
}

// Summary holds the statistics printed for a series.
type Summary struct {
	N              int
	Min, Max       float64
	Mean, Median   float64
	MeanMedianDiff float64 // |Mean - Median|
}

// Summarize computes a Summary.  x must not be empty.
func Summarize(x []float64) Summary {
	s := Summary{
		N:      len(x),
		Min:    floats.Min(x),
		Max:    floats.Max(x),
		Mean:   stat.Mean(x, nil),
		Median: Median(x),
	}
	s.MeanMedianDiff = math.Abs(s.Mean - s.Median)
	return s
}

// Deviation holds statistics of raw values about a smoothed curve.
type Deviation struct {
	Mean   float64
	StdDev float64 // population standard deviation
}

// Deviations computes raw - smoothed point by point and returns the mean
// and population standard deviation of the differences.  The slices must
// have equal, non-zero length.
func Deviations(raw, smoothed []float64) Deviation {
	d := make([]float64, len(raw))
	floats.SubTo(d, raw, smoothed)
	m, sd := stat.PopMeanStdDev(d, nil)
	return Deviation{Mean: m, StdDev: sd}
}
