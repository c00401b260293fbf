// Public domain.

package photometry

import (
	"fmt"

	"github.com/soniakeys/varphot/internal/series"
)

// DomainError reports a value outside the domain of a computation, such
// as a non-positive flux passed to a logarithm.
type DomainError struct {
	Op    string
	Index int // row of the offending value, -1 if not applicable
	Value float64
}

func (e *DomainError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: value %g out of domain", e.Op, e.Value)
	}
	return fmt.Sprintf("%s: value %g out of domain at row %d", e.Op, e.Value, e.Index)
}

// BackgroundCounts returns skyPerPixel[i] * pixels[i] for each row.
func BackgroundCounts(skyPerPixel, pixels []float64) []float64 {
	b := make([]float64, len(skyPerPixel))
	for i, s := range skyPerPixel {
		b[i] = s * pixels[i]
	}
	return b
}

// Subtract returns counts[i] - background[i] for each row.
func Subtract(counts, background []float64) []float64 {
	c := make([]float64, len(counts))
	for i, n := range counts {
		c[i] = n - background[i]
	}
	return c
}

// PerSecond divides each count by the exposure time, giving ADU/s.
func PerSecond(counts []float64, expTime float64) ([]float64, error) {
	if !(expTime > 0) {
		return nil, &DomainError{Op: "exposure time", Index: -1, Value: expTime}
	}
	f := make([]float64, len(counts))
	for i, c := range counts {
		f[i] = c / expTime
	}
	return f, nil
}

// NormalizeToReference corrects target counts for transparency changes
// using a comparison star assumed constant:
//
//	ratio[i] = reference[i] / median(reference)
//	adjusted[i] = target[i] * (1 / ratio[i])
//
// Row i of target is normalized with row i of reference.
func NormalizeToReference(target, reference []float64) ([]float64, error) {
	if len(target) != len(reference) {
		return nil, fmt.Errorf("normalize: %d target rows, %d reference rows",
			len(target), len(reference))
	}
	med := series.Median(reference)
	if !(med > 0) {
		return nil, &DomainError{Op: "reference median", Index: -1, Value: med}
	}
	adj := make([]float64, len(target))
	for i, t := range target {
		if !(reference[i] > 0) {
			return nil, &DomainError{Op: "reference count", Index: i, Value: reference[i]}
		}
		ratio := reference[i] / med
		adj[i] = t * (1 / ratio)
	}
	return adj, nil
}

// Fluxes holds background subtracted flux per frame, in ADU/s.
//
// When the table has a reference star, PerSecond is computed from
// reference normalized counts and Raw from the counts as measured.
// Otherwise the two are the same slice.
type Fluxes struct {
	JD        []float64
	PerSecond []float64
	Raw       []float64
	Adjusted  bool
}

// Flux derives per-frame flux from a measurement table:
//
//	background = sky per pixel * aperture pixels
//	corrected = source - background
//	flux = corrected / exposure time
func (t *Table) Flux() (*Fluxes, error) {
	jd, source, reference, sky, pixels := t.Columns()
	bg := BackgroundCounts(sky, pixels)
	raw, err := PerSecond(Subtract(source, bg), t.ExpTime)
	if err != nil {
		return nil, err
	}
	fx := &Fluxes{JD: jd, PerSecond: raw, Raw: raw}
	if !t.HasReference {
		return fx, nil
	}
	adjusted, err := NormalizeToReference(source, reference)
	if err != nil {
		return nil, err
	}
	if fx.PerSecond, err = PerSecond(Subtract(adjusted, bg), t.ExpTime); err != nil {
		return nil, err
	}
	fx.Adjusted = true
	return fx, nil
}

// Series returns the flux as a light curve with JD offset JDOffset.
func (fx *Fluxes) Series(name string) *series.Series {
	return &series.Series{Name: name, Prefix: JDOffset, JD: fx.JD, Values: fx.PerSecond}
}
