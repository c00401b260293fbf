// Public domain.

package photometry

import (
	"errors"
	"math"

	"github.com/soniakeys/varphot/internal/series"
)

// Model converts a flux, or a relative magnitude, to a magnitude.
type Model interface {
	Magnitude(x float64) (float64, error)
}

// Pogson is the magnitude scale calibrated by the single constant A:
//
//	m = -2.5 * log10(flux / A)
//
// A is the flux of a magnitude 0 star, as fitted by package calib.
type Pogson struct {
	A float64
}

// DefaultPogsonA is the calibration constant fitted for the reference
// star set observed with the project equipment.
const DefaultPogsonA = 16468819

func (p Pogson) Magnitude(flux float64) (float64, error) {
	if !(p.A > 0) {
		return 0, &DomainError{Op: "calibration constant", Index: -1, Value: p.A}
	}
	if !(flux > 0) {
		return 0, &DomainError{Op: "log10 flux", Index: -1, Value: flux}
	}
	return -2.5 * math.Log10(flux/p.A), nil
}

// PowerLaw is an empirical conversion with a flux dependent coefficient:
//
//	m = flux * (K * flux**P)
type PowerLaw struct {
	K, P float64
}

func (p PowerLaw) Magnitude(flux float64) (float64, error) {
	if !(flux > 0) {
		return 0, &DomainError{Op: "power law flux", Index: -1, Value: flux}
	}
	return flux * (p.K * math.Pow(flux, p.P)), nil
}

// Scaled multiplies by a constant coefficient.  See MedianScale.
type Scaled struct {
	Coeff float64
}

func (s Scaled) Magnitude(x float64) (float64, error) {
	return s.Coeff * x, nil
}

// MedianScale returns the Scaled model that maps the median of values to
// trueMag, for a reference star of known magnitude.
func MedianScale(trueMag float64, values []float64) (Scaled, error) {
	med := series.Median(values)
	if med == 0 || math.IsNaN(med) {
		return Scaled{}, &DomainError{Op: "median scale", Index: -1, Value: med}
	}
	return Scaled{Coeff: trueMag / med}, nil
}

// LinearCoefficient converts relative magnitude with a coefficient that
// is itself linear in the relative magnitude:
//
//	coeff = Slope * relMag + Intercept
//	m = relMag * coeff
type LinearCoefficient struct {
	Slope, Intercept float64
}

func (l LinearCoefficient) Magnitude(relMag float64) (float64, error) {
	return relMag * (l.Slope*relMag + l.Intercept), nil
}

// Convert applies m to each value.  A *DomainError result carries the
// index of the first offending value.
func Convert(m Model, values []float64) ([]float64, error) {
	mags := make([]float64, len(values))
	for i, v := range values {
		mag, err := m.Magnitude(v)
		if err != nil {
			var de *DomainError
			if errors.As(err, &de) {
				de.Index = i
			}
			return nil, err
		}
		mags[i] = mag
	}
	return mags, nil
}
