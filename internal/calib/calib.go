// Public domain.

// Package calib fits the flux to magnitude calibration constant from
// reference stars of known magnitude.
//
// The model is the Pogson relation with a single free parameter A,
//
//	m = -2.5 * log10(flux / A)
//
// Writing c = 2.5 * log10(A) the model is m = c - 2.5*log10(flux), linear
// in c, so the least squares solution is closed form: c is the mean of
// m + 2.5*log10(flux) over the samples.  This is the same minimum an
// iterative nonlinear least squares fit of A converges to.
package calib

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/soniakeys/varphot/internal/photometry"
	"github.com/soniakeys/varphot/internal/series"
)

// Pair is a reference star measurement.
type Pair struct {
	Flux float64 // ADU/s
	Mag  float64 // catalog magnitude
}

// Fit is the result of fitting A.
type Fit struct {
	A        float64
	RSquared float64 // 1 - SSres/SStot
	N        int
}

// Model returns the fitted conversion.
func (f *Fit) Model() photometry.Pogson {
	return photometry.Pogson{A: f.A}
}

// Solve fits A to pairs.
//
// Fluxes must be positive.  R² is NaN when all magnitudes are equal.
func Solve(pairs []Pair) (*Fit, error) {
	if len(pairs) == 0 {
		return nil, errors.New("calib: no reference pairs")
	}
	var c float64
	for i, p := range pairs {
		if !(p.Flux > 0) {
			return nil, &photometry.DomainError{Op: "calibration flux", Index: i, Value: p.Flux}
		}
		c += p.Mag + 2.5*math.Log10(p.Flux)
	}
	c /= float64(len(pairs))
	fit := &Fit{A: math.Pow(10, c/2.5), N: len(pairs)}

	est := make([]float64, len(pairs))
	obs := make([]float64, len(pairs))
	m := fit.Model()
	for i, p := range pairs {
		est[i], _ = m.Magnitude(p.Flux)
		obs[i] = p.Mag
	}
	fit.RSquared = stat.RSquaredFrom(est, obs, nil)
	return fit, nil
}

// ReadPairs reads comma separated flux, magnitude pairs, one per line.
// A first line that does not parse as numbers is taken as a header.
func ReadPairs(r io.Reader) ([]Pair, error) {
	cr := csv.NewReader(series.SkipBOM(r))
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	var pairs []Pair
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row, _ := cr.FieldPos(0)
		f, err := series.ParseFloat(rec[0], row, "flux")
		if err != nil {
			if first {
				continue
			}
			return nil, err
		}
		m, err := series.ParseFloat(rec[1], row, "mag")
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Flux: f, Mag: m})
	}
	return pairs, nil
}

// ReadPairsFile opens fn and calls ReadPairs.
func ReadPairsFile(fn string) ([]Pair, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := ReadPairs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return p, nil
}

// Reference is the reference star set measured with the project
// equipment.  Fitting it gives photometry.DefaultPogsonA.
var Reference = []Pair{
	{841128, 3.76},
	{1073712, 2.68},
	{336527, 5.7},
	{614883, 3.78},
	{145314, 5.73},
	{202224, 5.48},
	{1502406, 2.23},
	{1056801, 2.46},
	{540382, 4.45},
	{632002, 3.77},
	{171449, 5.32},
	{356634, 3.79},
	{1890106, 1.08},
	{1035392, 2.22},
	{644473, 3.55},
	{477759, 3.77},
	{171759, 4.91},
	{535476, 2.56},
}
