// Public domain.

package chart_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/soniakeys/varphot/internal/chart"
)

func TestFileName(t *testing.T) {
	got := chart.FileName("results", "Mag", "lightcurves/binary_stars/v0004.dat.csv")
	if want := filepath.Join("results", "Mag_v0004.dat.png"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSaveLightCurve(t *testing.T) {
	lc := &chart.LightCurve{
		Title:    "Magnitude LC for sequence test",
		XLabel:   "Julian Date -2400000",
		YLabel:   "mag",
		X:        []float64{1, 2, 3, 4},
		Y:        []float64{5.1, 5.3, 5.2, 5.0},
		Smoothed: []float64{5.2, 5.2, 5.2, 5.1},
		HLines:   []chart.HLine{{Y: 5.15, Dashed: true}, {Y: 5.2}},
		InvertY:  true,
	}
	p, err := lc.Plot()
	if err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(t.TempDir(), "out", "lc.png")
	if err := chart.Save(p, fn, 1); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Fatal("not a png")
	}
	if err := chart.Save(p, fn, 0); err == nil {
		t.Fatal("zero dpi scale accepted")
	}
}

func TestPlotErrors(t *testing.T) {
	if _, err := (&chart.LightCurve{X: []float64{1}, Y: nil}).Plot(); err == nil {
		t.Error("mismatched lengths accepted")
	}
	lc := &chart.LightCurve{X: []float64{1, 2}, Y: []float64{1, 2}, Smoothed: []float64{1}}
	if _, err := lc.Plot(); err == nil {
		t.Error("short smoothed series accepted")
	}
}

func TestFit(t *testing.T) {
	flux := []float64{1e5, 1e6, 2e6}
	mag := []float64{6, 3.5, 2.7}
	p, err := chart.Fit(flux, mag, func(f float64) float64 { return -2.5 * math.Log10(f/16468819) })
	if err != nil {
		t.Fatal(err)
	}
	if err := chart.Save(p, filepath.Join(t.TempDir(), "fit.png"), 1); err != nil {
		t.Fatal(err)
	}
}
