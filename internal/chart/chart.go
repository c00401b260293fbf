// Public domain.

// Package chart renders light curves and calibration fits as PNG images.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default figure size, before DPI scaling.
const (
	Width  = 6.4 * vg.Inch
	Height = 4.8 * vg.Inch
)

var (
	green = color.RGBA{G: 128, A: 255}
	red   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	blue  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
)

// HLine is a horizontal reference line, typically a median or mean.
type HLine struct {
	Y      float64
	Dashed bool // dashed if true, dotted otherwise
}

// LightCurve describes a light curve chart.  Smoothed, if not nil, is
// drawn as a line over the scatter of Y.
type LightCurve struct {
	Title, XLabel, YLabel string
	X, Y                  []float64
	Smoothed              []float64
	HLines                []HLine
	// magnitudes get smaller as stars get brighter.
	InvertY bool
}

func xys(x, y []float64) plotter.XYs {
	p := make(plotter.XYs, len(x))
	for i := range p {
		p[i].X = x[i]
		p[i].Y = y[i]
	}
	return p
}

// Plot builds the chart.
func (lc *LightCurve) Plot() (*plot.Plot, error) {
	if len(lc.X) == 0 || len(lc.X) != len(lc.Y) {
		return nil, fmt.Errorf("chart %q: %d x values, %d y values", lc.Title, len(lc.X), len(lc.Y))
	}
	p := plot.New()
	p.Title.Text = lc.Title
	p.X.Label.Text = lc.XLabel
	p.Y.Label.Text = lc.YLabel

	sc, err := plotter.NewScatter(xys(lc.X, lc.Y))
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = blue
	sc.GlyphStyle.Radius = vg.Points(2)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(sc)

	if lc.Smoothed != nil {
		if len(lc.Smoothed) != len(lc.X) {
			return nil, errors.New("chart: smoothed series length differs")
		}
		ln, err := plotter.NewLine(xys(lc.X, lc.Smoothed))
		if err != nil {
			return nil, err
		}
		ln.LineStyle.Color = red
		ln.LineStyle.Width = vg.Points(3)
		p.Add(ln)
	}
	for _, h := range lc.HLines {
		y := h.Y
		f := plotter.NewFunction(func(float64) float64 { return y })
		f.Color = green
		if h.Dashed {
			f.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		} else {
			f.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
		}
		p.Add(f)
	}
	if lc.InvertY {
		p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
	}
	return p, nil
}

// Fit builds a chart of calibration samples with the fitted curve.
func Fit(flux, mag []float64, model func(flux float64) float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Calibration fit"
	p.X.Label.Text = "Flux [ADU*s^-1]"
	p.Y.Label.Text = "Magnitude"
	sc, err := plotter.NewScatter(xys(flux, mag))
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Color = blue
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	f := plotter.NewFunction(model)
	f.Color = red
	f.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	f.XMin, f.XMax, _, _ = plotter.XYRange(xys(flux, mag))
	p.Add(sc, f)
	return p, nil
}

// FileName returns the chart path for an input file: dir, then prefix
// joined to the base name of input with its extension replaced by .png.
func FileName(dir, prefix, input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, prefix+"_"+base+".png")
}

// Save renders p as PNG at dpiScale times the default resolution,
// creating the directory of fn as needed.
func Save(p *plot.Plot, fn string, dpiScale float64) error {
	if !(dpiScale > 0) {
		return fmt.Errorf("chart: dpi scale %g", dpiScale)
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
		return err
	}
	c := vgimg.NewWith(
		vgimg.UseWH(Width, Height),
		vgimg.UseDPI(int(vgimg.DefaultDPI*dpiScale)),
	)
	p.Draw(draw.New(c))
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if _, err = (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
