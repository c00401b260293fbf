// Public domain.

package vpprog

import (
	"strconv"

	"gonum.org/v1/plot"

	"github.com/soniakeys/varphot/internal/chart"
	"github.com/soniakeys/varphot/internal/series"
)

// save writes p to the results directory as prefix_<input base>.png.
func (a *app) save(p *plot.Plot, prefix, input string) error {
	fn := chart.FileName(a.cfg.Output.ResultsDir, prefix, input)
	if err := chart.Save(p, fn, a.cfg.Output.DPIScale); err != nil {
		return err
	}
	a.log.Info("chart saved", "path", fn)
	return nil
}

// saveCurve charts s with its smoothed values, if any, and a dashed line
// at the median of s.
func (a *app) saveCurve(s *series.Series, smoothed []float64, yLabel string, magnitudes bool, prefix, input string) error {
	lc := &chart.LightCurve{
		Title:    s.Name,
		XLabel:   jdLabel(s.Prefix),
		YLabel:   yLabel,
		X:        s.JD,
		Y:        s.Values,
		Smoothed: smoothed,
		HLines:   []chart.HLine{{Y: series.Median(s.Values), Dashed: true}},
		InvertY:  magnitudes,
	}
	p, err := lc.Plot()
	if err != nil {
		return err
	}
	return a.save(p, prefix, input)
}

func jdLabel(prefix float64) string {
	if prefix == 0 {
		return "JD"
	}
	return "JD - " + strconv.FormatFloat(prefix, 'f', -1, 64)
}
