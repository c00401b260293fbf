// Public domain.

package vpprog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/cobra"

	"github.com/soniakeys/varphot/internal/fileutil"
	"github.com/soniakeys/varphot/internal/photometry"
	"github.com/soniakeys/varphot/internal/series"
	"github.com/soniakeys/varphot/internal/smooth"
)

// Magnitude models selectable with --model.
const (
	modelPogson   = "pogson"
	modelPowerLaw = "powerlaw"
	modelMedian   = "median"
)

type lightCurveOptions struct {
	model   string
	trueMag float64
	window  int
	edges   string
	plot    bool
}

func newLightCurveCommand(a *app) *cobra.Command {
	var o lightCurveOptions
	cmd := &cobra.Command{
		Use:   "lightcurve <table>",
		Short: "Derive flux and magnitudes from an AstroImageJ measurement table",
		Long: `Lightcurve reads a whitespace delimited measurement table, subtracts
the sky background, divides by exposure time, converts the flux to
magnitudes and smooths the result with a centered moving average.

When the table has a comparison star column (Source-Sky_C2) the target
counts are first normalized by the comparison star, and statistics are
reported for both the normalized and the measured counts.

Models:
   pogson    m = -2.5 log10(flux / A), A from [photometry] calibration_a
   powerlaw  m = flux * (K * flux^P), K and P from [photometry]
   median    m = flux * true / median(flux), requires --true-mag`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.model = strings.ToLower(o.model)
			if o.model == modelMedian && !cmd.Flags().Changed("true-mag") {
				return fmt.Errorf("model %s requires --true-mag", modelMedian)
			}
			return a.lightCurve(args[0], &o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.model, "model", modelPogson, "magnitude model: pogson, powerlaw, median")
	f.Float64Var(&o.trueMag, "true-mag", 0, "known magnitude of the target, for the median model")
	f.IntVarP(&o.window, "window", "w", 0, "moving average window (default from config)")
	f.StringVar(&o.edges, "edges", "", "smoothing edges: legacy, shrink (default from config)")
	f.BoolVar(&o.plot, "plot", false, "save flux and magnitude charts")
	return cmd
}

// model returns the conversion for flux values, which the median model
// is scaled to.
func (a *app) model(name string, trueMag float64, flux []float64) (photometry.Model, error) {
	p := &a.cfg.Photometry
	switch name {
	case modelPogson:
		return photometry.Pogson{A: p.CalibrationA}, nil
	case modelPowerLaw:
		return photometry.PowerLaw{K: p.PowerK, P: p.PowerP}, nil
	case modelMedian:
		return photometry.MedianScale(trueMag, flux)
	}
	return nil, fmt.Errorf("unknown model %q", name)
}

// smoothing resolves window and edge options against the configuration.
func (a *app) smoothing(window int, edges string) (int, smooth.Edges, error) {
	if window == 0 {
		window = a.cfg.Smoothing.Window
	}
	if edges == "" {
		return window, a.cfg.Edges(), nil
	}
	e, err := smooth.ParseEdges(edges)
	return window, e, err
}

func (a *app) lightCurve(fn string, o *lightCurveOptions) error {
	if err := fileutil.Check(fn); err != nil {
		return err
	}
	window, edges, err := a.smoothing(o.window, o.edges)
	if err != nil {
		return err
	}
	t, err := photometry.ReadTableFile(fn)
	if err != nil {
		return err
	}
	a.log.Debug("table read", "path", fn, "rows", len(t.Rows),
		"exptime", t.ExpTime, "reference", t.HasReference)
	fx, err := t.Flux()
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	flux := fx.Series(filepath.Base(fn))
	a.span(flux)
	summaryStats(a.out, "Flux", "ADU/s", flux.Values)

	mag, smoothed, err := a.magnitudes(flux, o, window, edges)
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	title := "Magnitude"
	if fx.Adjusted {
		title = "Magnitude, comparison normalized"
	}
	magStats(a.out, title, mag.Values, smoothed)

	var rawMag *series.Series
	var rawSmoothed []float64
	if fx.Adjusted {
		raw := flux.WithValues(fx.Raw)
		if rawMag, rawSmoothed, err = a.magnitudes(raw, o, window, edges); err != nil {
			return fmt.Errorf("%s, measured counts: %w", fn, err)
		}
		magStats(a.out, "Magnitude, measured", rawMag.Values, rawSmoothed)
	}

	if !o.plot {
		return nil
	}
	inverted := o.model != modelMedian
	if err := a.saveCurve(flux, nil, "Flux [ADU*s^-1]", false, "flux", fn); err != nil {
		return err
	}
	if err := a.saveCurve(mag, smoothed, "Magnitude", inverted, "magastroimagej", fn); err != nil {
		return err
	}
	if rawMag != nil {
		return a.saveCurve(rawMag, rawSmoothed, "Magnitude", inverted, "magastroimagej_raw", fn)
	}
	return nil
}

// magnitudes converts flux with the selected model and smooths the
// result.
func (a *app) magnitudes(flux *series.Series, o *lightCurveOptions, window int, edges smooth.Edges) (*series.Series, []float64, error) {
	m, err := a.model(o.model, o.trueMag, flux.Values)
	if err != nil {
		return nil, nil, err
	}
	mags, err := photometry.Convert(m, flux.Values)
	if err != nil {
		return nil, nil, err
	}
	smoothed, err := smooth.Smooth(mags, window, edges)
	if err != nil {
		return nil, nil, err
	}
	a.log.Debug("magnitudes smoothed", "model", o.model, "window", window, "edges", edges.String())
	return flux.WithValues(mags), smoothed, nil
}

// span reports the calendar dates covered by s.
func (a *app) span(s *series.Series) {
	if s.Len() == 0 {
		return
	}
	const layout = "2006-01-02 15:04:05"
	first := julian.JDToTime(s.JD[0] + s.Prefix)
	last := julian.JDToTime(s.JD[len(s.JD)-1] + s.Prefix)
	fmt.Fprintf(a.out, "%s: %d frames, %s to %s UT\n",
		s.Name, s.Len(), first.UTC().Format(layout), last.UTC().Format(layout))
}
