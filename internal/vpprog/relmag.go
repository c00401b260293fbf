// Public domain.

package vpprog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soniakeys/varphot/internal/fileutil"
	"github.com/soniakeys/varphot/internal/photometry"
	"github.com/soniakeys/varphot/internal/series"
	"github.com/soniakeys/varphot/internal/smooth"
)

type relMagOptions struct {
	trueMag float64
	scale   bool
	binary  bool
	window  int
	edges   string
	plot    bool
}

func newRelMagCommand(a *app) *cobra.Command {
	var o relMagOptions
	cmd := &cobra.Command{
		Use:   "relmag <series.csv>",
		Short: "Report on a relative magnitude light curve",
		Long: `Relmag reads a two column JD, relative magnitude CSV file as written
by Siril or by the convert command, and reports the median and mean.

With --true-mag the series is scaled so that its median equals the known
magnitude of the star.  With --binary relative magnitudes are converted
with the coefficient slope * relmag + intercept from [photometry] and the
result is smoothed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.scale = cmd.Flags().Changed("true-mag")
			return a.relMag(args[0], &o)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&o.trueMag, "true-mag", 0, "known magnitude of the star")
	f.BoolVar(&o.binary, "binary", false, "convert with the linear coefficient model and smooth")
	f.IntVarP(&o.window, "window", "w", 0, "moving average window (default from config)")
	f.StringVar(&o.edges, "edges", "", "smoothing edges: legacy, shrink (default from config)")
	f.BoolVar(&o.plot, "plot", false, "save light curve charts")
	return cmd
}

func (a *app) relMag(fn string, o *relMagOptions) error {
	if err := fileutil.Check(fn); err != nil {
		return err
	}
	s, err := series.ReadRelMagFile(fn, a.cfg.Photometry.JDPrefix)
	if err != nil {
		return err
	}
	a.log.Debug("light curve read", "path", fn, "points", s.Len(), "prefix", s.Prefix)
	fmt.Fprintf(a.out, "%s: %d points, JD prefix %.0f\n", s.Name, s.Len(), s.Prefix)
	summaryStats(a.out, "Relative magnitude", "relMag", s.Values)

	// binary mode also draws the smoothed relative magnitudes.
	var window int
	var edges smooth.Edges
	var smoothedRel []float64
	if o.binary {
		if window, edges, err = a.smoothing(o.window, o.edges); err != nil {
			return err
		}
		if smoothedRel, err = smooth.Smooth(s.Values, window, edges); err != nil {
			return fmt.Errorf("%s: %w", fn, err)
		}
	}
	if o.plot {
		if err := a.saveCurve(s, smoothedRel, "Relative magnitude", true, "relMag", fn); err != nil {
			return err
		}
	}

	if o.scale {
		m, err := photometry.MedianScale(o.trueMag, s.Values)
		if err != nil {
			return fmt.Errorf("%s: %w", fn, err)
		}
		mags, err := photometry.Convert(m, s.Values)
		if err != nil {
			return fmt.Errorf("%s: %w", fn, err)
		}
		fmt.Fprintf(a.out, "Coefficient %.6f\n", m.Coeff)
		summaryStats(a.out, "Magnitude", "Magnitude", mags)
		if o.plot {
			if err := a.saveCurve(s.WithValues(mags), nil, "Magnitude", true, "Mag", fn); err != nil {
				return err
			}
		}
	}

	if !o.binary {
		return nil
	}
	p := &a.cfg.Photometry
	m := photometry.LinearCoefficient{Slope: p.RelMagSlope, Intercept: p.RelMagIntercept}
	mags, err := photometry.Convert(m, s.Values)
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	smoothed, err := smooth.Smooth(mags, window, edges)
	if err != nil {
		return fmt.Errorf("%s: %w", fn, err)
	}
	magStats(a.out, "Magnitude, binary", mags, smoothed)
	if o.plot {
		return a.saveCurve(s.WithValues(mags), smoothed, "Magnitude", true, "binary", fn)
	}
	return nil
}
