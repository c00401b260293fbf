// Public domain.

package vpprog

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/soniakeys/varphot/internal/calib"
	"github.com/soniakeys/varphot/internal/chart"
	"github.com/soniakeys/varphot/internal/fileutil"
)

func newFitCommand(a *app) *cobra.Command {
	var plot bool
	cmd := &cobra.Command{
		Use:   "fit [pairs.csv]",
		Short: "Fit the flux to magnitude calibration constant",
		Long: `Fit solves m = -2.5 log10(flux / A) for A by least squares over
reference star flux, magnitude pairs and reports A with the coefficient
of determination.  Without a file the built in reference set is fitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := ""
			if len(args) == 1 {
				fn = args[0]
			}
			return a.fit(fn, plot)
		},
	}
	cmd.Flags().BoolVar(&plot, "plot", false, "save a chart of the fit")
	return cmd
}

func (a *app) fit(fn string, plot bool) error {
	pairs := calib.Reference
	if fn != "" {
		if err := fileutil.Check(fn); err != nil {
			return err
		}
		var err error
		if pairs, err = calib.ReadPairsFile(fn); err != nil {
			return err
		}
	}
	f, err := calib.Solve(pairs)
	if err != nil {
		return err
	}
	a.log.Debug("calibration fitted", "pairs", f.N, "a", f.A, "r2", f.RSquared)

	m := f.Model()
	rows := make([][]string, len(pairs))
	flux := make([]float64, len(pairs))
	mag := make([]float64, len(pairs))
	for i, p := range pairs {
		est, _ := m.Magnitude(p.Flux)
		rows[i] = []string{
			strconv.FormatFloat(p.Flux, 'f', -1, 64),
			num(p.Mag),
			num(est),
			num(p.Mag - est),
		}
		flux[i] = p.Flux
		mag[i] = p.Mag
	}
	renderTable(a.out, "",
		[]string{"Flux [ADU/s]", "Magnitude", "Fitted", "Residual"}, rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight})
	fmt.Fprintf(a.out, "A = %.0f\nR² = %.4f\n", f.A, f.RSquared)

	if !plot {
		return nil
	}
	p, err := chart.Fit(flux, mag, func(x float64) float64 {
		y, _ := m.Magnitude(x)
		return y
	})
	if err != nil {
		return err
	}
	input := "reference"
	if fn != "" {
		input = filepath.Base(fn)
	}
	return a.save(p, "fit", input)
}
