// Public domain.

package vpprog

import (
	"github.com/spf13/cobra"

	"github.com/soniakeys/varphot/internal/datconv"
)

const defaultConvertDir = "lightcurves/auto_aperture"

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [dir]",
		Short: "Convert space delimited .dat light curves to CSV",
		Long: `Convert rewrites each .dat file in dir (default ` + defaultConvertDir + `)
as a comma delimited file with the header line removed.  Output files are
named by appending .csv to the input name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := defaultConvertDir
			if len(args) == 1 {
				dir = args[0]
			}
			written, err := datconv.ConvertDir(dir)
			for _, fn := range written {
				a.log.Info("converted", "path", fn)
			}
			if err != nil {
				return err
			}
			if len(written) == 0 {
				a.log.Warn("no .dat files found", "dir", dir)
			}
			return nil
		},
	}
}
