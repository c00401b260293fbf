// Public domain.

// Package vpprog implements the varphot command.
package vpprog

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/soniakeys/exit"
	"github.com/spf13/cobra"

	"github.com/soniakeys/varphot/internal/config"
	"github.com/soniakeys/varphot/internal/logging"
)

const versionString = "varphot version 0.3 Go source."
const copyrightString = "Public domain."

// Main runs the command line in os.Args.  Errors are reported on stderr
// and terminate the program with a non-zero exit code.
func Main() {
	defer exit.Handler()
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		exit.Log(err)
	}
}

// app is state shared by subcommands, set up before any of them run.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	log    *slog.Logger
	out    io.Writer
	logOut io.Writer
}

func newRootCommand(out, logOut io.Writer) *cobra.Command {
	a := &app{out: out, logOut: logOut}
	root := &cobra.Command{
		Use:   "varphot",
		Short: "Variable star candidate selection and light curve photometry",
		Long: `Varphot selects observable variable star candidates from a catalog,
converts instrument photometry to magnitudes, fits the flux to magnitude
calibration, and smooths and plots light curves.

For full documentation:
   go doc github.com/soniakeys/varphot`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(logOut)
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "configuration file (default ./"+config.DefaultFile+" if present)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console, json, auto")

	root.AddCommand(
		newCandidatesCommand(a),
		newConvertCommand(a),
		newFitCommand(a),
		newLightCurveCommand(a),
		newRelMagCommand(a),
		newConfigCommand(a),
		newVersionCommand(a),
	)
	return root
}

// setup loads configuration and constructs the logger.  Command line
// log settings override the configuration file.
func (a *app) setup() error {
	cfg, path, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	opts := logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: a.logOut,
	}
	if a.logLevel != "" {
		opts.Level = a.logLevel
	}
	if a.logFormat != "" {
		opts.Format = a.logFormat
	}
	if a.log, err = logging.New(opts); err != nil {
		return err
	}
	if path != "" {
		a.log.Debug("configuration loaded", "path", path)
	}
	return nil
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version and copyright",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, versionString)
			fmt.Fprintln(a.out, copyrightString)
		},
	}
}

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print a configuration file holding the defaults",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(a.out, config.SampleConfig())
		},
	}
}
