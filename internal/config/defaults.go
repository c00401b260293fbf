// Public domain.

package config

import (
	"github.com/soniakeys/varphot/internal/photometry"
	"github.com/soniakeys/varphot/internal/smooth"
)

const (
	defaultMinDeclinationDeg = -40
	defaultMinRAHour         = 0
	defaultMaxRAHour         = 24
	defaultMinPeriodDays     = 0
	defaultMaxPeriodDays     = 5
	defaultMinBrightnessMag  = 8
	defaultLatitudeDeg       = 50
	defaultPowerK            = 2150.1
	defaultPowerP            = -1.485
	defaultRelMagSlope       = -0.1595
	defaultRelMagIntercept   = -3.047
	defaultResultsDir        = "../Figures/images_results"
	defaultDPIScale          = 5
	defaultLogLevel          = "info"
	defaultLogFormat         = "auto"
)

// Default returns a Config holding the defaults.
func Default() Config {
	return Config{
		Filter: Filter{
			MinDeclinationDeg: defaultMinDeclinationDeg,
			MinRAHour:         defaultMinRAHour,
			MaxRAHour:         defaultMaxRAHour,
			MinPeriodDays:     defaultMinPeriodDays,
			MaxPeriodDays:     defaultMaxPeriodDays,
			MinBrightnessMag:  defaultMinBrightnessMag,
		},
		Site: Site{
			LatitudeDeg: defaultLatitudeDeg,
		},
		Photometry: Photometry{
			CalibrationA:    photometry.DefaultPogsonA,
			PowerK:          defaultPowerK,
			PowerP:          defaultPowerP,
			RelMagSlope:     defaultRelMagSlope,
			RelMagIntercept: defaultRelMagIntercept,
		},
		Smoothing: Smoothing{
			Window: smooth.DefaultWindow,
			Edges:  smooth.Legacy.String(),
		},
		Output: Output{
			ResultsDir: defaultResultsDir,
			DPIScale:   defaultDPIScale,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
