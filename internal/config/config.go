// Public domain.

// Package config loads varphot settings from a TOML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/soniakeys/varphot/internal/catalog"
	"github.com/soniakeys/varphot/internal/smooth"
)

//go:embed sample_config.toml
var sampleConfig string

// SampleConfig returns a commented configuration file holding the
// defaults.
func SampleConfig() string { return sampleConfig }

// Filter holds candidate selection limits.  All bounds are inclusive.
type Filter struct {
	MinDeclinationDeg float64 `toml:"min_declination_deg"`
	MinRAHour         float64 `toml:"min_ra_hour"`
	MaxRAHour         float64 `toml:"max_ra_hour"`
	MinPeriodDays     float64 `toml:"min_period_days"`
	MaxPeriodDays     float64 `toml:"max_period_days"`
	MinBrightnessMag  float64 `toml:"min_brightness_mag"`
}

// Site describes the observing location.
type Site struct {
	LatitudeDeg float64 `toml:"latitude_deg"`
	// SouthLimitDeg is the southern declination limit of visibility.
	// 0 derives it from the latitude as 90 - latitude.
	SouthLimitDeg int `toml:"south_limit_deg"`
}

// Photometry holds the magnitude conversion constants.
type Photometry struct {
	CalibrationA    float64 `toml:"calibration_a"`
	PowerK          float64 `toml:"power_k"`
	PowerP          float64 `toml:"power_p"`
	RelMagSlope     float64 `toml:"relmag_slope"`
	RelMagIntercept float64 `toml:"relmag_intercept"`
	// JDPrefix is subtracted from relative magnitude light curve dates.
	// 0 uses the integer part of the first date.
	JDPrefix float64 `toml:"jd_prefix"`
}

// Smoothing configures the moving average.
type Smoothing struct {
	Window int    `toml:"window"`
	Edges  string `toml:"edges"`
}

// Output configures chart files.
type Output struct {
	ResultsDir string  `toml:"results_dir"`
	DPIScale   float64 `toml:"dpi_scale"`
}

// Logging configures log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the complete varphot configuration.
type Config struct {
	Filter     Filter     `toml:"filter"`
	Site       Site       `toml:"site"`
	Photometry Photometry `toml:"photometry"`
	Smoothing  Smoothing  `toml:"smoothing"`
	Output     Output     `toml:"output"`
	Logging    Logging    `toml:"logging"`
}

// DefaultFile is the name looked for in the working directory when no
// configuration file is named.
const DefaultFile = "varphot.toml"

// Load reads the configuration file fn over the defaults.
//
// If fn is empty, DefaultFile is read if it exists and the defaults are
// used if it does not.  A named file must exist.  The returned path is
// the file read, or "" if none was.
func Load(fn string) (*Config, string, error) {
	cfg := Default()
	path := fn
	if path == "" {
		path = DefaultFile
	}
	b, err := os.ReadFile(path)
	switch {
	case fn == "" && errors.Is(err, fs.ErrNotExist):
		return &cfg, "", cfg.Validate()
	case err != nil:
		return nil, "", fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return nil, "", fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("config %s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &cfg, path, nil
}

// Constraints returns the filter limits in the form used by package
// catalog.
func (c *Config) Constraints() *catalog.Constraints {
	return &catalog.Constraints{
		MinDecDeg:     c.Filter.MinDeclinationDeg,
		MinRAHour:     c.Filter.MinRAHour,
		MaxRAHour:     c.Filter.MaxRAHour,
		MinPeriod:     c.Filter.MinPeriodDays,
		MaxPeriod:     c.Filter.MaxPeriodDays,
		MinBrightness: c.Filter.MinBrightnessMag,
	}
}

// SouthLimit returns the southern visibility limit in whole degrees.
func (c *Config) SouthLimit() int {
	if c.Site.SouthLimitDeg != 0 {
		return c.Site.SouthLimitDeg
	}
	return int(90 - c.Site.LatitudeDeg)
}

// Edges returns the parsed smoothing edge handling.
func (c *Config) Edges() smooth.Edges {
	e, _ := smooth.ParseEdges(c.Smoothing.Edges) // checked by Validate
	return e
}
