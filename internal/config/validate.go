// Public domain.

package config

import (
	"errors"
	"fmt"

	"github.com/soniakeys/varphot/internal/smooth"
)

// Validate checks settings for consistency.
func (c *Config) Validate() error {
	var errs []error
	f := &c.Filter
	if f.MinRAHour < 0 || f.MaxRAHour > 24 || f.MinRAHour > f.MaxRAHour {
		errs = append(errs, fmt.Errorf("filter: right ascension hours [%g, %g] not within [0, 24]",
			f.MinRAHour, f.MaxRAHour))
	}
	if f.MinPeriodDays < 0 || f.MinPeriodDays > f.MaxPeriodDays {
		errs = append(errs, fmt.Errorf("filter: invalid period range [%g, %g]",
			f.MinPeriodDays, f.MaxPeriodDays))
	}
	if f.MinDeclinationDeg < -90 || f.MinDeclinationDeg > 90 {
		errs = append(errs, fmt.Errorf("filter: min_declination_deg %g out of range", f.MinDeclinationDeg))
	}
	if c.Site.LatitudeDeg < -90 || c.Site.LatitudeDeg > 90 {
		errs = append(errs, fmt.Errorf("site: latitude_deg %g out of range", c.Site.LatitudeDeg))
	}
	if l := c.SouthLimit(); l <= 0 || l > 90 {
		errs = append(errs, fmt.Errorf("site: southern visibility limit %d not within (0, 90]", l))
	}
	if !(c.Photometry.CalibrationA > 0) {
		errs = append(errs, errors.New("photometry: calibration_a must be positive"))
	}
	if c.Smoothing.Window < 1 {
		errs = append(errs, fmt.Errorf("smoothing: window %d must be at least 1", c.Smoothing.Window))
	}
	if _, err := smooth.ParseEdges(c.Smoothing.Edges); err != nil {
		errs = append(errs, fmt.Errorf("smoothing: %w", err))
	}
	if !(c.Output.DPIScale > 0) {
		errs = append(errs, errors.New("output: dpi_scale must be positive"))
	}
	return errors.Join(errs...)
}
