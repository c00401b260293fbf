// Public domain.

package catalog

// Reason tags why an entry was removed.
type Reason string

const (
	ReasonInvalidPeriod  Reason = "invalid-period"
	ReasonVisibility     Reason = "visibility"
	ReasonDeclination    Reason = "declination"
	ReasonRightAscension Reason = "right-ascension"
	ReasonPeriod         Reason = "period"
	ReasonBrightness     Reason = "brightness"
)

// Rejection records a removed entry.
type Rejection struct {
	Entry  *Entry
	Reason Reason
}

// Constraints are the observing limits applied by Constrain.  All bounds
// are inclusive.
//
// MinBrightness is an upper bound on magnitude values: brighter stars
// have lower magnitudes, so an entry is kept when both of its minimum
// brightness values are <= MinBrightness.
type Constraints struct {
	MinDecDeg     float64
	MinRAHour     float64
	MaxRAHour     float64
	MinPeriod     float64
	MaxPeriod     float64
	MinBrightness float64
}

// Sufficient removes entries with an unknown (zero) period.
func Sufficient(entries []Entry) (kept []Entry, rejected []Rejection) {
	return partition(entries, func(e *Entry) (Reason, bool) {
		if e.Period == 0 {
			return ReasonInvalidPeriod, false
		}
		return "", true
	})
}

// Visible removes entries at or south of -southLimit degrees declination,
// which never rise above the horizon of the configured site.
func Visible(entries []Entry, southLimit int) (kept []Entry, rejected []Rejection) {
	return partition(entries, func(e *Entry) (Reason, bool) {
		if e.DecDeg < 0 && -e.DecDeg >= southLimit {
			return ReasonVisibility, false
		}
		return "", true
	})
}

// Check tests a single entry, returning the reason for the first
// constraint it fails.  Constraints are tested in the order declination,
// right ascension, period, brightness.
func (c *Constraints) Check(e *Entry) (Reason, bool) {
	switch {
	case float64(e.DecDeg) < c.MinDecDeg:
		return ReasonDeclination, false
	case float64(e.RAh) < c.MinRAHour || float64(e.RAh) > c.MaxRAHour:
		return ReasonRightAscension, false
	case e.Period < c.MinPeriod || e.Period > c.MaxPeriod:
		return ReasonPeriod, false
	// NaN compares false, a blank brightness never rejects.
	case e.MinI > c.MinBrightness || e.MinII > c.MinBrightness:
		return ReasonBrightness, false
	}
	return "", true
}

// Constrain removes entries failing any of the constraints.
func (c *Constraints) Constrain(entries []Entry) (kept []Entry, rejected []Rejection) {
	return partition(entries, c.Check)
}

// Select runs the whole candidate filter: Sufficient, Visible, then
// Constrain.  Rejections are returned in the order they were made.
func Select(entries []Entry, southLimit int, c *Constraints) (kept []Entry, rejected []Rejection) {
	kept, rejected = Sufficient(entries)
	kept, r := Visible(kept, southLimit)
	rejected = append(rejected, r...)
	kept, r = c.Constrain(kept)
	return kept, append(rejected, r...)
}

// partition preserves order.  Rejection.Entry points into entries.
func partition(entries []Entry, keep func(*Entry) (Reason, bool)) (kept []Entry, rejected []Rejection) {
	kept = make([]Entry, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if reason, ok := keep(e); ok {
			kept = append(kept, *e)
		} else {
			rejected = append(rejected, Rejection{Entry: e, Reason: reason})
		}
	}
	return
}
