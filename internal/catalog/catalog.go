// Public domain.

// Package catalog reads, filters, and writes variable star catalogs.
//
// A catalog is a comma separated file with a header row.  Columns used
// are the declination sign "DE-" and degrees "DEd", right ascension
// components "RAh", "RAm", "RAs", the period "Period [d]" and the two
// minimum brightness values "MinI" and "MinII".  Optional columns "DEm"
// and "DEs" refine the declination used for display.  All other columns
// are carried through unchanged.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/varphot/internal/series"
)

// Column names.
const (
	ColDecSign = "DE-"
	ColDecDeg  = "DEd"
	ColDecMin  = "DEm"
	ColDecSec  = "DEs"
	ColRAHour  = "RAh"
	ColRAMin   = "RAm"
	ColRASec   = "RAs"
	ColPeriod  = "Period [d]"
	ColMinI    = "MinI"
	ColMinII   = "MinII"
)

var required = []string{
	ColDecSign, ColDecDeg, ColRAHour, ColRAMin, ColRASec,
	ColPeriod, ColMinI, ColMinII,
}

// ParseError reports a malformed field in a catalog row.
type ParseError struct {
	Row    int // data row index, 0 is the first row after the header
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog row %d, column %q: invalid value %q", e.Row, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Entry is a single catalog row.
//
// Fields holds the row exactly as read so that writing an entry
// reproduces it without loss.  The remaining fields are parsed from it.
type Entry struct {
	Index  int
	Fields []string

	Pos    coord.Equa
	RAh    int
	RAm    int
	RAs    float64
	DecDeg int     // sign token joined with DEd, whole degrees
	Period float64 // days, 0 if unknown
	MinI   float64 // NaN if blank
	MinII  float64 // NaN if blank
}

// PackedRA returns right ascension as the decimal number hhmmss.s, the
// form used by older versions of the candidate list.
func (e *Entry) PackedRA() float64 {
	return float64(e.RAh*10000+e.RAm*100) + e.RAs
}

// Catalog is a header and its entries, in file order.
type Catalog struct {
	Header  []string
	Entries []Entry
	col     map[string]int
}

// Read parses a catalog.  A leading byte order mark is ignored.
func Read(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(series.SkipBOM(r))
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog: missing header")
		}
		return nil, err
	}
	c := &Catalog{Header: header, col: map[string]int{}}
	for i, h := range header {
		c.col[strings.TrimSpace(h)] = i
	}
	for _, h := range required {
		if _, ok := c.col[h]; !ok {
			return nil, fmt.Errorf("catalog: missing column %q", h)
		}
	}
	for x := 0; ; x++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		if err != nil {
			return nil, err
		}
		e, err := c.parse(x, rec)
		if err != nil {
			return nil, err
		}
		c.Entries = append(c.Entries, e)
	}
}

// ReadFile opens and reads the catalog file fn.
func ReadFile(fn string) (*Catalog, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return c, nil
}

func (c *Catalog) parse(x int, rec []string) (e Entry, err error) {
	e.Index = x
	e.Fields = rec
	field := func(col string) string {
		if i, ok := c.col[col]; ok && i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	perr := func(col string, err error) error {
		return &ParseError{Row: x, Column: col, Value: field(col), Err: err}
	}
	atoi := func(col string) (int, error) {
		v, err := strconv.Atoi(field(col))
		if err != nil {
			return 0, perr(col, err)
		}
		return v, nil
	}
	// blank optional values parse as def.
	parseFloat := func(col string, def float64) (float64, error) {
		s := field(col)
		if s == "" {
			return def, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, perr(col, err)
		}
		return v, nil
	}

	// declination.  sign token and magnitude are joined once, here.
	sign := field(ColDecSign)
	switch sign {
	case "-", "+", "":
	default:
		return e, perr(ColDecSign, errors.New("sign must be + or -"))
	}
	d, err := atoi(ColDecDeg)
	if err != nil {
		return
	}
	if d < 0 || d > 90 {
		return e, perr(ColDecDeg, errors.New("out of range"))
	}
	e.DecDeg = d
	if sign == "-" {
		e.DecDeg = -d
	}
	dm, err := parseFloat(ColDecMin, 0)
	if err != nil {
		return
	}
	ds, err := parseFloat(ColDecSec, 0)
	if err != nil {
		return
	}
	neg := byte('+')
	if sign == "-" {
		neg = '-'
	}
	e.Pos.Dec = unit.NewAngle(neg, d, int(dm), ds+(dm-math.Trunc(dm))*60)

	// right ascension
	if e.RAh, err = atoi(ColRAHour); err != nil {
		return
	}
	if e.RAm, err = atoi(ColRAMin); err != nil {
		return
	}
	if e.RAs, err = parseFloat(ColRASec, 0); err != nil {
		return
	}
	e.Pos.RA = unit.NewRA(e.RAh, e.RAm, e.RAs)

	// a blank period is as unknown as the 0 placeholder.
	if e.Period, err = parseFloat(ColPeriod, 0); err != nil {
		return
	}
	if e.MinI, err = parseFloat(ColMinI, math.NaN()); err != nil {
		return
	}
	e.MinII, err = parseFloat(ColMinII, math.NaN())
	return
}

// Write writes header and entries as a comma separated file.  Each entry
// is written from its original fields.
func Write(w io.Writer, header []string, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := range entries {
		if err := cw.Write(entries[i].Fields); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates fn and writes header and entries to it.
func WriteFile(fn string, header []string, entries []Entry) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err = Write(f, header, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
