// Public domain.

// Package photometry derives fluxes and magnitudes from aperture
// photometry measurement tables.
package photometry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/soniakeys/varphot/internal/series"
)

// Column names in an AstroImageJ measurement table.
const (
	ColJD        = "J.D.-2400000"
	ColSource    = "Source-Sky_T1"
	ColReference = "Source-Sky_C2"
	ColSky       = "Sky/Pixel_T1"
	ColSkyPixels = "N_Sky_Pixels_T1"
	ColExpTime   = "EXPTIME"
)

// JDOffset is the constant AstroImageJ subtracts from Julian dates in
// the ColJD column.
const JDOffset = 2400000

// Row is one frame of a measurement table.
type Row struct {
	JD          float64 // Julian date - JDOffset
	Source      float64 // target aperture count, ADU
	Reference   float64 // comparison star count, ADU.  0 if absent.
	SkyPerPixel float64 // background estimate, ADU per pixel
	SkyPixels   float64 // aperture pixel count
}

// Table holds the rows of a measurement table.
//
// ExpTime is taken from the first row; all frames of a sequence share it.
type Table struct {
	Name         string
	Rows         []Row
	ExpTime      float64
	HasReference bool
}

// ReadTable reads a whitespace delimited measurement table with a header
// line.  The reference star column is optional.
//
// AstroImageJ writes an unnamed row number column first.  Data rows with
// one field more than the header are read with that column skipped.
func ReadTable(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(series.SkipBOM(r))
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	col := map[string]int{}
	line, width := 0, 0
	for sc.Scan() {
		line++
		h := strings.Fields(sc.Text())
		if len(h) == 0 {
			continue
		}
		for i, name := range h {
			col[name] = i
		}
		width = len(h)
		break
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(col) == 0 {
		return nil, errors.New("missing header")
	}
	for _, c := range []string{ColJD, ColSource, ColSky, ColSkyPixels, ColExpTime} {
		if _, ok := col[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}
	t := &Table{}
	_, t.HasReference = col[ColReference]

	for sc.Scan() {
		line++
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		shift := 0
		if len(f) == width+1 {
			shift = 1
		}
		get := func(name string) (float64, error) {
			i := col[name] + shift
			if i >= len(f) {
				return 0, &series.ParseError{Row: line, Column: name, Err: errors.New("missing field")}
			}
			return series.ParseFloat(f[i], line, name)
		}
		var r Row
		var err error
		if r.JD, err = get(ColJD); err != nil {
			return nil, err
		}
		if r.Source, err = get(ColSource); err != nil {
			return nil, err
		}
		if t.HasReference {
			if r.Reference, err = get(ColReference); err != nil {
				return nil, err
			}
		}
		if r.SkyPerPixel, err = get(ColSky); err != nil {
			return nil, err
		}
		if r.SkyPixels, err = get(ColSkyPixels); err != nil {
			return nil, err
		}
		if len(t.Rows) == 0 {
			if t.ExpTime, err = get(ColExpTime); err != nil {
				return nil, err
			}
		}
		t.Rows = append(t.Rows, r)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(t.Rows) == 0 {
		return nil, errors.New("no measurements")
	}
	return t, nil
}

// ReadTableFile opens fn and calls ReadTable.
func ReadTableFile(fn string) (*Table, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	t.Name = fn
	return t, nil
}

// Columns returns the table as parallel slices.
func (t *Table) Columns() (jd, source, reference, sky, pixels []float64) {
	n := len(t.Rows)
	jd = make([]float64, n)
	source = make([]float64, n)
	sky = make([]float64, n)
	pixels = make([]float64, n)
	if t.HasReference {
		reference = make([]float64, n)
	}
	for i, r := range t.Rows {
		jd[i] = r.JD
		source[i] = r.Source
		sky[i] = r.SkyPerPixel
		pixels[i] = r.SkyPixels
		if t.HasReference {
			reference[i] = r.Reference
		}
	}
	return
}
