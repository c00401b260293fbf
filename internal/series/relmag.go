// Public domain.

package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseError reports a malformed numeric field in a light curve file.
type ParseError struct {
	Row    int // 1-based line number
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %s: invalid number %q", e.Row, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseFloat parses s as a float64, returning a *ParseError on failure.
func ParseFloat(s string, row int, column string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Row: row, Column: column, Value: s, Err: err}
	}
	return v, nil
}

// SkipBOM returns a reader that drops a leading byte order mark.  Files
// saved from spreadsheet programs on Windows commonly start with one.
func SkipBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// ReadRelMag reads a two column comma separated light curve of Julian
// date and relative magnitude, as written by Siril.  There is no header.
//
// If prefix is 0, the integer part of the first Julian date is used as
// the prefix.  Otherwise the given prefix is subtracted from each date.
func ReadRelMag(r io.Reader, prefix float64) (*Series, error) {
	cr := csv.NewReader(SkipBOM(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	s := &Series{Prefix: prefix}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row, _ := cr.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: want 2 fields, found %d", row, len(rec))
		}
		jd, err := ParseFloat(rec[0], row, "jd")
		if err != nil {
			return nil, err
		}
		rm, err := ParseFloat(rec[1], row, "relmag")
		if err != nil {
			return nil, err
		}
		if len(s.JD) == 0 && prefix == 0 {
			s.Prefix = math.Trunc(jd)
		}
		s.JD = append(s.JD, jd-s.Prefix)
		s.Values = append(s.Values, rm)
	}
	if len(s.Values) == 0 {
		return nil, errors.New("no observations")
	}
	return s, nil
}

// ReadRelMagFile opens fn and calls ReadRelMag.  The series is named
// after the file.
func ReadRelMagFile(fn string, prefix float64) (*Series, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadRelMag(f, prefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	s.Name = fn
	return s, nil
}
