// Public domain.

package catalog_test

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/soniakeys/varphot/internal/catalog"
)

var defaultConstraints = catalog.Constraints{
	MinDecDeg:     -40,
	MinRAHour:     0,
	MaxRAHour:     24,
	MinPeriod:     0,
	MaxPeriod:     5,
	MinBrightness: 8,
}

func readTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.ReadFile(filepath.Join("testdata", "catalog.csv"))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func names(entries []catalog.Entry) []string {
	n := make([]string, len(entries))
	for i := range entries {
		n[i] = entries[i].Fields[0]
	}
	return n
}

func TestRead(t *testing.T) {
	c := readTestCatalog(t)
	if c.Header[0] != "Name" {
		t.Fatalf("byte order mark not stripped: %q", c.Header[0])
	}
	if len(c.Entries) != 8 {
		t.Fatalf("%d entries", len(c.Entries))
	}
	e := c.Entries[2] // V0003 Sco
	if e.DecDeg != -41 || e.RAh != 16 || e.RAm != 30 || e.Period != 1.2 {
		t.Fatalf("V0003 parsed as %+v", e)
	}
	if d := e.Pos.Dec.Deg(); math.Abs(d+41) > 1e-9 {
		t.Fatalf("V0003 Dec = %g deg", d)
	}
	if h := e.Pos.RA.Hour(); math.Abs(h-16.5) > 1e-9 {
		t.Fatalf("V0003 RA = %g h", h)
	}
	if p := c.Entries[0].PackedRA(); p != 512.5 {
		t.Fatalf("packed RA = %g", p)
	}
	if !math.IsNaN(c.Entries[6].MinII) {
		t.Fatalf("blank MinII = %g, want NaN", c.Entries[6].MinII)
	}
}

var parseErrorTestCases = []struct {
	row    string
	column string
}{
	{"X,1,2,3,+,ab,0,0,1,5,5", catalog.ColDecDeg},
	{"X,1,2,3,*,10,0,0,1,5,5", catalog.ColDecSign},
	{"X,h,2,3,+,10,0,0,1,5,5", catalog.ColRAHour},
	{"X,1,2,3,+,10,0,0,?,5,5", catalog.ColPeriod},
	{"X,1,2,3,+,10,0,0,1,bright,5", catalog.ColMinI},
	{"X,1,2,3,+,95,0,0,1,5,5", catalog.ColDecDeg},
}

func TestParseError(t *testing.T) {
	const header = "Name,RAh,RAm,RAs,DE-,DEd,DEm,DEs,Period [d],MinI,MinII\n"
	for _, tc := range parseErrorTestCases {
		_, err := catalog.Read(strings.NewReader(header + tc.row + "\n"))
		var pe *catalog.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: got %v, want ParseError", tc.row, err)
			continue
		}
		if pe.Column != tc.column || pe.Row != 0 {
			t.Errorf("%s: got column %q row %d, want %q", tc.row, pe.Column, pe.Row, tc.column)
		}
	}
}

func TestMissingColumn(t *testing.T) {
	_, err := catalog.Read(strings.NewReader("Name,RAh,RAm\nX,1,2\n"))
	if err == nil || !strings.Contains(err.Error(), "missing column") {
		t.Fatalf("got %v", err)
	}
}

func TestSelect(t *testing.T) {
	c := readTestCatalog(t)
	kept, rejected := catalog.Select(c.Entries, 40, &defaultConstraints)
	want := []string{"V0001 And", "V0004 Sgr", "V0007 Her", "V0008 Per"}
	if d := cmp.Diff(want, names(kept)); d != "" {
		t.Errorf("kept (-want +got):\n%s", d)
	}
	type rj struct {
		Name   string
		Reason catalog.Reason
	}
	var got []rj
	for _, r := range rejected {
		got = append(got, rj{r.Entry.Fields[0], r.Reason})
	}
	wantR := []rj{
		{"V0002 Cas", catalog.ReasonInvalidPeriod},
		{"V0003 Sco", catalog.ReasonVisibility},
		{"V0005 Lyr", catalog.ReasonPeriod},
		{"V0006 Cyg", catalog.ReasonBrightness},
	}
	if d := cmp.Diff(wantR, got); d != "" {
		t.Errorf("rejected (-want +got):\n%s", d)
	}
}

// Properties that must hold for every selected entry, for a range of
// constraint settings.
func TestSelectProperties(t *testing.T) {
	c := readTestCatalog(t)
	for _, cs := range []catalog.Constraints{
		defaultConstraints,
		{MinDecDeg: -30, MinRAHour: 0, MaxRAHour: 17, MinPeriod: 1, MaxPeriod: 3, MinBrightness: 7.9},
		{MinDecDeg: 40, MinRAHour: 3, MaxRAHour: 3, MinPeriod: 0, MaxPeriod: 100, MinBrightness: 99},
	} {
		kept, rejected := catalog.Select(c.Entries, 40, &cs)
		if len(kept)+len(rejected) != len(c.Entries) {
			t.Fatalf("%+v: %d kept + %d rejected != %d", cs, len(kept), len(rejected), len(c.Entries))
		}
		for _, e := range kept {
			switch {
			case e.Period == 0:
				t.Errorf("%s kept with zero period", e.Fields[0])
			case e.DecDeg <= -40:
				t.Errorf("%s kept, never visible", e.Fields[0])
			case float64(e.DecDeg) < cs.MinDecDeg:
				t.Errorf("%s kept, declination", e.Fields[0])
			case float64(e.RAh) < cs.MinRAHour || float64(e.RAh) > cs.MaxRAHour:
				t.Errorf("%s kept, right ascension", e.Fields[0])
			case e.Period < cs.MinPeriod || e.Period > cs.MaxPeriod:
				t.Errorf("%s kept, period", e.Fields[0])
			case e.MinI > cs.MinBrightness || e.MinII > cs.MinBrightness:
				t.Errorf("%s kept, brightness", e.Fields[0])
			}
		}
	}
}

var checkTestCases = []struct {
	name   string
	cs     catalog.Constraints
	reason catalog.Reason
}{
	{"V0004 Sgr", catalog.Constraints{MinDecDeg: -30, MaxRAHour: 24, MaxPeriod: 5, MinBrightness: 8}, catalog.ReasonDeclination},
	{"V0004 Sgr", catalog.Constraints{MinDecDeg: -40, MaxRAHour: 17, MaxPeriod: 5, MinBrightness: 8}, catalog.ReasonRightAscension},
	{"V0004 Sgr", catalog.Constraints{MinDecDeg: -40, MaxRAHour: 18, MaxPeriod: 2.5, MinBrightness: 6.3}, ""},
	{"V0004 Sgr", catalog.Constraints{MinDecDeg: -40, MaxRAHour: 18, MinPeriod: 2.6, MaxPeriod: 5, MinBrightness: 8}, catalog.ReasonPeriod},
	{"V0004 Sgr", catalog.Constraints{MinDecDeg: -40, MaxRAHour: 18, MaxPeriod: 5, MinBrightness: 6.2}, catalog.ReasonBrightness},
	{"V0007 Her", catalog.Constraints{MinDecDeg: -40, MaxRAHour: 24, MaxPeriod: 5, MinBrightness: 7.9}, ""},
}

func TestCheck(t *testing.T) {
	c := readTestCatalog(t)
	byName := map[string]*catalog.Entry{}
	for i := range c.Entries {
		byName[c.Entries[i].Fields[0]] = &c.Entries[i]
	}
	for _, tc := range checkTestCases {
		reason, ok := tc.cs.Check(byName[tc.name])
		if reason != tc.reason || ok != (tc.reason == "") {
			t.Errorf("%s %+v: got %q %t, want %q", tc.name, tc.cs, reason, ok, tc.reason)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	c := readTestCatalog(t)
	kept, _ := catalog.Select(c.Entries, 40, &defaultConstraints)
	var b bytes.Buffer
	if err := catalog.Write(&b, c.Header, kept); err != nil {
		t.Fatal(err)
	}
	c2, err := catalog.Read(&b)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(c.Header, c2.Header); d != "" {
		t.Errorf("header (-want +got):\n%s", d)
	}
	if len(c2.Entries) != len(kept) {
		t.Fatalf("%d entries reread, want %d", len(c2.Entries), len(kept))
	}
	for i := range kept {
		if d := cmp.Diff(kept[i].Fields, c2.Entries[i].Fields); d != "" {
			t.Errorf("entry %d (-want +got):\n%s", i, d)
		}
	}
	// precision survives: fields are written as read.
	if c2.Entries[0].Period != 0.8123456789 {
		t.Errorf("period reread as %v", c2.Entries[0].Period)
	}
}

func TestWriteFile(t *testing.T) {
	c := readTestCatalog(t)
	fn := filepath.Join(t.TempDir(), "candidates.csv")
	if err := catalog.WriteFile(fn, c.Header, c.Entries); err != nil {
		t.Fatal(err)
	}
	c2, err := catalog.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(names(c.Entries), names(c2.Entries)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
