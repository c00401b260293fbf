// Public domain.

package datconv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/soniakeys/varphot/internal/datconv"
	"github.com/soniakeys/varphot/internal/series"
)

func TestConvertDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.dat":   "#JD relmag\n2460180.31 1.25\n2460180.32  1.5\n\n",
		"a.dat":   "JD mag\n2460181.5 2\n",
		"c.txt":   "not converted\n",
		"sub.dat": "", // directory, below
	}
	for fn, s := range files {
		if fn == "sub.dat" {
			if err := os.Mkdir(filepath.Join(dir, fn), 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, fn), []byte(s), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	written, err := datconv.ConvertDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.dat.csv"),
		filepath.Join(dir, "b.dat.csv"),
	}
	if d := cmp.Diff(want, written); d != "" {
		t.Fatalf("written (-want +got):\n%s", d)
	}
	b, err := os.ReadFile(want[1])
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); got != "2460180.31,1.25\n2460180.32,1.5\n" {
		t.Fatalf("b.dat.csv = %q", got)
	}
	// converted output is readable as a relative magnitude series
	s, err := series.ReadRelMagFile(want[1], 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 || s.Values[1] != 1.5 {
		t.Fatalf("series %+v", s)
	}
}

func TestListDatMissingDir(t *testing.T) {
	if _, err := datconv.ListDat(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("missing directory accepted")
	}
}
