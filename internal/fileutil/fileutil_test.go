// Public domain.

package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/soniakeys/varphot/internal/fileutil"
)

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "lc.tbl")
	if err := os.WriteFile(fn, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fileutil.Check(fn); err != nil {
		t.Fatal(err)
	}
	for _, bad := range []string{filepath.Join(dir, "missing.tbl"), dir} {
		if err := fileutil.Check(bad); !errors.Is(err, fileutil.ErrFileNotFound) {
			t.Fatalf("Check(%s) = %v, want ErrFileNotFound", bad, err)
		}
	}
}
