// Public domain.

// Package datconv converts the space delimited light curve files written
// by Siril to the comma separated form read by the relmag command.
package datconv

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the extension of files converted by ConvertDir.
const Ext = ".dat"

// ListDat returns the paths of the .dat files in dir, sorted by name.
func ListDat(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var fns []string
	for _, de := range des {
		if !de.IsDir() && strings.HasSuffix(de.Name(), Ext) {
			fns = append(fns, filepath.Join(dir, de.Name()))
		}
	}
	sort.Strings(fns)
	return fns, nil
}

// ConvertDat reads the space delimited file fn, drops its header line,
// and writes the remaining lines comma delimited to fn + ".csv".
// Runs of spaces count as a single delimiter.  The output file name is
// returned.
func ConvertDat(fn string) (string, error) {
	in, err := os.Open(fn)
	if err != nil {
		return "", err
	}
	defer in.Close()
	out := fn + ".csv"
	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	w := csv.NewWriter(f)
	sc := bufio.NewScanner(in)
	for header := true; sc.Scan(); header = false {
		if header {
			continue
		}
		fs := strings.Fields(sc.Text())
		if len(fs) == 0 {
			continue
		}
		if err = w.Write(fs); err != nil {
			break
		}
	}
	if err == nil {
		err = sc.Err()
	}
	w.Flush()
	if err == nil {
		err = w.Error()
	}
	if cErr := f.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", fn, err)
	}
	return out, nil
}

// ConvertDir converts every .dat file in dir, returning the names of the
// files written.
func ConvertDir(dir string) ([]string, error) {
	fns, err := ListDat(dir)
	if err != nil {
		return nil, err
	}
	written := make([]string, 0, len(fns))
	for _, fn := range fns {
		out, err := ConvertDat(fn)
		if err != nil {
			return written, err
		}
		written = append(written, out)
	}
	return written, nil
}
