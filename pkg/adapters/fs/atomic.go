package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tempSuffix separates a side-file's name from the random part of its
// in-flight copy: ".<base>.idr.json.tmp-123456".
const tempSuffix = ".tmp-"

// tempPrefix is the name every in-flight copy of target starts with. Naming
// copies after their target lets a crashed save's leftovers be found again.
func tempPrefix(target string) string {
	return "." + filepath.Base(target) + tempSuffix
}

// isTempFor reports whether path is an in-flight copy of target.
func isTempFor(path, target string) bool {
	return filepath.Dir(path) == filepath.Dir(target) &&
		strings.HasPrefix(filepath.Base(path), tempPrefix(target))
}

// writeFileAtomic replaces target with data. The bytes go to a synced copy in
// the same directory first, then a rename swaps it in, so a reader sees
// either the previous side-file or the new one and never a partial array.
func writeFileAtomic(target string, data []byte, perm os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(target), tempPrefix(target)+"*")
	if err != nil {
		return fmt.Errorf("create temp side-file: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write temp side-file: %w", err)
	}

	if err := os.Chmod(tmp, perm); err != nil {
		return fmt.Errorf("chmod temp side-file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(target), err)
	}
	return nil
}

// removeStaleTemps deletes copies of target left behind by an interrupted
// write. It returns how many were removed.
func removeStaleTemps(target string) (int, error) {
	entries, err := os.ReadDir(filepath.Dir(target))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}

	prefix := tempPrefix(target)
	var n int
	var errs []error
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		if err := os.Remove(filepath.Join(filepath.Dir(target), e.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}
