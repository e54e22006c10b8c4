// Package fileio handles the local filesystem side of object transfers:
// reading a source file into memory for upload and persisting downloaded
// bytes with directory auto-creation and timestamp preservation.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/fs"
)

// Read loads the whole file into memory, the form a single-request upload
// needs for checksum computation.
func Read(fsys fs.Filesystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return data, nil
}

// Save writes data to path, creating missing parent directories first, and
// then sets both access and modification times to modTime truncated to whole
// seconds. The write completes before any time adjustment. A zero modTime
// leaves the file times untouched.
//
// Concurrent workers may race to create the same parent directory; MkdirAll
// treats an existing directory as success, so the race is harmless.
func Save(path string, data []byte, modTime time.Time) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	if modTime.IsZero() {
		return nil
	}
	ts := modTime.Truncate(time.Second)
	if err := os.Chtimes(path, ts, ts); err != nil {
		return fmt.Errorf("set times on %q: %w", path, err)
	}
	return nil
}
