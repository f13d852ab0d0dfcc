package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another process holds the write lock for a path.
var ErrLocked = errors.New("file is locked by another writer")

// LockPath returns the hidden sidecar lock file used for path. The sidecar
// is left in place after a write; unlinking a flock file while it can still
// be locked lets two writers hold locks on different inodes.
func LockPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".lock")
}

// WriteFileLocked atomically replaces path with data.
func WriteFileLocked(path string, data []byte, mode os.FileMode) error {
	return WriteLocked(path, mode, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// WriteLocked streams write into a temporary file next to path and renames
// it into place while holding an advisory lock on a sidecar file (LockPath). It fails
// with ErrLocked instead of waiting when another writer holds the lock.
// Readers never observe a partially written file.
func WriteLocked(path string, mode os.FileMode, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(LockPath(path))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		committed = true
		return fmt.Errorf("rename into place: %w", err)
	}
	committed = true
	return nil
}
