// Package artifact owns the lifetime of the errors.bin output stream: one
// directory per characterizer under the output root, a lock beside the
// artifact so concurrent runs over the same directory serialize, and a
// guaranteed flush, close, and unlock on every exit path.
package artifact

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/juju/fslock"
)

// FileName is the artifact name inside the characterizer directory.
const FileName = "errors.bin"

const lockName = ".errors.lock"

// Writer writes one errors.bin under <root>/<name>/.
type Writer struct {
	path string
	lock *fslock.Lock
	f    *os.File
	w    *bufio.Writer
}

// NewWriter creates the characterizer directory, takes its lock and opens
// the artifact for writing. Callers must Close the writer on all paths.
func NewWriter(root, name string) (*Writer, error) {
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact directory: %w", err)
	}
	lock := fslock.New(filepath.Join(dir, lockName))
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("lock artifact directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		lock.Unlock()
		return nil, fmt.Errorf("create artifact %s: %w", path, err)
	}
	return &Writer{path: path, lock: lock, f: f, w: bufio.NewWriter(f)}, nil
}

// Path returns the artifact location.
func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) Write(data []byte) error {
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("write artifact %s: %w", w.path, err)
	}
	return nil
}

// Close flushes and closes the artifact and releases the directory lock.
// It is safe to call after a failed write; all release errors are joined.
func (w *Writer) Close() error {
	var errs []error
	if err := w.w.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flush artifact %s: %w", w.path, err))
	}
	if err := w.f.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close artifact %s: %w", w.path, err))
	}
	if err := w.lock.Unlock(); err != nil {
		errs = append(errs, fmt.Errorf("unlock artifact directory: %w", err))
	}
	return errors.Join(errs...)
}

// Read loads a previously written artifact.
func Read(root, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(root, name, FileName))
}
