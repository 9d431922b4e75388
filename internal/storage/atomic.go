package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const lockTimeout = 5 * time.Second

// AtomicWriter provides atomic file write operations using temp file + rename.
// The target file is never left partially written.
type AtomicWriter struct {
	path    string
	tmpPath string
	file    *os.File
}

// NewAtomicWriter creates a writer for atomic file updates.
// The writer creates a temporary file in the same directory as the target,
// and on Commit(), atomically renames it to replace the target.
func NewAtomicWriter(path string) (*AtomicWriter, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".ytscan-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &AtomicWriter{
		path:    path,
		tmpPath: tmpFile.Name(),
		file:    tmpFile,
	}, nil
}

// Write writes data to the temporary file.
func (w *AtomicWriter) Write(p []byte) (n int, err error) {
	return w.file.Write(p)
}

// Commit syncs the temporary file and renames it over the target.
func (w *AtomicWriter) Commit() error {
	if err := w.file.Sync(); err != nil {
		w.Abort()
		return fmt.Errorf("sync: %w", err)
	}
	if err := w.file.Close(); err != nil {
		os.Remove(w.tmpPath)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Chmod(w.tmpPath, 0644); err != nil {
		os.Remove(w.tmpPath)
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		os.Remove(w.tmpPath)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Abort discards the temporary file without committing.
func (w *AtomicWriter) Abort() error {
	w.file.Close()
	return os.Remove(w.tmpPath)
}

// writeLocked replaces path with whatever fill writes, holding path's lock
// for the duration. entity names the file kind in errors.
func writeLocked(path, entity string, fill func(io.Writer) error) error {
	if path == "" {
		return &StorageError{Op: "write", Entity: entity, Err: ErrInvalidInput}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &StorageError{Op: "write", Entity: entity, ID: path, Err: err}
	}

	lock := NewFileLock(path)
	if err := lock.Lock(lockTimeout); err != nil {
		return &StorageError{Op: "lock", Entity: entity, ID: path, Err: err}
	}
	defer lock.Unlock()

	writer, err := NewAtomicWriter(path)
	if err != nil {
		return &StorageError{Op: "write", Entity: entity, ID: path, Err: err}
	}
	if err := fill(writer); err != nil {
		writer.Abort()
		return &StorageError{Op: "encode", Entity: entity, ID: path, Err: err}
	}
	if err := writer.Commit(); err != nil {
		return &StorageError{Op: "write", Entity: entity, ID: path, Err: err}
	}
	return nil
}
