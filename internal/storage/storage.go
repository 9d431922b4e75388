// Package storage persists scan results as a JSON document and a plain-text
// links file.
package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors for common storage conditions.
var (
	// ErrInvalidInput indicates an empty or unusable path was provided.
	ErrInvalidInput = errors.New("storage: invalid input")
	// ErrLockTimeout indicates a timeout acquiring a file lock.
	ErrLockTimeout = errors.New("storage: lock acquisition timeout")
)

// StorageError wraps storage errors with operation and file context.
// Use errors.As() to extract this error type and get operation details:
//
//	var storErr *storage.StorageError
//	if errors.As(err, &storErr) {
//		fmt.Printf("Failed to %s %s %s: %v\n", storErr.Op, storErr.Entity, storErr.ID, storErr.Err)
//	}
type StorageError struct {
	// Op is the operation that failed ("lock", "encode", "write").
	Op string
	// Entity is the kind of file ("result", "links", "file").
	Entity string
	// ID is the file path if applicable.
	ID string
	// Err is the underlying error that occurred.
	Err error
}

// Error returns a string representation of the storage error.
func (e *StorageError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("storage: %s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Entity, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *StorageError) Unwrap() error { return e.Err }
