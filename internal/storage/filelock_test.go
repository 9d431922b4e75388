package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestFileLock_Exclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json")

	first := NewFileLock(path)
	if err := first.Lock(time.Second); err != nil {
		t.Fatalf("first Lock() error = %v", err)
	}

	second := NewFileLock(path)
	err := second.Lock(50 * time.Millisecond)
	if !errors.Is(err, ErrLockTimeout) {
		t.Fatalf("second Lock() error = %v, want %v", err, ErrLockTimeout)
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if err := second.Lock(time.Second); err != nil {
		t.Fatalf("Lock() after Unlock error = %v", err)
	}
	second.Unlock()
}

func TestFileLock_UnlockWithoutLock(t *testing.T) {
	if err := NewFileLock(filepath.Join(t.TempDir(), "x")).Unlock(); err != nil {
		t.Errorf("Unlock() error = %v, want nil", err)
	}
}
