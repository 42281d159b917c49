package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
)

func TestWriteFileAtomicOverwrites(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.csv")

	if err := os.WriteFile(dst, []byte("old contents that are longer"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(dst, []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Fatalf("content mismatch: got %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the destination file, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "missing", "out.csv")
	err := WriteFileAtomic(dst, []byte("x"), 0o644)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestCheckWritableDirRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CheckWritableDir(file); err == nil {
		t.Fatal("expected error for non-directory")
	}
	if err := CheckWritableDir(filepath.Dir(file)); err != nil {
		t.Fatalf("temp dir should be writable: %v", err)
	}
}

func TestWriteFileLocked(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "out.csv")

	if err := WriteFileLocked(dst, []byte("a,b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dst + LockSuffix); !os.IsNotExist(err) {
		t.Fatalf("lock file should be removed after write, stat err=%v", err)
	}

	held := flock.New(dst + LockSuffix)
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("could not take lock for test: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	if err := WriteFileLocked(dst, []byte("c,d\n"), 0o644); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "a,b\n" {
		t.Fatalf("locked write must not modify destination, got %q", got)
	}
}
