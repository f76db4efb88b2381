package backup

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"downsizer/internal/testutil"
	derrors "downsizer/pkg/errors"
)

func TestDestination(t *testing.T) {
	c := New("_original")

	got := c.Destination(filepath.Join("some", "parent", "photos"))
	want := filepath.Join("some", "parent", "photos_original")
	if got != want {
		t.Errorf("Expected destination %s, got %s", want, got)
	}
}

func TestBackup(t *testing.T) {
	parent := t.TempDir()
	src := filepath.Join(parent, "photos")

	testutil.WriteJPEG(t, filepath.Join(src, "a.jpg"), 10, 10, true)
	testutil.WriteJPEG(t, filepath.Join(src, "sub", "b.jpg"), 10, 10, true)
	testutil.WriteFile(t, filepath.Join(src, "sub", "notes.txt"), []byte("keep me too"))

	c := New("_original")
	dst, err := c.Backup(src)
	if err != nil {
		t.Fatalf("Backup failed: %v", err)
	}

	if dst != filepath.Join(parent, "photos_original") {
		t.Errorf("Unexpected backup destination %s", dst)
	}

	// Every file must exist in the backup with identical bytes
	for _, rel := range []string{"a.jpg", filepath.Join("sub", "b.jpg"), filepath.Join("sub", "notes.txt")} {
		original, err := os.ReadFile(filepath.Join(src, rel))
		if err != nil {
			t.Fatalf("Failed to read source %s: %v", rel, err)
		}
		copied, err := os.ReadFile(filepath.Join(dst, rel))
		if err != nil {
			t.Fatalf("Failed to read backup %s: %v", rel, err)
		}
		if !bytes.Equal(original, copied) {
			t.Errorf("Backup of %s is not byte-identical", rel)
		}
	}
}

func TestBackupRefusesExistingDestination(t *testing.T) {
	parent := t.TempDir()
	src := filepath.Join(parent, "photos")
	testutil.WriteJPEG(t, filepath.Join(src, "a.jpg"), 10, 10, false)

	// Pre-create the destination
	if err := os.MkdirAll(filepath.Join(parent, "photos_original"), 0755); err != nil {
		t.Fatalf("Failed to pre-create destination: %v", err)
	}

	_, err := New("_original").Backup(src)
	if err == nil {
		t.Fatal("Expected error when destination exists")
	}
	if !derrors.IsBackupExists(err) {
		t.Errorf("Expected backup_exists error, got %v", err)
	}
}

func TestBackupPreservesFileMode(t *testing.T) {
	parent := t.TempDir()
	src := filepath.Join(parent, "photos")
	path := testutil.WriteFile(t, filepath.Join(src, "script.jpg"), []byte("data"))
	if err := os.Chmod(path, 0700); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	dst, err := New("_original").Backup(src)
	if err != nil {
		t.Fatalf("Backup failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dst, "script.jpg"))
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0700 {
		t.Errorf("Expected mode 0700 preserved, got %v", info.Mode().Perm())
	}
}

func TestBackupLeavesSourceUntouched(t *testing.T) {
	parent := t.TempDir()
	src := filepath.Join(parent, "photos")
	path := testutil.WriteJPEG(t, filepath.Join(src, "a.jpg"), 10, 10, true)

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read source: %v", err)
	}

	if _, err := New("_original").Backup(src); err != nil {
		t.Fatalf("Backup failed: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to re-read source: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("Backup modified the source file")
	}
}
