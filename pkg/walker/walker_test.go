package walker

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"downsizer/internal/testutil"
	derrors "downsizer/pkg/errors"
)

func defaultWalker() *Walker {
	return New([]string{".png", ".jpg", ".jpeg"})
}

func TestWalk(t *testing.T) {
	dir := t.TempDir()

	testutil.WriteJPEG(t, filepath.Join(dir, "top.jpg"), 10, 10, false)
	testutil.WriteJPEG(t, filepath.Join(dir, "nested", "deep", "photo.jpeg"), 10, 10, false)
	testutil.WritePNG(t, filepath.Join(dir, "nested", "shot.png"), 10, 10)
	testutil.WriteFile(t, filepath.Join(dir, "notes.txt"), []byte("not an image"))
	testutil.WriteFile(t, filepath.Join(dir, "anim.gif"), []byte("GIF89a"))

	files, err := defaultWalker().Walk(dir)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	var rels []string
	for _, f := range files {
		rels = append(rels, f.RelPath)
	}
	sort.Strings(rels)

	expected := []string{"nested/deep/photo.jpeg", "nested/shot.png", "top.jpg"}
	if len(rels) != len(expected) {
		t.Fatalf("Expected %d files, got %d: %v", len(expected), len(rels), rels)
	}
	for i, want := range expected {
		if rels[i] != want {
			t.Errorf("Expected file %s at index %d, got %s", want, i, rels[i])
		}
	}
}

func TestWalkCaseSensitiveExtensions(t *testing.T) {
	dir := t.TempDir()

	testutil.WriteJPEG(t, filepath.Join(dir, "lower.jpg"), 10, 10, false)
	testutil.WriteJPEG(t, filepath.Join(dir, "upper.JPG"), 10, 10, false)

	files, err := defaultWalker().Walk(dir)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("Expected only the lowercase extension to match, got %d files", len(files))
	}
	if filepath.Base(files[0].Path) != "lower.jpg" {
		t.Errorf("Expected lower.jpg, got %s", files[0].Path)
	}
}

func TestWalkEmptyDirectory(t *testing.T) {
	files, err := defaultWalker().Walk(t.TempDir())
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected no files in empty directory, got %d", len(files))
	}
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := defaultWalker().Walk(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Expected error for missing root")
	}
	if !derrors.IsType(err, derrors.ErrorTypeWalk) {
		t.Errorf("Expected walk error, got %v", err)
	}
}

func TestWalkReportsSize(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteJPEG(t, filepath.Join(dir, "sized.jpg"), 20, 20, false)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}

	files, err := defaultWalker().Walk(dir)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("Expected one file, got %d", len(files))
	}
	if files[0].Size != info.Size() {
		t.Errorf("Expected size %d, got %d", info.Size(), files[0].Size)
	}
}
