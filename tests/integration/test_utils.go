package integration

import (
	"os"
	"path/filepath"
	"testing"

	"downsizer/internal/testutil"
	"downsizer/pkg/config"
)

// TestHelper provides common test utilities
type TestHelper struct {
	t       *testing.T
	tempDir string
}

// NewTestHelper creates a new test helper rooted in a fresh temp directory
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{
		t:       t,
		tempDir: t.TempDir(),
	}
}

// GetTempDir returns the temporary directory for test files
func (h *TestHelper) GetTempDir() string {
	return h.tempDir
}

// CreateTempSubDir creates a subdirectory in the temp directory
func (h *TestHelper) CreateTempSubDir(name string) string {
	dir := filepath.Join(h.tempDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		h.t.Fatalf("Failed to create temp subdir: %v", err)
	}
	return dir
}

// CreateTestConfig creates a quiet configuration for tests
func (h *TestHelper) CreateTestConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Output.Quiet = true
	return cfg
}

// WriteImage writes a JPEG with EXIF at the given path under the temp dir
func (h *TestHelper) WriteImage(relPath string, width, height int) string {
	path := filepath.Join(h.tempDir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		h.t.Fatalf("Failed to create image dir: %v", err)
	}
	return testutil.WriteJPEG(h.t, path, width, height, true)
}

// ReadBytes reads a file, failing the test on error
func (h *TestHelper) ReadBytes(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		h.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return data
}
