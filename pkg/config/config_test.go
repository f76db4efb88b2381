package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	// Test default values
	if config.Resize.MaxDimension != 400 {
		t.Errorf("Expected default max dimension to be 400, got %d", config.Resize.MaxDimension)
	}

	if config.Resize.JPEGQuality != 100 {
		t.Errorf("Expected default jpeg quality to be 100, got %d", config.Resize.JPEGQuality)
	}

	if config.Backup.Suffix != "_original" {
		t.Errorf("Expected default backup suffix to be _original, got %s", config.Backup.Suffix)
	}

	if config.Backup.Skip {
		t.Error("Expected backup to be enabled by default")
	}

	expectedExts := []string{".png", ".jpg", ".jpeg"}
	if len(config.Resize.Extensions) != len(expectedExts) {
		t.Fatalf("Expected %d default extensions, got %d", len(expectedExts), len(config.Resize.Extensions))
	}
	for i, ext := range expectedExts {
		if config.Resize.Extensions[i] != ext {
			t.Errorf("Expected extension %s at index %d, got %s", ext, i, config.Resize.Extensions[i])
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	// Set test environment variables
	os.Setenv("DOWNSIZER_MAX_DIMENSION", "800")
	os.Setenv("DOWNSIZER_JPEG_QUALITY", "85")
	os.Setenv("DOWNSIZER_BACKUP_SUFFIX", "_backup")
	os.Setenv("DOWNSIZER_IN_PLACE", "true")
	os.Setenv("DOWNSIZER_QUIET", "true")
	os.Setenv("DOWNSIZER_LOG_LEVEL", "debug")

	defer func() {
		// Clean up environment variables
		os.Unsetenv("DOWNSIZER_MAX_DIMENSION")
		os.Unsetenv("DOWNSIZER_JPEG_QUALITY")
		os.Unsetenv("DOWNSIZER_BACKUP_SUFFIX")
		os.Unsetenv("DOWNSIZER_IN_PLACE")
		os.Unsetenv("DOWNSIZER_QUIET")
		os.Unsetenv("DOWNSIZER_LOG_LEVEL")
	}()

	config := DefaultConfig()
	err := config.LoadFromEnv()
	if err != nil {
		t.Fatalf("Failed to load from environment: %v", err)
	}

	// Test loaded values
	if config.Resize.MaxDimension != 800 {
		t.Errorf("Expected max dimension to be 800, got %d", config.Resize.MaxDimension)
	}

	if config.Resize.JPEGQuality != 85 {
		t.Errorf("Expected jpeg quality to be 85, got %d", config.Resize.JPEGQuality)
	}

	if config.Backup.Suffix != "_backup" {
		t.Errorf("Expected backup suffix to be _backup, got %s", config.Backup.Suffix)
	}

	if !config.Backup.Skip {
		t.Error("Expected in-place mode to be enabled")
	}

	if !config.Output.Quiet {
		t.Error("Expected quiet mode to be enabled")
	}

	if config.Logging.Level != "debug" {
		t.Errorf("Expected log level to be debug, got %s", config.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configYAML := `resize:
  max_dimension: 1024
  jpeg_quality: 90
  extensions:
    - .jpg
backup:
  suffix: _keep
logging:
  level: warn
`

	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config := DefaultConfig()
	if err := config.LoadFromFile(configPath); err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}

	if config.Resize.MaxDimension != 1024 {
		t.Errorf("Expected max dimension to be 1024, got %d", config.Resize.MaxDimension)
	}

	if config.Resize.JPEGQuality != 90 {
		t.Errorf("Expected jpeg quality to be 90, got %d", config.Resize.JPEGQuality)
	}

	if len(config.Resize.Extensions) != 1 || config.Resize.Extensions[0] != ".jpg" {
		t.Errorf("Expected extensions to be [.jpg], got %v", config.Resize.Extensions)
	}

	if config.Backup.Suffix != "_keep" {
		t.Errorf("Expected backup suffix to be _keep, got %s", config.Backup.Suffix)
	}

	if config.Logging.Level != "warn" {
		t.Errorf("Expected log level to be warn, got %s", config.Logging.Level)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	config := DefaultConfig()
	err := config.LoadFromFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Expected error for explicitly named missing config file")
	}
}

func TestMergeCommandLineFlags(t *testing.T) {
	config := DefaultConfig()

	flags := map[string]interface{}{
		"max-dim":   250,
		"in-place":  true,
		"quiet":     true,
		"log-level": "info",
	}

	config.MergeCommandLineFlags(flags)

	if config.Resize.MaxDimension != 250 {
		t.Errorf("Expected max dimension to be 250, got %d", config.Resize.MaxDimension)
	}

	if !config.Backup.Skip {
		t.Error("Expected in-place flag to skip backup")
	}

	if !config.Output.Quiet {
		t.Error("Expected quiet flag to be applied")
	}

	if config.Logging.Level != "info" {
		t.Errorf("Expected log level to be info, got %s", config.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero max dimension", func(c *Config) { c.Resize.MaxDimension = 0 }, true},
		{"negative max dimension", func(c *Config) { c.Resize.MaxDimension = -10 }, true},
		{"quality too low", func(c *Config) { c.Resize.JPEGQuality = 0 }, true},
		{"quality too high", func(c *Config) { c.Resize.JPEGQuality = 101 }, true},
		{"no extensions", func(c *Config) { c.Resize.Extensions = nil }, true},
		{"extension without dot", func(c *Config) { c.Resize.Extensions = []string{"jpg"} }, true},
		{"empty suffix with backup", func(c *Config) { c.Backup.Suffix = "" }, true},
		{"empty suffix in place", func(c *Config) { c.Backup.Suffix = ""; c.Backup.Skip = true }, false},
		{"invalid log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			err := config.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no validation error, got %v", err)
			}
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nested", "config.yaml")

	config := DefaultConfig()
	config.Resize.MaxDimension = 640
	config.Backup.Suffix = "_pristine"

	if err := config.Save(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	reloaded := DefaultConfig()
	if err := reloaded.LoadFromFile(configPath); err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}

	if reloaded.Resize.MaxDimension != 640 {
		t.Errorf("Expected reloaded max dimension to be 640, got %d", reloaded.Resize.MaxDimension)
	}

	if reloaded.Backup.Suffix != "_pristine" {
		t.Errorf("Expected reloaded backup suffix to be _pristine, got %s", reloaded.Backup.Suffix)
	}
}

func TestLoadPrecedence(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configYAML := `resize:
  max_dimension: 1024
`
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	os.Setenv("DOWNSIZER_MAX_DIMENSION", "512")
	defer os.Unsetenv("DOWNSIZER_MAX_DIMENSION")

	// Flags beat environment, environment beats file
	config, err := Load(configPath, map[string]interface{}{"max-dim": 256})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Resize.MaxDimension != 256 {
		t.Errorf("Expected flag value 256 to win, got %d", config.Resize.MaxDimension)
	}

	// Without flags the environment wins
	config, err = Load(configPath, nil)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Resize.MaxDimension != 512 {
		t.Errorf("Expected env value 512 to win, got %d", config.Resize.MaxDimension)
	}
}
