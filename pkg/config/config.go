package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the downsizer
type Config struct {
	// Resize settings
	Resize ResizeConfig `yaml:"resize" json:"resize"`

	// Backup settings
	Backup BackupConfig `yaml:"backup" json:"backup"`

	// Terminal output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ResizeConfig holds the resize operation configuration
type ResizeConfig struct {
	MaxDimension int      `yaml:"max_dimension" json:"max_dimension"`
	JPEGQuality  int      `yaml:"jpeg_quality" json:"jpeg_quality"`
	Extensions   []string `yaml:"extensions" json:"extensions"`
}

// BackupConfig holds the backup copy configuration
type BackupConfig struct {
	// Suffix is appended to the source directory name to form the
	// sibling backup directory name
	Suffix string `yaml:"suffix" json:"suffix"`

	// Skip disables the backup copy entirely (in-place mode)
	Skip bool `yaml:"skip" json:"skip"`
}

// OutputConfig holds terminal output preferences
type OutputConfig struct {
	Quiet   bool `yaml:"quiet" json:"quiet"`
	NoColor bool `yaml:"no_color" json:"no_color"`
	TUI     bool `yaml:"tui" json:"tui"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level" json:"level"`
	File       string `yaml:"file" json:"file"`
	MaxSize    int    `yaml:"max_size" json:"max_size"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAge     int    `yaml:"max_age" json:"max_age"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Resize: ResizeConfig{
			MaxDimension: 400,
			JPEGQuality:  100,
			Extensions:   []string{".png", ".jpg", ".jpeg"},
		},
		Backup: BackupConfig{
			Suffix: "_original",
			Skip:   false,
		},
		Output: OutputConfig{
			Quiet:   false,
			NoColor: false,
			TUI:     false,
		},
		Logging: LoggingConfig{
			Level:      "error",
			File:       "",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   false,
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if maxDim := os.Getenv("DOWNSIZER_MAX_DIMENSION"); maxDim != "" {
		var val int
		fmt.Sscanf(maxDim, "%d", &val)
		if val > 0 {
			c.Resize.MaxDimension = val
		}
	}

	if quality := os.Getenv("DOWNSIZER_JPEG_QUALITY"); quality != "" {
		var val int
		fmt.Sscanf(quality, "%d", &val)
		if val > 0 {
			c.Resize.JPEGQuality = val
		}
	}

	if suffix := os.Getenv("DOWNSIZER_BACKUP_SUFFIX"); suffix != "" {
		c.Backup.Suffix = suffix
	}

	if inPlace := os.Getenv("DOWNSIZER_IN_PLACE"); inPlace != "" {
		c.Backup.Skip = strings.ToLower(inPlace) == "true"
	}

	if quiet := os.Getenv("DOWNSIZER_QUIET"); quiet != "" {
		c.Output.Quiet = strings.ToLower(quiet) == "true"
	}

	if logLevel := os.Getenv("DOWNSIZER_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFile := os.Getenv("DOWNSIZER_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	// Check in order of precedence
	locations := []string{
		".downsizer.yaml",
		".downsizer.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "downsizer", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "downsizer", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".downsizer.yaml"),
		filepath.Join(os.Getenv("HOME"), ".downsizer.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Validate resize settings
	if c.Resize.MaxDimension <= 0 {
		errs = append(errs, errors.New("max dimension must be positive"))
	}
	if c.Resize.JPEGQuality < 1 || c.Resize.JPEGQuality > 100 {
		errs = append(errs, errors.New("jpeg quality must be between 1 and 100"))
	}
	if len(c.Resize.Extensions) == 0 {
		errs = append(errs, errors.New("at least one image extension is required"))
	}
	for _, ext := range c.Resize.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Errorf("extension %q must start with a dot", ext))
		}
	}

	// Validate backup settings
	if !c.Backup.Skip && c.Backup.Suffix == "" {
		errs = append(errs, errors.New("backup suffix is required unless running in place"))
	}

	// Validate logging
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if maxDim, ok := flags["max-dim"].(int); ok && maxDim > 0 {
		c.Resize.MaxDimension = maxDim
	}
	if quality, ok := flags["jpeg-quality"].(int); ok && quality > 0 {
		c.Resize.JPEGQuality = quality
	}
	if inPlace, ok := flags["in-place"].(bool); ok {
		c.Backup.Skip = inPlace
	}
	if quiet, ok := flags["quiet"].(bool); ok {
		c.Output.Quiet = quiet
	}
	if noColor, ok := flags["no-color"].(bool); ok {
		c.Output.NoColor = noColor
	}
	if tui, ok := flags["tui"].(bool); ok {
		c.Output.TUI = tui
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".downsizer.env"))

	// Start with defaults
	config := DefaultConfig()

	// Load from config file
	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Override with command line flags
	config.MergeCommandLineFlags(flags)

	// Validate final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
