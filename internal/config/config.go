// Package config loads vectorize settings from a YAML file and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/vectorize/internal/filter"
)

// Environment variables that override file values.
const (
	EnvTolerance = "VECTORIZE_TOLERANCE"
	EnvLogLevel  = "VECTORIZE_LOG_LEVEL"
)

const maxFileSize = 1 << 20

// Validation errors.
var (
	ErrInvalidTolerance = errors.New("config: tolerance must be a non-negative number")
	ErrInvalidLogLevel  = errors.New("config: unknown log level")
	ErrInvalidLogFormat = errors.New("config: unknown log format")
	ErrInvalidMinPoints = errors.New("config: min_points must be at least 2")
	ErrInvalidUpload    = errors.New("config: max_upload_bytes must be positive")
	ErrInvalidCache     = errors.New("config: cache_entries must not be negative")
	ErrInvalidBlur      = errors.New("config: preprocess.blur must be a finite number in [0, 64]")
	ErrInvalidThreshold = errors.New("config: preprocess.threshold must be in [0, 255]")
)

// Config holds all tunable settings.
type Config struct {
	Tolerance  float64    `yaml:"tolerance"`
	MinPoints  int        `yaml:"min_points"`
	Preprocess Preprocess `yaml:"preprocess"`
	Log        Log        `yaml:"log"`
	Server     Server     `yaml:"server"`
}

// Preprocess configures the denoise stages run before extraction.
// Zero values disable a stage.
type Preprocess struct {
	Blur      float64 `yaml:"blur"`
	Threshold int     `yaml:"threshold"`
}

// Log configures the structured logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Server configures the HTTP conversion service.
type Server struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	CacheEntries   int    `yaml:"cache_entries"` // 0 disables the result cache
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tolerance: 1.0,
		MinPoints: 2,
		Log: Log{
			Level:  "info",
			Format: "json",
		},
		Server: Server{
			Addr:           ":8080",
			MaxUploadBytes: 32 << 20,
			CacheEntries:   128,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides and validates the result. An empty path skips
// the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		clean := filepath.Clean(path)
		info, err := os.Stat(clean)
		if err != nil {
			return Config{}, fmt.Errorf("config: stat %s: %w", clean, err)
		}
		if info.Size() > maxFileSize {
			return Config{}, fmt.Errorf("config: file too large: %d bytes (max %d)", info.Size(), maxFileSize)
		}
		data, err := os.ReadFile(clean)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", clean, err)
		}
		if err := cfg.decode(data); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse YAML: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTolerance); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTolerance, err)
		}
		c.Tolerance = f
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if math.IsNaN(c.Tolerance) || c.Tolerance < 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidTolerance, c.Tolerance)
	}
	if c.MinPoints < 2 {
		return fmt.Errorf("%w, got %d", ErrInvalidMinPoints, c.MinPoints)
	}
	if b := c.Preprocess.Blur; math.IsNaN(b) || b < 0 || b > filter.MaxRadius {
		return fmt.Errorf("%w, got %v", ErrInvalidBlur, c.Preprocess.Blur)
	}
	if c.Preprocess.Threshold < 0 || c.Preprocess.Threshold > 255 {
		return fmt.Errorf("%w, got %d", ErrInvalidThreshold, c.Preprocess.Threshold)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidUpload, c.Server.MaxUploadBytes)
	}
	if c.Server.CacheEntries < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidCache, c.Server.CacheEntries)
	}
	return nil
}
