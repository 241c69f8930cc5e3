// Package config loads deck configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidMax      = errors.New("slides.max out of range")
)

// Field length limits.
const (
	MaxTitleLength    = 200 // Deck title
	MaxSubtitleLength = 200 // Deck subtitle
	MaxPatternLength  = 100 // Slide filename template
	MaxFileLength     = 255 // Output filename

	// MaxSlideBound caps slides.max; the bound is a fixed probe count,
	// not a discovered file count, so runaway values are config mistakes.
	MaxSlideBound = 1000
)

// Config holds all configuration for deck generation.
type Config struct {
	Deck   DeckConfig   `yaml:"deck"`
	Slides SlidesConfig `yaml:"slides"`
	Output OutputConfig `yaml:"output"`
	Page   PageConfig   `yaml:"page"`
}

// DeckConfig defines the title page content.
type DeckConfig struct {
	Title    string `yaml:"title"`    // empty = built-in default
	Subtitle string `yaml:"subtitle"` // empty = built-in default
}

// SlidesConfig defines where slide files are looked up.
type SlidesConfig struct {
	Dir     string `yaml:"dir"`     // base directory (empty = must specify on CLI)
	Pattern string `yaml:"pattern"` // filename template with one %d (default "slide%d.md")
	Max     int    `yaml:"max"`     // fixed index bound (default 10)
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	File string `yaml:"file"` // output filename (default "Laravel_Packages_Presentation.docx")
}

// PageConfig defines DOCX page settings.
type PageConfig struct {
	Margin float64 `yaml:"margin"` // inches on all four sides (default 0.5)
}

// DefaultConfig returns a configuration matching the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Slides: SlidesConfig{
			Pattern: md2docx.DefaultSlidePattern,
			Max:     md2docx.DefaultMaxSlides,
		},
		Output: OutputConfig{File: md2docx.DefaultOutputFile},
		Page:   PageConfig{Margin: md2docx.DefaultMargin},
	}
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("deck.title", c.Deck.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("deck.subtitle", c.Deck.Subtitle, MaxSubtitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("slides.pattern", c.Slides.Pattern, MaxPatternLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.file", c.Output.File, MaxFileLength); err != nil {
		return err
	}

	if c.Slides.Pattern != "" {
		if err := md2docx.ValidateSlidePattern(c.Slides.Pattern); err != nil {
			return err
		}
	}
	if c.Slides.Max < 0 || c.Slides.Max > MaxSlideBound {
		return fmt.Errorf("%w: %d (must be between 0 and %d, 0 means default)", ErrInvalidMax, c.Slides.Max, MaxSlideBound)
	}
	if c.Page.Margin != 0 {
		ps := md2docx.PageSettings{Margin: c.Page.Margin}
		if err := ps.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/go-md2docx/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2docx", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
