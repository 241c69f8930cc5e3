package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no slide directory specified")
	ErrWriteDocx        = errors.New("failed to write DOCX file")
	ErrInvalidMaxSlides = errors.New("invalid max slides")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runBuild orchestrates the build: config, flag merge, conversion, output.
func runBuild(args []string, deps *Dependencies) error {
	flags, positional, err := parseBuildFlags(args)
	if err != nil {
		return err
	}

	if flags.slides.maxSlides < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means default)", ErrInvalidMaxSlides, flags.slides.maxSlides)
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve slide directory
	dir, err := resolveSlideDir(positional, cfg)
	if err != nil {
		return err
	}

	// Resolve output path
	outputPath := resolveOutputPath(flags.output, dir, cfg)

	// Build service options from config
	var opts []md2docx.Option
	if cfg.Slides.Max > 0 {
		opts = append(opts, md2docx.WithMaxSlides(cfg.Slides.Max))
	}
	if cfg.Slides.Pattern != "" {
		if err := md2docx.ValidateSlidePattern(cfg.Slides.Pattern); err != nil {
			return err
		}
		opts = append(opts, md2docx.WithSlidePattern(cfg.Slides.Pattern))
	}

	input := md2docx.Input{
		Dir:      dir,
		Title:    cfg.Deck.Title,
		Subtitle: cfg.Deck.Subtitle,
		Page:     &md2docx.PageSettings{Margin: cfg.Page.Margin},
	}

	svc := md2docx.New(opts...)
	result, err := svc.Build(context.Background(), input)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(outputPath, result.DOCX, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocx, err)
	}

	printBuildResult(result, outputPath, flags.common, deps)
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.deck.title != "" {
		cfg.Deck.Title = flags.deck.title
	}
	if flags.deck.subtitle != "" {
		cfg.Deck.Subtitle = flags.deck.subtitle
	}
	if flags.slides.pattern != "" {
		cfg.Slides.Pattern = flags.slides.pattern
	}
	if flags.slides.maxSlides > 0 {
		cfg.Slides.Max = flags.slides.maxSlides
	}
	if flags.margin > 0 {
		cfg.Page.Margin = flags.margin
	}
}

// resolveSlideDir determines the slide directory from args or config.
func resolveSlideDir(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Slides.Dir != "" {
		return cfg.Slides.Dir, nil
	}
	return "", ErrNoInput
}

// resolveOutputPath determines the DOCX output path from flag or config.
// A bare config filename lands in the slide directory.
func resolveOutputPath(flagOutput, dir string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	name := cfg.Output.File
	if name == "" {
		name = md2docx.DefaultOutputFile
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// printBuildResult reports the build outcome on stdout.
func printBuildResult(result *md2docx.Result, outputPath string, common commonFlags, deps *Dependencies) {
	if common.verbose {
		for _, s := range result.Skipped {
			fmt.Fprintf(deps.Stdout, "skipped %s (not found)\n", s)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(deps.Stdout, "warning: %s\n", w)
		}
		fmt.Fprintf(deps.Stdout, "%d section(s)\n", len(result.Sections))
	}

	if !common.quiet {
		fmt.Fprintf(deps.Stdout, "Created %s\n", outputPath)
	}
}
