package md2docx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// Service orchestrates the slides-to-DOCX pipeline.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithMaxSlides).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			maxSlides:    DefaultMaxSlides,
			slidePattern: DefaultSlidePattern,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Build runs the full pipeline and returns the DOCX as bytes along with
// per-slide details. Slide files that do not exist are skipped silently
// and listed in Result.Skipped; the caller is responsible for persisting
// Result.DOCX. The context is checked between slides.
func (s *Service) Build(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	slides := input.Slides
	if len(slides) == 0 {
		slides = s.resolveSlides(input.Dir)
	}

	title := input.Title
	if title == "" {
		title = DefaultTitle
	}
	subtitle := input.Subtitle
	if subtitle == "" {
		subtitle = DefaultSubtitle
	}

	deck := newDeckDocument(input.Page)
	deck.addTitle(title, subtitle)

	result := &Result{}
	for _, path := range slides {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if !fileutil.FileExists(path) {
			result.Skipped = append(result.Skipped, path)
			continue
		}

		content, err := os.ReadFile(path) // #nosec G304 -- caller-provided slide path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadSlide, err)
		}

		sec, warnings := parseSlide(path, string(content))
		deck.addSection(sec)

		result.Sections = append(result.Sections, SectionInfo{Path: path, Heading: sec.Heading})
		result.Warnings = append(result.Warnings, warnings...)
	}

	docxBytes, err := deck.bytes()
	if err != nil {
		return nil, err
	}
	result.DOCX = docxBytes

	return result, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Dir == "" && len(input.Slides) == 0 {
		return ErrNoSlides
	}
	return input.Page.Validate()
}

// resolveSlides expands the slide pattern over the fixed index bound.
// The bound is deliberate: slides are never discovered by directory
// listing, which could reorder or include unintended files.
func (s *Service) resolveSlides(dir string) []string {
	slides := make([]string, 0, s.cfg.maxSlides)
	for i := 1; i <= s.cfg.maxSlides; i++ {
		slides = append(slides, filepath.Join(dir, fmt.Sprintf(s.cfg.slidePattern, i)))
	}
	return slides
}
