package md2docx

import (
	"fmt"
	"strings"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// Deck defaults. These reproduce the fixed literals of the original
// presentation script and apply whenever Input leaves the field empty.
const (
	DefaultTitle        = "Laravel Packages Scenarios"
	DefaultSubtitle     = "A comprehensive overview of Laravel package development"
	DefaultOutputFile   = "Laravel_Packages_Presentation.docx"
	DefaultSlidePattern = "slide%d.md"
	DefaultMaxSlides    = 10
)

// PageSettings configures DOCX page dimensions.
type PageSettings struct {
	Margin float64 // inches, applied to all four sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{Margin: DefaultMargin}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// Input contains build parameters for one deck. The caller persists
// Result.DOCX, so no output path is needed here; a failed build can never
// leave a partial file behind.
type Input struct {
	Dir      string        // directory holding numbered slide files (required if Slides is empty)
	Slides   []string      // explicit slide paths in order; missing ones are skipped
	Title    string        // deck title (empty = DefaultTitle)
	Subtitle string        // deck subtitle (empty = DefaultSubtitle)
	Page     *PageSettings // page settings (nil = defaults)
}

// SectionInfo describes one section emitted into the document.
type SectionInfo struct {
	Path    string // slide file the section came from
	Heading string // heading text after "# " stripping
}

// Warning reports a construct that was silently dropped from the output.
// Dropping is intentional (orphan sub-bullets, unclosed code fences);
// warnings exist so callers can surface them without changing the document.
type Warning struct {
	Path   string // slide file
	Line   int    // 1-based line number within the slide file
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s:%d: %s", w.Path, w.Line, w.Reason)
}

// Result holds the outcome of a build.
type Result struct {
	DOCX     []byte        // serialized document
	Sections []SectionInfo // emitted sections in document order
	Skipped  []string      // slide paths that did not exist
	Warnings []Warning     // dropped constructs
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	maxSlides    int
	slidePattern string
}

// WithMaxSlides sets the fixed upper bound of slide indices to probe.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxSlides(n int) Option {
	if n <= 0 {
		panic("md2docx: WithMaxSlides count must be positive")
	}
	return func(s *Service) {
		s.cfg.maxSlides = n
	}
}

// WithSlidePattern sets the slide filename template. The pattern must
// contain exactly one %d verb for the 1-based slide index.
// Panics on an invalid pattern (programmer error).
func WithSlidePattern(pattern string) Option {
	if err := ValidateSlidePattern(pattern); err != nil {
		panic("md2docx: " + err.Error())
	}
	return func(s *Service) {
		s.cfg.slidePattern = pattern
	}
}

// ValidateSlidePattern checks that a slide filename template contains
// exactly one %d verb and no other formatting verbs.
func ValidateSlidePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSlidePattern)
	}
	stripped := strings.ReplaceAll(pattern, "%d", "")
	if strings.Count(pattern, "%d") != 1 || strings.Contains(stripped, "%") {
		return fmt.Errorf("%w: %q (must contain exactly one %%d)", ErrInvalidSlidePattern, pattern)
	}
	return nil
}
