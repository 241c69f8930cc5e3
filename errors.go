package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoSlides       = errors.New("no slide source specified")
	ErrReadSlide      = errors.New("failed to read slide file")
	ErrRenderDocument = errors.New("document rendering failed")

	// Page settings validation errors.
	ErrInvalidMargin = errors.New("invalid margin")

	// Slide resolution validation errors.
	ErrInvalidSlidePattern = errors.New("invalid slide pattern")
)
