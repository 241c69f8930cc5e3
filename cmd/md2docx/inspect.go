package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2docx/internal/docxtext"
)

// ErrNoDocument is returned when inspect is called without a file argument.
var ErrNoDocument = errors.New("usage: md2docx inspect <file.docx>")

// runInspect prints the paragraph outline of a generated document.
// Useful for eyeballing what a build actually emitted.
func runInspect(args []string, deps *Dependencies) error {
	if len(args) == 0 {
		return ErrNoDocument
	}

	outline, err := docxtext.Extract(args[0])
	if err != nil {
		return err
	}

	for _, p := range outline.Paragraphs {
		style := p.Style
		if style == "" {
			style = "-"
		}
		fmt.Fprintf(deps.Stdout, "%-14s %s\n", style, p.Text)
	}

	return nil
}
