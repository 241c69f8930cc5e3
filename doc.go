// Package md2docx converts a numbered set of slide markdown files into a
// single formatted DOCX presentation document.
//
// # Quick Start
//
// Create a service and build a deck from a directory of slide files:
//
//	svc := md2docx.New()
//	result, err := svc.Build(ctx, md2docx.Input{Dir: "/path/to/slides"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("deck.docx", result.DOCX, 0644)
//
// The result contains the DOCX bytes plus per-slide details: which slide
// files were found, which were skipped, and any parse warnings.
//
// # Input Dialect
//
// Each slide file uses a constrained markdown dialect:
//
//	# Section Title
//	<blank line>
//	- **Label** optional trailing text (discarded)
//	  - sub-bullet text
//	```
//	code block content
//	```
//
// Line 1 is always the section heading (leading "# " stripped); line 2 is
// always skipped. Lines outside the dialect are silently ignored. An
// orphan sub-bullet (no preceding bullet in the same file) and an unclosed
// code fence are dropped from the output and reported in Result.Warnings.
//
// # Build Pipeline
//
// The build follows these stages:
//
//  1. Slide path resolution (slide1.md .. slideN.md, missing files skipped)
//  2. Per-slide line classification into headings, bullets, and code blocks
//  3. DOCX element emission via gooxml (margins, title page, page breaks)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2docx.New(
//	    md2docx.WithMaxSlides(20),
//	    md2docx.WithSlidePattern("section%d.md"),
//	)
//
// Per-build options are passed via Input: explicit slide paths, deck title
// and subtitle, and page settings.
package md2docx
