package md2docx

import (
	"regexp"
	"strings"
)

// ElementKind classifies a parsed slide element.
type ElementKind int

// Element kinds emitted by the section parser.
const (
	KindBullet    ElementKind = iota // top-level bullet, bold label
	KindSubBullet                    // indented plain bullet
	KindCodeBlock                    // monospace block, lines joined with \n
)

// Element is one block-level construct parsed from a slide body.
type Element struct {
	Kind ElementKind
	Text string
}

// Section is the parsed form of one slide file: the heading plus the
// elements of its body in source order.
type Section struct {
	Heading  string
	Elements []Element
}

// Line classification prefixes.
const (
	codeFencePrefix = "```"
	bulletPrefix    = "- **"
	boldMarker      = "**"
	subBulletPrefix = "  -"
)

// crlfOrCR normalizes line endings before splitting.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// parseSlide converts one slide file's full text into a Section.
// Line 1 is always the heading (leading "# " stripped if present) and
// line 2 is always skipped as the blank separator, regardless of content.
// The lineOffset in returned warnings is relative to the original file.
func parseSlide(path, content string) (Section, []Warning) {
	normalized := crlfOrCR.ReplaceAllString(content, "\n")
	lines := strings.Split(strings.TrimSpace(normalized), "\n")

	sec := Section{Heading: strings.TrimPrefix(lines[0], "# ")}

	var body []string
	if len(lines) > 2 {
		body = lines[2:]
	}

	elements, warnings := parseSection(path, body, 3)
	sec.Elements = elements
	return sec, warnings
}

// parseSection classifies slide body lines top-to-bottom, first match wins:
// code fence toggle, code content, top-level bullet, sub-bullet, ignored.
// The current-bullet context is local to one call, so it resets per slide.
// firstLineNo is the file line number of lines[0], used for warnings.
func parseSection(path string, lines []string, firstLineNo int) ([]Element, []Warning) {
	var (
		elements    []Element
		warnings    []Warning
		inCodeBlock bool
		codeContent []string
		codeStart   int
		hasBullet   bool
	)

	for i, line := range lines {
		lineNo := firstLineNo + i
		trimmed := strings.TrimSpace(line)

		// Code fence: toggle, never emitted itself. A trailing language
		// tag on the opening fence is ignored.
		if strings.HasPrefix(trimmed, codeFencePrefix) {
			inCodeBlock = !inCodeBlock
			if inCodeBlock {
				codeStart = lineNo
				continue
			}
			if len(codeContent) > 0 {
				elements = append(elements, Element{
					Kind: KindCodeBlock,
					Text: strings.Join(codeContent, "\n"),
				})
				codeContent = nil
			}
			continue
		}

		// Inside a code block every line is raw content.
		if inCodeBlock {
			codeContent = append(codeContent, line)
			continue
		}

		// Top-level bullet: bold label between "- **" and the next "**".
		// Trailing text after the closing marker is discarded.
		if strings.HasPrefix(trimmed, bulletPrefix) {
			label, _, _ := strings.Cut(strings.TrimPrefix(trimmed, bulletPrefix), boldMarker)
			elements = append(elements, Element{Kind: KindBullet, Text: label})
			hasBullet = true
			continue
		}

		// Sub-bullet: two-space indent is significant, so this checks the
		// raw line. Only valid while a current bullet exists in this slide.
		if strings.HasPrefix(line, subBulletPrefix) {
			if !hasBullet {
				warnings = append(warnings, Warning{
					Path:   path,
					Line:   lineNo,
					Reason: "sub-bullet without a preceding bullet, dropped",
				})
				continue
			}
			elements = append(elements, Element{
				Kind: KindSubBullet,
				Text: strings.TrimSpace(strings.TrimPrefix(line, subBulletPrefix)),
			})
			continue
		}

		// Blank lines and anything outside the dialect are ignored.
	}

	// An unclosed fence never flushes its accumulated lines.
	if inCodeBlock && len(codeContent) > 0 {
		warnings = append(warnings, Warning{
			Path:   path,
			Line:   codeStart,
			Reason: "unclosed code fence, content dropped",
		})
	}

	return elements, warnings
}
