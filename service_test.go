package md2docx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/docxtext"
)

// writeSlides writes the given contents as slideN.md files (1-based) in a
// fresh temp directory. Empty entries leave that index missing.
func writeSlides(t *testing.T, contents ...string) string {
	t.Helper()
	dir := t.TempDir()
	for i, content := range contents {
		if content == "" {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("slide%d.md", i+1))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// extract parses built DOCX bytes back into a paragraph outline.
func extract(t *testing.T, docxBytes []byte) *docxtext.Outline {
	t.Helper()
	outline, err := docxtext.ExtractReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		t.Fatalf("extracting built document: %v", err)
	}
	return outline
}

// allText joins every paragraph of an outline for substring checks.
func allText(outline *docxtext.Outline) string {
	var parts []string
	for _, p := range outline.Paragraphs {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n")
}

func TestBuildFullDeck(t *testing.T) {
	dir := writeSlides(t,
		"# First\n\n- **Foo** more text\n  - Detail\n",
		"# Second\n\n```php\ncode here\nmore code\n```\n",
	)

	svc := New()
	result, err := svc.Build(context.Background(), Input{
		Dir:      dir,
		Title:    "My Deck",
		Subtitle: "An overview",
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(result.Sections) != 2 {
		t.Fatalf("Sections = %d, want 2", len(result.Sections))
	}
	if result.Sections[0].Heading != "First" || result.Sections[1].Heading != "Second" {
		t.Errorf("headings = %q, %q", result.Sections[0].Heading, result.Sections[1].Heading)
	}
	if len(result.Skipped) != 8 {
		t.Errorf("Skipped = %d, want 8", len(result.Skipped))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %+v, want none", result.Warnings)
	}

	outline := extract(t, result.DOCX)

	if got := outline.Paragraphs[0]; !strings.EqualFold(got.Style, "Title") || got.Text != "My Deck" {
		t.Errorf("first paragraph = %+v, want Title style with deck title", got)
	}
	if got := outline.Paragraphs[1].Text; got != "An overview" {
		t.Errorf("subtitle = %q, want %q", got, "An overview")
	}

	headings := outline.Headings()
	if len(headings) != 2 || headings[0] != "First" || headings[1] != "Second" {
		t.Errorf("Headings() = %v, want [First Second]", headings)
	}

	text := allText(outline)
	if !strings.Contains(text, "Foo") {
		t.Error("bullet label missing from document")
	}
	if strings.Contains(text, "more text") {
		t.Error("trailing bullet text leaked into document")
	}
	if !strings.Contains(text, "Detail") {
		t.Error("sub-bullet text missing from document")
	}
	if !strings.Contains(text, "code here\nmore code") {
		t.Error("code block not emitted as one newline-joined paragraph")
	}
}

func TestBuildSkipsMissingIndices(t *testing.T) {
	// Only slides 1, 3, 5 exist; output has exactly 3 sections in index order.
	dir := writeSlides(t,
		"# One\n\n- **A**",
		"",
		"# Three\n\n- **B**",
		"",
		"# Five\n\n- **C**",
	)

	result, err := New().Build(context.Background(), Input{Dir: dir})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	headings := extract(t, result.DOCX).Headings()
	want := []string{"One", "Three", "Five"}
	if len(headings) != len(want) {
		t.Fatalf("headings = %v, want %v", headings, want)
	}
	for i := range want {
		if headings[i] != want[i] {
			t.Errorf("headings[%d] = %q, want %q", i, headings[i], want[i])
		}
	}
	if len(result.Skipped) != 7 {
		t.Errorf("Skipped = %d, want 7", len(result.Skipped))
	}
}

func TestBuildDeterministic(t *testing.T) {
	dir := writeSlides(t, "# One\n\n- **A** text\n```\ncode\n```")

	input := Input{Dir: dir}
	svc := New()

	first, err := svc.Build(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Build(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first.DOCX, second.DOCX) {
		t.Error("two builds over identical input differ")
	}
}

func TestBuildExplicitSlideList(t *testing.T) {
	dir := t.TempDir()
	intro := filepath.Join(dir, "intro.md")
	outro := filepath.Join(dir, "outro.md")
	missing := filepath.Join(dir, "absent.md")
	if err := os.WriteFile(intro, []byte("# Intro\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(outro, []byte("# Outro\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := New().Build(context.Background(), Input{
		Slides: []string{outro, missing, intro},
	})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// Explicit list order wins over any naming convention.
	headings := extract(t, result.DOCX).Headings()
	if len(headings) != 2 || headings[0] != "Outro" || headings[1] != "Intro" {
		t.Errorf("headings = %v, want [Outro Intro]", headings)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != missing {
		t.Errorf("Skipped = %v, want [%s]", result.Skipped, missing)
	}
}

func TestBuildServiceOptions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"part1.md", "part2.md", "part3.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("# "+name+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	svc := New(WithSlidePattern("part%d.md"), WithMaxSlides(2))
	result, err := svc.Build(context.Background(), Input{Dir: dir})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// part3.md exists but sits past the fixed bound.
	if len(result.Sections) != 2 {
		t.Errorf("Sections = %d, want 2", len(result.Sections))
	}
}

func TestBuildWarningsPropagate(t *testing.T) {
	dir := writeSlides(t, "# One\n\n  - Orphan\n```\ndangling")

	result, err := New().Build(context.Background(), Input{Dir: dir})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(result.Warnings) != 2 {
		t.Fatalf("Warnings = %+v, want 2", result.Warnings)
	}
	for _, w := range result.Warnings {
		if !strings.HasSuffix(w.Path, "slide1.md") {
			t.Errorf("warning path = %q, want slide1.md", w.Path)
		}
	}

	// Dropped constructs leave no trace in the document.
	text := allText(extract(t, result.DOCX))
	if strings.Contains(text, "Orphan") || strings.Contains(text, "dangling") {
		t.Errorf("dropped content leaked into document: %q", text)
	}
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "no slide source",
			input:   Input{},
			wantErr: ErrNoSlides,
		},
		{
			name:    "invalid margin",
			input:   Input{Dir: "slides", Page: &PageSettings{Margin: 99}},
			wantErr: ErrInvalidMargin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Build(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildContextCancelled(t *testing.T) {
	dir := writeSlides(t, "# One\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Build(ctx, Input{Dir: dir})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build() error = %v, want context.Canceled", err)
	}
}

func TestBuildEmptyDirectory(t *testing.T) {
	// All ten probes miss; the deck still has its title page.
	result, err := New().Build(context.Background(), Input{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(result.Sections) != 0 || len(result.Skipped) != DefaultMaxSlides {
		t.Errorf("Sections = %d, Skipped = %d", len(result.Sections), len(result.Skipped))
	}

	outline := extract(t, result.DOCX)
	if outline.Paragraphs[0].Text != DefaultTitle {
		t.Errorf("title = %q, want default", outline.Paragraphs[0].Text)
	}
	if got := outline.Headings(); len(got) != 0 {
		t.Errorf("Headings() = %v, want none", got)
	}
}
