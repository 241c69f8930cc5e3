package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDispatch(t *testing.T) {
	t.Run("no args prints usage", func(t *testing.T) {
		deps, _, stderr := testDeps()
		if code := run(nil, deps); code != ExitUsage {
			t.Errorf("run() = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "Usage: md2docx") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		deps, _, stderr := testDeps()
		if code := run([]string{"bogus"}, deps); code != ExitUsage {
			t.Errorf("run() = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "Unknown command: bogus") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("version", func(t *testing.T) {
		deps, stdout, _ := testDeps()
		if code := run([]string{"version"}, deps); code != ExitSuccess {
			t.Errorf("run() = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "md2docx") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("help build", func(t *testing.T) {
		deps, stdout, _ := testDeps()
		if code := run([]string{"help", "build"}, deps); code != ExitSuccess {
			t.Errorf("run() = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "Usage: md2docx build") {
			t.Errorf("stdout = %q", stdout.String())
		}
		if !strings.Contains(stdout.String(), "template with one %d") {
			t.Errorf("stdout = %q, want literal %%d in slide-pattern help", stdout.String())
		}
	})

	t.Run("build without input fails with usage code", func(t *testing.T) {
		deps, _, _ := testDeps()
		if code := run([]string{"build"}, deps); code != ExitUsage {
			t.Errorf("run() = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("inspect without argument fails with usage code", func(t *testing.T) {
		deps, _, _ := testDeps()
		if code := run([]string{"inspect"}, deps); code != ExitUsage {
			t.Errorf("run() = %d, want %d", code, ExitUsage)
		}
	})
}

func TestBuildThenInspect(t *testing.T) {
	dir := t.TempDir()
	slide := "# Overview\n\n- **Point** detail\n"
	if err := os.WriteFile(filepath.Join(dir, "slide1.md"), []byte(slide), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "deck.docx")

	deps, _, _ := testDeps()
	if code := run([]string{"build", dir, "-o", out}, deps); code != ExitSuccess {
		t.Fatalf("build exit = %d, want %d", code, ExitSuccess)
	}

	deps, stdout, _ := testDeps()
	if code := run([]string{"inspect", out}, deps); code != ExitSuccess {
		t.Fatalf("inspect exit = %d, want %d", code, ExitSuccess)
	}

	got := stdout.String()
	if !strings.Contains(got, "Heading1") || !strings.Contains(got, "Overview") {
		t.Errorf("inspect output = %q, want Heading1 Overview line", got)
	}
	if !strings.Contains(got, "Point") {
		t.Errorf("inspect output missing bullet label: %q", got)
	}
}
