package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// deckFlags holds title page flags.
type deckFlags struct {
	title    string
	subtitle string
}

// slideFlags holds slide lookup flags.
type slideFlags struct {
	pattern   string
	maxSlides int
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	output string
	margin float64
	deck   deckFlags
	slides slideFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show skipped slides and warnings")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output .docx file path")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")

	fs.StringVar(&f.deck.title, "title", "", "deck title")
	fs.StringVar(&f.deck.subtitle, "subtitle", "", "deck subtitle")

	fs.StringVar(&f.slides.pattern, "slide-pattern", "", "slide filename template with one %d")
	fs.IntVar(&f.slides.maxSlides, "max-slides", 0, "fixed slide index bound (0 = default)")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
