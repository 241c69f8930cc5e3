package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Build a DOCX deck from numbered slide markdown files")
	fmt.Fprintln(w, "  inspect    Print the paragraph outline of a DOCX file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2docx help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx build [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a DOCX deck from slide1.md .. slideN.md in a directory.")
	fmt.Fprintln(w, "Missing slide files are skipped; sections keep ascending index order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Slide directory (optional if config has slides.dir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>        Output .docx file path")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deck:")
	fmt.Fprintln(w, "      --title <s>            Deck title")
	fmt.Fprintln(w, "      --subtitle <s>         Deck subtitle")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Slides:")
	fmt.Fprintf(w, "      --slide-pattern <s>    Slide filename template with one %%d\n")
	fmt.Fprintln(w, "      --max-slides <n>       Fixed slide index bound (default 10)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --margin <f>           Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show skipped slides and warnings")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(deps.Stdout)
	case "inspect":
		fmt.Fprintln(deps.Stdout, "Usage: md2docx inspect <file.docx>")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Print the paragraph outline (style and text) of a DOCX file.")
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: md2docx version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: md2docx help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
