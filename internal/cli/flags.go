package cli

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses command-line arguments into Options. Returns nil
// options when the tool should open the GUI instead (no arguments), or
// flag.ErrHelp after printing help.
func ParseFlags() (*Options, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, flag.ErrHelp
	}

	opts := &Options{}

	fs := flag.NewFlagSet("ring-tool", flag.ContinueOnError)

	// Lookup flags
	fs.StringVar(&opts.System, "s", "", "Sizing system code (e.g. UK, US)")
	fs.StringVar(&opts.System, "system", "", "Sizing system code (e.g. UK, US)")
	fs.StringVar(&opts.Size, "z", "", "Size label within the system (e.g. P, 7)")
	fs.StringVar(&opts.Size, "size", "", "Size label within the system (e.g. P, 7)")
	fs.BoolVar(&opts.List, "l", false, "List sizing systems (or sizes with -s)")
	fs.BoolVar(&opts.List, "list", false, "List sizing systems (or sizes with -s)")
	fs.BoolVar(&opts.Interactive, "i", false, "Pick system and size interactively")
	fs.BoolVar(&opts.Interactive, "interactive", false, "Pick system and size interactively")

	// Data flags
	fs.StringVar(&opts.TablePath, "table", "", "Sizing table file (default: $RINGTOOL_TABLE)")

	// Output flags
	fs.StringVar(&opts.SVGPath, "o", "", "Write the circle to an SVG file or directory")
	fs.StringVar(&opts.SVGPath, "svg", "", "Write the circle to an SVG file or directory")
	fs.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	// Validate: need a mode. A system alone means "list its sizes".
	if !opts.List && !opts.Interactive && opts.System == "" {
		fmt.Fprintf(os.Stderr, "Error: must provide -list, -i, or -system with -size\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}
	if opts.Size != "" && opts.System == "" {
		fmt.Fprintf(os.Stderr, "Error: -size requires -system\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}

	return opts, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Ring Size Generator

Usage: ring-tool [flags]
       ring-tool help    (show this message)

Run without arguments to open the GUI.

LOOKUP MODE:
  -s, -system <code>       Sizing system code (e.g. UK, US, Japan, ISO)
  -z, -size <label>        Size label within the system (e.g. P, 7, 6½)
  -l, -list                List sizing systems; with -s, list that system's sizes
  -i, -interactive         Pick system and size through terminal prompts

DATA:
  -table <file>            Sizing table file (default: $RINGTOOL_TABLE
                           or data/ring_sizes.yaml)

OUTPUT:
  -o, -svg <path>          Write the circle to an SVG file; a directory
                           gets a dated file name
  -v, -verbose             Verbose output

EXAMPLES:
  # Diameter for a UK size P ring
  ring-tool -s UK -z P

  # Same lookup, saved as a true-scale SVG
  ring-tool -s UK -z P -o ring.svg

  # All systems in the table
  ring-tool -list

  # Every US size with its diameter
  ring-tool -s US

  # Prompt-driven selection in the terminal
  ring-tool -i -o out/

`)
}
