package cli

import (
	"fmt"
	"os"

	"ring-tool/internal/config"
	"ring-tool/internal/export"
	"ring-tool/internal/flow"
	"ring-tool/internal/format"
	"ring-tool/internal/sizes"
)

// Options holds all CLI options for one invocation.
type Options struct {
	// Lookup
	System      string
	Size        string
	List        bool
	Interactive bool

	// Data
	TablePath string

	// Output
	SVGPath string
	Verbose bool
}

// Run loads the sizing table and dispatches on the selected mode.
func Run(opts Options, cfg config.Config) error {
	tablePath := opts.TablePath
	if tablePath == "" {
		tablePath = cfg.TablePath
	}

	tbl, err := sizes.LoadFile(tablePath)
	if err != nil {
		return err
	}
	if opts.Verbose {
		fmt.Printf("Loaded %d sizing systems from %s\n", tbl.Len(), tablePath)
	}

	switch {
	case opts.Interactive:
		return runInteractive(tbl, cfg, opts)
	case opts.System != "" && opts.Size != "":
		return runLookup(tbl, opts)
	case opts.System != "":
		return runSizeList(tbl, opts.System)
	default:
		fmt.Println(format.SystemList(tbl))
		return nil
	}
}

// runLookup resolves one (system, size) pair and prints the result,
// optionally saving the circle as SVG.
func runLookup(tbl *sizes.Table, opts Options) error {
	diameter, err := tbl.Lookup(opts.System, opts.Size)
	if err != nil {
		return fmt.Errorf("%w (use -list to see what the table offers)", err)
	}

	c := flow.Circle{System: opts.System, Label: opts.Size, DiameterMM: diameter}
	fmt.Println(format.Selection(c))
	return saveSVG(c, opts)
}

func runSizeList(tbl *sizes.Table, code string) error {
	s, ok := tbl.System(code)
	if !ok {
		return fmt.Errorf("%w: %q (use -list to see what the table offers)", sizes.ErrUnknownSystem, code)
	}
	fmt.Println(format.SizeList(s))
	return nil
}

// runInteractive drives the same pick-and-draw flow as the GUI, with
// terminal prompts for the choices.
func runInteractive(tbl *sizes.Table, cfg config.Config, opts Options) error {
	chooser := NewTerminalChooser(os.Stdin, os.Stdout)

	var drawer flow.Drawer = printDrawer{}
	if opts.SVGPath != "" {
		drawer = &export.Drawer{Path: opts.SVGPath}
	}

	runner := flow.Runner{DefaultSystem: cfg.DefaultSystem}
	res, err := runner.Run(tbl, chooser, drawer)
	if err != nil {
		return err
	}
	if res.Cancelled {
		fmt.Println("Cancelled.")
		return nil
	}

	if opts.SVGPath != "" {
		fmt.Println(format.Selection(res.Circle))
		fmt.Printf("Circle saved to: %s\n", opts.SVGPath)
	}
	return nil
}

func saveSVG(c flow.Circle, opts Options) error {
	if opts.SVGPath == "" {
		return nil
	}
	d := &export.Drawer{Path: opts.SVGPath}
	if err := d.DrawCircle(c); err != nil {
		return fmt.Errorf("save SVG: %w", err)
	}
	if opts.Verbose {
		fmt.Printf("Circle saved to: %s\n", opts.SVGPath)
	}
	return nil
}

// printDrawer satisfies the drawing capability for plain terminal runs
// by printing the selection instead of drawing it.
type printDrawer struct{}

func (printDrawer) DrawCircle(c flow.Circle) error {
	fmt.Println(format.Selection(c))
	return nil
}
