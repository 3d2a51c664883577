package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"ring-tool/internal/cli"
	"ring-tool/internal/config"
	"ring-tool/internal/sizes"
	"ring-tool/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := cli.ParseFlags()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1)
	}

	// No arguments = use GUI
	if opts == nil {
		runGUI(cfg)
		return
	}

	// CLI mode
	if err := cli.Run(*opts, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGUI(cfg config.Config) {
	a := app.NewWithID("com.ring-tool.gui")

	tbl, err := sizes.LoadFile(cfg.TablePath)
	if err != nil {
		ui.ShowLoadError(a, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	win := ui.BuildMainWindow(a, tbl, cfg.DefaultSystem)
	win.ShowAndRun()
}
