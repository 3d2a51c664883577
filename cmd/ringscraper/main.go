package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"ring-tool/internal/config"
	"ring-tool/internal/scrape"
	"ring-tool/internal/sizes"
)

// ringscraper regenerates the checked-in sizing table from the public
// reference page. Maintainer tool; the picker never fetches anything.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		pageURL = flag.String("url", cfg.SourceURL, "reference page to scrape")
		outPath = flag.String("o", cfg.TablePath, "output table file")
		timeout = flag.Duration("timeout", 60*time.Second, "fetch and write deadline")
		dryRun  = flag.Bool("dry-run", false, "print the generated table instead of writing it")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := cfg.SlogLevel()
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(log)

	if err := run(ctx, log, *pageURL, *outPath, *timeout, *dryRun); err != nil {
		log.Error("scrape failed", tint.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, pageURL, outPath string, timeout time.Duration, dryRun bool) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.Info("fetching reference page", "url", pageURL)
	doc, err := scrape.NewFetcher().Fetch(ctx, pageURL)
	if err != nil {
		return err
	}
	log.Debug("page fetched", "bytes", len(doc))

	systems, err := scrape.Extract(doc, log)
	if err != nil {
		return err
	}
	for _, s := range systems {
		log.Info("extracted system", "code", s.Code, "sizes", len(s.Entries))
	}

	if dryRun {
		out, err := sizes.Encode(systems, pageURL)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}

	if err := sizes.WriteFile(outPath, systems, pageURL); err != nil {
		return err
	}
	log.Info("table written", "path", outPath, "systems", len(systems))
	return nil
}
