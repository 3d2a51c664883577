package scrape

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"ring-tool/internal/sizes"
)

// Extract pulls the sizing systems out of the reference page HTML. Size
// columns without a region mapping and rows without a usable diameter
// are skipped with a warning; an unrecognizable page fails with a
// ParseError.
func Extract(doc []byte, log *slog.Logger) ([]sizes.System, error) {
	if log == nil {
		log = slog.Default()
	}

	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, &ParseError{Stage: "parse html", Err: err}
	}
	tables := collectTables(root)
	if len(tables) == 0 {
		return nil, &ParseError{Stage: "locate tables", Err: errors.New("no tables in document")}
	}
	grid := selectEquivalencyGrid(tables)
	if grid == nil {
		return nil, &ParseError{Stage: "locate equivalency table", Err: errors.New("no table matches the expected headers")}
	}

	top, sub := grid.headerLevels()
	layout, err := classifyColumns(top, sub, log)
	if err != nil {
		return nil, &ParseError{Stage: "classify columns", Err: err}
	}
	log.Debug("equivalency table located",
		"columns", len(top), "regions", len(layout.regions), "rows", len(grid.body()))

	// Accumulate entries per region. A label repeated within one column
	// keeps the last diameter, like the reference rows themselves.
	type accumulator struct {
		seen    map[string]int
		entries []sizes.Entry
	}
	accs := make([]accumulator, len(layout.regions))
	for i := range accs {
		accs[i].seen = make(map[string]int)
	}

	for _, row := range grid.body() {
		if layout.diameter >= len(row) {
			continue
		}
		diameter, ok := parseDiameter(row[layout.diameter])
		if !ok {
			if !isBlankLabel(row[layout.diameter]) {
				log.Warn("skipping row with unparsable diameter", "value", row[layout.diameter])
			}
			continue
		}
		for i, rc := range layout.regions {
			if rc.index >= len(row) {
				continue
			}
			label := strings.TrimSpace(row[rc.index])
			if isBlankLabel(label) {
				continue
			}
			if at, dup := accs[i].seen[label]; dup {
				accs[i].entries[at].DiameterMM = diameter
				continue
			}
			accs[i].seen[label] = len(accs[i].entries)
			accs[i].entries = append(accs[i].entries, sizes.Entry{Label: label, DiameterMM: diameter})
		}
	}

	var systems []sizes.System
	for i, rc := range layout.regions {
		if len(accs[i].entries) == 0 {
			log.Warn("no entries extracted for region", "region", rc.header)
			continue
		}
		entries := accs[i].entries
		sizes.SortEntries(entries)
		systems = append(systems, sizes.System{Code: rc.code, Name: regionName(rc.header), Entries: entries})
	}
	if len(systems) == 0 {
		return nil, &ParseError{Stage: "build systems", Err: errors.New("no sizing systems extracted")}
	}
	return systems, nil
}
