package ui

import (
	"fmt"

	"ring-tool/internal/flow"
	"ring-tool/internal/sizes"
)

// resolveSelection turns the picker state into a drawable circle.
// Returns an error naming the missing step when the selection is
// incomplete, or the lookup error when the pair is not in the table.
func resolveSelection(tbl *sizes.Table, system, size string) (flow.Circle, error) {
	if system == "" {
		return flow.Circle{}, fmt.Errorf("no sizing system selected")
	}
	if size == "" {
		return flow.Circle{}, fmt.Errorf("no ring size selected")
	}

	diameter, err := tbl.Lookup(system, size)
	if err != nil {
		return flow.Circle{}, err
	}

	return flow.Circle{System: system, Label: size, DiameterMM: diameter}, nil
}

// systemOrDefault returns candidate if the table knows it, falling back
// to defaultCode and then to the table's first system.
func systemOrDefault(tbl *sizes.Table, candidate, defaultCode string) string {
	if _, ok := tbl.System(candidate); ok {
		return candidate
	}
	if _, ok := tbl.System(defaultCode); ok {
		return defaultCode
	}

	codes := tbl.Codes()
	if len(codes) == 0 {
		return ""
	}
	return codes[0]
}

// labelOrEmpty returns candidate if the system carries that size label,
// otherwise the empty string (nothing preselected).
func labelOrEmpty(sys *sizes.System, candidate string) string {
	if candidate == "" {
		return ""
	}
	if _, ok := sys.Lookup(candidate); ok {
		return candidate
	}
	return ""
}
