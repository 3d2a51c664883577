package format

import (
	"fmt"
	"strconv"
	"strings"

	"ring-tool/internal/flow"
	"ring-tool/internal/sizes"
)

// Millimeters renders a length with a unit, keeping at least one decimal
// so whole values still read as measurements ("12.0 mm", "8.65 mm").
func Millimeters(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + " mm"
}

// DiameterLine returns the live preview line shown under the size picker.
func DiameterLine(mm float64) string {
	return fmt.Sprintf("Diameter: %s", Millimeters(mm))
}

// CreatedMessage describes a circle that was just placed on the plane.
func CreatedMessage(c flow.Circle) string {
	return fmt.Sprintf("Created circle for %s size '%s' (diameter %s, radius %s) at plane origin.",
		c.System, c.Label, Millimeters(c.DiameterMM), Millimeters(c.RadiusMM()))
}

// SystemTitle returns the descriptive region name, falling back to the
// code when the table carries none.
func SystemTitle(s *sizes.System) string {
	if s.Name == "" {
		return s.Code
	}
	return s.Name
}

// Selection produces the human-readable block a lookup prints.
func Selection(c flow.Circle) string {
	var b strings.Builder

	b.WriteString("=== Ring Size ===\n")
	b.WriteString(fmt.Sprintf("System:    %s\n", c.System))
	b.WriteString(fmt.Sprintf("Size:      %s\n", c.Label))
	b.WriteString(fmt.Sprintf("Diameter:  %s\n", Millimeters(c.DiameterMM)))
	b.WriteString(fmt.Sprintf("Radius:    %s\n", Millimeters(c.RadiusMM())))
	b.WriteString("=================")
	return b.String()
}

// SystemList renders one line per sizing system with its size range.
func SystemList(tbl *sizes.Table) string {
	var b strings.Builder

	b.WriteString("Available sizing systems:\n")
	for _, s := range tbl.Systems() {
		entries := s.Entries
		span := fmt.Sprintf("%d sizes (%s to %s)", len(entries),
			Millimeters(entries[0].DiameterMM), Millimeters(entries[len(entries)-1].DiameterMM))
		b.WriteString(fmt.Sprintf("  %-6s %-42s %s\n", s.Code, s.Name, span))
	}
	return strings.TrimRight(b.String(), "\n")
}

// SizeList renders every size of one system with its diameter.
func SizeList(s *sizes.System) string {
	var b strings.Builder

	if s.Name != "" {
		b.WriteString(fmt.Sprintf("%s (%s) sizes:\n", s.Code, s.Name))
	} else {
		b.WriteString(fmt.Sprintf("%s sizes:\n", s.Code))
	}
	for _, e := range s.Entries {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", e.Label, Millimeters(e.DiameterMM)))
	}
	return strings.TrimRight(b.String(), "\n")
}
