package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ring-tool/internal/flow"
)

// Margin around the circle in the SVG viewport, in millimeters.
const svgMarginMM = 2.0

// Length of each origin cross-hair arm, in millimeters.
const crossHairMM = 1.5

var svgEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// SVGDocument renders a standalone SVG containing one circle centered on
// the origin, drawn at real millimeter scale, with origin cross-hairs.
func SVGDocument(c flow.Circle) string {
	r := c.RadiusMM()
	half := r + svgMarginMM
	side := 2 * half

	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%smm\" height=\"%smm\" viewBox=\"%s %s %s %s\">\n",
		mm(side), mm(side), mm(-half), mm(-half), mm(side), mm(side))
	fmt.Fprintf(&b, "  <title>%s size %s</title>\n", svgEscaper.Replace(c.System), svgEscaper.Replace(c.Label))
	fmt.Fprintf(&b, "  <line x1=\"%s\" y1=\"0\" x2=\"%s\" y2=\"0\" stroke=\"#999\" stroke-width=\"0.1\"/>\n",
		mm(-crossHairMM), mm(crossHairMM))
	fmt.Fprintf(&b, "  <line x1=\"0\" y1=\"%s\" x2=\"0\" y2=\"%s\" stroke=\"#999\" stroke-width=\"0.1\"/>\n",
		mm(-crossHairMM), mm(crossHairMM))
	fmt.Fprintf(&b, "  <circle cx=\"0\" cy=\"0\" r=\"%s\" fill=\"none\" stroke=\"#000\" stroke-width=\"0.25\"/>\n", mm(r))
	b.WriteString("</svg>\n")
	return b.String()
}

func mm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteSVG writes the circle document to path, creating parent
// directories as needed.
func WriteSVG(path string, c flow.Circle) error {
	if c.DiameterMM <= 0 {
		return fmt.Errorf("invalid circle diameter %v mm", c.DiameterMM)
	}
	if err := EnsureDir(path); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(SVGDocument(c)), 0644); err != nil {
		return fmt.Errorf("write svg file: %w", err)
	}
	return nil
}

// Drawer satisfies the drawing capability for headless runs by writing
// each circle to an SVG file instead of a work plane.
type Drawer struct {
	// Path is the target file. When it names an existing directory the
	// file name is derived from the selection and the current date.
	Path string
}

func (d *Drawer) DrawCircle(c flow.Circle) error {
	path := d.Path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, CircleFileName(c, time.Now()))
	}
	return WriteSVG(path, c)
}

var _ flow.Drawer = (*Drawer)(nil)
