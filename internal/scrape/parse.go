package scrape

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Top-level headers that identify the equivalency table among the many
// tables on the page.
var equivalencyMarkers = []string{"sizes", "inside diameter", "inside circumference"}

// Table index tried when no table matches the header heuristic. The
// equivalency table has historically been the third table on the page.
const fallbackTableIndex = 2

type tableCell struct {
	text    string
	rowSpan int
	colSpan int
	header  bool
}

// tableGrid is a <table> with all row and column spans resolved into a
// dense cell grid.
type tableGrid struct {
	headerRows int
	cells      [][]string
}

// headerLevels returns the top-level and sub-level header rows. Tables
// with a single header row use it for both levels.
func (g *tableGrid) headerLevels() (top, sub []string) {
	if g.headerRows == 0 || len(g.cells) == 0 {
		return nil, nil
	}
	top = g.cells[0]
	sub = top
	if g.headerRows > 1 {
		sub = g.cells[1]
	}
	return top, sub
}

// body returns the non-header rows.
func (g *tableGrid) body() [][]string {
	if g.headerRows >= len(g.cells) {
		return nil
	}
	return g.cells[g.headerRows:]
}

// matchesEquivalency reports whether at least two of the marker headers
// appear in the table's top header row.
func (g *tableGrid) matchesEquivalency() bool {
	top, _ := g.headerLevels()
	found := 0
	for _, marker := range equivalencyMarkers {
		for _, h := range top {
			if strings.ToLower(normalizeHeader(h)) == marker {
				found++
				break
			}
		}
	}
	return found >= 2
}

// selectEquivalencyGrid picks the equivalency table out of all tables in
// the document, falling back to a fixed index when no header matches.
func selectEquivalencyGrid(tables []*html.Node) *tableGrid {
	grids := make([]*tableGrid, 0, len(tables))
	for _, t := range tables {
		grids = append(grids, gridFromTable(t))
	}
	for _, g := range grids {
		if g.matchesEquivalency() {
			return g
		}
	}
	if len(grids) > fallbackTableIndex {
		return grids[fallbackTableIndex]
	}
	return nil
}

// collectTables returns every <table> element in document order,
// including nested ones; selection decides which is the right one.
func collectTables(root *html.Node) []*html.Node {
	var tables []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			tables = append(tables, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return tables
}

// gridFromTable flattens one table into a span-resolved grid. Leading
// rows made entirely of <th> cells count as header rows.
func gridFromTable(table *html.Node) *tableGrid {
	var rows [][]tableCell
	for _, tr := range tableRows(table) {
		rows = append(rows, rowCells(tr))
	}

	type coord struct{ r, c int }
	occupied := make(map[coord]string)
	width := 0
	for r, row := range rows {
		c := 0
		for _, cell := range row {
			for {
				if _, taken := occupied[coord{r, c}]; !taken {
					break
				}
				c++
			}
			for dr := 0; dr < cell.rowSpan; dr++ {
				for dc := 0; dc < cell.colSpan; dc++ {
					occupied[coord{r + dr, c + dc}] = cell.text
				}
			}
			c += cell.colSpan
		}
		if c > width {
			width = c
		}
	}

	g := &tableGrid{cells: make([][]string, len(rows))}
	for r := range rows {
		g.cells[r] = make([]string, width)
		for c := 0; c < width; c++ {
			g.cells[r][c] = occupied[coord{r, c}]
		}
	}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		allHeader := true
		for _, cell := range row {
			if !cell.header {
				allHeader = false
				break
			}
		}
		if !allHeader {
			break
		}
		g.headerRows++
	}
	return g
}

// tableRows returns the <tr> elements of table, not descending into
// nested tables.
func tableRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "table":
				continue
			case "tr":
				rows = append(rows, c)
			default:
				walk(c)
			}
		}
	}
	walk(table)
	return rows
}

// rowCells returns the <th>/<td> cells of one row.
func rowCells(tr *html.Node) []tableCell {
	var cells []tableCell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.Data != "th" && c.Data != "td" {
			continue
		}
		cells = append(cells, tableCell{
			text:    nodeText(c),
			rowSpan: attrSpan(c, "rowspan"),
			colSpan: attrSpan(c, "colspan"),
			header:  c.Data == "th",
		})
	}
	return cells
}

func attrSpan(n *html.Node, name string) int {
	for _, a := range n.Attr {
		if a.Key == name {
			if v, err := strconv.Atoi(strings.TrimSpace(a.Val)); err == nil && v > 0 {
				return v
			}
		}
	}
	return 1
}

// nodeText collects the visible text of a node. Footnote markers and
// embedded styling are dropped so headers and values compare cleanly.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "sup", "style", "script":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
