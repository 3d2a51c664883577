package scrape

import (
	"errors"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// regionCodes maps size column headers from the reference page onto short
// system codes. Headers are matched exactly after whitespace
// normalization; a renamed column on the page means a skipped region and
// an entry to add here.
var regionCodes = map[string]string{
	"United Kingdom, Ireland, Australia, South Africa and New Zealand": "UK",
	"United States, Canada and Mexico":                                 "US",
	"East Asia (China, Japan, South Korea), South America":             "Japan",
	"India":                                                            "India",
	"Italy, Spain, Netherlands, Switzerland":                           "Italy",
	"(mm) ISO (Continental Europe)":                                    "ISO",
}

// Placeholder cell values that mean "no size at this diameter".
var blankLabels = map[string]struct{}{
	"": {}, "-": {}, "–": {}, "—": {},
}

type regionColumn struct {
	index  int
	header string
	code   string
}

type columnLayout struct {
	diameter int
	regions  []regionColumn
}

func normalizeHeader(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Circumference subheaders carry a unit marker like "(mm)" in front of
// the region name.
var unitPrefixRe = regexp.MustCompile(`^\((?:mm|in)\)\s*`)

func regionName(header string) string {
	return unitPrefixRe.ReplaceAllString(header, "")
}

// classifyColumns locates the diameter-in-millimeters column and every
// size column with a known region mapping. Size columns without a
// mapping are logged and skipped. Regions from the Sizes group come
// before the ISO column so the generated file keeps its usual order.
func classifyColumns(top, sub []string, log *slog.Logger) (columnLayout, error) {
	layout := columnLayout{diameter: -1}
	var sizeCols, circumferenceCols []regionColumn
	seen := make(map[string]struct{})

	for i := range top {
		topNorm := strings.ToLower(normalizeHeader(top[i]))
		subNorm := normalizeHeader(sub[i])

		switch topNorm {
		case "inside diameter":
			if layout.diameter < 0 && strings.HasPrefix(strings.ToLower(subNorm), "(mm") {
				layout.diameter = i
			}
		case "sizes", "inside circumference":
			code, ok := regionCodes[subNorm]
			if !ok {
				if topNorm == "sizes" {
					log.Warn("no region mapping for size column, skipping", "header", subNorm)
				}
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			rc := regionColumn{index: i, header: subNorm, code: code}
			if topNorm == "sizes" {
				sizeCols = append(sizeCols, rc)
			} else {
				circumferenceCols = append(circumferenceCols, rc)
			}
		}
	}
	layout.regions = append(sizeCols, circumferenceCols...)

	if layout.diameter < 0 {
		return layout, errors.New("inside diameter (mm) column not found")
	}
	if len(layout.regions) == 0 {
		return layout, errors.New("no size columns with a known region mapping")
	}
	return layout, nil
}

func isBlankLabel(s string) bool {
	_, blank := blankLabels[strings.TrimSpace(s)]
	return blank
}

func parseDiameter(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
