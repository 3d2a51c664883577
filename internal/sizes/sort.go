package sizes

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	mixedFractionRe  = regexp.MustCompile(`^(\d+)[+ ](\d+)/(\d+)$`)
	simpleFractionRe = regexp.MustCompile(`^(\d+)/(\d+)$`)
	alphaNumRunRe    = regexp.MustCompile(`\d+|\D+`)
)

// Vulgar fraction glyphs that appear in reference-table size labels.
var vulgarFractions = map[rune]float64{
	'¼': 0.25,
	'½': 0.5,
	'¾': 0.75,
}

// ParseLabelValue interprets a size label as a number when possible.
// Besides plain decimals it understands "1/2", "1+1/4", "1 1/4", the
// U+2044 fraction slash, and trailing vulgar fraction glyphs as in "6½".
func ParseLabelValue(label string) (float64, bool) {
	s := strings.TrimSpace(label)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, "⁄", "/")

	runes := []rune(s)
	if frac, ok := vulgarFractions[runes[len(runes)-1]]; ok {
		rest := strings.TrimSpace(string(runes[:len(runes)-1]))
		if rest == "" {
			return frac, true
		}
		whole, err := strconv.Atoi(rest)
		if err != nil {
			return 0, false
		}
		return float64(whole) + frac, true
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if m := mixedFractionRe.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			return 0, false
		}
		return whole + num/den, true
	}
	if m := simpleFractionRe.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 0, false
		}
		return num / den, true
	}
	return 0, false
}

// CompareLabels orders size labels the way they are listed in reference
// tables: numeric labels first, ascending by value, then the rest in
// natural order ("Z1" before "Z10"). Returns -1, 0 or 1.
func CompareLabels(a, b string) int {
	av, aNum := ParseLabelValue(a)
	bv, bNum := ParseLabelValue(b)
	switch {
	case aNum && bNum:
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return strings.Compare(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return compareNatural(a, b)
}

// compareNatural compares strings run by run, treating digit runs as
// numbers and the rest case-insensitively.
func compareNatural(a, b string) int {
	ar := alphaNumRunRe.FindAllString(a, -1)
	br := alphaNumRunRe.FindAllString(b, -1)
	for i := 0; i < len(ar) && i < len(br); i++ {
		as, bs := ar[i], br[i]
		an, aErr := strconv.Atoi(as)
		bn, bErr := strconv.Atoi(bs)
		if aErr == nil && bErr == nil {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			continue
		}
		if c := strings.Compare(strings.ToLower(as), strings.ToLower(bs)); c != 0 {
			return c
		}
	}
	switch {
	case len(ar) < len(br):
		return -1
	case len(ar) > len(br):
		return 1
	}
	return strings.Compare(a, b)
}

// SortEntries orders entries ascending by diameter, breaking ties by
// label order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DiameterMM != entries[j].DiameterMM {
			return entries[i].DiameterMM < entries[j].DiameterMM
		}
		return CompareLabels(entries[i].Label, entries[j].Label) < 0
	})
}
