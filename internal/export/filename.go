package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ring-tool/internal/flow"
)

// Size labels may contain fraction glyphs and slashes; map them to
// filesystem-safe spellings before anything else.
var labelReplacer = strings.NewReplacer(
	"½", "1-2",
	"¼", "1-4",
	"¾", "3-4",
	"⁄", "-",
	"/", "-",
	"+", "-",
)

// DateSuffix returns the date portion in "02.01.2006" format.
func DateSuffix(t time.Time) string {
	return t.Format("02.01.2006")
}

// CircleFileName returns a file name of the form
// "ring_UK_P_13.02.2026.svg" for a drawn circle.
func CircleFileName(c flow.Circle, t time.Time) string {
	return fmt.Sprintf("ring_%s_%s_%s.svg", slug(c.System), slug(c.Label), DateSuffix(t))
}

// slug reduces a system code or size label to filename-safe characters.
func slug(s string) string {
	s = labelReplacer.Replace(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// EnsureDir creates the directory component of path (equivalent to mkdir -p)
// with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
