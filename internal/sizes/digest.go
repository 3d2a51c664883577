package sizes

import (
	"bytes"
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the hex-encoded BLAKE2b-256 digest of a table payload.
// The generator embeds it in the data file and the loader refuses tables
// whose recorded digest no longer matches, so hand edits surface as a
// load error instead of a silently wrong circle.
func Digest(systems []System) string {
	var buf bytes.Buffer
	for _, s := range systems {
		buf.WriteString(s.Code)
		buf.WriteByte('\n')
		buf.WriteString(s.Name)
		buf.WriteByte('\n')
		for _, e := range s.Entries {
			buf.WriteString(e.Label)
			buf.WriteByte('\t')
			buf.WriteString(strconv.FormatFloat(e.DiameterMM, 'f', 1, 64))
			buf.WriteByte('\n')
		}
	}
	sum := blake2b.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
