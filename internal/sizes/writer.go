package sizes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Encode renders systems as the table file format: a generated-file
// header, the payload digest and the systems in display order. Entries
// are sorted before encoding so the file order matches what the loader
// expects, and systems the loader would reject fail here too.
func Encode(systems []System, sourceURL string) ([]byte, error) {
	for i := range systems {
		SortEntries(systems[i].Entries)
	}
	doc := document{Digest: Digest(systems), Systems: systems}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("encode sizing table: %w", err)
	}
	if err := checkSystems(systems); err != nil {
		return nil, fmt.Errorf("encode sizing table: %w", err)
	}
	payload, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encode sizing table: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# Ring size table. Generated by ringscraper, DO NOT EDIT.\n")
	if sourceURL != "" {
		fmt.Fprintf(&buf, "# Source: %s\n", sourceURL)
	}
	buf.Write(payload)
	return buf.Bytes(), nil
}

// WriteFile encodes systems and replaces the file at path atomically, so
// a crashed generator never leaves a half-written table behind.
func WriteFile(path string, systems []System, sourceURL string) error {
	data, err := Encode(systems, sourceURL)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create table directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".ring_sizes-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp table file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp table file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp table file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace table file: %w", err)
	}
	return nil
}
