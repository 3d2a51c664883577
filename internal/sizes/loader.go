package sizes

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// document is the on-disk shape of the table file. The digest is optional;
// when present it must match the payload.
type document struct {
	Digest  string   `yaml:"digest,omitempty"`
	Systems []System `yaml:"systems" validate:"required,min=1,dive"`
}

// Load parses and validates a sizing table from raw YAML.
func Load(data []byte) (*Table, error) {
	return load(data, "")
}

// LoadFile reads, parses and validates the sizing table at path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, unavailable(path, "read data file", err)
	}
	return load(data, path)
}

func load(data []byte, path string) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, unavailable(path, "parse YAML", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, unavailable(path, "invalid table structure", err)
	}
	if err := checkSystems(doc.Systems); err != nil {
		return nil, unavailable(path, "invalid table", err)
	}
	if doc.Digest != "" && doc.Digest != Digest(doc.Systems) {
		return nil, unavailable(path, "digest mismatch, regenerate with ringscraper", nil)
	}
	for i := range doc.Systems {
		SortEntries(doc.Systems[i].Entries)
	}
	return NewTable(doc.Systems), nil
}

// checkSystems enforces what struct tags cannot: unique system codes and
// unique labels within each system.
func checkSystems(systems []System) error {
	codes := make(map[string]struct{}, len(systems))
	for _, s := range systems {
		if _, dup := codes[s.Code]; dup {
			return fmt.Errorf("duplicate system code %q", s.Code)
		}
		codes[s.Code] = struct{}{}
		labels := make(map[string]struct{}, len(s.Entries))
		for _, e := range s.Entries {
			if _, dup := labels[e.Label]; dup {
				return fmt.Errorf("duplicate label %q in system %q", e.Label, s.Code)
			}
			labels[e.Label] = struct{}{}
		}
	}
	return nil
}
