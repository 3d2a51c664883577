package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ring-tool/internal/config"
	"ring-tool/internal/sizes"
)

const testTableYAML = `systems:
  - code: UK
    name: United Kingdom, Ireland, Australia, South Africa and New Zealand
    sizes:
      - label: A
        diameter_mm: 12.0
      - label: P
        diameter_mm: 17.2
  - code: US
    name: United States, Canada and Mexico
    sizes:
      - label: "7"
        diameter_mm: 17.3
`

func writeTestTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ring_sizes.yaml")
	if err := os.WriteFile(path, []byte(testTableYAML), 0644); err != nil {
		t.Fatalf("write table fixture: %v", err)
	}
	return path
}

func testConfig() config.Config {
	return config.Config{TablePath: "data/ring_sizes.yaml", DefaultSystem: "UK"}
}

func TestRunMissingTable(t *testing.T) {
	opts := Options{List: true, TablePath: filepath.Join(t.TempDir(), "absent.yaml")}

	err := Run(opts, testConfig())

	var unavailable *sizes.DataUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("Run() error = %v, want DataUnavailableError", err)
	}
}

func TestRunUnknownSize(t *testing.T) {
	opts := Options{System: "UK", Size: "Q", TablePath: writeTestTable(t)}

	err := Run(opts, testConfig())
	if !errors.Is(err, sizes.ErrUnknownLabel) {
		t.Errorf("Run() error = %v, want ErrUnknownLabel", err)
	}
	if err == nil || !strings.Contains(err.Error(), "-list") {
		t.Errorf("Run() error %q should point at -list", err)
	}
}

func TestRunUnknownSystem(t *testing.T) {
	opts := Options{System: "EU", Size: "7", TablePath: writeTestTable(t)}

	err := Run(opts, testConfig())
	if !errors.Is(err, sizes.ErrUnknownSystem) {
		t.Errorf("Run() error = %v, want ErrUnknownSystem", err)
	}
}

func TestRunLookupWritesSVG(t *testing.T) {
	svgPath := filepath.Join(t.TempDir(), "out", "circle.svg")
	opts := Options{System: "UK", Size: "P", SVGPath: svgPath, TablePath: writeTestTable(t)}

	if err := Run(opts, testConfig()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("read SVG: %v", err)
	}
	if !strings.Contains(string(data), `r="8.6"`) {
		t.Errorf("SVG missing the circle radius, got:\n%s", data)
	}
}

func TestRunListModes(t *testing.T) {
	path := writeTestTable(t)

	if err := Run(Options{List: true, TablePath: path}, testConfig()); err != nil {
		t.Errorf("Run(-list) error = %v", err)
	}
	if err := Run(Options{System: "US", TablePath: path}, testConfig()); err != nil {
		t.Errorf("Run(-system) error = %v", err)
	}
	if err := Run(Options{List: true, System: "US", TablePath: path}, testConfig()); err != nil {
		t.Errorf("Run(-list -system) error = %v", err)
	}
}
