package sizes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeHeader(t *testing.T) {
	data, err := Encode(testSystems(), "https://en.wikipedia.org/wiki/Ring_size")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	text := string(data)
	if !strings.HasPrefix(text, "# Ring size table.") {
		t.Errorf("missing generated-file header:\n%s", text)
	}
	if !strings.Contains(text, "# Source: https://en.wikipedia.org/wiki/Ring_size") {
		t.Errorf("missing source line:\n%s", text)
	}
	if !strings.Contains(text, "digest: ") {
		t.Errorf("missing digest field:\n%s", text)
	}
}

func TestEncodeSortsEntries(t *testing.T) {
	systems := []System{{
		Code: "UK",
		Entries: []Entry{
			{Label: "P", DiameterMM: 17.2},
			{Label: "A", DiameterMM: 12.0},
		},
	}}

	data, err := Encode(systems, "")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	text := string(data)
	if strings.Index(text, "label: A") > strings.Index(text, "label: P") {
		t.Errorf("entries not sorted ascending by diameter:\n%s", text)
	}
}

func TestEncodeRejectsDuplicates(t *testing.T) {
	systems := []System{{
		Code: "UK",
		Entries: []Entry{
			{Label: "A", DiameterMM: 12.0},
			{Label: "A", DiameterMM: 12.4},
		},
	}}

	if _, err := Encode(systems, ""); err == nil {
		t.Error("Encode() expected error for duplicate labels")
	}
}

func TestEncodeRejectsWhatLoadRejects(t *testing.T) {
	systems := []System{{
		Code:    "UK",
		Entries: []Entry{{Label: "A", DiameterMM: 0}},
	}}

	if _, err := Encode(systems, ""); err == nil {
		t.Error("Encode() expected error for a zero diameter")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ring_sizes.yaml")

	if err := WriteFile(path, testSystems(), "https://en.wikipedia.org/wiki/Ring_size"); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	tbl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	d, err := tbl.Lookup("UK", "P")
	if err != nil {
		t.Fatalf("Lookup(UK, P) error: %v", err)
	}
	if d != 17.2 {
		t.Errorf("Lookup(UK, P) = %v, want 17.2", d)
	}
}

func TestWriteFileReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring_sizes.yaml")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, testSystems(), ""); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile() after replace error: %v", err)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestDigestChangesWithPayload(t *testing.T) {
	a := testSystems()
	b := testSystems()
	b[0].Entries[1].DiameterMM = 17.3

	if Digest(a) == Digest(b) {
		t.Error("digest should change when a diameter changes")
	}
	if Digest(a) != Digest(testSystems()) {
		t.Error("digest should be stable for identical payloads")
	}
	if len(Digest(a)) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(Digest(a)))
	}
}
