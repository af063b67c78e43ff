package record

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestList(t *testing.T) {
	fs, m := newInitialized(t)
	for _, topic := range []string{"Adopt gRPC", "Use Caching", "Drop XML"} {
		if _, err := m.Add(topic); err != nil {
			t.Fatal(err)
		}
	}
	// A numbered folder without its markdown file, and noise to be skipped.
	if err := fs.MkdirAll(filepath.Join(m.Dir(), "0010-empty"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := fs.MkdirAll(filepath.Join(m.Dir(), "assets"), 0755); err != nil {
		t.Fatal(err)
	}

	records, err := m.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	dir := m.Dir()
	want := []Record{
		{Number: 0, ID: "0000", Name: "0000-adopt-grpc", Dir: filepath.Join(dir, "0000-adopt-grpc"),
			File: filepath.Join(dir, "0000-adopt-grpc", "0000-adopt-grpc.md"), Title: "0000 - Adopt gRPC, 2024-03-09"},
		{Number: 1, ID: "0001", Name: "0001-use-caching", Dir: filepath.Join(dir, "0001-use-caching"),
			File: filepath.Join(dir, "0001-use-caching", "0001-use-caching.md"), Title: "0001 - Use Caching, 2024-03-09"},
		{Number: 2, ID: "0002", Name: "0002-drop-xml", Dir: filepath.Join(dir, "0002-drop-xml"),
			File: filepath.Join(dir, "0002-drop-xml", "0002-drop-xml.md"), Title: "0002 - Drop XML, 2024-03-09"},
		{Number: 10, ID: "0010", Name: "0010-empty", Dir: filepath.Join(dir, "0010-empty")},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestListNotInitialized(t *testing.T) {
	m := NewManager(afero.NewMemMapFs(), "nowhere")
	if _, err := m.List(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("List() error = %v, want ErrNotInitialized", err)
	}
}

func TestRecordMatch(t *testing.T) {
	r := Record{Name: "0003-adopt-grpc"}

	tests := []struct {
		pattern string
		want    bool
	}{
		{"*grpc*", true},
		{"0003-*", true},
		{"000?-adopt-*", true},
		{"*caching*", false},
		{"{0001,0003}-*", true},
	}
	for _, tt := range tests {
		got, err := r.Match(tt.pattern)
		if err != nil {
			t.Fatalf("Match(%q) error: %v", tt.pattern, err)
		}
		if got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}

	if _, err := r.Match("[unclosed"); err == nil {
		t.Error("expected error for malformed pattern")
	}
}
