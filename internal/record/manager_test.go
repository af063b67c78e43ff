package record

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sfkleach/decisions/internal/template"
	"github.com/spf13/afero"
)

var fixedNow = time.Date(2024, time.March, 9, 10, 0, 0, 0, time.UTC)

func newInitialized(t *testing.T) (afero.Fs, *Manager) {
	t.Helper()
	fs := afero.NewMemMapFs()
	m := NewManager(fs, filepath.Join("docs", "decisions"), WithClock(func() time.Time { return fixedNow }))
	if _, err := m.Store().Initialize(); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	return fs, m
}

func TestAddAdoptGRPC(t *testing.T) {
	fs, m := newInitialized(t)

	result, err := m.Add("Adopt gRPC")
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	want := &Result{
		Number: 0,
		ID:     "0000",
		Slug:   "adopt-grpc",
		Dir:    filepath.Join("docs", "decisions", "0000-adopt-grpc"),
		File:   filepath.Join("docs", "decisions", "0000-adopt-grpc", "0000-adopt-grpc.md"),
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Add() result mismatch (-want +got):\n%s", diff)
	}

	content := readFile(t, fs, result.File)
	if !strings.HasPrefix(content, "# 0000 - Adopt gRPC, 2024-03-09\n") {
		t.Errorf("unexpected title line:\n%s", content)
	}
}

func TestAddRendersAllBuiltins(t *testing.T) {
	fs, m := newInitialized(t)
	for i := 0; i < 7; i++ {
		if _, err := m.Add(fmt.Sprintf("filler %d", i)); err != nil {
			t.Fatal(err)
		}
	}

	result, err := m.Add("Use Caching")
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if result.ID != "0007" {
		t.Fatalf("ID = %q, want 0007", result.ID)
	}

	content := readFile(t, fs, result.File)
	if !strings.Contains(content, "0007 - Use Caching, 2024-03-09") {
		t.Errorf("content missing rendered title:\n%s", content)
	}
	for _, tok := range []string{"{{Decision Title}}", "{{YYYY-MM-DD}}", "{{RecordID}}"} {
		if strings.Contains(content, tok) {
			t.Errorf("content still contains %s", tok)
		}
	}
}

func TestAddSequentialIDs(t *testing.T) {
	_, m := newInitialized(t)

	const n = 12
	for i := 0; i < n; i++ {
		result, err := m.Add(fmt.Sprintf("Decision %d", i))
		if err != nil {
			t.Fatalf("Add(%d) error: %v", i, err)
		}
		if result.Number != i {
			t.Errorf("Add(%d) number = %d, want %d", i, result.Number, i)
		}
		if want := FormatID(i); result.ID != want {
			t.Errorf("Add(%d) id = %q, want %q", i, result.ID, want)
		}
	}
}

func TestAddResumesAfterGap(t *testing.T) {
	fs, m := newInitialized(t)
	for _, d := range []string{"0000-x", "0002-y"} {
		if err := fs.MkdirAll(filepath.Join(m.Dir(), d), 0755); err != nil {
			t.Fatal(err)
		}
	}

	result, err := m.Add("After gap")
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if result.Number != 3 {
		t.Errorf("Number = %d, want 3", result.Number)
	}
}

func TestAddBeforeInitLeavesFilesystemUnchanged(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := NewManager(fs, filepath.Join("docs", "decisions"))

	_, err := m.Add("Too early")
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Add() error = %v, want ErrNotInitialized", err)
	}

	entries, err := afero.ReadDir(fs, "/")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("filesystem changed: %d entries at root", len(entries))
	}
	if exists, _ := afero.DirExists(fs, "docs"); exists {
		t.Error("docs directory should not have been created")
	}
}

func TestAddWithoutTemplate(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "decisions"
	if err := fs.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	m := NewManager(fs, dir)

	_, err := m.Add("No template")
	if !errors.Is(err, ErrTemplateMissing) {
		t.Fatalf("Add() error = %v, want ErrTemplateMissing", err)
	}

	// The folder is created before the template is read.
	if exists, _ := afero.DirExists(fs, filepath.Join(dir, "0000-no-template")); !exists {
		t.Error("record folder should exist")
	}
	if exists, _ := afero.Exists(fs, filepath.Join(dir, "0000-no-template", "0000-no-template.md")); exists {
		t.Error("record file should not exist")
	}
}

func TestAddUsesEditedTemplate(t *testing.T) {
	fs, m := newInitialized(t)
	custom := "{{RecordID}}: {{Decision Title}} ({{Status}})\n"
	if err := afero.WriteFile(fs, m.Store().Path(), []byte(custom), template.FilePerm); err != nil {
		t.Fatal(err)
	}

	result, err := m.Add("Custom")
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if got := readFile(t, fs, result.File); got != "0000: Custom ({{Status}})\n" {
		t.Errorf("content = %q", got)
	}
}

func TestAddEmptyTopic(t *testing.T) {
	fs, m := newInitialized(t)

	result, err := m.Add("   ")
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if result.Slug != "" {
		t.Errorf("Slug = %q, want empty", result.Slug)
	}
	if want := filepath.Join(m.Dir(), "0000-", "0000-.md"); result.File != want {
		t.Errorf("File = %q, want %q", result.File, want)
	}
	if _, err := fs.Stat(result.File); err != nil {
		t.Errorf("record file not written: %v", err)
	}
}

func TestAddWarnsThroughWriter(t *testing.T) {
	var warn bytes.Buffer
	fs := afero.NewMemMapFs()
	m := NewManager(fs, "d", WithWarnings(&warn))
	if _, err := m.Store().Initialize(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Add("Quiet"); err != nil {
		t.Fatal(err)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warnings: %q", warn.String())
	}
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
