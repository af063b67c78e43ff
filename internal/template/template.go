package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sfkleach/decisions/internal/branding"
	"github.com/spf13/afero"
)

// Default is the template written by Initialize.
const Default = `# {{RecordID}} - {{Decision Title}}, {{YYYY-MM-DD}}

## Issue
Describe the problem and decision to be made here...

## Factors
List the factors that should be considered...

## Options and Outcome
List possible options considered and the outcome of the decision...

## Consequences
The impact of the decision...

## Pros and Cons of Options

### Option 1
- Pros
- Cons
- Interesting

### Option 2
Etc ...

## Additional Notes
`

// ErrTemplateMissing is returned by Read when the template file does not exist.
var ErrTemplateMissing = errors.New("template file not found")

// Permission bits for created directories and files.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Store reads and writes the template inside a records directory.
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore returns a Store for the records directory dir on fs.
func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Dir returns the records directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the template file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, branding.TemplateName())
}

// Exists reports whether the template file is present.
func (s *Store) Exists() bool {
	info, err := s.fs.Stat(s.Path())
	return err == nil && !info.IsDir()
}

// Initialize creates the records directory if needed and writes Default to
// the template path, overwriting any existing file. It returns the path.
func (s *Store) Initialize() (string, error) {
	if err := s.fs.MkdirAll(s.dir, DirPerm); err != nil {
		return "", fmt.Errorf("creating records directory %s: %w", s.dir, err)
	}
	path := s.Path()
	if err := afero.WriteFile(s.fs, path, []byte(Default), FilePerm); err != nil {
		return "", fmt.Errorf("writing template %s: %w", path, err)
	}
	return path, nil
}

// Read returns the template text.
func (s *Store) Read() (string, error) {
	path := s.Path()
	if !s.Exists() {
		return "", fmt.Errorf("%w at %s", ErrTemplateMissing, path)
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}
