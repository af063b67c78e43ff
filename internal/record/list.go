package record

import (
	"bufio"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Record describes an existing record folder.
type Record struct {
	Number int    `json:"number"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Dir    string `json:"dir"`
	File   string `json:"file,omitempty"`  // empty when the markdown file is missing
	Title  string `json:"title,omitempty"` // first heading of File, without "# "
}

// Match reports whether the record's folder name matches a doublestar glob.
func (r Record) Match(pattern string) (bool, error) {
	ok, err := doublestar.Match(pattern, r.Name)
	if err != nil {
		return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return ok, nil
}

// List returns every numbered record folder, ordered by number then name.
func (m *Manager) List() ([]Record, error) {
	if !m.Initialized() {
		return nil, fmt.Errorf("%w: %s", ErrNotInitialized, m.dir)
	}

	entries, err := afero.ReadDir(m.fs, m.dir)
	if err != nil {
		return nil, fmt.Errorf("reading records directory %s: %w", m.dir, err)
	}

	var records []Record
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		n, ok := ParseNumber(entry.Name())
		if !ok {
			continue
		}

		rec := Record{
			Number: n,
			ID:     FormatID(n),
			Name:   entry.Name(),
			Dir:    filepath.Join(m.dir, entry.Name()),
		}
		file := filepath.Join(rec.Dir, entry.Name()+".md")
		if info, err := m.fs.Stat(file); err == nil && !info.IsDir() {
			rec.File = file
			rec.Title = m.readTitle(file)
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Number != records[j].Number {
			return records[i].Number < records[j].Number
		}
		return records[i].Name < records[j].Name
	})
	return records, nil
}

// readTitle returns the first markdown heading in path, or "" if none.
func (m *Manager) readTitle(path string) string {
	f, err := m.fs.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
