package record

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Check validates the records directory and reports one line per finding to
// w. When fix is true it repairs what it safely can: a missing directory or
// template is (re)created and empty record folders are removed. It returns
// the number of problems left unfixed.
func (m *Manager) Check(w io.Writer, fix bool) (int, error) {
	problems := 0

	fmt.Fprintln(w, "Records check:")

	if !m.Initialized() {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", m.dir)
		if !fix {
			fmt.Fprintln(w, "         Run with --fix or use --init to create it")
			return 1, nil
		}
		if _, err := m.store.Initialize(); err != nil {
			return problems, fmt.Errorf("auto-fix init: %w", err)
		}
		fmt.Fprintf(w, "  [FIX ] Created %s and %s\n", m.dir, m.store.Path())
	} else {
		fmt.Fprintf(w, "  [ OK ] %s exists\n", m.dir)
	}

	if m.store.Exists() {
		fmt.Fprintf(w, "  [ OK ] %s exists\n", m.store.Path())
	} else {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", m.store.Path())
		if fix {
			if _, err := m.store.Initialize(); err != nil {
				return problems, fmt.Errorf("auto-fix template: %w", err)
			}
			fmt.Fprintf(w, "  [FIX ] Wrote default template to %s\n", m.store.Path())
		} else {
			problems++
		}
	}

	entries, err := afero.ReadDir(m.fs, m.dir)
	if err != nil {
		return problems, fmt.Errorf("reading records directory %s: %w", m.dir, err)
	}

	byNumber := make(map[int][]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()

		// "<id>-" folders come from blank topics; they are invisible to numbering.
		if match := blankSlugName.FindStringSubmatch(name); match != nil {
			fmt.Fprintf(w, "  [WARN] %s has an empty slug and does not count towards numbering (id %s may be reused)\n", name, match[1])
			problems++
			continue
		}

		n, ok := ParseNumber(name)
		if !ok {
			continue
		}
		byNumber[n] = append(byNumber[n], name)

		dir := filepath.Join(m.dir, name)
		file := filepath.Join(dir, name+".md")
		if exists, _ := afero.Exists(m.fs, file); exists {
			continue
		}

		empty, _ := afero.IsEmpty(m.fs, dir)
		if fix && empty {
			if err := m.fs.Remove(dir); err != nil {
				fmt.Fprintf(w, "  [FAIL] Could not remove %s: %v\n", dir, err)
				problems++
				continue
			}
			fmt.Fprintf(w, "  [FIX ] Removed empty record folder %s\n", dir)
			continue
		}
		fmt.Fprintf(w, "  [WARN] %s is missing %s.md\n", name, name)
		problems++
	}

	numbers := make([]int, 0, len(byNumber))
	for n := range byNumber {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	for _, n := range numbers {
		if names := byNumber[n]; len(names) > 1 {
			fmt.Fprintf(w, "  [WARN] id %s is used by %d records: %s\n", FormatID(n), len(names), strings.Join(names, ", "))
			problems++
		}
	}

	if problems == 0 {
		fmt.Fprintf(w, "  [ OK ] %d record(s), no problems found\n", len(numbers))
	}
	return problems, nil
}
