package record

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/afero"
)

// IDWidth is the minimum number of digits in a record id.
const IDWidth = 4

var (
	numberedName  = regexp.MustCompile(`^(\d+)-.+$`)
	blankSlugName = regexp.MustCompile(`^(\d+)-$`)
)

// FormatID zero-pads n to IDWidth digits. Larger numbers are not truncated.
func FormatID(n int) string {
	return fmt.Sprintf("%0*d", IDWidth, n)
}

// ParseNumber extracts the leading number from a record folder name. The
// second result is false when name is not of the form <digits>-<something>.
func ParseNumber(name string) (int, bool) {
	m := numberedName.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextNumber scans the immediate subdirectories of dir and returns one more
// than the highest record number found, or 0 when there are none.
func NextNumber(fs afero.Fs, dir string) (int, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return 0, fmt.Errorf("reading records directory %s: %w", dir, err)
	}

	next := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		n, ok := ParseNumber(entry.Name())
		if ok && n >= next {
			next = n + 1
		}
	}
	return next, nil
}
