package record

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/sfkleach/decisions/internal/placeholder"
	"github.com/sfkleach/decisions/internal/template"
	"github.com/spf13/afero"
)

// ErrNotInitialized is returned by Add when the records directory is absent.
var ErrNotInitialized = errors.New("records directory does not exist")

// ErrTemplateMissing is returned by Add when the template file is absent.
var ErrTemplateMissing = template.ErrTemplateMissing

// Result holds the outcome of adding a record.
type Result struct {
	Number int
	ID     string
	Slug   string
	Dir    string // record folder
	File   string // record markdown file
}

// Manager adds and lists records in one records directory.
type Manager struct {
	fs    afero.Fs
	dir   string
	store *template.Store
	now   func() time.Time
	warn  io.Writer
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the time source used for the date placeholder.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithWarnings sets the writer that receives placeholder diagnostics.
func WithWarnings(w io.Writer) Option {
	return func(m *Manager) { m.warn = w }
}

// NewManager returns a Manager for the records directory dir on fs.
func NewManager(fs afero.Fs, dir string, opts ...Option) *Manager {
	m := &Manager{
		fs:    fs,
		dir:   dir,
		store: template.NewStore(fs, dir),
		now:   time.Now,
		warn:  io.Discard,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dir returns the records directory.
func (m *Manager) Dir() string { return m.dir }

// Store returns the template store backing this manager.
func (m *Manager) Store() *template.Store { return m.store }

// Initialized reports whether the records directory exists.
func (m *Manager) Initialized() bool {
	info, err := m.fs.Stat(m.dir)
	return err == nil && info.IsDir()
}

// Add creates the next numbered record for topic. The topic is used verbatim
// as the decision title and slugified for the folder and file names.
//
// Add returns ErrNotInitialized without touching the filesystem when the
// records directory is missing, and ErrTemplateMissing when the template
// cannot be found. In the latter case the record folder has already been
// created and is left in place.
func (m *Manager) Add(topic string) (*Result, error) {
	if !m.Initialized() {
		return nil, fmt.Errorf("%w: %s", ErrNotInitialized, m.dir)
	}

	slug := Slugify(topic)

	number, err := NextNumber(m.fs, m.dir)
	if err != nil {
		return nil, err
	}

	id := FormatID(number)
	name := id + "-" + slug
	recordDir := filepath.Join(m.dir, name)
	recordFile := filepath.Join(recordDir, name+".md")

	if err := m.fs.MkdirAll(recordDir, template.DirPerm); err != nil {
		return nil, fmt.Errorf("creating record directory %s: %w", recordDir, err)
	}

	text, err := m.store.Read()
	if err != nil {
		return nil, err
	}

	rendered := placeholder.Builtins(m.warn, topic, id, m.now()).Render(text)

	if err := afero.WriteFile(m.fs, recordFile, []byte(rendered), template.FilePerm); err != nil {
		return nil, fmt.Errorf("writing record %s: %w", recordFile, err)
	}

	return &Result{
		Number: number,
		ID:     id,
		Slug:   slug,
		Dir:    recordDir,
		File:   recordFile,
	}, nil
}
