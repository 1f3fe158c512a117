package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-reform/pkg/field"
	"github.com/goliatone/go-reform/pkg/form"
)

var (
	// ErrDuplicateForm is returned when two documents define the same form id.
	ErrDuplicateForm = errors.New("schema: duplicate form")
	// ErrUnknownType is returned for field types that are not field kinds.
	ErrUnknownType = errors.New("schema: unknown field type")
)

// Option configures loading.
type Option func(*config)

type config struct {
	sanitize func(string) string
}

// WithSanitizer runs labels, help text and choice labels through fn before
// they reach a definition. sanitize.StrictText is the usual choice for files
// from untrusted authors.
func WithSanitizer(fn func(string) string) Option {
	return func(cfg *config) {
		cfg.sanitize = fn
	}
}

// Form is one loaded form.
type Form struct {
	ID         string
	Title      string
	Source     string
	Definition *form.Definition
}

// Store holds loaded forms keyed by id.
type Store struct {
	forms map[string]Form
}

// LoadFS walks fsys and parses every .json, .yaml and .yml file. A nil fsys
// yields an empty store.
func LoadFS(fsys fs.FS, options ...Option) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}
		return store.add(data, SourceFromFS(path), options)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single document from disk. Directories are walked like
// LoadFS.
func LoadFile(path string, options ...Option) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("schema: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path), options...)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Parse(data, SourceFromFile(path), options...)
}

// Parse parses one document.
func Parse(data []byte, src Source, options ...Option) (*Store, error) {
	if src == nil {
		src = SourceFromBytes("")
	}
	store := newStore()
	if err := store.add(data, src, options); err != nil {
		return nil, err
	}
	return store, nil
}

// Definition returns the definition registered under id.
func (s *Store) Definition(id string) (*form.Definition, bool) {
	f, ok := s.Form(id)
	if !ok {
		return nil, false
	}
	return f.Definition, true
}

// Form returns the form registered under id.
func (s *Store) Form(id string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	f, ok := s.forms[strings.TrimSpace(id)]
	return f, ok
}

// IDs returns the loaded form ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Title  string      `json:"title" yaml:"title"`
	Fields []fieldFile `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	Name      string     `json:"name" yaml:"name"`
	Type      string     `json:"type" yaml:"type"`
	Required  *bool      `json:"required" yaml:"required"`
	Label     string     `json:"label" yaml:"label"`
	HelpText  string     `json:"helpText" yaml:"helpText"`
	Initial   any        `json:"initial" yaml:"initial"`
	InputType string     `json:"inputType" yaml:"inputType"`
	Choices   [][]string `json:"choices" yaml:"choices"`
}

func newStore() *Store {
	return &Store{forms: make(map[string]Form)}
}

func (s *Store) add(data []byte, src Source, options []Option) error {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	location := src.Location()
	doc, err := parseDocument(data, location)
	if err != nil {
		return err
	}

	for rawID, raw := range doc.Forms {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("schema: file %s defines an empty form id", location)
		}
		if existing, exists := s.forms[id]; exists {
			return fmt.Errorf("%w %q (files %s and %s)", ErrDuplicateForm, id, existing.Source, location)
		}

		def, err := buildDefinition(raw, cfg)
		if err != nil {
			return fmt.Errorf("schema: form %q (file %s): %w", id, location, err)
		}
		s.forms[id] = Form{
			ID:         id,
			Title:      cfg.clean(raw.Title),
			Source:     location,
			Definition: def,
		}
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("schema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("schema: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func buildDefinition(raw formFile, cfg config) (*form.Definition, error) {
	if len(raw.Fields) == 0 {
		return nil, errors.New("no fields defined")
	}

	entries := make([]form.Entry, 0, len(raw.Fields))
	for idx, spec := range raw.Fields {
		kind := field.Kind(strings.ToLower(strings.TrimSpace(spec.Type)))
		if kind == "" {
			kind = field.KindText
		}

		f, err := field.New(kind, fieldOptions(spec, cfg)...)
		if err != nil {
			return nil, fmt.Errorf("field %d (%q): %w: %q", idx, spec.Name, ErrUnknownType, spec.Type)
		}
		entries = append(entries, form.F(strings.TrimSpace(spec.Name), f))
	}

	return form.New(entries...)
}

func fieldOptions(spec fieldFile, cfg config) []field.Option {
	opts := []field.Option{
		field.WithLabel(cfg.clean(spec.Label)),
		field.WithHelpText(cfg.clean(spec.HelpText)),
		field.WithInputType(spec.InputType),
	}
	if spec.Required != nil {
		opts = append(opts, field.Required(*spec.Required))
	}
	if spec.Initial != nil {
		opts = append(opts, field.WithInitial(spec.Initial))
	}
	if len(spec.Choices) > 0 {
		choices := field.Pairs(spec.Choices...)
		for i := range choices {
			choices[i].Label = cfg.clean(choices[i].Label)
		}
		opts = append(opts, field.WithChoices(choices...))
	}
	return opts
}

func (c config) clean(value string) string {
	if c.sanitize == nil || value == "" {
		return value
	}
	return c.sanitize(value)
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
