// Package store persists tag overrides and custom tags and tells interested
// parties when that happened.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"slices"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"nametag/tags"
)

// Version of the store document.
const Version = 1

type customTag struct {
	ID         string               `yaml:"id"`
	Name       string               `yaml:"name"`
	Properties map[string]yaml.Node `yaml:"properties,omitempty"`
}

type document struct {
	Version int `yaml:"version"`
	// built-in tag key -> property id -> property
	Tags   map[string]map[string]yaml.Node `yaml:"tags,omitempty"`
	Custom []customTag                     `yaml:"custom,omitempty"`
}

// Store keeps tag tree as a YAML document in a file or, for paths with
// ".db" or ".sqlite" extension, in an SQLite database.
type Store struct {
	path    string
	backend backend
	log     *zap.Logger

	mu   sync.Mutex
	next int
	subs map[int]func()
}

// New returns store for the file at path. File does not have to exist.
func New(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		path:    path,
		backend: backendFor(path),
		log:     log.Named("store"),
		subs:    make(map[int]func()),
	}
}

// Path returns location of the store file.
func (s *Store) Path() string {
	return s.path
}

// OnSaved registers fn to be called after every successful save. Returned
// function removes registration, it is safe to call it more than once.
func (s *Store) OnSaved(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	ids := slices.Sorted(maps.Keys(s.subs))
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Load applies stored overrides to the tree and adds stored custom tags to
// it. Missing file is not an error. Entries which cannot be applied are
// reported as warnings and skipped, the rest of the document is still
// loaded.
func (s *Store) Load(tr *tags.Tree) error {
	data, err := s.backend.read()
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug("Tag store does not exist, using defaults", zap.String("path", s.path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to read tag store: %w", err)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("unable to decode tag store (%s): %w", s.path, err)
	}
	if doc.Version > Version {
		return fmt.Errorf("unsupported tag store version %d (%s)", doc.Version, s.path)
	}

	var errs error
	for _, key := range slices.Sorted(maps.Keys(doc.Tags)) {
		t := tr.Find(key)
		if t == nil || tr.IsCustom(t) {
			errs = multierr.Append(errs, fmt.Errorf("unknown built-in tag %q", key))
			continue
		}
		errs = multierr.Append(errs, decodeProperties(t, doc.Tags[key]))
	}
	for _, c := range doc.Custom {
		t := tags.New(c.ID, c.Name)
		errs = multierr.Append(errs, decodeProperties(t, c.Properties))
		if err := tr.AdoptCustom(t); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("custom tag %q: %w", c.Name, err))
		}
	}

	for _, err := range multierr.Errors(errs) {
		s.log.Warn("Ignoring tag store entry", zap.Error(err))
	}
	s.log.Debug("Tag store loaded", zap.String("path", s.path), zap.Int("tags", tr.Len()), zap.Int("custom", len(tr.Custom())))
	return nil
}

func decodeProperties(t *tags.Tag, props map[string]yaml.Node) (errs error) {
	for _, name := range slices.Sorted(maps.Keys(props)) {
		id, err := tags.ParsePropertyID(name)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("tag %q: %w", t.Key, err))
			continue
		}
		p, err := t.Property(id)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		n := props[name]
		if err := p.UnmarshalYAML(&n); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("tag %q, property %s: %w", t.Key, id, err))
		}
	}
	return errs
}

func encodeProperties(t *tags.Tag) (map[string]yaml.Node, error) {
	var res map[string]yaml.Node
	for _, e := range t.Properties() {
		if e.Property.IsDefault() {
			continue
		}
		var n yaml.Node
		if err := n.Encode(e.Property); err != nil {
			return nil, fmt.Errorf("tag %q, property %s: %w", t.Key, e.ID, err)
		}
		if res == nil {
			res = make(map[string]yaml.Node)
		}
		res[e.ID.String()] = n
	}
	return res, nil
}

// Marshal renders tree as store document.
func Marshal(tr *tags.Tree) ([]byte, error) {
	doc := document{Version: Version, Tags: make(map[string]map[string]yaml.Node)}

	var errs error
	tr.Walk(func(t *tags.Tag, _ int) bool {
		if tr.IsCustom(t) {
			return false
		}
		props, err := encodeProperties(t)
		if err != nil {
			errs = multierr.Append(errs, err)
			return true
		}
		if len(props) > 0 {
			doc.Tags[t.Key] = props
		}
		return true
	})
	for _, t := range tr.SortedCustom() {
		props, err := encodeProperties(t)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		doc.Custom = append(doc.Custom, customTag{ID: t.Key, Name: t.Name, Properties: props})
	}
	if errs != nil {
		return nil, errs
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("unable to encode tag store: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("unable to encode tag store: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes tree to the store and notifies subscribers. Store is either
// updated completely or left as it was.
func (s *Store) Save(tr *tags.Tree) error {
	data, err := Marshal(tr)
	if err != nil {
		return err
	}

	if err := s.backend.write(data); err != nil {
		return fmt.Errorf("unable to save tag store: %w", err)
	}

	s.log.Debug("Tag store saved", zap.String("path", s.path), zap.Int("bytes", len(data)))
	s.notify()
	return nil
}
