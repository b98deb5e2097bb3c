package prefkit

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for store diagnostics. Defaults to a no-op
// logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store is the root of one preference tree: a named root group plus the
// dotted-path operations and the JSONC codec boundary. Registration and
// lookup are serialized with a read-write mutex; the per-preference value
// path relies on the configure-then-use convention and takes no extra locks.
type Store struct {
	mu     sync.RWMutex
	root   *Group
	logger *slog.Logger
}

// NewStore creates a store whose root group carries the given name. The name
// follows group naming rules.
func NewStore(name string, opts ...Option) (*Store, error) {
	root, err := NewGroup(name)
	if err != nil {
		return nil, err
	}
	s := &Store{
		root:   root,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustNewStore is like NewStore but panics on error.
func MustNewStore(name string, opts ...Option) *Store {
	s, err := NewStore(name, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the root group name.
func (s *Store) Name() string {
	return s.root.name
}

// Root returns the root group for direct assembly.
func (s *Store) Root() *Group {
	return s.root
}

// Add registers preferences in the root group.
func (s *Store) Add(prefs ...Preference) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root.Add(prefs...)
}

// AddGroup registers subgroups in the root group.
func (s *Store) AddGroup(groups ...*Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range groups {
		if err := s.root.AddGroup(g); err != nil {
			return err
		}
	}
	return nil
}

// Preference resolves a dotted path, such as "server.maxConns", to a
// preference.
func (s *Store) Preference(path string) (Preference, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupPreference(path)
}

// Group resolves a dotted path to a group. The empty path resolves to
// nothing; use Root for the root group.
func (s *Store) Group(path string) (*Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g := s.root
	for _, seg := range strings.Split(path, PathSeparator) {
		sub, ok := g.Group(seg)
		if !ok {
			return nil, false
		}
		g = sub
	}
	return g, true
}

// Set resolves a dotted path and assigns a dynamically typed value through
// the preference's pipeline.
func (s *Store) Set(path string, value any) error {
	s.mu.RLock()
	p, ok := s.lookupPreference(path)
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreference, path)
	}
	if err := p.SetAny(value); err != nil {
		return err
	}
	s.logger.Debug("preference set", slog.String("path", path))
	return nil
}

// Value resolves a dotted path and returns the preference's value, falling
// back to its default.
func (s *Store) Value(path string) (any, bool) {
	s.mu.RLock()
	p, ok := s.lookupPreference(path)
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return p.ValueOrDefaultAny()
}

// Walk visits every preference depth-first in registration order with its
// dotted path relative to the root. fn returning false stops the walk.
func (s *Store) Walk(fn func(path string, p Preference) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.root.walk("", fn)
}

// Len returns the total number of preferences in the tree.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	s.root.walk("", func(string, Preference) bool {
		n++
		return true
	})
	return n
}

func (s *Store) lookupPreference(path string) (Preference, bool) {
	g := s.root
	segs := strings.Split(path, PathSeparator)
	for i, seg := range segs {
		if i == len(segs)-1 {
			return g.Preference(seg)
		}
		sub, ok := g.Group(seg)
		if !ok {
			return nil, false
		}
		g = sub
	}
	return nil, false
}
