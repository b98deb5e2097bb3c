package prefkit

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/prefkit/pkg/validity"
)

// PathSeparator separates group and preference names in store paths, as in
// "server.maxConns". Names therefore must not contain it.
const PathSeparator = "."

// Group is an ordered, named container of preferences and subgroups. Names
// share one namespace within a group, and registration order is preserved:
// the JSONC document lists members exactly as they were added.
//
// Groups are assembled during configuration and read afterwards; Group itself
// does not lock. The Store serializes registration against lookup for the
// tree it owns.
type Group struct {
	name        string
	description string
	entries     []groupEntry
	index       map[string]int
}

// groupEntry is one ordered slot: exactly one of pref or group is set.
type groupEntry struct {
	pref  Preference
	group *Group
}

// NewGroup creates an empty group. The name must be non-empty, not
// whitespace-only, and must not contain the path separator.
func NewGroup(name string) (*Group, error) {
	if err := validity.ValidateName(name); err != nil {
		return nil, err
	}
	if strings.Contains(name, PathSeparator) {
		return nil, fmt.Errorf("%w %q: %q", ErrSeparatorInName, PathSeparator, name)
	}
	return &Group{name: name, index: make(map[string]int)}, nil
}

// MustNewGroup is like NewGroup but panics on error. Intended for
// package-level group declarations.
func MustNewGroup(name string) *Group {
	g, err := NewGroup(name)
	if err != nil {
		panic(err)
	}
	return g
}

// WithDescription sets the group description, emitted as a document comment,
// and returns the group for chaining.
func (g *Group) WithDescription(description string) *Group {
	g.description = description
	return g
}

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// Description returns the group description.
func (g *Group) Description() string { return g.description }

// Add registers preferences in order. Registration stops at the first
// duplicate or nil preference; earlier preferences from the same call stay
// registered.
func (g *Group) Add(prefs ...Preference) error {
	for _, p := range prefs {
		if p == nil {
			return fmt.Errorf("%w: group %q", ErrNilPreference, g.name)
		}
		if _, exists := g.index[p.Name()]; exists {
			return fmt.Errorf("%w: %q in group %q", ErrDuplicateName, p.Name(), g.name)
		}
		g.index[p.Name()] = len(g.entries)
		g.entries = append(g.entries, groupEntry{pref: p})
	}
	return nil
}

// AddGroup registers a subgroup. The subgroup name shares the namespace of
// the group's preferences.
func (g *Group) AddGroup(sub *Group) error {
	if sub == nil {
		return fmt.Errorf("%w: group %q", ErrNilGroup, g.name)
	}
	if sub == g || sub.containsDescendant(g) {
		return fmt.Errorf("%w: %q", ErrGroupCycle, sub.name)
	}
	if _, exists := g.index[sub.name]; exists {
		return fmt.Errorf("%w: %q in group %q", ErrDuplicateName, sub.name, g.name)
	}
	g.index[sub.name] = len(g.entries)
	g.entries = append(g.entries, groupEntry{group: sub})
	return nil
}

func (g *Group) containsDescendant(target *Group) bool {
	for _, e := range g.entries {
		if e.group == nil {
			continue
		}
		if e.group == target || e.group.containsDescendant(target) {
			return true
		}
	}
	return false
}

// Preference returns the directly registered preference with the given name.
func (g *Group) Preference(name string) (Preference, bool) {
	i, ok := g.index[name]
	if !ok || g.entries[i].pref == nil {
		return nil, false
	}
	return g.entries[i].pref, true
}

// Group returns the directly registered subgroup with the given name.
func (g *Group) Group(name string) (*Group, bool) {
	i, ok := g.index[name]
	if !ok || g.entries[i].group == nil {
		return nil, false
	}
	return g.entries[i].group, true
}

// Preferences returns the directly registered preferences in registration
// order.
func (g *Group) Preferences() []Preference {
	var out []Preference
	for _, e := range g.entries {
		if e.pref != nil {
			out = append(out, e.pref)
		}
	}
	return out
}

// Groups returns the directly registered subgroups in registration order.
func (g *Group) Groups() []*Group {
	var out []*Group
	for _, e := range g.entries {
		if e.group != nil {
			out = append(out, e.group)
		}
	}
	return out
}

// Len returns the number of directly registered preferences and subgroups.
func (g *Group) Len() int {
	return len(g.entries)
}

// walk visits the group's preferences depth-first in registration order,
// calling fn with the dot-joined path relative to g. fn returning false stops
// the walk.
func (g *Group) walk(prefix string, fn func(path string, p Preference) bool) bool {
	for _, e := range g.entries {
		switch {
		case e.pref != nil:
			if !fn(joinPath(prefix, e.pref.Name()), e.pref) {
				return false
			}
		case e.group != nil:
			if !e.group.walk(joinPath(prefix, e.group.name), fn) {
				return false
			}
		}
	}
	return true
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + PathSeparator + name
}
