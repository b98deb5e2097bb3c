package prefkit

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/prefkit/pkg/jsonc"
)

// EncodeOption configures MarshalJSONC and EncodeJSONC.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	comments bool
	indent   string
}

// WithoutComments emits plain JSON without the description, allowed-value and
// default comments.
func WithoutComments() EncodeOption {
	return func(c *encodeConfig) {
		c.comments = false
	}
}

// WithIndent sets the indentation unit. Defaults to two spaces.
func WithIndent(indent string) EncodeOption {
	return func(c *encodeConfig) {
		c.indent = indent
	}
}

// MarshalJSONC renders the store as a JSONC document: one nested object per
// group, one member per preference carrying its value, its default when no
// value is set, or null. Member order is registration order, so the output is
// deterministic and diffs stay readable.
func (s *Store) MarshalJSONC(opts ...EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.EncodeJSONC(&buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJSONC is MarshalJSONC writing to w.
func (s *Store) EncodeJSONC(w io.Writer, opts ...EncodeOption) error {
	cfg := encodeConfig{comments: true, indent: "  "}
	for _, opt := range opts {
		opt(&cfg)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	wopts := []jsonc.WriterOption{jsonc.WithIndent(cfg.indent)}
	if !cfg.comments {
		wopts = append(wopts, jsonc.WithoutComments())
	}
	jw := jsonc.NewWriter(w, wopts...)

	jw.BeginObject()
	if s.root.description != "" {
		jw.Comment(s.root.description)
	}
	encodeGroup(jw, s.root)
	jw.EndObject()
	return jw.Err()
}

func encodeGroup(jw *jsonc.Writer, g *Group) {
	for _, e := range g.entries {
		switch {
		case e.pref != nil:
			encodePreference(jw, e.pref)
		case e.group != nil:
			if e.group.description != "" {
				jw.Comment(e.group.description)
			}
			jw.Name(e.group.name)
			jw.BeginObject()
			encodeGroup(jw, e.group)
			jw.EndObject()
		}
	}
}

func encodePreference(jw *jsonc.Writer, p Preference) {
	if c := commentFor(p); c != "" {
		jw.Comment(c)
	}
	jw.Name(p.Name())
	if v, ok := p.wireValue(); ok {
		jw.Value(v)
	} else {
		jw.Value(nil)
	}
}

// commentFor assembles the member's comment block: the description, the
// allowed values, the default and the read-only marker, one line each.
func commentFor(p Preference) string {
	var lines []string
	if d := p.Description(); d != "" {
		lines = append(lines, d)
	}
	if allowed := p.wireAllowed(); len(allowed) > 0 {
		parts := make([]string, len(allowed))
		for i, v := range allowed {
			parts[i] = fmt.Sprint(v)
		}
		line := "Allowed values: " + strings.Join(parts, ", ")
		if p.AllowUndefined() {
			line += " (other values permitted)"
		}
		lines = append(lines, line+".")
	}
	if def, ok := p.wireDefault(); ok {
		lines = append(lines, fmt.Sprintf("Default: %v.", def))
	}
	if p.ReadOnly() {
		lines = append(lines, "Read-only.")
	}
	return strings.Join(lines, "\n")
}
