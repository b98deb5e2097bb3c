package jsonc

import (
	"encoding/json"
	"io"
	"strings"
)

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithIndent sets the indentation unit. Defaults to two spaces.
func WithIndent(indent string) WriterOption {
	return func(w *Writer) {
		w.indent = indent
	}
}

// WithoutComments drops all Comment calls, producing plain JSON.
func WithoutComments() WriterOption {
	return func(w *Writer) {
		w.comments = false
	}
}

// Writer emits one JSONC object tree in document order: nested objects via
// BeginObject/EndObject, members via Name/Value, and line comments attached
// to the member that follows them. Values are escaped with encoding/json, so
// any JSON-marshalable value (including json.RawMessage) is accepted.
//
// The first error, from the underlying io.Writer or from a call made out of
// order, sticks: every later call returns it and writes nothing. Writer is
// not safe for concurrent use.
type Writer struct {
	w        io.Writer
	indent   string
	comments bool

	depth       int
	started     []bool
	pending     bool
	afterName   bool
	atLineStart bool
	rootDone    bool
	err         error
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	jw := &Writer{
		w:        w,
		indent:   "  ",
		comments: true,
	}
	for _, opt := range opts {
		opt(jw)
	}
	return jw
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// BeginObject opens the root object or, after Name, a nested object.
func (w *Writer) BeginObject() error {
	if w.err != nil {
		return w.err
	}
	switch {
	case w.depth == 0 && !w.rootDone:
	case w.depth > 0 && w.afterName:
		w.afterName = false
	default:
		w.err = ErrWriterState
		return w.err
	}
	w.raw("{")
	w.depth++
	w.started = append(w.started, false)
	w.pending = false
	return w.err
}

// EndObject closes the innermost open object.
func (w *Writer) EndObject() error {
	if w.err != nil {
		return w.err
	}
	if w.depth == 0 || w.afterName {
		w.err = ErrWriterState
		return w.err
	}
	level := w.depth - 1
	if w.started[level] || w.pending {
		if !w.atLineStart {
			w.raw("\n")
		}
		w.writeIndent(level)
	}
	w.raw("}")
	w.depth--
	w.started = w.started[:w.depth]
	w.pending = false
	if w.depth == 0 {
		w.rootDone = true
	} else {
		w.started[w.depth-1] = true
	}
	return w.err
}

// Comment attaches line comments to the member that follows. Multi-line text
// becomes one comment line per input line. A no-op when comments are
// disabled or text is empty.
func (w *Writer) Comment(text string) error {
	if w.err != nil {
		return w.err
	}
	if !w.comments || text == "" {
		return nil
	}
	if w.depth == 0 || w.afterName {
		w.err = ErrWriterState
		return w.err
	}
	w.beginMember()
	for _, line := range strings.Split(text, "\n") {
		w.writeIndent(w.depth)
		w.raw("//")
		if line != "" {
			w.raw(" ")
			w.raw(line)
		}
		w.raw("\n")
	}
	return w.err
}

// Name starts a member. The following Value or BeginObject call supplies its
// value.
func (w *Writer) Name(name string) error {
	if w.err != nil {
		return w.err
	}
	if w.depth == 0 || w.afterName {
		w.err = ErrWriterState
		return w.err
	}
	w.beginMember()
	w.writeIndent(w.depth)
	encoded, err := json.Marshal(name)
	if err != nil {
		w.err = err
		return w.err
	}
	w.raw(string(encoded))
	w.raw(": ")
	w.afterName = true
	return w.err
}

// Value writes the pending member's value.
func (w *Writer) Value(v any) error {
	if w.err != nil {
		return w.err
	}
	if !w.afterName {
		w.err = ErrWriterState
		return w.err
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		w.err = err
		return w.err
	}
	w.raw(string(encoded))
	w.afterName = false
	w.pending = false
	w.started[w.depth-1] = true
	return w.err
}

// beginMember writes the separator comma of the previous member and moves to
// a fresh line, once per member regardless of how many comment lines precede
// the name.
func (w *Writer) beginMember() {
	if w.pending {
		return
	}
	if w.started[w.depth-1] {
		w.raw(",")
	}
	w.raw("\n")
	w.pending = true
}

func (w *Writer) writeIndent(n int) {
	for range n {
		w.raw(w.indent)
	}
}

func (w *Writer) raw(s string) {
	if w.err != nil || s == "" {
		return
	}
	if _, err := io.WriteString(w.w, s); err != nil {
		w.err = err
		return
	}
	w.atLineStart = s[len(s)-1] == '\n'
}
