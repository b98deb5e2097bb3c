package prefkit

import (
	"time"

	"github.com/dmitrymomot/prefkit/pkg/enums"
	"github.com/dmitrymomot/prefkit/pkg/validity"
)

// Preference is the dynamic view shared by every preference kind. Containers
// and the JSONC codec operate on this interface; typed access goes through
// the concrete kinds. The interface is sealed: only the kinds in this package
// implement it.
type Preference interface {
	// Name returns the preference name, unique within its group.
	Name() string
	// Description returns the human-readable description, emitted as a
	// document comment.
	Description() string
	// Kind returns the value domain.
	Kind() Kind
	// ReadOnly reports whether writes are rejected.
	ReadOnly() bool
	// AllowUndefined reports whether values outside the allowed list pass.
	AllowUndefined() bool
	// ValueAny returns the current value, if set.
	ValueAny() (any, bool)
	// DefaultAny returns the default value, if set.
	DefaultAny() (any, bool)
	// ValueOrDefaultAny returns the current value, falling back to the
	// default.
	ValueOrDefaultAny() (any, bool)
	// AllowedValuesAny returns the allowed values in declaration order.
	AllowedValuesAny() []any
	// SetAny assigns a dynamically typed value through the full pipeline,
	// coercing it into the preference's domain first. A nil value clears.
	SetAny(value any) error
	// ClearValue unsets the current value.
	ClearValue() error

	// wireValue returns the document rendering of the value-or-default.
	wireValue() (any, bool)
	// wireDefault returns the document rendering of the default.
	wireDefault() (any, bool)
	// wireAllowed returns the document renderings of the allowed values.
	wireAllowed() []any

	sealed()
}

// pref is the generic core shared by all preference kinds: identity and
// metadata, the nullable value and default, and the validity pipeline every
// write flows through. Kind-specific behavior is injected at build time as
// the coerce and render hooks.
//
// A preference is configured once (through its builder) and then used;
// configuration and use are temporally separated by the caller, so the value
// path takes no locks.
type pref[T comparable] struct {
	name        string
	description string
	kind        Kind
	readOnly    bool

	value *T
	def   *T

	proc   *validity.Processor[T]
	policy validity.Policy[T]

	// coerce converts a dynamic value into the domain type for SetAny.
	// Nil means only T and *T are assignable.
	coerce func(name string, value any) (T, error)
	// render maps a domain value to its document form. Nil means identity.
	render func(value T) any
}

// Name returns the preference name.
func (p *pref[T]) Name() string { return p.name }

// Description returns the human-readable description.
func (p *pref[T]) Description() string { return p.description }

// Kind returns the value domain.
func (p *pref[T]) Kind() Kind { return p.kind }

// ReadOnly reports whether writes are rejected.
func (p *pref[T]) ReadOnly() bool { return p.readOnly }

// AllowUndefined reports whether values outside the allowed list pass.
func (p *pref[T]) AllowUndefined() bool { return p.policy.AllowUndefined }

// AllowedValues returns the allowed values in declaration order.
func (p *pref[T]) AllowedValues() []T {
	if len(p.policy.Allowed) == 0 {
		return nil
	}
	out := make([]T, len(p.policy.Allowed))
	copy(out, p.policy.Allowed)
	return out
}

// Value returns the current value, if set.
func (p *pref[T]) Value() (T, bool) {
	if p.value == nil {
		var zero T
		return zero, false
	}
	return *p.value, true
}

// Default returns the default value, if set.
func (p *pref[T]) Default() (T, bool) {
	if p.def == nil {
		var zero T
		return zero, false
	}
	return *p.def, true
}

// ValueOrDefault returns the current value, falling back to the default.
func (p *pref[T]) ValueOrDefault() (T, bool) {
	if p.value != nil {
		return *p.value, true
	}
	if p.def != nil {
		return *p.def, true
	}
	var zero T
	return zero, false
}

// Set assigns a value through the full pipeline.
func (p *pref[T]) Set(value T) error {
	return p.SetPtr(&value)
}

// SetPtr assigns a nullable value through the full pipeline. A nil pointer
// clears the value; this is legal under every configuration.
func (p *pref[T]) SetPtr(value *T) error {
	stored, err := p.process(value)
	if err != nil {
		return err
	}
	p.value = stored
	return nil
}

// SetDefault assigns a default value through the full pipeline.
func (p *pref[T]) SetDefault(value T) error {
	return p.SetDefaultPtr(&value)
}

// SetDefaultPtr assigns a nullable default through the full pipeline.
func (p *pref[T]) SetDefaultPtr(value *T) error {
	stored, err := p.process(value)
	if err != nil {
		return err
	}
	p.def = stored
	return nil
}

// Clear unsets the current value.
func (p *pref[T]) Clear() error {
	return p.SetPtr(nil)
}

// ClearDefault unsets the default value.
func (p *pref[T]) ClearDefault() error {
	return p.SetDefaultPtr(nil)
}

// process runs one assignment through the pipeline and detaches the stored
// value from caller-owned memory.
func (p *pref[T]) process(value *T) (*T, error) {
	if p.readOnly {
		return nil, validity.NewSetValueError(p.name, validity.StageSettingValue, ErrReadOnly)
	}
	stored, err := validity.ProcessSetValue(p.name, value, p.proc, p.policy)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}
	v := *stored
	return &v, nil
}

// ValueAny returns the current value, if set.
func (p *pref[T]) ValueAny() (any, bool) {
	if p.value == nil {
		return nil, false
	}
	return *p.value, true
}

// DefaultAny returns the default value, if set.
func (p *pref[T]) DefaultAny() (any, bool) {
	if p.def == nil {
		return nil, false
	}
	return *p.def, true
}

// ValueOrDefaultAny returns the current value, falling back to the default.
func (p *pref[T]) ValueOrDefaultAny() (any, bool) {
	v, ok := p.ValueOrDefault()
	if !ok {
		return nil, false
	}
	return v, true
}

// AllowedValuesAny returns the allowed values in declaration order.
func (p *pref[T]) AllowedValuesAny() []any {
	if len(p.policy.Allowed) == 0 {
		return nil
	}
	out := make([]any, len(p.policy.Allowed))
	for i, v := range p.policy.Allowed {
		out[i] = v
	}
	return out
}

// SetAny assigns a dynamically typed value. Exact domain values pass
// straight through; everything else goes through the kind's coercion, with
// failures classified as StageProcessingType (unsupported type),
// StageConverting (lossy or failed conversion) or StageParsing (bad textual
// form).
func (p *pref[T]) SetAny(value any) error {
	switch v := value.(type) {
	case nil:
		return p.SetPtr(nil)
	case T:
		return p.Set(v)
	case *T:
		return p.SetPtr(v)
	}
	if p.coerce == nil {
		return validity.NewSetValueError(p.name, validity.StageProcessingType,
			&TypeMismatchError{Preference: p.name, Kind: p.kind, Value: value})
	}
	v, err := p.coerce(p.name, value)
	if err != nil {
		return validity.Classify(p.name, validity.StageConverting, err)
	}
	return p.Set(v)
}

// ClearValue unsets the current value.
func (p *pref[T]) ClearValue() error {
	return p.Clear()
}

func (p *pref[T]) renderValue(v T) any {
	if p.render == nil {
		return v
	}
	return p.render(v)
}

func (p *pref[T]) wireValue() (any, bool) {
	v, ok := p.ValueOrDefault()
	if !ok {
		return nil, false
	}
	return p.renderValue(v), true
}

func (p *pref[T]) wireDefault() (any, bool) {
	if p.def == nil {
		return nil, false
	}
	return p.renderValue(*p.def), true
}

func (p *pref[T]) wireAllowed() []any {
	if len(p.policy.Allowed) == 0 {
		return nil
	}
	out := make([]any, len(p.policy.Allowed))
	for i, v := range p.policy.Allowed {
		out[i] = p.renderValue(v)
	}
	return out
}

func (p *pref[T]) sealed() {}

// Bool is a true/false preference.
type Bool struct{ pref[bool] }

// Int is a 64-bit signed integer preference.
type Int struct{ pref[int64] }

// Float is a 64-bit floating-point preference.
type Float struct{ pref[float64] }

// String is a text preference.
type String struct{ pref[string] }

// Duration is a time.Duration preference. In the document it reads and
// writes duration strings such as "1h30m"; bare numbers are taken as
// nanoseconds.
type Duration struct{ pref[time.Duration] }

// Enum is an integer enumeration preference bound to an enums.Type
// descriptor. In the document it reads and writes member names, including
// separator-joined combinations for flags types.
type Enum[T enums.Integer] struct {
	pref[T]
	typ *enums.Type[T]
}

// Type returns the enum type descriptor.
func (e *Enum[T]) Type() *enums.Type[T] {
	return e.typ
}
