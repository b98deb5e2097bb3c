package prefkit

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/prefkit/pkg/enums"
	"github.com/dmitrymomot/prefkit/pkg/validity"
)

// Builder assembles one preference. Kind constructors (NewBool, NewInt,
// NewFloat, NewString, NewDuration, NewEnum) return a builder preloaded with
// the kind's coercion and rendering; the chain sets metadata, constraints and
// pipeline steps; Build validates the configuration and runs the default and
// the initial value through the full pipeline, so a preference that builds is
// already consistent.
//
//	maxConns, err := prefkit.NewInt("maxConns").
//		Description("Maximum number of connections.").
//		Processor(validity.IsGreaterThanZero[int64]()).
//		Default(3).
//		Build()
type Builder[T comparable, P Preference] struct {
	name        string
	description string
	kind        Kind
	def         *T
	value       *T
	allowed     []T
	allowUndef  bool
	readOnly    bool
	proc        *validity.Processor[T]
	member      func(T) bool
	coerce      func(name string, value any) (T, error)
	render      func(value T) any
	finalize    func(b *Builder[T, P]) error
	wrap        func(p *pref[T]) P
}

// NewBool starts a true/false preference.
func NewBool(name string) *Builder[bool, *Bool] {
	return &Builder[bool, *Bool]{
		name:   name,
		kind:   KindBool,
		coerce: coerceBool,
		wrap:   func(p *pref[bool]) *Bool { return &Bool{pref: *p} },
	}
}

// NewInt starts a 64-bit signed integer preference.
func NewInt(name string) *Builder[int64, *Int] {
	return &Builder[int64, *Int]{
		name:   name,
		kind:   KindInt,
		coerce: coerceInt64,
		wrap:   func(p *pref[int64]) *Int { return &Int{pref: *p} },
	}
}

// NewFloat starts a 64-bit floating-point preference.
func NewFloat(name string) *Builder[float64, *Float] {
	return &Builder[float64, *Float]{
		name:   name,
		kind:   KindFloat,
		coerce: coerceFloat64,
		wrap:   func(p *pref[float64]) *Float { return &Float{pref: *p} },
	}
}

// NewString starts a text preference.
func NewString(name string) *Builder[string, *String] {
	return &Builder[string, *String]{
		name:   name,
		kind:   KindString,
		coerce: coerceString,
		wrap:   func(p *pref[string]) *String { return &String{pref: *p} },
	}
}

// NewDuration starts a time.Duration preference. Its document form is the
// duration string.
func NewDuration(name string) *Builder[time.Duration, *Duration] {
	return &Builder[time.Duration, *Duration]{
		name:   name,
		kind:   KindDuration,
		coerce: coerceDuration,
		render: func(d time.Duration) any { return d.String() },
		wrap:   func(p *pref[time.Duration]) *Duration { return &Duration{pref: *p} },
	}
}

// NewEnum starts an enumeration preference bound to typ. Unless the chain
// sets an explicit allowed list or permits undefined values, Build restricts
// the preference to the type's defined members except the zero value; flags
// types additionally accept bitwise combinations of defined flags. A type
// whose only member is zero therefore re-derives to allowing undefined
// values, since an empty list restricts nothing.
func NewEnum[T enums.Integer](typ *enums.Type[T], name string) *Builder[T, *Enum[T]] {
	b := &Builder[T, *Enum[T]]{
		name: name,
		kind: KindEnum,
		wrap: func(p *pref[T]) *Enum[T] { return &Enum[T]{pref: *p, typ: typ} },
	}
	if typ != nil {
		b.coerce = coerceEnum(typ)
		b.render = func(v T) any { return typ.Format(v) }
	}
	b.finalize = func(b *Builder[T, *Enum[T]]) error {
		if typ == nil {
			return validity.NewSetValueError(b.name, validity.StageUnknown, ErrNilEnumType)
		}
		if typ.IsFlags() {
			b.member = typ.ValidFlags
		}
		if len(b.allowed) == 0 && !b.allowUndef {
			for _, v := range typ.Values() {
				if v == 0 {
					continue
				}
				b.allowed = append(b.allowed, v)
			}
			if len(b.allowed) == 0 {
				b.allowUndef = true
			}
		}
		return nil
	}
	return b
}

// Description sets the human-readable description, emitted as a document
// comment.
func (b *Builder[T, P]) Description(description string) *Builder[T, P] {
	b.description = description
	return b
}

// Default sets the default value. Build runs it through the pipeline.
func (b *Builder[T, P]) Default(value T) *Builder[T, P] {
	b.def = &value
	return b
}

// DefaultPtr sets a nullable default value. Nil means no default.
func (b *Builder[T, P]) DefaultPtr(value *T) *Builder[T, P] {
	b.def = value
	return b
}

// Value sets the initial value. Build runs it through the pipeline after the
// default is assigned.
func (b *Builder[T, P]) Value(value T) *Builder[T, P] {
	b.value = &value
	return b
}

// ValuePtr sets a nullable initial value. Nil means unset.
func (b *Builder[T, P]) ValuePtr(value *T) *Builder[T, P] {
	b.value = value
	return b
}

// AllowedValues restricts the preference to the given values.
func (b *Builder[T, P]) AllowedValues(values ...T) *Builder[T, P] {
	b.allowed = values
	return b
}

// AllowUndefined permits values outside the allowed list.
func (b *Builder[T, P]) AllowUndefined(allow bool) *Builder[T, P] {
	b.allowUndef = allow
	return b
}

// ReadOnly marks the preference read-only after Build: the default and
// initial value still apply, later writes fail at StageSettingValue.
func (b *Builder[T, P]) ReadOnly() *Builder[T, P] {
	b.readOnly = true
	return b
}

// Processor replaces the whole validity processor. The builder stores a
// clone, so later Pre/IsValid/Post calls do not mutate the argument.
func (b *Builder[T, P]) Processor(proc *validity.Processor[T]) *Builder[T, P] {
	b.proc = proc.Clone()
	return b
}

// Pre sets the pre-validation transform step.
func (b *Builder[T, P]) Pre(pre validity.PreFunc[T]) *Builder[T, P] {
	b.ensureProcessor()
	b.proc.Pre = pre
	return b
}

// IsValid sets the acceptance predicate step.
func (b *Builder[T, P]) IsValid(isValid validity.IsValidFunc[T]) *Builder[T, P] {
	b.ensureProcessor()
	b.proc.IsValid = isValid
	return b
}

// Post sets the post-validation transform step.
func (b *Builder[T, P]) Post(post validity.PostFunc[T]) *Builder[T, P] {
	b.ensureProcessor()
	b.proc.Post = post
	return b
}

func (b *Builder[T, P]) ensureProcessor() {
	if b.proc == nil {
		b.proc = validity.NewProcessor[T]()
	}
}

// Build assembles the preference. The name is validated first, then the
// default and the initial value are assigned in that order, each through the
// full pipeline, so every error carries its stage. The read-only flag takes
// effect only after both assignments.
func (b *Builder[T, P]) Build() (P, error) {
	var zero P
	if err := validity.ValidateName(b.name); err != nil {
		return zero, validity.NewSetValueError(b.name, validity.StageProcessingName, err)
	}
	if strings.Contains(b.name, PathSeparator) {
		return zero, validity.NewSetValueError(b.name, validity.StageProcessingName,
			fmt.Errorf("%w %q: %q", ErrSeparatorInName, PathSeparator, b.name))
	}
	if b.finalize != nil {
		if err := b.finalize(b); err != nil {
			return zero, err
		}
	}

	proc := b.proc
	if proc == nil {
		proc = validity.NewProcessor[T]()
	}
	p := &pref[T]{
		name:        b.name,
		description: b.description,
		kind:        b.kind,
		proc:        proc,
		policy: validity.Policy[T]{
			AllowUndefined: b.allowUndef,
			Allowed:        slices.Clone(b.allowed),
			Member:         b.member,
		},
		coerce: b.coerce,
		render: b.render,
	}
	if err := p.SetDefaultPtr(b.def); err != nil {
		return zero, err
	}
	if err := p.SetPtr(b.value); err != nil {
		return zero, err
	}
	p.readOnly = b.readOnly
	return b.wrap(p), nil
}

// MustBuild is like Build but panics on error. Intended for package-level
// preference declarations.
func (b *Builder[T, P]) MustBuild() P {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
