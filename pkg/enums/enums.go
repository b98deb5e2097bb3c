package enums

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Integer is the generic constraint for enum value domains. Enumerations are
// backed by integer types only; bit-flag semantics require well-defined
// bitwise operations.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Separator joins member names in the textual form of a flags combination.
// Parse also accepts spaces around it.
const Separator = "|"

// Member pairs one defined enum value with its name.
type Member[T Integer] struct {
	// Value is the defined constant.
	Value T
	// Name is the textual form of the constant. Unique within a type.
	Name string
}

// Def is a shorthand constructor for a Member, keeping type declarations on
// one line per constant.
func Def[T Integer](value T, name string) Member[T] {
	return Member[T]{Value: value, Name: name}
}

// Type describes one enumeration: its name, its defined members in
// declaration order, and whether values combine bitwise. A Type is immutable
// after construction and safe for concurrent use.
type Type[T Integer] struct {
	name    string
	flags   bool
	members []Member[T]
	byName  map[string]T
	byValue map[T]string
	union   T
}

// New declares an enum type whose values do not combine. Member names must be
// non-empty, free of whitespace and the separator, must not start like a
// number, and must be unique; member values must be unique.
func New[T Integer](name string, members ...Member[T]) (*Type[T], error) {
	return newType(name, false, members)
}

// NewFlags declares an enum type whose values combine bitwise. Construction
// rules match New; ValidFlags, Format and Parse additionally understand
// combinations of the defined members.
func NewFlags[T Integer](name string, members ...Member[T]) (*Type[T], error) {
	return newType(name, true, members)
}

// MustNew is like New but panics on a declaration error. Intended for
// package-level type declarations.
func MustNew[T Integer](name string, members ...Member[T]) *Type[T] {
	t, err := New(name, members...)
	if err != nil {
		panic(err)
	}
	return t
}

// MustNewFlags is like NewFlags but panics on a declaration error.
func MustNewFlags[T Integer](name string, members ...Member[T]) *Type[T] {
	t, err := NewFlags(name, members...)
	if err != nil {
		panic(err)
	}
	return t
}

func newType[T Integer](name string, flags bool, members []Member[T]) (*Type[T], error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyTypeName
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMembers, name)
	}

	t := &Type[T]{
		name:    name,
		flags:   flags,
		members: slices.Clone(members),
		byName:  make(map[string]T, len(members)),
		byValue: make(map[T]string, len(members)),
	}
	for _, m := range t.members {
		if err := validateMemberName(m.Name); err != nil {
			return nil, err
		}
		if _, dup := t.byName[m.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMemberName, m.Name)
		}
		if _, dup := t.byValue[m.Value]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateMemberValue, m.Value)
		}
		t.byName[m.Name] = m.Value
		t.byValue[m.Value] = m.Name
		t.union |= m.Value
	}
	return t, nil
}

func validateMemberName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyMemberName
	}
	if strings.ContainsFunc(name, unicode.IsSpace) || strings.Contains(name, Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidMemberName, name)
	}
	// A leading digit or sign would shadow the numeric fallback of Parse.
	switch c := name[0]; {
	case c >= '0' && c <= '9', c == '-', c == '+':
		return fmt.Errorf("%w: %q", ErrInvalidMemberName, name)
	}
	return nil
}

// Name returns the enum type name.
func (t *Type[T]) Name() string {
	return t.name
}

// IsFlags reports whether values of this type combine bitwise.
func (t *Type[T]) IsFlags() bool {
	return t.flags
}

// Members returns the defined members in declaration order.
func (t *Type[T]) Members() []Member[T] {
	return slices.Clone(t.members)
}

// Values returns the defined values in declaration order.
func (t *Type[T]) Values() []T {
	values := make([]T, len(t.members))
	for i, m := range t.members {
		values[i] = m.Value
	}
	return values
}

// Names returns the defined names in declaration order.
func (t *Type[T]) Names() []string {
	names := make([]string, len(t.members))
	for i, m := range t.members {
		names[i] = m.Name
	}
	return names
}

// NameOf returns the name of a defined value.
func (t *Type[T]) NameOf(value T) (string, bool) {
	name, ok := t.byValue[value]
	return name, ok
}

// ValueOf returns the value of a defined name. Lookup is case-sensitive.
func (t *Type[T]) ValueOf(name string) (T, bool) {
	value, ok := t.byName[name]
	return value, ok
}

// IsDefined reports whether value is one of the defined members. For flags
// types this is exact membership; combinations are covered by ValidFlags.
func (t *Type[T]) IsDefined(value T) bool {
	_, ok := t.byValue[value]
	return ok
}

// ValidFlags reports whether value is a nonzero combination of defined
// members. Zero is never a valid combination even when a zero member is
// defined, and non-flags types have no valid combinations.
func (t *Type[T]) ValidFlags(value T) bool {
	if !t.flags || value == 0 {
		return false
	}
	return value&^t.union == 0
}

// Format renders value as text: the member name when the value is defined,
// the separator-joined decomposition for a valid flags combination, and the
// decimal form otherwise. Parse accepts every string Format produces.
func (t *Type[T]) Format(value T) string {
	if name, ok := t.byValue[value]; ok {
		return name
	}
	if t.flags && value != 0 {
		if names, ok := t.decompose(value); ok {
			return strings.Join(names, Separator)
		}
	}
	return fmt.Sprintf("%d", value)
}

// decompose greedily maps set bits onto members in declaration order. It
// fails when bits remain that no member covers.
func (t *Type[T]) decompose(value T) ([]string, bool) {
	remaining := value
	var names []string
	for _, m := range t.members {
		if m.Value == 0 {
			continue
		}
		if remaining&m.Value == m.Value {
			names = append(names, m.Name)
			remaining &^= m.Value
		}
	}
	if remaining != 0 || len(names) == 0 {
		return nil, false
	}
	return names, true
}

// Parse converts text back into a value: a defined member name, a decimal
// number, or (for flags types) a separator-joined combination of those.
// Decimal input is not checked for definedness here; membership policy is the
// caller's concern.
func (t *Type[T]) Parse(s string) (T, error) {
	var zero T
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return zero, ErrEmptyInput
	}

	parts := strings.Split(trimmed, Separator)
	if len(parts) > 1 && !t.flags {
		return zero, fmt.Errorf("%w: %q", ErrNotFlags, t.name)
	}

	var combined T
	for _, part := range parts {
		value, err := t.parseOne(strings.TrimSpace(part))
		if err != nil {
			return zero, err
		}
		combined |= value
	}
	return combined, nil
}

func (t *Type[T]) parseOne(part string) (T, error) {
	var zero T
	if part == "" {
		return zero, ErrEmptyInput
	}
	if value, ok := t.byName[part]; ok {
		return value, nil
	}
	unsigned := ^zero > zero
	if n, err := strconv.ParseInt(part, 10, 64); err == nil {
		if value := T(n); int64(value) == n && !(unsigned && n < 0) {
			return value, nil
		}
		return zero, fmt.Errorf("%w: %q in %s", ErrValueOutOfRange, part, t.name)
	}
	// ParseInt only overflows here, so this branch sees values above MaxInt64.
	if n, err := strconv.ParseUint(part, 10, 64); err == nil {
		if value := T(n); unsigned && uint64(value) == n {
			return value, nil
		}
		return zero, fmt.Errorf("%w: %q in %s", ErrValueOutOfRange, part, t.name)
	}
	return zero, &UnknownNameError{Type: t.name, Name: part}
}
