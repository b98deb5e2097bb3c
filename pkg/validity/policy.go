package validity

import "slices"

// Policy describes which candidates a preference accepts before its IsValid
// predicate runs: an optional closed list of allowed values, a flag permitting
// values outside that list, and an optional membership broadening hook.
//
// An empty Allowed list restricts nothing — with nothing to restrict against,
// undefined values are de facto permitted regardless of AllowUndefined. Enum
// preferences that disallow undefined values therefore auto-populate their
// allowed set from the defined constants at build time.
type Policy[T comparable] struct {
	// AllowUndefined permits candidates that are not members of Allowed.
	AllowUndefined bool

	// Allowed is the closed list of acceptable values. Order is preserved for
	// reporting and serialization.
	Allowed []T

	// Member optionally broadens membership: a candidate not listed in
	// Allowed is still accepted when Member reports true. Flags enumerations
	// install their defined-and-nonzero rule here, so a bitwise combination
	// of defined flags need not be enumerated individually.
	Member func(value T) bool
}

// Restricted reports whether the policy carries a non-empty allowed list.
func (p Policy[T]) Restricted() bool {
	return len(p.Allowed) > 0
}

// Permits reports whether value is a member of the allowed list, either
// directly or through the Member broadening hook. It is only meaningful when
// the policy is Restricted.
func (p Policy[T]) Permits(value T) bool {
	if slices.Contains(p.Allowed, value) {
		return true
	}
	return p.Member != nil && p.Member(value)
}
