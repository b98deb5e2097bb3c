package enums

import (
	"errors"
	"fmt"
)

// Predefined errors for the enums package.
var (
	// ErrEmptyTypeName indicates that an enum type was declared with an empty
	// or whitespace-only name.
	ErrEmptyTypeName = errors.New("enum type name is empty or whitespace-only")

	// ErrNoMembers indicates that an enum type was declared without members.
	ErrNoMembers = errors.New("enum type has no members")

	// ErrEmptyMemberName indicates that a member was declared with an empty or
	// whitespace-only name.
	ErrEmptyMemberName = errors.New("enum member name is empty or whitespace-only")

	// ErrInvalidMemberName indicates a member name that would be ambiguous in
	// the textual form: it contains whitespace or the flags separator, or it
	// starts like a number.
	ErrInvalidMemberName = errors.New("enum member name is not representable")

	// ErrDuplicateMemberName indicates that two members share a name.
	ErrDuplicateMemberName = errors.New("enum member name is already defined")

	// ErrDuplicateMemberValue indicates that two members share a value.
	ErrDuplicateMemberValue = errors.New("enum member value is already defined")

	// ErrEmptyInput indicates that Parse was given an empty or whitespace-only
	// string, or a combination with an empty segment.
	ErrEmptyInput = errors.New("enum input is empty or whitespace-only")

	// ErrNotFlags indicates that a combined name was parsed against a type
	// without flags semantics.
	ErrNotFlags = errors.New("combined names require a flags enum type")

	// ErrValueOutOfRange indicates a decimal input that does not fit the
	// enum's backing integer type.
	ErrValueOutOfRange = errors.New("numeric value does not fit the enum backing type")
)

// UnknownNameError reports a name that is not defined for an enum type.
type UnknownNameError struct {
	// Type is the enum type name.
	Type string
	// Name is the unknown member name.
	Name string
}

// Error implements the error interface.
func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("name %q is not defined for enum type %q", e.Name, e.Type)
}

// IsUnknownNameError reports whether err carries an UnknownNameError.
func IsUnknownNameError(err error) bool {
	var une *UnknownNameError
	return errors.As(err, &une)
}
