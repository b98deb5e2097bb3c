package prefkit

import (
	"errors"
	"fmt"
)

// Predefined errors for the prefkit package.
var (
	// ErrReadOnly indicates a write to a read-only preference.
	ErrReadOnly = errors.New("preference is read-only")

	// ErrDuplicateName indicates that a preference or group with the same name
	// is already registered in the target group.
	ErrDuplicateName = errors.New("name is already registered")

	// ErrNilPreference indicates that a nil preference was added to a group.
	ErrNilPreference = errors.New("preference is nil")

	// ErrNilGroup indicates that a nil group was added to a group.
	ErrNilGroup = errors.New("group is nil")

	// ErrSeparatorInName indicates a preference or group name containing the
	// path separator.
	ErrSeparatorInName = errors.New("name contains the path separator")

	// ErrNilEnumType indicates an enum preference built without a type
	// descriptor.
	ErrNilEnumType = errors.New("enum type is nil")

	// ErrGroupCycle indicates an AddGroup call that would make a group contain
	// itself.
	ErrGroupCycle = errors.New("group cannot contain itself or an ancestor")

	// ErrUnknownPreference indicates a path that resolves to no registered
	// preference.
	ErrUnknownPreference = errors.New("no preference registered at path")

	// ErrUnknownMember indicates a document member that matches no registered
	// preference or group.
	ErrUnknownMember = errors.New("document member matches no registered preference or group")

	// ErrInvalidDocument indicates input that is not a JSONC object.
	ErrInvalidDocument = errors.New("document is not a JSONC object")
)

// TypeMismatchError reports a dynamic value whose type cannot be assigned to
// a preference's domain at all, as opposed to one that merely failed to
// convert.
type TypeMismatchError struct {
	// Preference is the name of the rejecting preference.
	Preference string
	// Kind is the preference's value domain.
	Kind Kind
	// Value is the offending value.
	Value any
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type %T is not assignable to %s preference %q", e.Value, e.Kind, e.Preference)
}

// IsTypeMismatchError reports whether err carries a TypeMismatchError.
func IsTypeMismatchError(err error) bool {
	var tme *TypeMismatchError
	return errors.As(err, &tme)
}
