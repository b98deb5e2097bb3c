package validity

import (
	"errors"
	"strings"
)

// IsNotEmpty returns a processor rejecting empty strings. A nil candidate is
// rejected as well: an unset value that survived Pre is not a usable string.
func IsNotEmpty[T ~string]() *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if value == nil {
			return NotValid(errNilCandidate)
		}
		if len(*value) == 0 {
			return NotValid(errors.New("value is empty"))
		}
		return Valid()
	}
	return p
}

// IsNotEmptyOrWhitespace returns a processor rejecting empty and
// whitespace-only strings.
func IsNotEmptyOrWhitespace[T ~string]() *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if value == nil {
			return NotValid(errNilCandidate)
		}
		if strings.TrimSpace(string(*value)) == "" {
			return NotValid(errors.New("value is empty or whitespace-only"))
		}
		return Valid()
	}
	return p
}

// TrimSpacePre returns a Pre step that trims leading and trailing whitespace.
func TrimSpacePre[T ~string]() PreFunc[T] {
	return TransformPre(func(v T) T { return T(strings.TrimSpace(string(v))) })
}

// ToUpperPost returns a Post step that upper-cases the stored value.
func ToUpperPost[T ~string]() PostFunc[T] {
	return TransformPost(func(v T) T { return T(strings.ToUpper(string(v))) })
}

// ToLowerPost returns a Post step that lower-cases the stored value.
func ToLowerPost[T ~string]() PostFunc[T] {
	return TransformPost(func(v T) T { return T(strings.ToLower(string(v))) })
}
