package validity

import (
	"cmp"
	"errors"
	"fmt"
)

// Ptr returns a pointer to v. Comparison presets take their fixed operand as
// a pointer so callers can express "compare against unset":
//
//	validity.IsEqualTo(validity.Ptr(int64(5)))
//	validity.IsEqualTo[int64](nil)
func Ptr[T any](v T) *T {
	return &v
}

// compareNil resolves the nullable sides shared by every comparison preset:
// two nil sides compare as equal, one nil side is invalid with an error naming
// which side was nil. The third return reports whether the comparison was
// decided here.
func compareNil[T comparable](value, other *T, wantEqual bool) (ValidityResult, bool) {
	switch {
	case value == nil && other == nil:
		if wantEqual {
			return Valid(), true
		}
		return NotValid(errors.New("value and other are both nil and compare as equal")), true
	case value == nil:
		return NotValid(errors.New("value is nil while other is not")), true
	case other == nil:
		return NotValid(errors.New("other is nil while value is not")), true
	}
	return ValidityResult{}, false
}

// IsEqualTo returns a processor accepting only values equal to other.
// A nil candidate against a nil other is valid: both unset compare as equal.
func IsEqualTo[T comparable](other *T) *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if res, done := compareNil(value, other, true); done {
			return res
		}
		if *value != *other {
			return NotValid(fmt.Errorf("value %v does not equal %v", *value, *other))
		}
		return Valid()
	}
	return p
}

// IsNotEqualTo returns a processor rejecting values equal to other.
// Two nil sides compare as equal and are therefore rejected.
func IsNotEqualTo[T comparable](other *T) *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if res, done := compareNil(value, other, false); done {
			return res
		}
		if *value == *other {
			return NotValid(fmt.Errorf("value %v equals %v", *value, *other))
		}
		return Valid()
	}
	return p
}

// IsGreaterThan returns a processor accepting values strictly greater than
// other.
func IsGreaterThan[T cmp.Ordered](other *T) *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if res, done := compareNil(value, other, false); done {
			return res
		}
		if *value <= *other {
			return NotValid(fmt.Errorf("value %v is not greater than %v", *value, *other))
		}
		return Valid()
	}
	return p
}

// IsGreaterThanOrEqualTo returns a processor accepting values greater than or
// equal to other. Two nil sides compare as equal and are accepted.
func IsGreaterThanOrEqualTo[T cmp.Ordered](other *T) *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if res, done := compareNil(value, other, true); done {
			return res
		}
		if *value < *other {
			return NotValid(fmt.Errorf("value %v is less than %v", *value, *other))
		}
		return Valid()
	}
	return p
}

// IsLessThan returns a processor accepting values strictly less than other.
func IsLessThan[T cmp.Ordered](other *T) *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if res, done := compareNil(value, other, false); done {
			return res
		}
		if *value >= *other {
			return NotValid(fmt.Errorf("value %v is not less than %v", *value, *other))
		}
		return Valid()
	}
	return p
}

// IsLessThanOrEqualTo returns a processor accepting values less than or equal
// to other. Two nil sides compare as equal and are accepted.
func IsLessThanOrEqualTo[T cmp.Ordered](other *T) *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if res, done := compareNil(value, other, true); done {
			return res
		}
		if *value > *other {
			return NotValid(fmt.Errorf("value %v is greater than %v", *value, *other))
		}
		return Valid()
	}
	return p
}
