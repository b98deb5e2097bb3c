package validity

import (
	"errors"
	"fmt"
	"math"
)

// Number is the generic constraint for numeric value domains.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the constraint for floating-point value domains, the only domains
// where not-a-number and infinity exist.
type Float interface {
	~float32 | ~float64
}

var errNilCandidate = errors.New("value is nil")

// IsZero returns a processor accepting only the zero value.
func IsZero[T Number]() *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if value == nil {
			return NotValid(errNilCandidate)
		}
		if *value != 0 {
			return NotValid(fmt.Errorf("value %v is not zero", *value))
		}
		return Valid()
	}
	return p
}

// IsOne returns a processor accepting only the value one.
func IsOne[T Number]() *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if value == nil {
			return NotValid(errNilCandidate)
		}
		if *value != 1 {
			return NotValid(fmt.Errorf("value %v is not one", *value))
		}
		return Valid()
	}
	return p
}

// IsPositive returns a processor accepting values strictly greater than zero.
func IsPositive[T Number]() *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if value == nil {
			return NotValid(errNilCandidate)
		}
		if *value <= 0 {
			return NotValid(fmt.Errorf("value %v is less than or equal to zero", *value))
		}
		return Valid()
	}
	return p
}

// IsNegative returns a processor accepting values strictly less than zero.
func IsNegative[T Number]() *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if value == nil {
			return NotValid(errNilCandidate)
		}
		if *value >= 0 {
			return NotValid(fmt.Errorf("value %v is greater than or equal to zero", *value))
		}
		return Valid()
	}
	return p
}

// IsNotPositive returns a processor accepting zero and negative values.
func IsNotPositive[T Number]() *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if value == nil {
			return NotValid(errNilCandidate)
		}
		if *value > 0 {
			return NotValid(fmt.Errorf("value %v is greater than zero", *value))
		}
		return Valid()
	}
	return p
}

// IsNotNegative returns a processor accepting zero and positive values.
func IsNotNegative[T Number]() *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if value == nil {
			return NotValid(errNilCandidate)
		}
		if *value < 0 {
			return NotValid(fmt.Errorf("value %v is less than zero", *value))
		}
		return Valid()
	}
	return p
}

// IsFinite returns a processor rejecting NaN and infinities. Integral domains
// have no such values and need no finiteness check.
func IsFinite[T Float]() *Processor[T] {
	p := NewProcessor[T]()
	p.IsValid = func(value *T) ValidityResult {
		if value == nil {
			return NotValid(errNilCandidate)
		}
		f := float64(*value)
		if math.IsNaN(f) {
			return NotValid(errors.New("value is NaN"))
		}
		if math.IsInf(f, 0) {
			return NotValid(fmt.Errorf("value %v is infinite", f))
		}
		return Valid()
	}
	return p
}

// Semantic aliases for the sign presets.

// IsGreaterThanZero is an alias for IsPositive.
func IsGreaterThanZero[T Number]() *Processor[T] {
	return IsPositive[T]()
}

// IsLessThanZero is an alias for IsNegative.
func IsLessThanZero[T Number]() *Processor[T] {
	return IsNegative[T]()
}
