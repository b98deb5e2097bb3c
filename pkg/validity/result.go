package validity

// ProcessorResult carries the outcome of a Pre or Post step: either the
// (possibly nil) transformed value, or the error that stops the pipeline.
// The error acts as the tag — a nil Err means success even when the value
// itself is nil.
type ProcessorResult[T comparable] struct {
	value *T
	err   error
}

// Success returns a successful result carrying the transformed value.
// A nil value is legal and propagates the unset state through the pipeline.
func Success[T comparable](value *T) ProcessorResult[T] {
	return ProcessorResult[T]{value: value}
}

// Failure returns a failed result. A nil err is replaced with ErrNoCause so a
// failed result always explains itself.
func Failure[T comparable](err error) ProcessorResult[T] {
	if err == nil {
		err = ErrNoCause
	}
	return ProcessorResult[T]{err: err}
}

// Value returns the transformed value. Only meaningful when Err is nil.
func (r ProcessorResult[T]) Value() *T {
	return r.value
}

// Err returns the failure cause, or nil on success.
func (r ProcessorResult[T]) Err() error {
	return r.err
}

// Failed reports whether the step failed.
func (r ProcessorResult[T]) Failed() bool {
	return r.err != nil
}

// ValidityResult carries the outcome of an IsValid step: valid, or invalid
// with a non-nil cause.
type ValidityResult struct {
	err error
}

// Valid returns a passing result.
func Valid() ValidityResult {
	return ValidityResult{}
}

// NotValid returns a failing result with the given cause. A nil err is
// replaced with ErrNoCause so an invalid result always explains itself.
func NotValid(err error) ValidityResult {
	if err == nil {
		err = ErrNoCause
	}
	return ValidityResult{err: err}
}

// Err returns the failure cause, or nil when the value was valid.
func (r ValidityResult) Err() error {
	return r.err
}

// Failed reports whether the value was rejected.
func (r ValidityResult) Failed() bool {
	return r.err != nil
}
