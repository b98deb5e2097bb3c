package validity

// PreFunc transforms or normalizes a candidate value before validation.
// The input may be nil when an upstream transform produced an unset value.
type PreFunc[T comparable] func(value *T) ProcessorResult[T]

// IsValidFunc decides whether a (possibly transformed) candidate is
// acceptable.
type IsValidFunc[T comparable] func(value *T) ValidityResult

// PostFunc transforms a candidate after validation succeeded, producing the
// value that is finally stored.
type PostFunc[T comparable] func(value *T) ProcessorResult[T]

// Processor bundles the three steps of the validity pipeline for one value
// domain. The zero value and NewProcessor both behave as identity Pre/Post
// with an always-valid IsValid, so a partially configured processor is always
// usable. The three fields may be substituted independently while a
// preference is being built; once attached, a processor must not be mutated —
// configuration and use are temporally separated by the caller.
//
// All three steps must be pure functions of their input: the pipeline may be
// re-entered concurrently for different values.
type Processor[T comparable] struct {
	// Pre runs before validation. Nil means identity.
	Pre PreFunc[T]
	// IsValid is the acceptance predicate. Nil means always valid.
	IsValid IsValidFunc[T]
	// Post runs after validation succeeded. Nil means identity.
	Post PostFunc[T]
}

// NewProcessor returns a processor with explicit default steps: identity
// Pre/Post and an always-valid IsValid.
func NewProcessor[T comparable]() *Processor[T] {
	return &Processor[T]{
		Pre:     func(value *T) ProcessorResult[T] { return Success(value) },
		IsValid: func(value *T) ValidityResult { return Valid() },
		Post:    func(value *T) ProcessorResult[T] { return Success(value) },
	}
}

// RunPre invokes the Pre step, treating a nil field as identity.
func (p *Processor[T]) RunPre(value *T) ProcessorResult[T] {
	if p.Pre == nil {
		return Success(value)
	}
	return p.Pre(value)
}

// RunIsValid invokes the IsValid step, treating a nil field as always valid.
func (p *Processor[T]) RunIsValid(value *T) ValidityResult {
	if p.IsValid == nil {
		return Valid()
	}
	return p.IsValid(value)
}

// RunPost invokes the Post step, treating a nil field as identity.
func (p *Processor[T]) RunPost(value *T) ProcessorResult[T] {
	if p.Post == nil {
		return Success(value)
	}
	return p.Post(value)
}

// Clone returns a copy sharing the same step functions. Useful for deriving a
// customized processor from a preset without mutating the original.
func (p *Processor[T]) Clone() *Processor[T] {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
