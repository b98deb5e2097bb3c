package validity

// TransformPre adapts plain transform functions into a Pre step. Transforms
// run left to right over non-nil candidates; a nil candidate passes through
// untouched. Transforms cannot fail — use a hand-written PreFunc when a
// transform needs to reject its input.
func TransformPre[T comparable](transforms ...func(T) T) PreFunc[T] {
	return func(value *T) ProcessorResult[T] {
		return Success(applyTransforms(value, transforms))
	}
}

// TransformPost adapts plain transform functions into a Post step, with the
// same composition rules as TransformPre.
func TransformPost[T comparable](transforms ...func(T) T) PostFunc[T] {
	return func(value *T) ProcessorResult[T] {
		return Success(applyTransforms(value, transforms))
	}
}

func applyTransforms[T comparable](value *T, transforms []func(T) T) *T {
	if value == nil {
		return nil
	}
	v := *value
	for _, transform := range transforms {
		v = transform(v)
	}
	return &v
}
