package validity

import (
	"fmt"
	"strings"
)

// ProcessSetValue runs the full value-lifecycle pipeline for one assignment to
// a preference's value or default value. It is a stateless pure function: it
// reads only its arguments and returns either the finalized (possibly
// transformed) value to store, or a SetValueError tagging the failure with the
// stage at which it occurred. No other error type crosses this boundary, and a
// classified error surfacing from a nested call is passed through unchanged.
//
// The stages run in strict order:
//
//  1. Name validation (StageProcessingName).
//  2. Nil short-circuit: a nil candidate returns (nil, nil) immediately —
//     unsetting is legal under every configuration.
//  3. Pre transform (StagePreProcessing).
//  4. Allowed-value policy, then the IsValid predicate (StageValidityCheck).
//     IsValid always runs unless the candidate was rejected by the policy
//     alone — list membership never bypasses a custom predicate.
//  5. Post transform (StagePostProcessing).
//
// Panics raised by user-supplied steps are recovered and classified with the
// stage active at the time; no raw panic escapes the pipeline.
func ProcessSetValue[T comparable](name string, value *T, proc *Processor[T], policy Policy[T]) (stored *T, err error) {
	stage := StageUnknown
	defer func() {
		if r := recover(); r != nil {
			stored = nil
			err = Classify(name, stage, panicCause(r))
		}
	}()

	if proc == nil {
		return nil, Classify(name, StageUnknown, ErrNilProcessor)
	}

	stage = StageProcessingName
	if err := validateName(name); err != nil {
		return nil, Classify(name, StageProcessingName, err)
	}

	if value == nil {
		return nil, nil
	}

	stage = StagePreProcessing
	pre := proc.RunPre(value)
	if pre.Failed() {
		return nil, Classify(name, StagePreProcessing, pre.Err())
	}
	value = pre.Value()

	stage = StageValidityCheck
	if policy.Restricted() && !policy.AllowUndefined {
		member := value != nil && policy.Permits(*value)
		if !member {
			var offending any = "<nil>"
			if value != nil {
				offending = *value
			}
			return nil, Classify(name, StageValidityCheck, &UndefinedValueError{Preference: name, Value: offending})
		}
	}
	if res := proc.RunIsValid(value); res.Failed() {
		return nil, Classify(name, StageValidityCheck, res.Err())
	}

	stage = StagePostProcessing
	post := proc.RunPost(value)
	if post.Failed() {
		return nil, Classify(name, StagePostProcessing, post.Err())
	}

	return post.Value(), nil
}

// ValidateName checks that a preference name is non-empty and not
// whitespace-only. It is re-run on every set so a misnamed preference cannot
// slip values through by construction order.
func ValidateName(name string) error {
	return validateName(name)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// panicCause converts a recovered panic value into an error, preserving an
// error payload as-is so classification can still detect nested
// SetValueErrors.
func panicCause(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
