package validity

import (
	"errors"
	"fmt"
)

// Predefined errors for the validity package.
var (
	// ErrNilProcessor indicates that a set-value pipeline was invoked without a processor.
	// This is a configuration fault of the calling preference, not of the candidate value.
	ErrNilProcessor = errors.New("validity processor is nil")

	// ErrEmptyName indicates that a preference name is empty or whitespace-only.
	ErrEmptyName = errors.New("preference name is empty or whitespace-only")

	// ErrNoCause is substituted when a failure is reported without an underlying cause,
	// so a failed result or classified error always carries a non-nil inner error.
	ErrNoCause = errors.New("failure reported without a cause")
)

// Stage identifies the phase of the set-value pipeline at which a failure
// occurred. It tells callers where something went wrong, not just that it did:
// a rejected candidate (StageValidityCheck) is a different problem than a
// malformed name (StageProcessingName) or a misconfigured processor
// (StageUnknown).
type Stage uint8

const (
	// StageUnknown covers failures outside any identifiable phase, such as a
	// nil processor or an unexpected panic before the pipeline started.
	StageUnknown Stage = iota
	// StageProcessingName marks a failure while validating the preference name.
	StageProcessingName
	// StageProcessingType marks a runtime type or shape mismatch of the candidate.
	StageProcessingType
	// StageConverting marks a failed conversion of a dynamic value into the
	// preference's domain type.
	StageConverting
	// StageParsing marks a failed parse of a textual representation
	// (duration strings, enum names, and the like).
	StageParsing
	// StagePreProcessing marks a failure inside the Pre transform.
	StagePreProcessing
	// StageValidityCheck marks a rejection by the allowed-value policy or the
	// IsValid predicate.
	StageValidityCheck
	// StagePostProcessing marks a failure inside the Post transform.
	StagePostProcessing
	// StageSettingValue marks a failure while storing the finalized value,
	// such as a write to a read-only preference.
	StageSettingValue
)

// String returns the human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageProcessingName:
		return "processing name"
	case StageProcessingType:
		return "processing type"
	case StageConverting:
		return "converting"
	case StageParsing:
		return "parsing"
	case StagePreProcessing:
		return "pre-processing"
	case StageValidityCheck:
		return "validity check"
	case StagePostProcessing:
		return "post-processing"
	case StageSettingValue:
		return "setting value"
	default:
		return "unknown"
	}
}

// SetValueError is the single error type that crosses the set-value pipeline
// boundary. It tags the underlying cause with the preference name and the
// stage at which the failure occurred. A SetValueError is never nested inside
// another SetValueError; Classify guarantees single wrapping.
type SetValueError struct {
	// Preference is the name of the preference whose value was being set.
	Preference string
	// Stage is the pipeline phase active when the failure occurred.
	Stage Stage
	// Err is the underlying cause. Always non-nil.
	Err error
}

// NewSetValueError creates a classified error for the given preference and
// stage. A nil cause is replaced with ErrNoCause.
func NewSetValueError(preference string, stage Stage, err error) *SetValueError {
	if err == nil {
		err = ErrNoCause
	}
	return &SetValueError{Preference: preference, Stage: stage, Err: err}
}

// Error implements the error interface.
func (e *SetValueError) Error() string {
	return fmt.Sprintf("set value for preference %q failed at %s: %v", e.Preference, e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SetValueError) Unwrap() error {
	return e.Err
}

// Classify wraps err into a SetValueError tagged with the given preference
// name and stage. An error that already carries a SetValueError anywhere in
// its chain is passed through unchanged, so a classified failure surfacing
// from a nested call keeps its original stage.
func Classify(preference string, stage Stage, err error) error {
	if err == nil {
		err = ErrNoCause
	}
	var sve *SetValueError
	if errors.As(err, &sve) {
		return err
	}
	return NewSetValueError(preference, stage, err)
}

// StageOf reports the stage recorded in err's SetValueError, if any.
func StageOf(err error) (Stage, bool) {
	var sve *SetValueError
	if errors.As(err, &sve) {
		return sve.Stage, true
	}
	return StageUnknown, false
}

// IsSetValueError reports whether err carries a SetValueError.
func IsSetValueError(err error) bool {
	var sve *SetValueError
	return errors.As(err, &sve)
}

// UndefinedValueError reports a candidate that is not among the allowed
// values of a preference that does not permit undefined values.
type UndefinedValueError struct {
	// Preference is the name of the rejecting preference.
	Preference string
	// Value is the offending candidate.
	Value any
}

// Error implements the error interface.
func (e *UndefinedValueError) Error() string {
	return fmt.Sprintf("value %v is not among the allowed values of preference %q and undefined values are not allowed", e.Value, e.Preference)
}

// IsUndefinedValueError reports whether err carries an UndefinedValueError.
func IsUndefinedValueError(err error) bool {
	var uve *UndefinedValueError
	return errors.As(err, &uve)
}
