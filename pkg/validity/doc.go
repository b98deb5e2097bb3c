// Package validity implements the value-lifecycle pipeline that governs every
// assignment to a typed preference: a three-stage Pre → IsValid → Post
// processor, an allowed-value policy with optional membership broadening, and
// a stage-classified error type that tags every failure with the pipeline
// phase where it occurred.
//
// # Architecture
//
// The package is a set of pure building blocks with no shared state:
//
//   - ProcessorResult / ValidityResult – immutable step outcomes
//   - Processor[T]                     – the Pre/IsValid/Post function triple
//   - Policy[T]                        – allowed values, undefined-value flag,
//     and the flags-style membership broadening hook
//   - ProcessSetValue                  – the orchestrator sequencing name
//     validation, the nil short-circuit, the three steps and the policy
//   - Stage / SetValueError            – the classified error surface
//
// Preset factories (IsPositive, IsEqualTo, IsNotEmptyOrWhitespace, …) return
// freshly configured processors implementing one reusable rule each; they are
// grouped per domain into numeric_presets.go, comparable_presets.go and
// string_presets.go. Every preset is a pure factory — customizing the returned
// processor never affects other instances.
//
// # Value representation
//
// Candidates are passed as *T: a nil pointer is the unset state. Unsetting is
// always legal — a nil candidate short-circuits the pipeline and stores nil
// without consulting the policy or the predicate. Value domains must be
// comparable so allowed-value membership can use plain equality.
//
// # Usage
//
//	proc := validity.IsPositive[int64]()
//	policy := validity.Policy[int64]{
//		Allowed:        []int64{1, 5, 10, 50},
//		AllowUndefined: false,
//	}
//	stored, err := validity.ProcessSetValue("Count", validity.Ptr(int64(5)), proc, policy)
//	if err != nil {
//		if stage, ok := validity.StageOf(err); ok {
//			// stage tells you where the pipeline failed
//		}
//	}
//
// # Error Handling
//
// Every failure crossing ProcessSetValue is a *SetValueError carrying the
// preference name, the Stage active at the time, and the underlying cause.
// Classification is single-shot: an error already carrying a SetValueError is
// passed through unchanged, never double-wrapped. Panics raised inside
// user-supplied steps are recovered and classified the same way, so no raw
// panic escapes the pipeline. Use errors.As, StageOf or IsSetValueError to
// inspect failures.
//
// # Concurrency
//
// ProcessSetValue is stateless and re-entrant. Processors and policies are
// read-only at use time; configuring them concurrently with use is the
// caller's bug, not a supported mode.
package validity
