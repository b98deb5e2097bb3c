//go:build property

package validity_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmitrymomot/prefkit/pkg/validity"
)

// TestProcessSetValueProperties validates the pipeline invariants over
// randomized inputs.
func TestProcessSetValueProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Property: a default processor is the identity on every candidate.
	properties.Property("default processor stores the candidate unchanged", prop.ForAll(
		func(v int64) bool {
			stored, err := validity.ProcessSetValue("Candidate", validity.Ptr(v), validity.NewProcessor[int64](), validity.Policy[int64]{})
			return err == nil && stored != nil && *stored == v
		},
		gen.Int64(),
	))

	// Property: unsetting is legal under every policy configuration.
	properties.Property("nil candidates pass every configuration", prop.ForAll(
		func(allowed []int64, allowUndefined bool) bool {
			policy := validity.Policy[int64]{Allowed: allowed, AllowUndefined: allowUndefined}
			stored, err := validity.ProcessSetValue[int64]("Candidate", nil, validity.NewProcessor[int64](), policy)
			return err == nil && stored == nil
		},
		gen.SliceOf(gen.Int64()),
		gen.Bool(),
	))

	// Property: the pipeline rejects exactly the candidates the policy rejects.
	properties.Property("membership gating matches the policy", prop.ForAll(
		func(allowed []int64, candidate int64, allowUndefined bool) bool {
			policy := validity.Policy[int64]{Allowed: allowed, AllowUndefined: allowUndefined}
			stored, err := validity.ProcessSetValue("Candidate", validity.Ptr(candidate), validity.NewProcessor[int64](), policy)

			shouldReject := policy.Restricted() && !allowUndefined && !policy.Permits(candidate)
			if shouldReject {
				stage, ok := validity.StageOf(err)
				return err != nil && ok && stage == validity.StageValidityCheck && validity.IsUndefinedValueError(err)
			}
			return err == nil && stored != nil && *stored == candidate
		},
		gen.SliceOf(gen.Int64Range(-5, 5)),
		gen.Int64Range(-5, 5),
		gen.Bool(),
	))

	// Property: induced failures surface as exactly one SetValueError tagged
	// with the failing stage, never nested.
	properties.Property("every failure is classified exactly once", prop.ForAll(
		func(mode uint8, v int64) bool {
			proc := validity.NewProcessor[int64]()
			cause := errors.New("induced failure")
			var want validity.Stage
			switch mode % 3 {
			case 0:
				proc.Pre = func(value *int64) validity.ProcessorResult[int64] { return validity.Failure[int64](cause) }
				want = validity.StagePreProcessing
			case 1:
				proc.IsValid = func(value *int64) validity.ValidityResult { return validity.NotValid(cause) }
				want = validity.StageValidityCheck
			default:
				proc.Post = func(value *int64) validity.ProcessorResult[int64] { return validity.Failure[int64](cause) }
				want = validity.StagePostProcessing
			}

			_, err := validity.ProcessSetValue("Candidate", validity.Ptr(v), proc, validity.Policy[int64]{})
			var sve *validity.SetValueError
			if !errors.As(err, &sve) || sve.Stage != want {
				return false
			}
			var nested *validity.SetValueError
			return !errors.As(sve.Err, &nested)
		},
		gen.UInt8(),
		gen.Int64(),
	))

	// Property: re-running a value that already passed a normalizing pipeline
	// leaves it unchanged.
	properties.Property("normalizing pipelines are idempotent", prop.ForAll(
		func(v int64) bool {
			proc := validity.NewProcessor[int64]()
			proc.Pre = validity.TransformPre(func(x int64) int64 {
				if x < 0 {
					return -x
				}
				return x
			})
			first, err := validity.ProcessSetValue("Candidate", validity.Ptr(v), proc, validity.Policy[int64]{})
			if err != nil || first == nil {
				return false
			}
			second, err := validity.ProcessSetValue("Candidate", first, proc, validity.Policy[int64]{})
			return err == nil && second != nil && *second == *first
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
