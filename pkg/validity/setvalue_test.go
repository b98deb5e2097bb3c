package validity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/prefkit/pkg/validity"
)

func requireStage(t *testing.T, err error, stage validity.Stage) *validity.SetValueError {
	t.Helper()
	require.Error(t, err)
	var sve *validity.SetValueError
	require.ErrorAs(t, err, &sve)
	assert.Equal(t, stage, sve.Stage)
	return sve
}

func TestProcessSetValue(t *testing.T) {
	t.Parallel()

	t.Run("returns the value untouched with a default processor", func(t *testing.T) {
		stored, err := validity.ProcessSetValue("Count", validity.Ptr(int64(5)), validity.NewProcessor[int64](), validity.Policy[int64]{})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, int64(5), *stored)
	})

	t.Run("nil value short-circuits to nil without running any stage", func(t *testing.T) {
		proc := validity.NewProcessor[int64]()
		proc.Pre = func(value *int64) validity.ProcessorResult[int64] {
			return validity.Failure[int64](errors.New("pre must not run"))
		}
		proc.IsValid = func(value *int64) validity.ValidityResult {
			return validity.NotValid(errors.New("isValid must not run"))
		}
		proc.Post = func(value *int64) validity.ProcessorResult[int64] {
			return validity.Failure[int64](errors.New("post must not run"))
		}
		policy := validity.Policy[int64]{Allowed: []int64{1}, AllowUndefined: false}

		stored, err := validity.ProcessSetValue("Count", nil, proc, policy)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("nil processor fails with stage unknown", func(t *testing.T) {
		_, err := validity.ProcessSetValue[int64]("Count", validity.Ptr(int64(5)), nil, validity.Policy[int64]{})
		sve := requireStage(t, err, validity.StageUnknown)
		assert.ErrorIs(t, sve, validity.ErrNilProcessor)
	})

	t.Run("empty name fails with stage processing name", func(t *testing.T) {
		_, err := validity.ProcessSetValue("", validity.Ptr(int64(5)), validity.NewProcessor[int64](), validity.Policy[int64]{})
		sve := requireStage(t, err, validity.StageProcessingName)
		assert.ErrorIs(t, sve, validity.ErrEmptyName)
	})

	t.Run("whitespace-only name fails with stage processing name", func(t *testing.T) {
		_, err := validity.ProcessSetValue("  \t ", validity.Ptr(int64(5)), validity.NewProcessor[int64](), validity.Policy[int64]{})
		requireStage(t, err, validity.StageProcessingName)
	})

	t.Run("name is validated before the nil short-circuit", func(t *testing.T) {
		_, err := validity.ProcessSetValue[int64]("", nil, validity.NewProcessor[int64](), validity.Policy[int64]{})
		requireStage(t, err, validity.StageProcessingName)
	})

	t.Run("pre failure reports pre-processing even when isValid would also fail", func(t *testing.T) {
		proc := validity.NewProcessor[string]()
		proc.Pre = func(value *string) validity.ProcessorResult[string] {
			return validity.Failure[string](errors.New("normalize failed"))
		}
		proc.IsValid = func(value *string) validity.ValidityResult {
			return validity.NotValid(errors.New("would also reject"))
		}

		_, err := validity.ProcessSetValue("Mode", validity.Ptr("x"), proc, validity.Policy[string]{})
		sve := requireStage(t, err, validity.StagePreProcessing)
		assert.Contains(t, sve.Err.Error(), "normalize failed")
	})

	t.Run("isValid failure reports validity check even when post would also fail", func(t *testing.T) {
		proc := validity.NewProcessor[string]()
		proc.IsValid = func(value *string) validity.ValidityResult {
			return validity.NotValid(errors.New("rejected"))
		}
		proc.Post = func(value *string) validity.ProcessorResult[string] {
			return validity.Failure[string](errors.New("would also fail"))
		}

		_, err := validity.ProcessSetValue("Mode", validity.Ptr("x"), proc, validity.Policy[string]{})
		sve := requireStage(t, err, validity.StageValidityCheck)
		assert.Contains(t, sve.Err.Error(), "rejected")
	})

	t.Run("post failure reports post-processing", func(t *testing.T) {
		proc := validity.NewProcessor[string]()
		proc.Post = func(value *string) validity.ProcessorResult[string] {
			return validity.Failure[string](errors.New("store shaping failed"))
		}

		_, err := validity.ProcessSetValue("Mode", validity.Ptr("x"), proc, validity.Policy[string]{})
		requireStage(t, err, validity.StagePostProcessing)
	})

	t.Run("undefined value is rejected when the policy restricts", func(t *testing.T) {
		policy := validity.Policy[int64]{Allowed: []int64{1, 2, 3}}

		_, err := validity.ProcessSetValue("Count", validity.Ptr(int64(5)), validity.NewProcessor[int64](), policy)
		sve := requireStage(t, err, validity.StageValidityCheck)

		var uve *validity.UndefinedValueError
		require.ErrorAs(t, sve, &uve)
		assert.Equal(t, "Count", uve.Preference)
		assert.Equal(t, int64(5), uve.Value)
	})

	t.Run("member value passes the policy and still runs isValid", func(t *testing.T) {
		proc := validity.NewProcessor[int64]()
		proc.IsValid = func(value *int64) validity.ValidityResult {
			if value != nil && *value == 2 {
				return validity.NotValid(errors.New("two is specifically rejected"))
			}
			return validity.Valid()
		}
		policy := validity.Policy[int64]{Allowed: []int64{1, 2, 3}}

		stored, err := validity.ProcessSetValue("Count", validity.Ptr(int64(1)), proc, policy)
		require.NoError(t, err)
		assert.Equal(t, int64(1), *stored)

		_, err = validity.ProcessSetValue("Count", validity.Ptr(int64(2)), proc, policy)
		sve := requireStage(t, err, validity.StageValidityCheck)
		assert.Contains(t, sve.Err.Error(), "two is specifically rejected")
	})

	t.Run("allowing undefined values skips membership but not isValid", func(t *testing.T) {
		proc := validity.NewProcessor[int64]()
		proc.IsValid = func(value *int64) validity.ValidityResult {
			if value != nil && *value == 5 {
				return validity.NotValid(errors.New("five rejected by predicate"))
			}
			return validity.Valid()
		}
		policy := validity.Policy[int64]{Allowed: []int64{1, 2, 3}, AllowUndefined: true}

		stored, err := validity.ProcessSetValue("Count", validity.Ptr(int64(7)), proc, policy)
		require.NoError(t, err)
		assert.Equal(t, int64(7), *stored)

		_, err = validity.ProcessSetValue("Count", validity.Ptr(int64(5)), proc, policy)
		requireStage(t, err, validity.StageValidityCheck)
	})

	t.Run("an empty allowed list restricts nothing", func(t *testing.T) {
		policy := validity.Policy[int64]{Allowed: nil, AllowUndefined: false}
		stored, err := validity.ProcessSetValue("Count", validity.Ptr(int64(42)), validity.NewProcessor[int64](), policy)
		require.NoError(t, err)
		assert.Equal(t, int64(42), *stored)
	})

	t.Run("the member hook broadens the allowed list", func(t *testing.T) {
		policy := validity.Policy[int64]{
			Allowed: []int64{1, 2},
			Member:  func(v int64) bool { return v == 3 },
		}

		stored, err := validity.ProcessSetValue("Flags", validity.Ptr(int64(3)), validity.NewProcessor[int64](), policy)
		require.NoError(t, err)
		assert.Equal(t, int64(3), *stored)

		_, err = validity.ProcessSetValue("Flags", validity.Ptr(int64(4)), validity.NewProcessor[int64](), policy)
		requireStage(t, err, validity.StageValidityCheck)
	})

	t.Run("pre and post transforms compose around validation", func(t *testing.T) {
		proc := validity.NewProcessor[string]()
		proc.Pre = validity.TrimSpacePre[string]()
		proc.IsValid = func(value *string) validity.ValidityResult {
			if value == nil || *value != "ok" {
				return validity.NotValid(errors.New("expected trimmed candidate"))
			}
			return validity.Valid()
		}
		proc.Post = validity.ToUpperPost[string]()

		stored, err := validity.ProcessSetValue("Greeting", validity.Ptr("  ok "), proc, validity.Policy[string]{})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "OK", *stored)
	})

	t.Run("membership is checked against the post-pre value", func(t *testing.T) {
		proc := validity.NewProcessor[string]()
		proc.Pre = validity.TrimSpacePre[string]()
		policy := validity.Policy[string]{Allowed: []string{"ok"}}

		stored, err := validity.ProcessSetValue("Greeting", validity.Ptr("  ok "), proc, policy)
		require.NoError(t, err)
		assert.Equal(t, "ok", *stored)
	})

	t.Run("a pre step may unset the value", func(t *testing.T) {
		proc := validity.NewProcessor[string]()
		proc.Pre = func(value *string) validity.ProcessorResult[string] {
			return validity.Success[string](nil)
		}

		stored, err := validity.ProcessSetValue("Greeting", validity.Ptr("anything"), proc, validity.Policy[string]{})
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("a pre-unset value is undefined under a restricting policy", func(t *testing.T) {
		proc := validity.NewProcessor[string]()
		proc.Pre = func(value *string) validity.ProcessorResult[string] {
			return validity.Success[string](nil)
		}
		policy := validity.Policy[string]{Allowed: []string{"a"}}

		_, err := validity.ProcessSetValue("Greeting", validity.Ptr("a"), proc, policy)
		sve := requireStage(t, err, validity.StageValidityCheck)
		var uve *validity.UndefinedValueError
		require.ErrorAs(t, sve, &uve)
		assert.Equal(t, "<nil>", uve.Value)
	})

	t.Run("count scenario with is-greater-than-zero", func(t *testing.T) {
		proc := validity.IsGreaterThanZero[int64]()
		policy := validity.Policy[int64]{AllowUndefined: true}

		stored, err := validity.ProcessSetValue("Count", validity.Ptr(int64(5)), proc, policy)
		require.NoError(t, err)
		assert.Equal(t, int64(5), *stored)

		_, err = validity.ProcessSetValue("Count", validity.Ptr(int64(-1)), proc, policy)
		sve := requireStage(t, err, validity.StageValidityCheck)
		assert.Contains(t, sve.Err.Error(), "less than or equal to zero")
	})
}

func TestProcessSetValuePanics(t *testing.T) {
	t.Parallel()

	t.Run("panic in pre is classified as pre-processing", func(t *testing.T) {
		proc := validity.NewProcessor[int64]()
		proc.Pre = func(value *int64) validity.ProcessorResult[int64] {
			panic("pre exploded")
		}

		_, err := validity.ProcessSetValue("Count", validity.Ptr(int64(1)), proc, validity.Policy[int64]{})
		sve := requireStage(t, err, validity.StagePreProcessing)
		assert.Contains(t, sve.Err.Error(), "pre exploded")
	})

	t.Run("panic in isValid is classified as validity check", func(t *testing.T) {
		proc := validity.NewProcessor[int64]()
		proc.IsValid = func(value *int64) validity.ValidityResult {
			panic(errors.New("predicate exploded"))
		}

		_, err := validity.ProcessSetValue("Count", validity.Ptr(int64(1)), proc, validity.Policy[int64]{})
		sve := requireStage(t, err, validity.StageValidityCheck)
		assert.Contains(t, sve.Err.Error(), "predicate exploded")
	})

	t.Run("panic in post is classified as post-processing", func(t *testing.T) {
		proc := validity.NewProcessor[int64]()
		proc.Post = func(value *int64) validity.ProcessorResult[int64] {
			panic("post exploded")
		}

		_, err := validity.ProcessSetValue("Count", validity.Ptr(int64(1)), proc, validity.Policy[int64]{})
		requireStage(t, err, validity.StagePostProcessing)
	})

	t.Run("panic in the member hook is classified as validity check", func(t *testing.T) {
		policy := validity.Policy[int64]{
			Allowed: []int64{1},
			Member:  func(v int64) bool { panic("hook exploded") },
		}

		_, err := validity.ProcessSetValue("Count", validity.Ptr(int64(2)), validity.NewProcessor[int64](), policy)
		requireStage(t, err, validity.StageValidityCheck)
	})

	t.Run("a classified panic payload keeps its original stage", func(t *testing.T) {
		nested := validity.NewSetValueError("Inner", validity.StageParsing, errors.New("bad token"))
		proc := validity.NewProcessor[int64]()
		proc.IsValid = func(value *int64) validity.ValidityResult {
			panic(nested)
		}

		_, err := validity.ProcessSetValue("Count", validity.Ptr(int64(1)), proc, validity.Policy[int64]{})
		sve := requireStage(t, err, validity.StageParsing)
		assert.Equal(t, "Inner", sve.Preference)
	})
}

func TestProcessSetValueSingleWrapping(t *testing.T) {
	t.Parallel()

	t.Run("a classified error from isValid is passed through unchanged", func(t *testing.T) {
		nested := validity.NewSetValueError("Other", validity.StageConverting, errors.New("lossy"))
		proc := validity.NewProcessor[int64]()
		proc.IsValid = func(value *int64) validity.ValidityResult {
			return validity.NotValid(nested)
		}

		_, err := validity.ProcessSetValue("Count", validity.Ptr(int64(1)), proc, validity.Policy[int64]{})
		require.Error(t, err)

		var sve *validity.SetValueError
		require.ErrorAs(t, err, &sve)
		assert.Equal(t, validity.StageConverting, sve.Stage)
		assert.Equal(t, "Other", sve.Preference)
		assert.NotErrorAs(t, sve.Err, &sve)
	})

	t.Run("a classified error from pre is passed through unchanged", func(t *testing.T) {
		nested := validity.NewSetValueError("Other", validity.StageParsing, errors.New("bad"))
		proc := validity.NewProcessor[int64]()
		proc.Pre = func(value *int64) validity.ProcessorResult[int64] {
			return validity.Failure[int64](nested)
		}

		_, err := validity.ProcessSetValue("Count", validity.Ptr(int64(1)), proc, validity.Policy[int64]{})
		stage, ok := validity.StageOf(err)
		require.True(t, ok)
		assert.Equal(t, validity.StageParsing, stage)
	})
}
