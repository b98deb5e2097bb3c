package validity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/prefkit/pkg/validity"
)

func checkInt64(t *testing.T, proc *validity.Processor[int64], value int64) validity.ValidityResult {
	t.Helper()
	return proc.RunIsValid(validity.Ptr(value))
}

func TestNumericPresets(t *testing.T) {
	t.Parallel()

	t.Run("IsZero", func(t *testing.T) {
		proc := validity.IsZero[int64]()
		assert.False(t, checkInt64(t, proc, 0).Failed())
		res := checkInt64(t, proc, 3)
		require.True(t, res.Failed())
		assert.Contains(t, res.Err().Error(), "is not zero")
	})

	t.Run("IsOne", func(t *testing.T) {
		proc := validity.IsOne[int64]()
		assert.False(t, checkInt64(t, proc, 1).Failed())
		assert.True(t, checkInt64(t, proc, 0).Failed())
	})

	t.Run("IsPositive", func(t *testing.T) {
		proc := validity.IsPositive[int64]()
		assert.False(t, checkInt64(t, proc, 1).Failed())
		assert.True(t, checkInt64(t, proc, 0).Failed())

		res := checkInt64(t, proc, -4)
		require.True(t, res.Failed())
		assert.Contains(t, res.Err().Error(), "less than or equal to zero")
	})

	t.Run("IsNegative", func(t *testing.T) {
		proc := validity.IsNegative[int64]()
		assert.False(t, checkInt64(t, proc, -1).Failed())
		assert.True(t, checkInt64(t, proc, 0).Failed())
		assert.True(t, checkInt64(t, proc, 2).Failed())
	})

	t.Run("IsNotPositive", func(t *testing.T) {
		proc := validity.IsNotPositive[int64]()
		assert.False(t, checkInt64(t, proc, 0).Failed())
		assert.False(t, checkInt64(t, proc, -5).Failed())
		assert.True(t, checkInt64(t, proc, 1).Failed())
	})

	t.Run("IsNotNegative", func(t *testing.T) {
		proc := validity.IsNotNegative[int64]()
		assert.False(t, checkInt64(t, proc, 0).Failed())
		assert.False(t, checkInt64(t, proc, 5).Failed())
		assert.True(t, checkInt64(t, proc, -1).Failed())
	})

	t.Run("aliases match their originals", func(t *testing.T) {
		assert.False(t, validity.IsGreaterThanZero[int64]().RunIsValid(validity.Ptr(int64(1))).Failed())
		assert.True(t, validity.IsGreaterThanZero[int64]().RunIsValid(validity.Ptr(int64(0))).Failed())
		assert.False(t, validity.IsLessThanZero[int64]().RunIsValid(validity.Ptr(int64(-1))).Failed())
		assert.True(t, validity.IsLessThanZero[int64]().RunIsValid(validity.Ptr(int64(0))).Failed())
	})

	t.Run("floating-point domains are supported", func(t *testing.T) {
		proc := validity.IsPositive[float64]()
		assert.False(t, proc.RunIsValid(validity.Ptr(0.5)).Failed())
		assert.True(t, proc.RunIsValid(validity.Ptr(-0.5)).Failed())
	})

	t.Run("nil candidates are rejected", func(t *testing.T) {
		presets := []*validity.Processor[int64]{
			validity.IsZero[int64](),
			validity.IsOne[int64](),
			validity.IsPositive[int64](),
			validity.IsNegative[int64](),
			validity.IsNotPositive[int64](),
			validity.IsNotNegative[int64](),
		}
		for _, proc := range presets {
			res := proc.RunIsValid(nil)
			require.True(t, res.Failed())
			assert.Contains(t, res.Err().Error(), "nil")
		}
	})
}

func TestIsFinite(t *testing.T) {
	t.Parallel()

	proc := validity.IsFinite[float64]()

	t.Run("accepts ordinary values", func(t *testing.T) {
		assert.False(t, proc.RunIsValid(validity.Ptr(0.0)).Failed())
		assert.False(t, proc.RunIsValid(validity.Ptr(-12.25)).Failed())
	})

	t.Run("rejects NaN", func(t *testing.T) {
		res := proc.RunIsValid(validity.Ptr(math.NaN()))
		require.True(t, res.Failed())
		assert.Contains(t, res.Err().Error(), "NaN")
	})

	t.Run("rejects infinities", func(t *testing.T) {
		assert.True(t, proc.RunIsValid(validity.Ptr(math.Inf(1))).Failed())
		assert.True(t, proc.RunIsValid(validity.Ptr(math.Inf(-1))).Failed())
	})

	t.Run("rejects nil", func(t *testing.T) {
		assert.True(t, proc.RunIsValid(nil).Failed())
	})
}
