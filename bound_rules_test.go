package validkit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
)

func TestValidateBound(t *testing.T) {
	t.Run("value within closed range passes unchanged", func(t *testing.T) {
		validated, err := validkit.ValidateBound(validkit.Field("age"), validkit.MustBetween(1, 10), 10)
		require.NoError(t, err)
		assert.Equal(t, 10, validated.Unwrap())
	})

	t.Run("above maximum yields bound.too-high with max and actual", func(t *testing.T) {
		_, err := validkit.ValidateBound(validkit.Field("age"), validkit.MustBetween(1, 10), 11)
		ve := validationError(t, err)

		require.Equal(t, []string{"age"}, ve.Paths())
		violations := ve.Violations("age")
		require.Len(t, violations, 1)
		assert.Equal(t, validkit.CodeBoundTooHigh, violations[0].Code)

		max, ok := violations[0].Param("max")
		require.True(t, ok)
		assert.True(t, max.Equal(validkit.Int(10)))

		actual, ok := violations[0].Param("actual")
		require.True(t, ok)
		assert.True(t, actual.Equal(validkit.Int(11)))
	})

	t.Run("below minimum yields bound.too-low", func(t *testing.T) {
		_, err := validkit.ValidateBound(validkit.Field("age"), validkit.MustBetween(18, 130), 16)
		ve := validationError(t, err)
		violation := ve.Violations("age")[0]
		assert.Equal(t, validkit.CodeBoundTooLow, violation.Code)

		min, _ := violation.Param("min")
		assert.True(t, min.Equal(validkit.Int(18)))
	})

	t.Run("every failed check carries exactly one violation", func(t *testing.T) {
		for _, v := range []int{-100, 0, 11, 100} {
			if _, err := validkit.ValidateBound(validkit.Root(), validkit.MustBetween(1, 10), v); err != nil {
				assert.Equal(t, 1, validationError(t, err).Len(), "value %d", v)
			}
		}
	})

	t.Run("exclusive endpoints reject the boundary value", func(t *testing.T) {
		c, err := validkit.BetweenExclusive(1.0, 10.0)
		require.NoError(t, err)

		_, err = validkit.ValidateBound(validkit.Field("score"), c, 1.0)
		ve := validationError(t, err)
		violation := ve.Violations("score")[0]
		assert.Equal(t, validkit.CodeBoundTooLow, violation.Code)
		exclusive, ok := violation.Param("exclusive")
		require.True(t, ok)
		assert.True(t, exclusive.Equal(validkit.Bool(true)))

		_, err = validkit.ValidateBound(validkit.Field("score"), c, 10.0)
		assert.Equal(t, validkit.CodeBoundTooHigh, validationError(t, err).Violations("score")[0].Code)

		_, err = validkit.ValidateBound(validkit.Field("score"), c, 5.0)
		assert.NoError(t, err)
	})

	t.Run("one-sided bounds", func(t *testing.T) {
		_, err := validkit.ValidateBound(validkit.Field("retries"), validkit.AtLeast(0), -1)
		assert.Equal(t, validkit.CodeBoundTooLow, validationError(t, err).Violations("retries")[0].Code)

		_, err = validkit.ValidateBound(validkit.Field("retries"), validkit.AtMost(5), 6)
		assert.Equal(t, validkit.CodeBoundTooHigh, validationError(t, err).Violations("retries")[0].Code)

		_, err = validkit.ValidateBound(validkit.Field("offset"), validkit.GreaterThan(0), 0)
		assert.Equal(t, validkit.CodeBoundTooLow, validationError(t, err).Violations("offset")[0].Code)

		_, err = validkit.ValidateBound(validkit.Field("offset"), validkit.LessThan(10), 10)
		assert.Equal(t, validkit.CodeBoundTooHigh, validationError(t, err).Violations("offset")[0].Code)
	})

	t.Run("exact bound", func(t *testing.T) {
		_, err := validkit.ValidateBound(validkit.Field("version"), validkit.Exactly("v2"), "v2")
		assert.NoError(t, err)

		_, err = validkit.ValidateBound(validkit.Field("version"), validkit.Exactly("v2"), "v3")
		violation := validationError(t, err).Violations("version")[0]
		assert.Equal(t, validkit.CodeBoundNotExact, violation.Code)
		expected, _ := violation.Param("expected")
		assert.True(t, expected.Equal(validkit.Text("v2")))
	})

	t.Run("works over strings and floats", func(t *testing.T) {
		_, err := validkit.ValidateBound(validkit.Field("grade"), validkit.MustBetween("a", "f"), "c")
		assert.NoError(t, err)

		_, err = validkit.ValidateBound(validkit.Field("ratio"), validkit.MustBetween(0.0, 1.0), 1.5)
		assert.Error(t, err)
	})

	t.Run("extreme magnitudes never panic", func(t *testing.T) {
		c, err := validkit.Between(uint64(0), uint64(math.MaxUint64))
		require.NoError(t, err)
		_, err = validkit.ValidateBound(validkit.Field("n"), c, uint64(math.MaxUint64))
		assert.NoError(t, err)

		_, err = validkit.ValidateBound(validkit.Field("n"), validkit.MustBetween(int64(math.MinInt64), int64(math.MaxInt64)), int64(0))
		assert.NoError(t, err)
	})
}

func TestBoundConstruction(t *testing.T) {
	t.Run("inverted closed range fails at construction", func(t *testing.T) {
		_, err := validkit.Between(10, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, validkit.ErrInvalidConstraint)
	})

	t.Run("closed range may be a single point", func(t *testing.T) {
		_, err := validkit.Between(3, 3)
		assert.NoError(t, err)
	})

	t.Run("empty open range fails at construction", func(t *testing.T) {
		_, err := validkit.BetweenExclusive(3, 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, validkit.ErrInvalidConstraint)
	})

	t.Run("must variants panic on malformed bounds", func(t *testing.T) {
		assert.Panics(t, func() { validkit.MustBetween(10, 1) })
		assert.Panics(t, func() { validkit.MustBetweenExclusive(3, 3) })
	})
}
