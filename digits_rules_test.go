package validkit_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
)

func dec(t *testing.T, s string) validkit.Dec {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return validkit.NewDec(d)
}

func TestValidateDigits(t *testing.T) {
	limit := validkit.Digits{Integer: 5, Fraction: 2}

	t.Run("value within digit limits passes", func(t *testing.T) {
		_, err := validkit.ValidateDigits(validkit.Field("price"), limit, dec(t, "12345.67"))
		assert.NoError(t, err)
	})

	t.Run("too many integer digits", func(t *testing.T) {
		_, err := validkit.ValidateDigits(validkit.Field("price"), limit, dec(t, "123456.7"))
		ve := validationError(t, err)
		violations := ve.Violations("price")
		require.Len(t, violations, 1)
		assert.Equal(t, validkit.CodeDigitsTooManyInteger, violations[0].Code)

		actual, _ := violations[0].Param("actual")
		assert.True(t, actual.Equal(validkit.Long(6)))
	})

	t.Run("too many fraction digits", func(t *testing.T) {
		_, err := validkit.ValidateDigits(validkit.Field("price"), limit, dec(t, "1.234"))
		ve := validationError(t, err)
		violations := ve.Violations("price")
		require.Len(t, violations, 1)
		assert.Equal(t, validkit.CodeDigitsTooManyFraction, violations[0].Code)
	})

	t.Run("both limits exceeded records two violations in one check", func(t *testing.T) {
		_, err := validkit.ValidateDigits(validkit.Field("price"), limit, dec(t, "123456.789"))
		ve := validationError(t, err)
		violations := ve.Violations("price")
		require.Len(t, violations, 2)
		assert.Equal(t, validkit.CodeDigitsTooManyInteger, violations[0].Code)
		assert.Equal(t, validkit.CodeDigitsTooManyFraction, violations[1].Code)
	})
}

func TestDecProperties(t *testing.T) {
	t.Run("digit counts", func(t *testing.T) {
		d := dec(t, "123.45")
		assert.Equal(t, uint64(3), d.IntegerDigits())
		assert.Equal(t, uint64(2), d.FractionDigits())
	})

	t.Run("values below one have no integer digits", func(t *testing.T) {
		d := dec(t, "0.001")
		assert.Equal(t, uint64(0), d.IntegerDigits())
		assert.Equal(t, uint64(3), d.FractionDigits())
	})

	t.Run("scaled integers count shifted digits", func(t *testing.T) {
		d := dec(t, "12e2")
		assert.Equal(t, uint64(4), d.IntegerDigits())
		assert.Equal(t, uint64(0), d.FractionDigits())
	})

	t.Run("zero property feeds the non-zero constraint", func(t *testing.T) {
		_, err := validkit.ValidateNonZeroValue(validkit.Field("amount"), dec(t, "0.00"))
		ve := validationError(t, err)
		assert.Equal(t, validkit.CodeNonZeroIsZero, ve.Violations("amount")[0].Code)

		_, err = validkit.ValidateNonZeroValue(validkit.Field("amount"), dec(t, "0.0001"))
		assert.NoError(t, err)
	})
}
