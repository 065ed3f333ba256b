package validkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit"
)

func TestValidateNotEmpty(t *testing.T) {
	t.Run("empty string yields not-empty.is-empty", func(t *testing.T) {
		_, err := validkit.ValidateNotEmpty(validkit.Field("name"), validkit.Str(""))
		ve := validationError(t, err)
		violations := ve.Violations("name")
		require.Len(t, violations, 1)
		assert.Equal(t, validkit.CodeNotEmptyIsEmpty, violations[0].Code)
		assert.Empty(t, violations[0].Params)
	})

	t.Run("non-empty values pass unchanged", func(t *testing.T) {
		validated, err := validkit.ValidateNotEmpty(validkit.Field("name"), validkit.Str("x"))
		require.NoError(t, err)
		assert.Equal(t, validkit.Str("x"), validated.Unwrap())
	})

	t.Run("applies uniformly across container shapes", func(t *testing.T) {
		_, err := validkit.ValidateNotEmpty(validkit.Field("items"), validkit.List[int]{})
		assert.Error(t, err)

		_, err = validkit.ValidateNotEmpty(validkit.Field("labels"), validkit.Dict[string, string]{})
		assert.Error(t, err)

		_, err = validkit.ValidateNotEmpty(validkit.Field("flags"), validkit.NewSet[string]())
		assert.Error(t, err)

		_, err = validkit.ValidateNotEmpty(validkit.Field("maybe"), validkit.None[validkit.Str]())
		assert.Error(t, err)
	})
}

func TestValidateAssert(t *testing.T) {
	t.Run("assert-true fails on unchecked", func(t *testing.T) {
		_, err := validkit.ValidateAssertTrue(validkit.Field("terms_accepted"), validkit.Flag(false))
		ve := validationError(t, err)
		violation := ve.Violations("terms_accepted")[0]
		assert.Equal(t, validkit.CodeAssertTrueNotTrue, violation.Code)

		expected, _ := violation.Param("expected")
		assert.True(t, expected.Equal(validkit.Bool(true)))
	})

	t.Run("assert-true passes on checked", func(t *testing.T) {
		_, err := validkit.ValidateAssertTrue(validkit.Field("terms_accepted"), validkit.Flag(true))
		assert.NoError(t, err)
	})

	t.Run("assert-false fails on checked", func(t *testing.T) {
		_, err := validkit.ValidateAssertFalse(validkit.Field("blocked"), validkit.Flag(true))
		ve := validationError(t, err)
		assert.Equal(t, validkit.CodeAssertFalseNotFalse, ve.Violations("blocked")[0].Code)
	})
}
