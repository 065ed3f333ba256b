package validkit_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit"
)

func TestIDProperties(t *testing.T) {
	t.Run("nil uuid is empty and zero", func(t *testing.T) {
		id := validkit.ID(uuid.Nil)
		assert.True(t, id.IsEmptyValue())
		assert.True(t, id.IsZeroValue())
	})

	t.Run("random uuid is neither", func(t *testing.T) {
		id := validkit.ID(uuid.New())
		assert.False(t, id.IsEmptyValue())
		assert.False(t, id.IsZeroValue())
	})

	t.Run("feeds the not-empty constraint", func(t *testing.T) {
		_, err := validkit.ValidateNotEmpty(validkit.Field("user_id"), validkit.ID{})
		ve := validationError(t, err)
		assert.Equal(t, validkit.CodeNotEmptyIsEmpty, ve.Violations("user_id")[0].Code)

		_, err = validkit.ValidateNotEmpty(validkit.Field("user_id"), validkit.ID(uuid.New()))
		assert.NoError(t, err)
	})
}
