package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirehub/jobboard/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "Eric"),
			validator.ValidEmail("email", "eric@example.com"),
		)
		require.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "  "),
			validator.ValidEmail("email", "not-an-email"),
		)
		require.Error(t, err)

		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 2)
		assert.True(t, ve.Has("name"))
		assert.True(t, ve.Has("email"))
		assert.ElementsMatch(t, []string{"name", "email"}, ve.Fields())
	})

	t.Run("IsValidationError", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.RequiredString("name", ""))
		assert.True(t, validator.IsValidationError(err))
		assert.False(t, validator.IsValidationError(assert.AnError))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MinLenString("password", "12345678", 8)))
	assert.Error(t, validator.Apply(validator.MinLenString("password", "1234567", 8)))
	assert.NoError(t, validator.Apply(validator.MaxLenString("name", "Eric", 64)))
	assert.Error(t, validator.Apply(validator.MaxLenString("name", "Eric", 2)))
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"user@example.com", "first.last@sub.domain.org"}
	for _, email := range valid {
		assert.NoError(t, validator.Apply(validator.ValidEmail("email", email)), email)
	}

	invalid := []string{"", "plain", "user@", "@domain.com", "user@nodot", "user@.start.com"}
	for _, email := range invalid {
		assert.Error(t, validator.Apply(validator.ValidEmail("email", email)), email)
	}
}

func TestValidObjectIDHex(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.ValidObjectIDHex("id", "507f1f77bcf86cd799439011")))
	assert.Error(t, validator.Apply(validator.ValidObjectIDHex("id", "short")))
	assert.Error(t, validator.Apply(validator.ValidObjectIDHex("id", "507f1f77bcf86cd79943901z")))
}

func TestPasswordRules(t *testing.T) {
	t.Parallel()

	cfg := validator.PasswordStrengthConfig{MinLength: 8, MaxLength: 128, MinCharClasses: 2}

	t.Run("strong password accepted", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.StrongPassword("password", "Secur3Pass", cfg)))
	})

	t.Run("too short rejected", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, validator.Apply(validator.StrongPassword("password", "Ab1", cfg)))
	})

	t.Run("single char class rejected", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, validator.Apply(validator.StrongPassword("password", "aaaaaaaaaa", cfg)))
	})

	t.Run("common password rejected", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, validator.Apply(validator.NotCommonPassword("password", "Password123")))
		assert.NoError(t, validator.Apply(validator.NotCommonPassword("password", "obscure-phrase-42")))
	})
}

func TestInList(t *testing.T) {
	t.Parallel()

	statuses := []string{"PENDING", "REVIEWING", "APPROVED", "REJECTED"}
	assert.NoError(t, validator.Apply(validator.InList("status", "REVIEWING", statuses)))
	assert.Error(t, validator.Apply(validator.InList("status", "ARCHIVED", statuses)))
}
