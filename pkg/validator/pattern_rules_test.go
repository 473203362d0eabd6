package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestCompilePattern(t *testing.T) {
	t.Run("anchors the expression", func(t *testing.T) {
		re, err := validator.CompilePattern("[0-9]{3}")
		require.NoError(t, err)
		assert.True(t, re.MatchString("123"))
		assert.False(t, re.MatchString("1234"))
		assert.False(t, re.MatchString("a123"))
	})

	t.Run("alternation is anchored as a whole", func(t *testing.T) {
		re, err := validator.CompilePattern("cat|dog")
		require.NoError(t, err)
		assert.True(t, re.MatchString("dog"))
		assert.False(t, re.MatchString("catfish"))
	})

	t.Run("rejects invalid expressions", func(t *testing.T) {
		_, err := validator.CompilePattern("[a-")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrInvalidPattern)
	})
}

func TestMatchesPattern(t *testing.T) {
	re, err := validator.CompilePattern("[A-Z]{2}-[0-9]+")
	require.NoError(t, err)

	assert.True(t, validator.MatchesPattern("code", "AB-12", re).Check())

	rule := validator.MatchesPattern("code", "ab-12", re)
	assert.False(t, rule.Check())
	assert.Equal(t, "Please match the requested format.", rule.Error.Message)
	assert.Equal(t, "validation.pattern_mismatch", rule.Error.Code)
}
