package validate_test

import (
	"testing"

	"github.com/serroba/shortspan/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePeriod(t *testing.T) {
	t.Run("empty input defaults to thirty minutes", func(t *testing.T) {
		result := validate.ValidatePeriod("")

		require.True(t, result.Valid)
		assert.Equal(t, 30, result.Minutes)
		assert.Empty(t, result.Warning)
	})

	t.Run("accepts a plain number", func(t *testing.T) {
		result := validate.ValidatePeriod("60")

		require.True(t, result.Valid)
		assert.Equal(t, 60, result.Minutes)
		assert.Empty(t, result.Warning)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		result := validate.ValidatePeriod("soon")

		require.False(t, result.Valid)
		assert.Equal(t, "Validity period must be a number", result.Err)
	})

	t.Run("rejects fractional minutes", func(t *testing.T) {
		result := validate.ValidatePeriod("2.5")

		require.False(t, result.Valid)
		assert.Equal(t, "Validity period must be a whole number", result.Err)
	})

	t.Run("rejects zero and negatives", func(t *testing.T) {
		for _, raw := range []string{"0", "-10"} {
			result := validate.ValidatePeriod(raw)

			require.False(t, result.Valid, raw)
			assert.Contains(t, result.Err, "at least 1 minute", raw)
		}
	})

	t.Run("rejects more than one year", func(t *testing.T) {
		result := validate.ValidatePeriod("525601")

		require.False(t, result.Valid)
		assert.Contains(t, result.Err, "cannot exceed 1 year")
	})

	t.Run("accepts exactly one year", func(t *testing.T) {
		result := validate.ValidatePeriod("525600")

		require.True(t, result.Valid)
		assert.Equal(t, 525600, result.Minutes)
	})

	t.Run("warns on very short periods", func(t *testing.T) {
		result := validate.ValidatePeriod("3")

		require.True(t, result.Valid)
		assert.Equal(t, 3, result.Minutes)
		assert.Contains(t, result.Warning, "expire quickly")
	})

	t.Run("warns on very long periods", func(t *testing.T) {
		result := validate.ValidatePeriod("43201")

		require.True(t, result.Valid)
		assert.Contains(t, result.Warning, "Very long validity period")
	})

	t.Run("boundary values carry no warning", func(t *testing.T) {
		for _, raw := range []string{"5", "43200"} {
			result := validate.ValidatePeriod(raw)

			require.True(t, result.Valid, raw)
			assert.Empty(t, result.Warning, raw)
		}
	})
}
