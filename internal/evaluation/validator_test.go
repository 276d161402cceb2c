package evaluation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkats/go-epicjudge/internal/domain"
)

// wordyExplanation produces an explanation with exactly n words.
func wordyExplanation(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	t.Run("accepts valid tiers", func(t *testing.T) {
		for _, q := range []string{"HIGH", "MEDIUM", "LOW"} {
			err := v.Validate(&ResponseSchema{
				Quality:         q,
				Explanation:     wordyExplanation(20),
				Recommendations: "do better",
			})
			require.NoError(t, err, "tier %s should validate", q)
		}
	})

	t.Run("rejects non-tier quality", func(t *testing.T) {
		for _, q := range []string{"", "high", "GREAT", "ERROR", "Element Not Found"} {
			err := v.Validate(&ResponseSchema{
				Quality:     q,
				Explanation: wordyExplanation(25),
			})
			require.ErrorIs(t, err, domain.ErrValidationFailure, "quality %q must be rejected", q)
		}
	})

	t.Run("explanation word count boundary", func(t *testing.T) {
		err := v.Validate(&ResponseSchema{Quality: "HIGH", Explanation: wordyExplanation(19)})
		require.ErrorIs(t, err, domain.ErrValidationFailure)

		err = v.Validate(&ResponseSchema{Quality: "HIGH", Explanation: wordyExplanation(20)})
		require.NoError(t, err)
	})
}
