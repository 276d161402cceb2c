// Package evaluation implements rubric scoring of single epic elements with
// a bounded-retry/validation guardrail around the generation call.
package evaluation

import (
	"fmt"
	"strings"

	"github.com/mkats/go-epicjudge/internal/domain"
)

// minExplanationWords is the minimum word count for a scoring explanation.
const minExplanationWords = 20

// ResponseSchema defines the expected JSON structure for evaluation
// responses from the generation service.
type ResponseSchema struct {
	// Quality must be one of the three ordinal tiers: HIGH, MEDIUM, LOW.
	Quality string `json:"quality"`

	// Explanation justifies the score; at least 20 words.
	Explanation string `json:"explanation"`

	// Recommendations describes how to improve the element.
	Recommendations string `json:"recommendations"`
}

// Validator enforces the guardrails on parsed evaluation responses:
// quality-tier membership and minimum explanation length. A violation fails
// the current attempt; the activity retries from scratch up to its bound.
type Validator struct {
	minWords int
}

// NewValidator creates a validator with the default guardrails.
func NewValidator() *Validator {
	return &Validator{minWords: minExplanationWords}
}

// Validate checks a parsed response against the guardrails.
func (v *Validator) Validate(resp *ResponseSchema) error {
	if !domain.Quality(resp.Quality).IsTier() {
		return fmt.Errorf("%w: invalid quality score %q", domain.ErrValidationFailure, resp.Quality)
	}

	words := len(strings.Fields(resp.Explanation))
	if words < v.minWords {
		return fmt.Errorf("%w: explanation too short: %d words (minimum %d)",
			domain.ErrValidationFailure, words, v.minWords)
	}

	return nil
}
