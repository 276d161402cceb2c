package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityIsTier(t *testing.T) {
	tests := []struct {
		quality Quality
		isTier  bool
	}{
		{QualityHigh, true},
		{QualityMedium, true},
		{QualityLow, true},
		{QualityError, false},
		{QualityNotFound, false},
		{Quality("high"), false},
		{Quality(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.quality), func(t *testing.T) {
			assert.Equal(t, tt.isTier, tt.quality.IsTier())
		})
	}
}

func TestQualityNeedsRefinement(t *testing.T) {
	assert.True(t, QualityLow.NeedsRefinement())

	for _, q := range []Quality{QualityHigh, QualityMedium, QualityError, QualityNotFound} {
		assert.False(t, q.NeedsRefinement(), "quality %s must not trigger refinement", q)
	}
}

func TestWithFeedbackReturnsCopy(t *testing.T) {
	original := ElementEvaluation{
		Element:         ElementTitle,
		Quality:         QualityLow,
		Explanation:     "too vague",
		Recommendations: "be specific",
	}

	refined := original.WithFeedback("concrete steps here")

	assert.Empty(t, original.Feedback, "receiver must not be mutated")
	assert.Equal(t, "concrete steps here", refined.Feedback)
	assert.Equal(t, original.Element, refined.Element)
	assert.Equal(t, original.Quality, refined.Quality)
}

func TestNewElementSetBackfillsAllKeys(t *testing.T) {
	t.Run("partial extraction", func(t *testing.T) {
		set := NewElementSet(map[string]string{
			"Title":             "Smart Inventory",
			"Problem Statement": "Retailers face stockouts.",
		})

		require.NoError(t, set.Validate())
		require.Len(t, set, 5)
		assert.Equal(t, "Smart Inventory", set[ElementTitle])
		assert.Equal(t, "Retailers face stockouts.", set[ElementProblemStatement])
		assert.Empty(t, set[ElementProductOutcome])
		assert.Empty(t, set[ElementUserStories])
		assert.Empty(t, set[ElementNonFunctional])
	})

	t.Run("empty extraction", func(t *testing.T) {
		set := NewElementSet(nil)
		require.NoError(t, set.Validate())
		require.Len(t, set, 5)
	})

	t.Run("unknown keys dropped", func(t *testing.T) {
		set := NewElementSet(map[string]string{
			"Title":    "t",
			"Appendix": "ignored",
		})
		require.NoError(t, set.Validate())
		require.Len(t, set, 5)
	})
}

func TestElementSetValidate(t *testing.T) {
	bad := ElementSet{ElementTitle: "only one"}
	require.ErrorIs(t, bad.Validate(), ErrInvalidElementSet)

	extra := NewElementSet(nil)
	extra["Bogus"] = "x"
	require.ErrorIs(t, extra.Validate(), ErrInvalidElementSet)
}

func TestInputValidation(t *testing.T) {
	t.Run("epic input requires text", func(t *testing.T) {
		require.ErrorIs(t, EvaluateEpicInput{}.Validate(), ErrInvalidInput)
		require.NoError(t, EvaluateEpicInput{RawText: "Title: x", EpicIndex: 1}.Validate())
	})

	t.Run("evaluate input requires element", func(t *testing.T) {
		require.ErrorIs(t, EvaluateInput{Content: "x"}.Validate(), ErrInvalidInput)
		require.NoError(t, EvaluateInput{Element: ElementTitle}.Validate(),
			"empty content is valid, it short-circuits to NotFound")
	})

	t.Run("report input requires evaluations", func(t *testing.T) {
		require.ErrorIs(t, WriteReportInput{EpicIndex: 1}.Validate(), ErrInvalidInput)
		require.NoError(t, WriteReportInput{
			EpicIndex:   1,
			Evaluations: []ElementEvaluation{{Element: ElementTitle, Quality: QualityHigh}},
		}.Validate())
	})
}

// TestReportRoundTrip verifies that serializing evaluations and re-parsing
// them loses nothing, and that feedback is absent from the JSON unless a
// refinement pass populated it.
func TestReportRoundTrip(t *testing.T) {
	evals := []ElementEvaluation{
		{
			Element:         ElementTitle,
			Quality:         QualityHigh,
			Explanation:     "clear and memorable",
			Recommendations: "none",
		},
		{
			Element:         ElementProblemStatement,
			Quality:         QualityLow,
			Explanation:     "no impact stated",
			Recommendations: "quantify the impact",
			Feedback:        "start by measuring current stockout rates",
		},
	}

	data, err := json.Marshal(evals)
	require.NoError(t, err)

	var decoded []ElementEvaluation
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, evals, decoded)

	// Feedback key must be omitted entirely when unset.
	var generic []map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	_, hasFeedback := generic[0]["feedback"]
	assert.False(t, hasFeedback, "unrefined record must not carry a feedback key")
	_, hasFeedback = generic[1]["feedback"]
	assert.True(t, hasFeedback)
}

func TestEvaluatedElements(t *testing.T) {
	evals := []ElementEvaluation{
		{Element: ElementTitle},
		{Element: ElementUserStories},
	}

	seen := EvaluatedElements(evals)
	assert.Len(t, seen, 2)
	_, ok := seen[ElementTitle]
	assert.True(t, ok)
	_, ok = seen[ElementProblemStatement]
	assert.False(t, ok)
}
