package aggregation

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkats/go-epicjudge/internal/domain"
	"github.com/mkats/go-epicjudge/pkg/activity"
)

func sampleEvaluations() []domain.ElementEvaluation {
	return []domain.ElementEvaluation{
		{Element: domain.ElementTitle, Quality: domain.QualityHigh, Explanation: "clear", Recommendations: "none"},
		{Element: domain.ElementProblemStatement, Quality: domain.QualityLow, Explanation: "vague", Recommendations: "quantify", Feedback: "steps"},
	}
}

func TestReportFileName(t *testing.T) {
	ts := time.Date(2026, 8, 25, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "epic_evaluation_3_20260825_143005.json", ReportFileName(3, ts))
}

func TestWriteReport(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a round-trippable artifact", func(t *testing.T) {
		dir := t.TempDir()
		a := NewActivities(activity.NewBaseActivities(), dir)
		a.now = func() time.Time { return time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC) }

		out, err := a.WriteReport(ctx, domain.WriteReportInput{
			EpicIndex:   1,
			Evaluations: sampleEvaluations(),
		})
		require.NoError(t, err)
		assert.True(t, out.Persisted)
		assert.Empty(t, out.WriteError)
		assert.Equal(t, filepath.Join(dir, "epic_evaluation_1_20260825_090000.json"), out.Path)

		data, err := os.ReadFile(out.Path)
		require.NoError(t, err)

		var decoded []domain.ElementEvaluation
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, sampleEvaluations(), decoded)
	})

	t.Run("creates the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "results")
		a := NewActivities(activity.NewBaseActivities(), dir)

		out, err := a.WriteReport(ctx, domain.WriteReportInput{
			EpicIndex:   2,
			Evaluations: sampleEvaluations(),
		})
		require.NoError(t, err)
		assert.True(t, out.Persisted)
	})

	t.Run("write failure is non-fatal", func(t *testing.T) {
		// A regular file in place of the output directory makes MkdirAll fail.
		blocked := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

		a := NewActivities(activity.NewBaseActivities(), blocked)
		out, err := a.WriteReport(ctx, domain.WriteReportInput{
			EpicIndex:   3,
			Evaluations: sampleEvaluations(),
		})
		require.NoError(t, err, "persistence failures must not fail the workflow")
		assert.False(t, out.Persisted)
		assert.NotEmpty(t, out.WriteError)
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		a := NewActivities(activity.NewBaseActivities(), t.TempDir())
		_, err := a.WriteReport(ctx, domain.WriteReportInput{EpicIndex: 1})
		require.Error(t, err)
	})

	t.Run("distinct timestamps never overwrite", func(t *testing.T) {
		dir := t.TempDir()
		a := NewActivities(activity.NewBaseActivities(), dir)

		times := []time.Time{
			time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 25, 9, 0, 1, 0, time.UTC),
		}
		for _, ts := range times {
			a.now = func() time.Time { return ts }
			out, err := a.WriteReport(ctx, domain.WriteReportInput{
				EpicIndex:   1,
				Evaluations: sampleEvaluations(),
			})
			require.NoError(t, err)
			require.True(t, out.Persisted)
		}

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}
