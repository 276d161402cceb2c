// Package aggregation implements the terminal activity that serializes the
// complete evaluations list to a timestamped report artifact.
package aggregation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.temporal.io/sdk/temporal"

	"github.com/mkats/go-epicjudge/internal/domain"
	"github.com/mkats/go-epicjudge/pkg/activity"
)

// timestampLayout gives second granularity, matching the artifact contract.
const timestampLayout = "20060102_150405"

// ReportFileName builds the artifact name embedding the epic's sequence index
// and creation timestamp so repeated runs never overwrite each other.
func ReportFileName(epicIndex int, now time.Time) string {
	return fmt.Sprintf("epic_evaluation_%d_%s.json", epicIndex, now.Format(timestampLayout))
}

// Activities handles aggregation-specific Temporal activities.
type Activities struct {
	activity.BaseActivities
	outputDir string
	now       func() time.Time
}

// NewActivities creates aggregation activities writing reports under
// outputDir.
func NewActivities(base activity.BaseActivities, outputDir string) *Activities {
	return &Activities{BaseActivities: base, outputDir: outputDir, now: time.Now}
}

// WriteReport serializes the ordered evaluations to a JSON artifact.
//
// A write failure is logged and surfaced in the output but does not fail the
// activity: the in-memory evaluations remain the authoritative result of the
// workflow, so partial persistence must not discard them.
func (a *Activities) WriteReport(
	ctx context.Context,
	input domain.WriteReportInput,
) (*domain.WriteReportOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("WriteReport", err, "invalid input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	activity.SafeLog(ctx, "Starting WriteReport activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"epic_index", input.EpicIndex,
		"evaluations", len(input.Evaluations))

	data, err := json.MarshalIndent(input.Evaluations, "", "  ")
	if err != nil {
		return nil, nonRetryable("WriteReport", err, "report serialization failed")
	}

	path := filepath.Join(a.outputDir, ReportFileName(input.EpicIndex, a.now()))

	if err := a.write(path, data); err != nil {
		activity.SafeLogError(ctx, "Failed to persist report, evaluations remain in memory",
			"path", path,
			"error", err)
		return &domain.WriteReportOutput{Path: path, Persisted: false, WriteError: err.Error()}, nil
	}

	activity.SafeLog(ctx, "Report persisted",
		"path", path,
		"bytes", len(data))

	return &domain.WriteReportOutput{Path: path, Persisted: true}, nil
}

func (a *Activities) write(path string, data []byte) error {
	if err := os.MkdirAll(a.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
