// Package refinement implements the conditional second pass that attaches a
// deeper remediation narrative to LOW-quality evaluations.
package refinement

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/temporal"

	"github.com/mkats/go-epicjudge/internal/domain"
	"github.com/mkats/go-epicjudge/internal/llm"
	"github.com/mkats/go-epicjudge/pkg/activity"
)

// promptTemplate asks for concrete, actionable improvement steps given the
// LOW evaluation and the element's original content.
const promptTemplate = `Given the following evaluation for an epic element, provide more detailed, actionable suggestions for improvement.

Element: %s
Content: %s
Quality: LOW
Explanation: %s
Current Recommendations: %s

Provide specific, concrete steps or examples that the team can follow to improve this element to a HIGH quality. Ensure the suggestions are actionable and clear.`

// BuildPrompt renders the remediation prompt for one LOW evaluation.
func BuildPrompt(eval domain.ElementEvaluation, content string) string {
	return fmt.Sprintf(promptTemplate, eval.Element, content, eval.Explanation, eval.Recommendations)
}

// Activities handles refinement-specific Temporal activities.
type Activities struct {
	activity.BaseActivities
	client llm.Client
	pacer  llm.Pacer
}

// NewActivities creates refinement activities with the provided dependencies.
func NewActivities(base activity.BaseActivities, client llm.Client, pacer llm.Pacer) *Activities {
	return &Activities{BaseActivities: base, client: client, pacer: pacer}
}

// RefineEvaluation deepens a LOW evaluation with remediation feedback.
//
// Non-LOW input is a no-op returning the evaluation unchanged, so a stale
// routing flag can never attach feedback where it does not belong. The single
// generation call has no retry loop; a failure propagates and halts the
// epic's processing. On success a new evaluation value is returned with
// Feedback set; the workflow replaces its last list entry with it instead of
// mutating the record in place.
func (a *Activities) RefineEvaluation(
	ctx context.Context,
	input domain.RefineInput,
) (*domain.RefineOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("RefineEvaluation", err, "invalid input")
	}

	if input.Evaluation.Quality != domain.QualityLow {
		return &domain.RefineOutput{Evaluation: input.Evaluation}, nil
	}

	wfCtx := a.GetWorkflowContext(ctx)
	activity.SafeLog(ctx, "Starting RefineEvaluation activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"element", input.Evaluation.Element)

	feedback, err := a.client.Complete(ctx, BuildPrompt(input.Evaluation, input.Content))
	if perr := a.pacer.Pause(ctx); perr != nil {
		return nil, nonRetryable("RefineEvaluation", perr, "pacing interrupted")
	}
	if err != nil {
		return nil, nonRetryable("RefineEvaluation", err, "remediation call failed")
	}

	activity.SafeLog(ctx, "RefineEvaluation completed",
		"element", input.Evaluation.Element,
		"feedback_chars", len(feedback))

	return &domain.RefineOutput{Evaluation: input.Evaluation.WithFeedback(feedback)}, nil
}

func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
