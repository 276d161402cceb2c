package evaluation

import (
	"context"
	"fmt"
	"strings"

	"go.temporal.io/sdk/temporal"

	"github.com/mkats/go-epicjudge/internal/domain"
	"github.com/mkats/go-epicjudge/internal/llm"
	"github.com/mkats/go-epicjudge/pkg/activity"
)

// maxAttempts bounds the retry loop around the generation call. Exhaustion
// degrades to an ERROR-tier record instead of failing the epic.
const maxAttempts = 3

// Activities handles evaluation-specific Temporal activities.
type Activities struct {
	activity.BaseActivities
	client    llm.Client
	pacer     llm.Pacer
	rubric    string
	validator *Validator
}

// NewActivities creates evaluation activities with the provided dependencies.
// The rubric text is static configuration embedded verbatim in each prompt.
func NewActivities(base activity.BaseActivities, client llm.Client, pacer llm.Pacer, rubricText string) *Activities {
	return &Activities{
		BaseActivities: base,
		client:         client,
		pacer:          pacer,
		rubric:         rubricText,
		validator:      NewValidator(),
	}
}

// EvaluateElement scores one element against the rubric and decides whether a
// refinement pass is warranted.
//
// The operation:
//  1. Short-circuits empty content to an "Element Not Found" record without
//     any generation call
//  2. Otherwise runs up to maxAttempts rounds of complete → decode → validate,
//     with a fresh call per attempt and pacing after every call
//  3. On exhaustion emits a terminal ERROR record naming the attempt count
//     and last error rather than failing the activity
//
// RefinementNeeded is true if and only if the produced quality is LOW; the
// ERROR and NotFound sentinels never trigger refinement. The activity is
// registered with a single-attempt retry policy because the loop above owns
// the retry bound.
func (a *Activities) EvaluateElement(
	ctx context.Context,
	input domain.EvaluateInput,
) (*domain.EvaluateOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("EvaluateElement", err, "invalid input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	activity.SafeLog(ctx, "Starting EvaluateElement activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"element", input.Element)

	if strings.TrimSpace(input.Content) == "" {
		activity.SafeLog(ctx, "Element absent from epic, skipping generation call",
			"element", input.Element)
		return &domain.EvaluateOutput{
			Evaluation: domain.ElementEvaluation{
				Element:         input.Element,
				Quality:         domain.QualityNotFound,
				Explanation:     fmt.Sprintf("The %s element is not present in the epic text.", input.Element),
				Recommendations: fmt.Sprintf("Add a %s section to the epic.", input.Element),
			},
		}, nil
	}

	prompt := BuildPrompt(input.Element, input.Content, a.rubric)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil, retryable("EvaluateElement", ctx.Err(), "context cancelled")
		}

		resp, err := a.attempt(ctx, prompt)
		if err != nil {
			lastErr = err
			activity.SafeLog(ctx, "Evaluation attempt failed",
				"element", input.Element,
				"attempt", attempt,
				"error", err)
			continue
		}

		quality := domain.Quality(resp.Quality)
		activity.SafeLog(ctx, "EvaluateElement completed",
			"element", input.Element,
			"quality", quality,
			"attempts", attempt)

		return &domain.EvaluateOutput{
			Evaluation: domain.ElementEvaluation{
				Element:         input.Element,
				Quality:         quality,
				Explanation:     resp.Explanation,
				Recommendations: resp.Recommendations,
			},
			RefinementNeeded: quality.NeedsRefinement(),
		}, nil
	}

	activity.SafeLogError(ctx, "EvaluateElement exhausted retries",
		"element", input.Element,
		"attempts", maxAttempts,
		"last_error", lastErr)

	return &domain.EvaluateOutput{
		Evaluation: domain.ElementEvaluation{
			Element: input.Element,
			Quality: domain.QualityError,
			Explanation: fmt.Sprintf(
				"Evaluation failed after %d attempts: %v. This might be due to API quota exhaustion or an invalid response.",
				maxAttempts, lastErr),
			Recommendations: "Check the generation service quota and ensure it returns valid JSON. You may need to wait for quota reset or increase your quota.",
		},
	}, nil
}

// attempt runs one complete → decode → validate round. Any failure abandons
// the attempt; nothing partial is reused by the next one.
func (a *Activities) attempt(ctx context.Context, prompt string) (*ResponseSchema, error) {
	raw, err := a.client.Complete(ctx, prompt)
	if perr := a.pacer.Pause(ctx); perr != nil {
		return nil, perr
	}
	if err != nil {
		return nil, err
	}

	var resp ResponseSchema
	if err := llm.DecodeInto(raw, &resp); err != nil {
		return nil, err
	}
	if err := a.validator.Validate(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Error helpers - wrap errors as Temporal application errors.

func retryable(tag string, cause error, msg string) error {
	return temporal.NewApplicationError(msg, tag, cause)
}

func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
