// Package extraction implements the Temporal activity that turns raw epic
// text into the fixed five-element set via one generation call.
package extraction

import (
	"context"
	"errors"

	"go.temporal.io/sdk/temporal"

	"github.com/mkats/go-epicjudge/internal/domain"
	"github.com/mkats/go-epicjudge/internal/llm"
	"github.com/mkats/go-epicjudge/pkg/activity"
)

// Activities handles extraction-specific Temporal activities.
type Activities struct {
	activity.BaseActivities
	client llm.Client
	pacer  llm.Pacer
}

// NewActivities creates extraction activities with the provided dependencies.
func NewActivities(base activity.BaseActivities, client llm.Client, pacer llm.Pacer) *Activities {
	return &Activities{BaseActivities: base, client: client, pacer: pacer}
}

// ExtractElements produces the element set for one epic document.
//
// The operation:
//  1. Validates input parameters
//  2. Invokes the generation service once with the extraction prompt
//  3. Decodes the response with the two-stage tolerant JSON decoder
//  4. Backfills missing canonical keys with empty strings
//
// Service and parse failures return retryable errors so the workflow's
// activity retry policy applies the same bounded-retry discipline used for
// evaluation. Post-condition: the returned set always contains exactly the
// five canonical keys.
func (a *Activities) ExtractElements(
	ctx context.Context,
	input domain.ExtractInput,
) (*domain.ExtractOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("ExtractElements", err, "invalid input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	activity.SafeLog(ctx, "Starting ExtractElements activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"epic_index", input.EpicIndex)

	raw, err := a.client.Complete(ctx, BuildPrompt(input.RawText))
	if perr := a.pacer.Pause(ctx); perr != nil {
		return nil, retryable("ExtractElements", perr, "pacing interrupted")
	}
	if err != nil {
		return nil, retryable("ExtractElements", err, "generation call failed")
	}

	var extracted map[string]string
	if err := llm.DecodeInto(raw, &extracted); err != nil {
		if errors.Is(err, domain.ErrParseFailure) {
			return nil, retryable("ExtractElements", err, "response not parseable as element JSON")
		}
		return nil, retryable("ExtractElements", err, "decode failed")
	}

	elements := domain.NewElementSet(extracted)

	activity.SafeLog(ctx, "ExtractElements completed",
		"epic_index", input.EpicIndex,
		"populated_elements", countPopulated(elements))

	return &domain.ExtractOutput{Elements: elements}, nil
}

// countPopulated counts elements with non-empty content, for logging.
func countPopulated(set domain.ElementSet) int {
	n := 0
	for _, content := range set {
		if content != "" {
			n++
		}
	}
	return n
}

// Error helpers - wrap errors as Temporal application errors.

func retryable(tag string, cause error, msg string) error {
	return temporal.NewApplicationError(msg, tag, cause)
}

func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
