package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/mkats/go-epicjudge/internal/domain"
)

// Activity names as registered by the worker. The workflow references
// activities by name so it stays free of activity package dependencies.
const (
	ExtractActivity     = "ExtractElements"
	EvaluateActivity    = "EvaluateElement"
	RefineActivity      = "RefineEvaluation"
	WriteReportActivity = "WriteReport"
)

// extractMaxAttempts applies the bounded-retry discipline to extraction at
// the activity-policy layer; evaluation owns its retry bound internally.
const extractMaxAttempts = 3

// EpicEvaluationWorkflow drives one epic through extraction, per-element
// scoring, conditional refinement, and report aggregation. All control flow
// uses workflow-safe APIs only, so execution is deterministic and replayable.
//
// Elements are processed strictly sequentially in canonical rubric order;
// the evaluator runs exactly once per element, and the refiner only when the
// just-produced quality is LOW. A refinement failure fails the epic; a report
// write failure does not.
func EpicEvaluationWorkflow(
	ctx workflow.Context,
	input domain.EvaluateEpicInput,
) (*domain.Report, error) {
	// Version gate enables safe evolution and backward compatibility.
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "epic-evaluation.v", workflow.DefaultVersion, currentVersion)

	if err := input.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid epic evaluation input",
			"Validation",
			err,
		)
	}

	logger := workflow.GetLogger(ctx)
	logger.Info("Starting epic evaluation", "epic_index", input.EpicIndex)

	// Extraction gets the 3-attempt policy; parse and service failures are
	// retryable at this layer.
	extractCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    extractMaxAttempts,
		},
	})

	// Evaluation, refinement, and report writing run single-attempt: the
	// evaluator's internal loop owns its retry bound, refinement failures
	// must propagate, and WriteReport degrades internally.
	singleCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 1},
	})

	var extracted domain.ExtractOutput
	if err := workflow.ExecuteActivity(extractCtx, ExtractActivity, domain.ExtractInput{
		RawText:   input.RawText,
		EpicIndex: input.EpicIndex,
	}).Get(ctx, &extracted); err != nil {
		return nil, err
	}

	evaluations := make([]domain.ElementEvaluation, 0, len(domain.ElementOrder))

	for {
		element, content, ok := nextElement(extracted.Elements, evaluations)
		if !ok {
			break
		}

		var evalOut domain.EvaluateOutput
		if err := workflow.ExecuteActivity(singleCtx, EvaluateActivity, domain.EvaluateInput{
			Element:   element,
			Content:   content,
			EpicIndex: input.EpicIndex,
		}).Get(ctx, &evalOut); err != nil {
			return nil, err
		}
		evaluations = append(evaluations, evalOut.Evaluation)

		if evalOut.RefinementNeeded && evalOut.Evaluation.Quality == domain.QualityLow {
			var refined domain.RefineOutput
			if err := workflow.ExecuteActivity(singleCtx, RefineActivity, domain.RefineInput{
				Evaluation: evalOut.Evaluation,
				Content:    content,
			}).Get(ctx, &refined); err != nil {
				return nil, err
			}
			// Replace-last: the refined value supersedes the appended record.
			evaluations[len(evaluations)-1] = refined.Evaluation
		}
	}

	var written domain.WriteReportOutput
	if err := workflow.ExecuteActivity(singleCtx, WriteReportActivity, domain.WriteReportInput{
		EpicIndex:   input.EpicIndex,
		Evaluations: evaluations,
	}).Get(ctx, &written); err != nil {
		// Persistence is best-effort; the in-memory report stays authoritative.
		logger.Error("Report persistence failed", "epic_index", input.EpicIndex, "error", err)
	}

	logger.Info("Epic evaluation complete",
		"epic_index", input.EpicIndex,
		"evaluations", len(evaluations),
		"persisted", written.Persisted)

	return &domain.Report{
		EpicIndex:    input.EpicIndex,
		CreatedAt:    workflow.Now(ctx),
		Evaluations:  evaluations,
		ArtifactPath: written.Path,
		Persisted:    written.Persisted,
	}, nil
}

// nextElement selects the first canonical element without an evaluation.
// Walking domain.ElementOrder makes selection deterministic and enforces at
// most one evaluation per element. ok is false once every element has one.
func nextElement(
	elements domain.ElementSet,
	evaluations []domain.ElementEvaluation,
) (domain.ElementName, string, bool) {
	seen := domain.EvaluatedElements(evaluations)
	for _, name := range domain.ElementOrder {
		if _, done := seen[name]; done {
			continue
		}
		return name, elements[name], true
	}
	return "", "", false
}
