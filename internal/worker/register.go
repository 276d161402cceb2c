// Package worker exposes helpers to register workflows/activities with a
// Temporal worker and to initialize their dependencies at startup.
package worker

import (
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/mkats/go-epicjudge/internal/aggregation"
	"github.com/mkats/go-epicjudge/internal/config"
	"github.com/mkats/go-epicjudge/internal/evaluation"
	"github.com/mkats/go-epicjudge/internal/extraction"
	"github.com/mkats/go-epicjudge/internal/llm"
	"github.com/mkats/go-epicjudge/internal/refinement"
	"github.com/mkats/go-epicjudge/internal/workflow"
	"github.com/mkats/go-epicjudge/pkg/activity"
)

// RegisterAll registers the epic evaluation workflow and all activities with
// the Temporal worker. Must be called once during worker initialization,
// before the worker starts; registration is not thread-safe.
//
// The generation client, pacing policy, and rubric text are constructed by
// the caller and injected here, keeping process startup concerns out of the
// activity packages.
func RegisterAll(w sdkworker.Worker, client llm.Client, pacer llm.Pacer, rubricText string, cfg *config.Config) {
	base := activity.NewBaseActivities()

	extractionActivities := extraction.NewActivities(base, client, pacer)
	evaluationActivities := evaluation.NewActivities(base, client, pacer, rubricText)
	refinementActivities := refinement.NewActivities(base, client, pacer)
	aggregationActivities := aggregation.NewActivities(base, cfg.OutputDir)

	w.RegisterWorkflow(workflow.EpicEvaluationWorkflow)

	w.RegisterActivity(extractionActivities.ExtractElements)
	w.RegisterActivity(evaluationActivities.EvaluateElement)
	w.RegisterActivity(refinementActivities.RefineEvaluation)
	w.RegisterActivity(aggregationActivities.WriteReport)
}
