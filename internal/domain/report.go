package domain

import "time"

// Report is the workflow's terminal result: the ordered evaluations for one
// epic. Ordering reflects processing order. The in-memory report remains
// authoritative even when artifact persistence failed.
type Report struct {
	EpicIndex    int                 `json:"epic_index"`
	CreatedAt    time.Time           `json:"created_at"`
	Evaluations  []ElementEvaluation `json:"evaluations"`
	ArtifactPath string              `json:"artifact_path,omitempty"`
	Persisted    bool                `json:"persisted"`
}

// EvaluatedElements returns the set of element names already present in the
// evaluations list. The router uses this to enforce at most one evaluation
// per element.
func EvaluatedElements(evals []ElementEvaluation) map[ElementName]struct{} {
	seen := make(map[ElementName]struct{}, len(evals))
	for _, e := range evals {
		seen[e.Element] = struct{}{}
	}
	return seen
}
