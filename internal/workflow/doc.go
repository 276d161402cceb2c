// Package workflow orchestrates epic evaluation using Temporal workflows.
// It defines the deterministic state machine driving one epic from raw text
// to a persisted report:
//
//	Extracting → Routing → {Evaluating → [Refining] → Routing} → Aggregating
//
// Routing is pure selection logic over workflow state; every other state is
// an activity. Exactly one workflow execution owns an epic's state for its
// whole lifetime, so there is no shared mutable state between epics.
package workflow
