// Package activity provides common infrastructure for Temporal activity
// implementations: workflow-context extraction and context-safe logging that
// works in both activity and test environments.
package activity

import (
	"context"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
)

// WorkflowContext contains metadata extracted from the Temporal activity
// context, with fallback values for tests that invoke activities directly.
type WorkflowContext struct {
	WorkflowID string
	RunID      string
	ActivityID string
}

// BaseActivities provides shared infrastructure for all activity types.
type BaseActivities struct{}

// NewBaseActivities creates a new BaseActivities instance.
func NewBaseActivities() BaseActivities { return BaseActivities{} }

// GetWorkflowContext safely extracts workflow context from the activity
// context. In a Temporal activity context it returns the actual execution
// details; in test contexts (where activity.GetInfo panics) it generates
// stable test IDs so activities work in both environments.
func (b BaseActivities) GetWorkflowContext(ctx context.Context) WorkflowContext {
	var wfCtx WorkflowContext

	func() {
		defer func() {
			if r := recover(); r != nil {
				wfCtx.WorkflowID = "test-workflow"
				wfCtx.RunID = "test-run-" + uuid.NewString()[:8]
				wfCtx.ActivityID = "test-activity"
			}
		}()

		info := activity.GetInfo(ctx)
		wfCtx.WorkflowID = info.WorkflowExecution.ID
		wfCtx.RunID = info.WorkflowExecution.RunID
		wfCtx.ActivityID = info.ActivityID
	}()

	return wfCtx
}

// SafeLog performs context-safe logging that works in both activity and test
// contexts. In a Temporal activity context it uses the activity logger; in
// test contexts it silently ignores the call to avoid panics.
func SafeLog(ctx context.Context, msg string, keyvals ...any) {
	defer func() {
		if recover() != nil {
			// Not an activity context, ignore.
		}
	}()
	activity.GetLogger(ctx).Info(msg, keyvals...)
}

// SafeLogError is SafeLog at ERROR level for operational visibility.
func SafeLogError(ctx context.Context, msg string, keyvals ...any) {
	defer func() {
		if recover() != nil {
			// Not an activity context, ignore.
		}
	}()
	activity.GetLogger(ctx).Error(msg, keyvals...)
}
