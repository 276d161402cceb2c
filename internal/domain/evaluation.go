package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Quality is the ordinal score assigned to an epic element, plus two
// sentinels for degraded outcomes.
type Quality string

const (
	// QualityHigh indicates the element fully meets the rubric criteria.
	QualityHigh Quality = "HIGH"

	// QualityMedium indicates the element partially meets the criteria.
	QualityMedium Quality = "MEDIUM"

	// QualityLow indicates the element falls short of the criteria and
	// triggers a refinement pass.
	QualityLow Quality = "LOW"

	// QualityError is a terminal sentinel emitted when evaluation exhausts
	// its retry budget without a valid response.
	QualityError Quality = "ERROR"

	// QualityNotFound is the sentinel for elements absent from the epic text.
	// No generation call is made for these.
	QualityNotFound Quality = "Element Not Found"
)

// IsTier reports whether q is one of the three ordinal rubric tiers.
// The ERROR and NotFound sentinels are not tiers.
func (q Quality) IsTier() bool {
	return q == QualityHigh || q == QualityMedium || q == QualityLow
}

// NeedsRefinement reports whether an evaluation with this quality warrants
// the deeper remediation pass. Only LOW qualifies; sentinels never do.
func (q Quality) NeedsRefinement() bool { return q == QualityLow }

// ElementEvaluation is one scored rubric element. Feedback is populated only
// when a refinement pass ran for this element.
type ElementEvaluation struct {
	Element         ElementName `json:"element"`
	Quality         Quality     `json:"quality"`
	Explanation     string      `json:"explanation"`
	Recommendations string      `json:"recommendations"`
	Feedback        string      `json:"feedback,omitempty"`
}

// WithFeedback returns a copy of the evaluation with the remediation
// narrative attached. The receiver is not modified; the workflow replaces the
// last list entry with the returned value instead of mutating it in place.
func (e ElementEvaluation) WithFeedback(feedback string) ElementEvaluation {
	e.Feedback = feedback
	return e
}

// validate is the shared validator instance for input structs.
var validate = validator.New()

// EvaluateEpicInput is the workflow input: one raw epic document and the
// caller-supplied sequence index used only for artifact naming.
type EvaluateEpicInput struct {
	RawText   string `json:"raw_text" validate:"required,min=1"`
	EpicIndex int    `json:"epic_index" validate:"min=0"`
}

// Validate checks the workflow input against its constraints.
func (in EvaluateEpicInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// ExtractInput is the input to the ExtractElements activity.
type ExtractInput struct {
	RawText   string `json:"raw_text" validate:"required,min=1"`
	EpicIndex int    `json:"epic_index" validate:"min=0"`
}

// Validate checks the extraction input against its constraints.
func (in ExtractInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// ExtractOutput carries the normalized element set produced by extraction.
// Elements always contains exactly the five canonical keys.
type ExtractOutput struct {
	Elements ElementSet `json:"elements"`
}

// EvaluateInput is the input to the EvaluateElement activity: one element and
// its extracted content (possibly empty).
type EvaluateInput struct {
	Element   ElementName `json:"element" validate:"required"`
	Content   string      `json:"content"`
	EpicIndex int         `json:"epic_index" validate:"min=0"`
}

// Validate checks the evaluation input against its constraints.
func (in EvaluateInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// EvaluateOutput carries one evaluation record and the routing hint for the
// conditional refinement pass.
type EvaluateOutput struct {
	Evaluation       ElementEvaluation `json:"evaluation"`
	RefinementNeeded bool              `json:"refinement_needed"`
}

// RefineInput is the input to the RefineEvaluation activity: the LOW-scored
// evaluation plus the element's original content for prompt context.
type RefineInput struct {
	Evaluation ElementEvaluation `json:"evaluation"`
	Content    string            `json:"content"`
}

// Validate checks the refinement input against its constraints.
func (in RefineInput) Validate() error {
	if in.Evaluation.Element == "" {
		return fmt.Errorf("%w: refinement requires an evaluation", ErrInvalidInput)
	}
	return nil
}

// RefineOutput carries the replacement evaluation value with feedback attached.
type RefineOutput struct {
	Evaluation ElementEvaluation `json:"evaluation"`
}

// WriteReportInput is the input to the WriteReport activity.
type WriteReportInput struct {
	EpicIndex   int                 `json:"epic_index" validate:"min=0"`
	Evaluations []ElementEvaluation `json:"evaluations" validate:"required,min=1"`
}

// Validate checks the report input against its constraints.
func (in WriteReportInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// WriteReportOutput reports where the artifact landed. Persistence failures
// do not fail the activity; they surface here and in the logs instead.
type WriteReportOutput struct {
	Path       string `json:"path"`
	Persisted  bool   `json:"persisted"`
	WriteError string `json:"write_error,omitempty"`
}
