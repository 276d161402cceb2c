// Package domain provides the core types for rubric-based epic evaluation.
// It defines the closed set of epic elements, quality tiers, evaluation
// records, and the activity input/output contracts used by the workflow.
package domain

import "fmt"

// ElementName identifies one of the five fixed epic elements.
// Using a typed string instead of raw strings provides compile-time safety
// and keeps JSON artifacts human-readable.
type ElementName string

const (
	// ElementTitle is the epic's title line.
	ElementTitle ElementName = "Title"

	// ElementProblemStatement describes the problem being addressed.
	ElementProblemStatement ElementName = "Problem Statement"

	// ElementProductOutcome covers measurable outcomes and how they are measured.
	ElementProductOutcome ElementName = "Product Outcome & Instrumentation"

	// ElementUserStories holds the user stories describing functionality.
	ElementUserStories ElementName = "Requirements - User Stories"

	// ElementNonFunctional holds any non-functional requirements.
	ElementNonFunctional ElementName = "Non-Functional Requirements"
)

// ElementOrder is the canonical processing order, matching rubric declaration
// order. The router walks this slice so element selection is reproducible run
// to run instead of depending on map iteration order.
var ElementOrder = []ElementName{
	ElementTitle,
	ElementProblemStatement,
	ElementProductOutcome,
	ElementUserStories,
	ElementNonFunctional,
}

// ElementSet maps each of the five fixed elements to its extracted content.
// Content may be empty when the element is absent from the source text.
type ElementSet map[ElementName]string

// NewElementSet builds an ElementSet from arbitrary extracted key/value pairs.
// Only canonical element names are kept; every missing element is backfilled
// with an empty string, so the result always contains exactly the five keys.
func NewElementSet(extracted map[string]string) ElementSet {
	set := make(ElementSet, len(ElementOrder))
	for _, name := range ElementOrder {
		set[name] = extracted[string(name)]
	}
	return set
}

// Validate reports whether the set holds exactly the five canonical keys.
func (s ElementSet) Validate() error {
	if len(s) != len(ElementOrder) {
		return fmt.Errorf("%w: element set has %d keys, want %d", ErrInvalidElementSet, len(s), len(ElementOrder))
	}
	for _, name := range ElementOrder {
		if _, ok := s[name]; !ok {
			return fmt.Errorf("%w: missing element %q", ErrInvalidElementSet, name)
		}
	}
	return nil
}
