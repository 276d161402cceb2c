package domain

import "errors"

// ErrInvalidInput indicates that an activity input failed validation.
var ErrInvalidInput = errors.New("invalid activity input")

// ErrInvalidElementSet indicates an element set that violates the
// five-canonical-keys invariant.
var ErrInvalidElementSet = errors.New("invalid element set")

// ErrParseFailure indicates that a generation response could not be coerced
// to the expected JSON shape, even after fallback substring extraction.
var ErrParseFailure = errors.New("generation response is not parseable JSON")

// ErrValidationFailure indicates that a parsed evaluation response violated
// the quality-tier or explanation-length guardrails.
var ErrValidationFailure = errors.New("evaluation response failed validation")
