package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/mkats/go-epicjudge/internal/domain"
)

// DecodeInto decodes a generation response that is expected to contain a
// single JSON object into v. Models frequently wrap the payload in
// conversational text or markdown fences, so decoding runs in two stages:
//
//  1. strict parse of the full response (after fence stripping)
//  2. fallback parse of the substring between the first '{' and last '}'
//
// Both stages failing yields domain.ErrParseFailure.
func DecodeInto(raw string, v any) error {
	candidate := stripFences(raw)

	if err := json.Unmarshal([]byte(candidate), v); err == nil {
		return nil
	}

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("%w: no JSON object found in response", domain.ErrParseFailure)
	}

	sub := candidate[start : end+1]
	if !gjson.Valid(sub) {
		return fmt.Errorf("%w: extracted substring is not valid JSON", domain.ErrParseFailure)
	}
	if err := json.Unmarshal([]byte(sub), v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}
	return nil
}

// stripFences removes markdown code fences that models often wrap around
// JSON responses.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
