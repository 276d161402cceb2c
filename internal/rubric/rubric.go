// Package rubric holds the quality standards supplied verbatim inside the
// evaluation prompt. The rubric is configuration data, not logic: changing it
// changes grading behavior without touching the state machine.
package rubric

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mkats/go-epicjudge/internal/domain"
)

// Default is the built-in rubric: per-element criteria distinguishing
// HIGH, MEDIUM and LOW quality.
const Default = `Quality Standards for Epic Elements:

Title:
- HIGH: Clear, concise, specific, and memorable
- MEDIUM: Clear but could be more specific or engaging
- LOW: Vague, too long, or unclear

Problem Statement:
- HIGH: Clear problem, quantified impact, specific context
- MEDIUM: Problem identified but impact or context unclear
- LOW: Vague problem, no context or impact stated

Product Outcome & Instrumentation:
- HIGH: Specific, measurable outcomes with clear metrics
- MEDIUM: Outcomes stated but metrics unclear
- LOW: No clear outcomes or measurements

Requirements - User Stories:
- HIGH: Complete user stories (As a..., I want..., So that...)
- MEDIUM: Basic user stories with some missing elements
- LOW: Incomplete or unclear user stories

Non-Functional Requirements:
- HIGH: Specific, measurable, testable requirements
- MEDIUM: Requirements stated but not fully measurable
- LOW: Vague or missing requirements`

// File is the YAML shape for rubric overrides: one criteria block per
// canonical element name.
type File struct {
	Elements map[string]string `yaml:"elements"`
}

// Load returns the rubric text to embed in evaluation prompts. An empty path
// selects the built-in Default; otherwise the file is parsed as YAML and
// rendered in canonical element order.
func Load(path string) (string, error) {
	if path == "" {
		return Default, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read rubric file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("parse rubric file: %w", err)
	}
	return Render(f)
}

// Render produces the prompt-ready rubric text from a parsed override file.
// Unknown element names are rejected so typos do not silently drop criteria.
func Render(f File) (string, error) {
	known := make(map[string]struct{}, len(domain.ElementOrder))
	for _, name := range domain.ElementOrder {
		known[string(name)] = struct{}{}
	}
	for name := range f.Elements {
		if _, ok := known[name]; !ok {
			return "", fmt.Errorf("rubric file names unknown element %q", name)
		}
	}
	if len(f.Elements) == 0 {
		return "", fmt.Errorf("rubric file defines no elements")
	}

	var sb strings.Builder
	sb.WriteString("Quality Standards for Epic Elements:\n")
	for _, name := range domain.ElementOrder {
		criteria, ok := f.Elements[string(name)]
		if !ok {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(string(name))
		sb.WriteString(":\n")
		sb.WriteString(strings.TrimSpace(criteria))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
