package evaluation

import (
	"fmt"

	"github.com/mkats/go-epicjudge/internal/domain"
)

// promptTemplate embeds the rubric standards and the element content and
// instructs the model to answer with a strict JSON object.
const promptTemplate = `Evaluate the element based on standards.

Standards:
%s

Element: %s
Content: %s

Return a JSON object with exactly these keys:
{
    "quality": "HIGH, MEDIUM or LOW",
    "explanation": "Why this score",
    "recommendations": "How to improve"
}

IMPORTANT:
1. Quality MUST be one of: HIGH, MEDIUM, LOW
2. Explanation must be at least 20 words and justify the quality score
3. Recommendations must be specific and actionable`

// BuildPrompt renders the evaluation prompt for one element.
func BuildPrompt(element domain.ElementName, content, rubricText string) string {
	return fmt.Sprintf(promptTemplate, rubricText, element, content)
}
