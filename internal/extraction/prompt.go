package extraction

import "fmt"

// promptTemplate instructs the generation service to return a JSON object
// with exactly the five canonical element keys, empty string when absent.
const promptTemplate = `Extract and organize the following elements from the epic text. If an element is not present, leave it empty.

Elements to extract:
- Title: The title of the epic
- Problem Statement: The problem being addressed
- Product Outcome & Instrumentation: The measurable outcomes and how they will be measured
- Requirements - User Stories: The user stories describing functionality
- Non-Functional Requirements: Any non-functional requirements specified

Return in this exact JSON format:
{
    "Title": "extracted title",
    "Problem Statement": "extracted problem statement",
    "Product Outcome & Instrumentation": "extracted outcomes",
    "Requirements - User Stories": "extracted user stories",
    "Non-Functional Requirements": "extracted NFRs"
}

Epic Text:
%s`

// BuildPrompt renders the extraction prompt for one raw epic document.
func BuildPrompt(rawText string) string {
	return fmt.Sprintf(promptTemplate, rawText)
}
