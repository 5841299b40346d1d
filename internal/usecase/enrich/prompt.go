package enrich

import (
	"fmt"
	"strings"
)

// focusInstruction picks the emphasis by raw similarity score, not category.
func focusInstruction(similarity float64) string {
	switch {
	case similarity > 0.90:
		return "Focus primarily on the **similarities** between the abstracts, but include key differences."
	case similarity > 0.70:
		return "Provide a slightly **similarity-focused** view, while still discussing key differences."
	case similarity > 0.40:
		return "Provide a **balanced view**, discussing both similarities and differences equally."
	default:
		return "Focus primarily on the **differences** between the abstracts, but include key similarities."
	}
}

// buildPrompt assembles the reviewer prompt comparing an existing project
// abstract against the proposed project text.
func buildPrompt(projectAbstract, queryText string, similarity float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an academic reviewer analyzing two project abstracts. Your task is to compare them and output the results in the following structure:

### Similarities:
(List the key similarities here in bullet points)

### Differences:
(List the key differences here in bullet points)

Analysis focus: %s

Ensure that in your response, you refer the abstracts as existing project and proposed project.

Abstracts for comparison are provided below:

`, focusInstruction(similarity))

	fmt.Fprintf(&b, "#### Existing Project Abstract:\n%s\n\n", strings.TrimSpace(projectAbstract))
	fmt.Fprintf(&b, "#### Proposed Project Abstract:\n%s\n", strings.TrimSpace(queryText))

	return b.String()
}
