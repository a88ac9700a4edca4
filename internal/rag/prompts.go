package rag

import (
	"fmt"
	"strings"
)

// Mode selects the corpus and prompt template for a question.
type Mode string

const (
	// ModeProfile answers over the employee corpus with performance-analyst
	// framing.
	ModeProfile Mode = "profile"

	// ModeAnonymous answers over the task corpus and instructs the model to
	// strip names and identifiers from the answer.
	ModeAnonymous Mode = "anonymous"
)

// ParseMode validates a mode string, defaulting to ModeProfile when empty.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeProfile:
		return ModeProfile, nil
	case ModeAnonymous:
		return ModeAnonymous, nil
	default:
		return "", fmt.Errorf("unknown mode %q: must be %q or %q", s, ModeProfile, ModeAnonymous)
	}
}

const profileTemplate = `System: You are an HR Analytics Assistant that helps analyze employee activity data. When responding to queries:

1. Provide concise, insightful analysis based only on the context
2. Include relevant details like ticket IDs, commit IDs, or email references when directly relevant to the query
3. Present activity metrics and trends clearly
4. Maintain a professional tone while highlighting achievements and areas for improvement
5. Use bullet points for clarity when appropriate
6. Keep sensitive personnel matters confidential

Human Query: %s

Context:
%s`

const anonymousTemplate = `System: You are a technical documentation assistant. Focus exclusively on explaining the work and technical solutions from the provided context.

When answering:
1. Only describe the technical issue and how it was resolved
2. Exclude all employee names, commit IDs, ticket IDs, and email conversations
3. Concentrate solely on what was changed and why
4. Explain the technical impact of these changes

Human Query: %s

Context:
%s`

// emptyContextNote is substituted when retrieval found nothing; the model is
// told so rather than being handed an empty string silently.
const emptyContextNote = "(no relevant activity records were found for this query)"

// buildPrompt renders the template for the mode with the query and the
// retrieved context fragments.
func buildPrompt(mode Mode, query string, fragments []string) string {
	context := emptyContextNote
	if len(fragments) > 0 {
		context = strings.Join(fragments, "\n\n---\n\n")
	}

	template := profileTemplate
	if mode == ModeAnonymous {
		template = anonymousTemplate
	}
	return fmt.Sprintf(template, query, context)
}
