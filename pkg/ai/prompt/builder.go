package prompt

import (
	"fmt"
	"strings"
	"time"

	"notelens-be/pkg/ai"
)

// NoteContext is the slice of a note the prompts need: its verbatim
// text plus timestamps, so the model can answer "when did I write ..."
// questions.
type NoteContext struct {
	Text      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

const answerFormattingRules = `FORMATTING RULES:
- Answer using only this HTML subset: <p>, <em>, <strong>, <ul>, <ol>, <li>, <h1>, <h2>, <h3>, <br>.
- Never use inline styles, scripts, attributes, or any other tags.
- Do not wrap the answer in markdown code fences.`

const summaryFormattingRules = `FORMATTING RULES:
- Structure the output semantically using only this HTML subset: <section>, <h1>, <h2>, <h3>, <h4>, <p>, <ul>, <ol>, <li>, <em>, <strong>, <br>.
- Never use inline styles, scripts, attributes, or any other tags.
- Do not wrap the output in markdown code fences.`

// NotesSystemInstruction builds the system block for conversational
// Q&A: every note verbatim with its timestamps, then the output rules.
func NotesSystemInstruction(notes []NoteContext) string {
	var sb strings.Builder
	sb.WriteString("You are a personal notes assistant. Answer the user's questions using only the notes below.\n")
	sb.WriteString("If the notes don't contain the answer, say so instead of inventing one.\n\n")
	sb.WriteString("USER NOTES:\n")

	for i, note := range notes {
		sb.WriteString(fmt.Sprintf("--- Note %d (created %s", i+1, note.CreatedAt.Format(time.RFC3339)))
		if note.UpdatedAt != nil {
			sb.WriteString(fmt.Sprintf(", updated %s", note.UpdatedAt.Format(time.RFC3339)))
		}
		sb.WriteString(") ---\n")
		sb.WriteString(note.Text)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(answerFormattingRules)
	return sb.String()
}

// ConversationHistory reconstructs the turn sequence from the
// client-supplied question and response lists. Each question becomes a
// user turn; when an answer exists at the same index it follows as a
// model turn. The result always ends with exactly one unanswered user
// turn (the question currently being asked).
func ConversationHistory(questions, responses []string) []ai.Turn {
	turns := make([]ai.Turn, 0, len(questions)+len(responses))
	for i, question := range questions {
		turns = append(turns, ai.Turn{Role: "user", Text: question})
		if i < len(responses) {
			turns = append(turns, ai.Turn{Role: "model", Text: responses[i]})
		}
	}
	return turns
}

// PdfInstruction combines the caller's prompt with the structured
// output rules for document summaries.
func PdfInstruction(userPrompt string) string {
	return userPrompt + "\n\n" + summaryFormattingRules
}

// SuggestionsPrompt asks for question ideas as strict JSON so the
// response can be machine-parsed. The parser still tolerates models
// that ignore the shape.
func SuggestionsPrompt(notes []NoteContext, count int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Based on the notes below, suggest %d questions the user could ask about their own notes.\n", count))
	sb.WriteString(`Respond with strictly a JSON object of the shape {"questions": ["...", "..."]} and no other commentary.`)
	sb.WriteString("\n\nUSER NOTES:\n")

	for i, note := range notes {
		sb.WriteString(fmt.Sprintf("--- Note %d ---\n", i+1))
		sb.WriteString(note.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
