package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"

	// Returned verbatim when the user has no stored notes; the provider
	// is never called in that case.
	NoNotesMessage = "You don't have any notes yet."

	// Returned when the provider answers with empty output.
	EmptyAnswerFallback = "Sorry, I couldn't come up with an answer. Please try again."

	DefaultPdfPrompt = "Provide a concise structured summary of this document."

	AssistantActionAsk     = "ask_notes"
	AssistantActionPdf     = "summarize_pdf"
	AssistantActionSuggest = "suggest_questions"

	AssistantStatusOk    = "ok"
	AssistantStatusError = "error"
)
