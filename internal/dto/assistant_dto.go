package dto

type AskNotesRequest struct {
	// Questions asked so far in this session, oldest first. Responses
	// holds the answers already received; it is at most one shorter
	// than Questions (the last question is the one being answered).
	Questions []string `json:"questions" validate:"required,min=1"`
	Responses []string `json:"responses"`
}

type AssistantAnswerResponse struct {
	Answer string `json:"answer"`
}

type SummarizePdfRequest struct {
	FileName string
	MimeType string
	Data     []byte
	Prompt   string
}

type SuggestedQuestionsResponse struct {
	Questions []string `json:"questions"`
}
