package ai

import "context"

// Turn is one message in a conversation, attributed to either the user
// or the model.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// FileRef is the opaque handle a provider returns after a file upload.
type FileRef struct {
	Name     string
	URI      string
	MIMEType string
}

// Provider is the narrow surface the assistant orchestration needs
// from a generative-AI backend. Keeping it this small lets the service
// layer run against a stub in tests.
type Provider interface {
	// GenerateChat sends a full conversation history. The last turn
	// must be an unanswered user turn.
	GenerateChat(ctx context.Context, systemInstruction string, turns []Turn) (string, error)

	// GenerateWithFile sends a single prompt with an uploaded file
	// attached.
	GenerateWithFile(ctx context.Context, prompt string, file FileRef) (string, error)

	UploadFile(ctx context.Context, path string, mimeType string, displayName string) (FileRef, error)
	DeleteFile(ctx context.Context, file FileRef) error
}
