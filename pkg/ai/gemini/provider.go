package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"notelens-be/pkg/ai"
)

// Provider implements ai.Provider on the official genai SDK.
type Provider struct {
	client *genai.Client
	model  string
}

func NewProvider(ctx context.Context, apiKey, model, endpoint string) (*Provider, error) {
	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Provider{
		client: client,
		model:  model,
	}, nil
}

func (p *Provider) Close() error {
	return p.client.Close()
}

func (p *Provider) GenerateChat(ctx context.Context, systemInstruction string, turns []ai.Turn) (string, error) {
	if len(turns) == 0 {
		return "", fmt.Errorf("empty conversation history")
	}

	last := turns[len(turns)-1]
	if last.Role != "user" {
		return "", fmt.Errorf("last turn must be an unanswered user turn, got role %q", last.Role)
	}

	model := p.client.GenerativeModel(p.model)
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	session := model.StartChat()
	session.History = toContents(turns[:len(turns)-1])

	resp, err := session.SendMessage(ctx, genai.Text(last.Text))
	if err != nil {
		return "", fmt.Errorf("gemini chat request failed: %w", err)
	}

	return extractText(resp), nil
}

func (p *Provider) GenerateWithFile(ctx context.Context, prompt string, file ai.FileRef) (string, error) {
	model := p.client.GenerativeModel(p.model)

	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.FileData{MIMEType: file.MIMEType, URI: file.URI},
	)
	if err != nil {
		return "", fmt.Errorf("gemini file request failed: %w", err)
	}

	return extractText(resp), nil
}

func (p *Provider) UploadFile(ctx context.Context, path string, mimeType string, displayName string) (ai.FileRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return ai.FileRef{}, fmt.Errorf("open upload source: %w", err)
	}
	defer f.Close()

	uploaded, err := p.client.UploadFile(ctx, "", f, &genai.UploadFileOptions{
		DisplayName: displayName,
		MIMEType:    mimeType,
	})
	if err != nil {
		return ai.FileRef{}, fmt.Errorf("gemini file upload failed: %w", err)
	}

	return ai.FileRef{
		Name:     uploaded.Name,
		URI:      uploaded.URI,
		MIMEType: uploaded.MIMEType,
	}, nil
}

func (p *Provider) DeleteFile(ctx context.Context, file ai.FileRef) error {
	return p.client.DeleteFile(ctx, file.Name)
}

func toContents(turns []ai.Turn) []*genai.Content {
	contents := make([]*genai.Content, len(turns))
	for i, turn := range turns {
		contents[i] = &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		}
	}
	return contents
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}

var _ ai.Provider = (*Provider)(nil)
