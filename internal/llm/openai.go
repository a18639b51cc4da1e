package llm

import (
	"bytes"
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient calls the OpenAI API for completions and transcriptions. It
// implements Generator and Transcriber.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient constructs an OpenAI-backed client. baseURL overrides the
// API endpoint when non-empty (compatible gateways).
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}
}

// Generate sends one chat completion request and normalizes the response
// into a single text value.
func (c *OpenAIClient) Generate(ctx context.Context, call GenerationCall) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: call.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: call.Prompt},
		},
	}
	if !call.OmitTemperature {
		req.Temperature = call.Temperature
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return normalizeMessage(resp.Choices[0].Message), nil
}

// normalizeMessage extracts the generated text from the two response shapes
// the provider uses: the flat content field wins, the first text part of the
// structured content list is the fallback.
func normalizeMessage(msg openai.ChatCompletionMessage) string {
	if text := strings.TrimSpace(msg.Content); text != "" {
		return text
	}
	for _, part := range msg.MultiContent {
		if part.Type != openai.ChatMessagePartTypeText {
			continue
		}
		if text := strings.TrimSpace(part.Text); text != "" {
			return text
		}
	}
	return ""
}

// Transcribe sends one audio transcription request.
func (c *OpenAIClient) Transcribe(ctx context.Context, call TranscriptionCall) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    call.Model,
		Reader:   bytes.NewReader(call.Audio),
		FilePath: call.Filename,
		Language: call.Language,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}
