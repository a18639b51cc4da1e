// Package llm holds the provider client and the fallback orchestration over
// candidate generation and transcription models.
package llm

import "context"

// GenerationCall is one attempt against one model.
type GenerationCall struct {
	Model  string
	Prompt string
	// Temperature is ignored when OmitTemperature is set. Reasoning models
	// reject the parameter outright.
	Temperature     float32
	OmitTemperature bool
}

// TranscriptionCall is one attempt against one speech-to-text model.
type TranscriptionCall struct {
	Audio    []byte
	Filename string
	Model    string
	Language string
}

// Generator issues a single generation call and returns the normalized
// output text. An empty string with a nil error is a successful-but-empty
// completion; the orchestrator decides what that means.
type Generator interface {
	Generate(ctx context.Context, call GenerationCall) (string, error)
}

// Transcriber issues a single transcription call and returns the trimmed
// transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, call TranscriptionCall) (string, error)
}
