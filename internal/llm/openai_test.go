package llm

import (
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeMessageFlatFieldWins(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		Content: "  flat text  ",
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: "structured text"},
		},
	}
	assert.Equal(t, "flat text", normalizeMessage(msg))
}

func TestNormalizeMessageStructuredFallback(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeImageURL},
			{Type: openai.ChatMessagePartTypeText, Text: " structured text "},
		},
	}
	assert.Equal(t, "structured text", normalizeMessage(msg))
}

func TestNormalizeMessageEmpty(t *testing.T) {
	assert.Equal(t, "", normalizeMessage(openai.ChatCompletionMessage{Content: "   "}))
	assert.Equal(t, "", normalizeMessage(openai.ChatCompletionMessage{}))
}
