package qa

import (
	"strings"
	"testing"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistantSystemPrompt(t *testing.T) {
	prompt := AssistantSystemPrompt([]string{"first chunk", "second chunk"})

	assert.True(t, strings.HasPrefix(prompt, `You are "Ragie AI"`))
	assert.Contains(t, prompt, "===\nfirst chunk\nsecond chunk\n===")
	assert.True(t, strings.HasSuffix(prompt, "what they might be able to do to find the information they need."))
}

func TestAskMessages(t *testing.T) {
	messages := AskMessages(nil, "What is the refund policy?")

	require.Len(t, messages, 2)
	assert.Equal(t, service.RoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, "===\n\n===")
	assert.Equal(t, service.Message{Role: service.RoleUser, Content: "What is the refund policy?"}, messages[1])
}

func TestSummaryMessages(t *testing.T) {
	messages := SummaryMessages("Long text", "German", 50)

	require.Len(t, messages, 2)
	assert.Contains(t, messages[0].Content, "concise, informative, and 50 words or less")
	assert.Equal(t, "Provided document:\nLong text\n\nProvided language:\nGerman", messages[1].Content)
}

func TestAnswerMessages(t *testing.T) {
	messages := AnswerMessages("Doc body", "Who wrote it?")

	require.Len(t, messages, 2)
	assert.Contains(t, messages[0].Content, "100 words or less")
	assert.Equal(t, "Provided document:\nDoc body\n\nProvided question:\nWho wrote it?", messages[1].Content)
}
