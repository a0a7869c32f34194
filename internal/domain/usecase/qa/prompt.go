package qa

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
)

const assistantPromptTemplate = `You are "Ragie AI", a professional but friendly AI chatbot working as an assistant to the user.
Your current task is to help the user based on all of the information available to you shown below.
Answer informally, directly, and concisely without a heading or greeting but include everything relevant.
Use richtext Markdown when appropriate including bold, italic, paragraphs, and lists when helpful.
If using LaTeX, use double $$ as delimiter instead of single $. Use $$...$$ instead of parentheses.
Organize information into multiple sections or points when appropriate.
Don't include raw item IDs or other raw fields from the source.
Don't use XML or other markup unless requested by the user.

Here is all of the information available to answer the user:
===
%s
===

If the user asked for a search and there are no results, make sure to let the user know that you couldn't find anything,
and what they might be able to do to find the information they need.`

const answerSystemPrompt = "You are a helpful question and answer assistant. Your job is to generate an answer to the provided question based on the provided document. Without any introduction, provide an answer that is concise, informative, and 100 words or less."

const summarySystemPromptTemplate = "You are a helpful summarization and translation assistant. Your job is to generate a summary of the provided document in the provided language. The summary should be concise, informative, and %d words or less. Present the summary without introduction and without saying that it is a summary."

// AssistantSystemPrompt embeds retrieved passages, one per line, between === fences
func AssistantSystemPrompt(passages []string) string {
	return fmt.Sprintf(assistantPromptTemplate, strings.Join(passages, "\n"))
}

// AskMessages builds the chat for a retrieval-grounded question
func AskMessages(passages []string, query string) []service.Message {
	return []service.Message{
		{Role: service.RoleSystem, Content: AssistantSystemPrompt(passages)},
		{Role: service.RoleUser, Content: query},
	}
}

// AnswerMessages builds the chat for a question about an inline document
func AnswerMessages(document, question string) []service.Message {
	return []service.Message{
		{Role: service.RoleSystem, Content: answerSystemPrompt},
		{Role: service.RoleUser, Content: fmt.Sprintf("Provided document:\n%s\n\nProvided question:\n%s", document, question)},
	}
}

// SummaryMessages builds the chat for summarizing a document into a language
func SummaryMessages(document, language string, words int) []service.Message {
	return []service.Message{
		{Role: service.RoleSystem, Content: fmt.Sprintf(summarySystemPromptTemplate, words)},
		{Role: service.RoleUser, Content: fmt.Sprintf("Provided document:\n%s\n\nProvided language:\n%s", document, language)},
	}
}
