package dto

import "github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"

// RetrievalRequest searches the user's documents
type RetrievalRequest struct {
	Query string `json:"query" binding:"required"`
}

// PassageResponse is one retrieved chunk
type PassageResponse struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// NewPassageResponses maps passages, never returning nil
func NewPassageResponses(passages []entity.Passage) []PassageResponse {
	out := make([]PassageResponse, 0, len(passages))
	for _, p := range passages {
		out = append(out, PassageResponse{Text: p.Text, Score: p.Score})
	}
	return out
}

// RetrievalResponse lists retrieved passages
type RetrievalResponse struct {
	Passages []PassageResponse `json:"passages"`
}

// AskRequest is a question about the user's documents
type AskRequest struct {
	Query    string   `json:"query" binding:"required"`
	Model    string   `json:"model"`
	Passages []string `json:"passages"`
}

// SummaryRequest asks for a document summary
type SummaryRequest struct {
	Document string `json:"document" binding:"required"`
	Language string `json:"language"`
	Model    string `json:"model"`
	Words    int    `json:"words"`
}

// AnswerRequest is a question about an inline document
type AnswerRequest struct {
	Document string `json:"document" binding:"required"`
	Question string `json:"question" binding:"required"`
	Model    string `json:"model"`
}

// DoneEvent closes a generation stream
type DoneEvent struct {
	Model string `json:"model"`
	Cost  int64  `json:"cost"`
}

// DocumentResponse is an uploaded document
type DocumentResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// ModelResponse is one offered generation model
type ModelResponse struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// NewModelResponses maps the model catalog
func NewModelResponses(models []entity.Model) []ModelResponse {
	out := make([]ModelResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ModelResponse{Name: m.Name, Provider: m.Provider})
	}
	return out
}

// HealthResponse reports service health
type HealthResponse struct {
	Status   string `json:"status"`
	Database any    `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}
