package usecase

import (
	"context"
	"io"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
)

// AskRequest is a question about the user's uploaded documents.
// Passages already retrieved by the caller skip the retrieval step.
type AskRequest struct {
	UserID   string
	Query    string
	Model    string
	Passages []string
}

// DocumentQuestion is a question about a document supplied inline
type DocumentQuestion struct {
	UserID   string
	Document string
	Question string
	Model    string
}

// SummaryRequest asks for a summary of a document in a given language
type SummaryRequest struct {
	UserID   string
	Document string
	Language string
	Model    string
	Words    int
}

// Answer is a paid generation. Stream must be closed by the caller.
type Answer struct {
	Model    entity.Model
	Passages []entity.Passage
	Cost     int64
	Stream   service.TextStream
}

// QAUseCase answers questions over uploaded documents
type QAUseCase interface {
	Ask(ctx context.Context, req AskRequest) (*Answer, error)
	Summarize(ctx context.Context, req SummaryRequest) (*Answer, error)
	AnswerDocument(ctx context.Context, req DocumentQuestion) (*Answer, error)
	Retrieve(ctx context.Context, userID, query string) ([]entity.Passage, error)
	UploadDocument(ctx context.Context, userID, name, contentType string, content io.Reader) (*entity.Document, error)
	Models() []entity.Model
}
