package service

import (
	"context"
	"io"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
)

// RetrievalRequest scopes a passage search to one user's documents
type RetrievalRequest struct {
	Query  string
	UserID string
	Scope  string
}

// DocumentUpload is a file to index for a user
type DocumentUpload struct {
	UserID      string
	Name        string
	ContentType string
	Scope       string
	Content     io.Reader
}

// Retriever searches and indexes user documents
type Retriever interface {
	Retrieve(ctx context.Context, req RetrievalRequest) ([]entity.Passage, error)
	UploadDocument(ctx context.Context, upload DocumentUpload) (*entity.Document, error)
}
