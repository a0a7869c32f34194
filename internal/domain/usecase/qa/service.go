package qa

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/usecase"
)

// Config holds pricing and defaults for question answering
type Config struct {
	QuestionCost    int64  // Credits per retrieval-grounded question
	SummaryCost     int64  // Credits per summary
	AnswerCost      int64  // Credits per question about an inline document
	DefaultModel    string // Used when a request names no model
	Scope           string // Retrieval scope filter and upload metadata
	SummaryWords    int    // Default summary length
	SummaryLanguage string // Default summary language
}

// DefaultConfig returns the product defaults
func DefaultConfig() Config {
	return Config{
		QuestionCost:    1,
		SummaryCost:     1,
		AnswerCost:      1,
		DefaultModel:    "gpt-4o",
		Scope:           "tutorial",
		SummaryWords:    100,
		SummaryLanguage: "English",
	}
}

// Service answers questions over user documents and charges the ledger for each answer
type Service struct {
	config    Config
	ledger    usecase.LedgerUseCase
	retriever service.Retriever
	generator service.Generator
	catalog   service.ModelCatalog
	logger    coreport.Logger
}

var _ usecase.QAUseCase = (*Service)(nil)

// NewQAService creates a new question answering service
func NewQAService(
	config Config,
	ledger usecase.LedgerUseCase,
	retriever service.Retriever,
	generator service.Generator,
	catalog service.ModelCatalog,
	logger coreport.Logger,
) *Service {
	return &Service{
		config:    config,
		ledger:    ledger,
		retriever: retriever,
		generator: generator,
		catalog:   catalog,
		logger:    logger,
	}
}

// Models returns the generation models on offer
func (s *Service) Models() []entity.Model {
	return s.catalog.Models()
}

// Retrieve searches the user's documents without charging
func (s *Service) Retrieve(ctx context.Context, userID, query string) ([]entity.Passage, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return nil, errs.ErrEmptyQuery
	}

	return s.retriever.Retrieve(ctx, service.RetrievalRequest{
		Query:  query,
		UserID: userID,
		Scope:  s.config.Scope,
	})
}

// UploadDocument indexes a file for the user
func (s *Service) UploadDocument(
	ctx context.Context,
	userID, name, contentType string,
	content io.Reader,
) (*entity.Document, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" || content == nil {
		return nil, fmt.Errorf("%w: a named file is required", errs.ErrInvalidRequest)
	}

	document, err := s.retriever.UploadDocument(ctx, service.DocumentUpload{
		UserID:      userID,
		Name:        name,
		ContentType: contentType,
		Scope:       s.config.Scope,
		Content:     content,
	})
	if err != nil {
		s.logger.Error("Document upload failed", map[string]any{
			"user_id": userID,
			"name":    name,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Document uploaded", map[string]any{
		"user_id":     userID,
		"document_id": document.ID,
		"name":        name,
	})
	return document, nil
}

func (s *Service) resolveModel(name string) (entity.Model, error) {
	if strings.TrimSpace(name) == "" {
		name = s.config.DefaultModel
	}
	model, ok := s.catalog.Lookup(name)
	if !ok {
		return entity.Model{}, fmt.Errorf("%w: %s", errs.ErrUnsupportedModel, name)
	}
	return model, nil
}
