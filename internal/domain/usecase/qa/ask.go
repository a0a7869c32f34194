package qa

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/usecase"
)

// Ask charges for a question, retrieves passages from the user's documents and
// streams an answer grounded in them. The charge is refunded when retrieval or
// opening the stream fails.
func (s *Service) Ask(ctx context.Context, req usecase.AskRequest) (*usecase.Answer, error) {
	if err := entity.ValidateUserID(req.UserID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, errs.ErrEmptyQuery
	}
	model, err := s.resolveModel(req.Model)
	if err != nil {
		return nil, err
	}

	cost := s.config.QuestionCost
	if err := s.charge(ctx, req.UserID, cost); err != nil {
		return nil, err
	}

	passages := make([]entity.Passage, 0, len(req.Passages))
	for _, text := range req.Passages {
		passages = append(passages, entity.Passage{Text: text})
	}
	if len(passages) == 0 {
		passages, err = s.Retrieve(ctx, req.UserID, req.Query)
		if err != nil {
			s.refund(ctx, req.UserID, cost, err)
			return nil, err
		}
	}

	stream, err := s.generator.Stream(ctx, service.GenerationRequest{
		Model:    model,
		Messages: AskMessages(entity.PassageTexts(passages), req.Query),
	})
	if err != nil {
		s.refund(ctx, req.UserID, cost, err)
		return nil, err
	}

	s.logger.Info("Question answered", map[string]any{
		"user_id":  req.UserID,
		"model":    model.Name,
		"passages": len(passages),
		"cost":     cost,
	})

	return &usecase.Answer{
		Model:    model,
		Passages: passages,
		Cost:     cost,
		Stream:   stream,
	}, nil
}

// Summarize streams a summary of the document in the requested language
func (s *Service) Summarize(ctx context.Context, req usecase.SummaryRequest) (*usecase.Answer, error) {
	if err := entity.ValidateUserID(req.UserID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Document) == "" {
		return nil, fmt.Errorf("%w: document is empty", errs.ErrInvalidRequest)
	}
	if req.Words < 0 {
		return nil, fmt.Errorf("%w: word limit must be positive", errs.ErrInvalidRequest)
	}
	model, err := s.resolveModel(req.Model)
	if err != nil {
		return nil, err
	}

	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = s.config.SummaryLanguage
	}
	words := req.Words
	if words == 0 {
		words = s.config.SummaryWords
	}

	return s.generate(ctx, req.UserID, s.config.SummaryCost, service.GenerationRequest{
		Model:    model,
		Messages: SummaryMessages(req.Document, language, words),
	})
}

// AnswerDocument streams an answer to a question about an inline document
func (s *Service) AnswerDocument(ctx context.Context, req usecase.DocumentQuestion) (*usecase.Answer, error) {
	if err := entity.ValidateUserID(req.UserID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Question) == "" {
		return nil, errs.ErrEmptyQuery
	}
	if strings.TrimSpace(req.Document) == "" {
		return nil, fmt.Errorf("%w: document is empty", errs.ErrInvalidRequest)
	}
	model, err := s.resolveModel(req.Model)
	if err != nil {
		return nil, err
	}

	return s.generate(ctx, req.UserID, s.config.AnswerCost, service.GenerationRequest{
		Model:    model,
		Messages: AnswerMessages(req.Document, req.Question),
	})
}
