package qa

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/usecase"
)

// charge debits cost credits, failing with ErrInsufficientBalance when the ledger refuses
func (s *Service) charge(ctx context.Context, userID string, cost int64) error {
	if cost <= 0 {
		return nil
	}

	ok, err := s.ledger.Debit(ctx, userID, cost)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: this request costs %d credits", errs.ErrInsufficientBalance, cost)
	}
	return nil
}

// refund returns a charge for work that never reached the user. It runs detached
// from ctx so a disconnecting client still gets its credits back.
func (s *Service) refund(ctx context.Context, userID string, cost int64, reason error) {
	if cost <= 0 {
		return
	}

	if _, err := s.ledger.Credit(context.WithoutCancel(ctx), userID, cost); err != nil {
		s.logger.Error("Failed to refund credits", map[string]any{
			"user_id": userID,
			"credits": cost,
			"reason":  reason.Error(),
			"error":   err.Error(),
		})
		return
	}

	s.logger.Info("Credits refunded", map[string]any{
		"user_id": userID,
		"credits": cost,
		"reason":  reason.Error(),
	})
}

// generate charges, opens the stream and refunds if the stream cannot be opened
func (s *Service) generate(
	ctx context.Context,
	userID string,
	cost int64,
	req service.GenerationRequest,
) (*usecase.Answer, error) {
	if err := s.charge(ctx, userID, cost); err != nil {
		return nil, err
	}

	stream, err := s.generator.Stream(ctx, req)
	if err != nil {
		s.refund(ctx, userID, cost, err)
		return nil, err
	}

	return &usecase.Answer{
		Model:  req.Model,
		Cost:   cost,
		Stream: stream,
	}, nil
}
