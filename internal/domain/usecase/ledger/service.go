package ledger

import (
	"context"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/usecase"
)

// Config holds the ledger's business settings
type Config struct {
	DefaultCredits int64       // Opening balance for new accounts
	Bonus          BonusPolicy // Credits granted for a confirmed payment
}

// DefaultConfig returns the product defaults: 1000 opening credits and one bonus credit per payment
func DefaultConfig() Config {
	return Config{
		DefaultCredits: entity.DefaultAccountCredits,
		Bonus:          FlatBonus(1),
	}
}

// Service implements the credit ledger on top of the account and payment stores.
// The store is authoritative; the mirror is updated after each durable change.
type Service struct {
	config       Config
	accountRepo  persistence.AccountRepository
	paymentRepo  persistence.PaymentRepository
	uow          persistence.UnitOfWork
	mirror       service.Mirror
	publisher    service.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewLedgerService creates a new ledger service
func NewLedgerService(
	config Config,
	uow persistence.UnitOfWork,
	mirror service.Mirror,
	publisher service.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	if config.Bonus == nil {
		config.Bonus = FlatBonus(0)
	}

	ctx := context.Background()
	return &Service{
		config:       config,
		accountRepo:  uow.GetAccountRepository(ctx),
		paymentRepo:  uow.GetPaymentRepository(ctx),
		uow:          uow,
		mirror:       mirror,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// setMirrorBalance replaces the mirrored balance; failures only cost display freshness
func (s *Service) setMirrorBalance(ctx context.Context, userID string, credits int64) {
	if err := s.mirror.SetBalance(ctx, userID, credits); err != nil {
		s.logMirrorFailure("set_balance", userID, err)
	}
}

func (s *Service) adjustMirrorBalance(ctx context.Context, userID string, delta int64) {
	if err := s.mirror.AdjustBalance(ctx, userID, delta); err != nil {
		s.logMirrorFailure("adjust_balance", userID, err)
	}
}

func (s *Service) invalidateMirror(ctx context.Context, userID string) {
	if err := s.mirror.Invalidate(ctx, userID); err != nil {
		s.logMirrorFailure("invalidate", userID, err)
	}
}

func (s *Service) logMirrorFailure(operation, userID string, err error) {
	s.logger.Warn("Account mirror update failed", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"error":     err.Error(),
	})
}

// publish delivers a ledger event. Delivery failures never fail the ledger operation.
func (s *Service) publish(ctx context.Context, event service.LedgerEvent) {
	event.OccurredAt = s.timeProvider.Now()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish ledger event", map[string]any{
			"event_type": event.Type,
			"user_id":    event.UserID,
			"payment_id": event.PaymentID,
			"error":      err.Error(),
		})
	}
}
