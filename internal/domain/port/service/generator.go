package service

import (
	"context"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
)

// Chat roles
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message sent to a generation model
type Message struct {
	Role    string
	Content string
}

// GenerationRequest asks a model to stream a completion
type GenerationRequest struct {
	Model    entity.Model
	Messages []Message
}

// TextStream yields generated text fragments in arrival order.
// Next returns io.EOF once the model has finished.
type TextStream interface {
	Next(ctx context.Context) (string, error)
	Close() error
}

// Generator opens streaming completions
type Generator interface {
	Stream(ctx context.Context, req GenerationRequest) (TextStream, error)
}

// ModelCatalog lists the models the product offers
type ModelCatalog interface {
	Lookup(name string) (entity.Model, bool)
	Models() []entity.Model
}
