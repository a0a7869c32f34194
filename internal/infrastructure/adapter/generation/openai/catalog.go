package openai

import (
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
)

// Provider keys as used in the generation.providers configuration
const (
	ProviderOpenAI    = "openai"
	ProviderGoogle    = "google"
	ProviderMistral   = "mistral"
	ProviderAnthropic = "anthropic"
	ProviderFireworks = "fireworks"
)

// DefaultModels is the product's model list, in display order
var DefaultModels = []entity.Model{
	{Name: "gpt-4o", Provider: ProviderOpenAI, ProviderModel: "gpt-4o"},
	{Name: "gemini-1.5-pro", Provider: ProviderGoogle, ProviderModel: "models/gemini-1.5-pro-latest"},
	{Name: "mistral-large", Provider: ProviderMistral, ProviderModel: "mistral-large-latest"},
	{Name: "claude-3-5-sonnet", Provider: ProviderAnthropic, ProviderModel: "claude-3-5-sonnet-20241022"},
	{Name: "llama-v3p1-405b", Provider: ProviderFireworks, ProviderModel: "accounts/fireworks/models/llama-v3p1-405b-instruct"},
}

// Catalog is a fixed list of models looked up by public name
type Catalog struct {
	models []entity.Model
	byName map[string]entity.Model
}

var _ service.ModelCatalog = (*Catalog)(nil)

// NewCatalog creates a catalog over models; later duplicates of a name are ignored
func NewCatalog(models []entity.Model) *Catalog {
	c := &Catalog{byName: make(map[string]entity.Model, len(models))}
	for _, m := range models {
		if _, exists := c.byName[m.Name]; exists {
			continue
		}
		c.byName[m.Name] = m
		c.models = append(c.models, m)
	}
	return c
}

// NewDefaultCatalog creates the catalog of DefaultModels
func NewDefaultCatalog() *Catalog {
	return NewCatalog(DefaultModels)
}

// Lookup finds a model by public name
func (c *Catalog) Lookup(name string) (entity.Model, bool) {
	m, ok := c.byName[name]
	return m, ok
}

// Models returns a copy of the model list
func (c *Catalog) Models() []entity.Model {
	out := make([]entity.Model, len(c.models))
	copy(out, c.models)
	return out
}
