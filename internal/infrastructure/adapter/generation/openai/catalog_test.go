package openai

import (
	"testing"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := NewDefaultCatalog()

	testCases := []struct {
		name          string
		provider      string
		providerModel string
	}{
		{"gpt-4o", ProviderOpenAI, "gpt-4o"},
		{"gemini-1.5-pro", ProviderGoogle, "models/gemini-1.5-pro-latest"},
		{"mistral-large", ProviderMistral, "mistral-large-latest"},
		{"claude-3-5-sonnet", ProviderAnthropic, "claude-3-5-sonnet-20241022"},
		{"llama-v3p1-405b", ProviderFireworks, "accounts/fireworks/models/llama-v3p1-405b-instruct"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model, ok := catalog.Lookup(tc.name)
			require.True(t, ok)
			assert.Equal(t, tc.provider, model.Provider)
			assert.Equal(t, tc.providerModel, model.ProviderModel)
		})
	}

	_, ok := catalog.Lookup("gpt-2")
	assert.False(t, ok)
	assert.Len(t, catalog.Models(), 5)
	assert.Equal(t, "gpt-4o", catalog.Models()[0].Name)
}

func TestCatalogModelsIsACopy(t *testing.T) {
	catalog := NewCatalog([]entity.Model{
		{Name: "a", Provider: "p"},
		{Name: "a", Provider: "q"},
	})

	models := catalog.Models()
	require.Len(t, models, 1)
	models[0].Name = "changed"

	model, ok := catalog.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "p", model.Provider)
	assert.Equal(t, "a", catalog.Models()[0].Name)
}
