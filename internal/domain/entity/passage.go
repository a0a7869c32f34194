package entity

// Passage is a retrieved document chunk with its relevance score
type Passage struct {
	Text  string
	Score float64
}

// PassageTexts returns the passage texts in retrieval order
func PassageTexts(passages []Passage) []string {
	texts := make([]string, 0, len(passages))
	for _, p := range passages {
		texts = append(texts, p.Text)
	}
	return texts
}

// Model is a generation model the product offers
type Model struct {
	Name          string // Public name, e.g. gpt-4o
	Provider      string // Provider key in configuration
	ProviderModel string // Identifier sent to the provider
}

// Document is the retrieval service's record of an uploaded file
type Document struct {
	ID     string
	Name   string
	Status string
}
