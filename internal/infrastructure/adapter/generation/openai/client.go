package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	"golang.org/x/time/rate"
)

const (
	chatCompletionsPath   = "/chat/completions"
	defaultConnectTimeout = 60 * time.Second
	maxErrorBodyLength    = 1000
)

// ProviderConfig is one OpenAI-compatible endpoint
type ProviderConfig struct {
	BaseURL string
	APIKey  string
}

// Config configures the generation client
type Config struct {
	Providers map[string]ProviderConfig
	// Timeout bounds the wait for response headers; the stream itself is bounded by the caller's context
	Timeout   time.Duration
	RateLimit float64 // requests per second across providers, 0 disables limiting
}

// Client streams chat completions from OpenAI-compatible providers
type Client struct {
	providers  map[string]ProviderConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     coreport.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

var _ service.Generator = (*Client)(nil)

// NewClient creates a generation client
func NewClient(config Config, logger coreport.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = timeout

	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}

	providers := make(map[string]ProviderConfig, len(config.Providers))
	for name, p := range config.Providers {
		p.BaseURL = strings.TrimRight(p.BaseURL, "/")
		providers[name] = p
	}

	return &Client{
		providers:  providers,
		httpClient: &http.Client{Transport: transport},
		limiter:    limiter,
		logger:     logger,
	}
}

// Stream opens a streaming completion for the request's model
func (c *Client) Stream(ctx context.Context, req service.GenerationRequest) (service.TextStream, error) {
	provider, ok := c.providers[req.Model.Provider]
	if !ok || provider.BaseURL == "" {
		return nil, fmt.Errorf("%w: provider %q is not configured", errs.ErrUnsupportedModel, req.Model.Provider)
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("%w: no messages", errs.ErrInvalidRequest)
	}

	messages := make([]chatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	body, err := json.Marshal(chatRequest{
		Model:    req.Model.ProviderModel,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrGenerationFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, provider.BaseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	if provider.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+provider.APIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Generation request failed", map[string]any{
			"model":    req.Model.Name,
			"provider": req.Model.Provider,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrGenerationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		message := describeError(respBody)
		c.logger.Error("Generation provider returned an error", map[string]any{
			"model":    req.Model.Name,
			"provider": req.Model.Provider,
			"status":   resp.StatusCode,
			"detail":   message,
		})
		return nil, fmt.Errorf("%w: %s returned status %d: %s", errs.ErrGenerationFailed, req.Model.Provider, resp.StatusCode, message)
	}

	c.logger.Debug("Generation stream opened", map[string]any{
		"model":    req.Model.Name,
		"provider": req.Model.Provider,
	})
	return newEventStream(resp.Body), nil
}

func describeError(body []byte) string {
	var parsed apiError
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return strings.TrimSpace(string(body))
}
