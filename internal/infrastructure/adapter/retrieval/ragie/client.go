package ragie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.ragie.ai"
	defaultTimeout = 30 * time.Second

	retrievalsPath = "/retrievals"
	documentsPath  = "/documents"
)

// Config configures the Ragie client
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	RateLimit      float64 // requests per second, 0 disables limiting
	RateLimitBurst int
}

// Client talks to the Ragie retrieval API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     coreport.Logger
}

type retrievalFilter struct {
	Scope  string `json:"scope,omitempty"`
	UserID string `json:"userId"`
}

type retrievalRequest struct {
	Query  string          `json:"query"`
	Filter retrievalFilter `json:"filter"`
}

type scoredChunk struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

type retrievalResponse struct {
	ScoredChunks []scoredChunk `json:"scored_chunks"`
}

type documentMetadata struct {
	Title  string `json:"title"`
	Scope  string `json:"scope,omitempty"`
	UserID string `json:"userId"`
}

type documentResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

var _ service.Retriever = (*Client)(nil)

// NewClient creates a Ragie client
func NewClient(config Config, logger coreport.Logger) *Client {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if config.RateLimit > 0 {
		burst := config.RateLimitBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), burst)
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
		logger:     logger,
	}
}

// Retrieve returns the passages matching the query among the user's documents
func (c *Client) Retrieve(ctx context.Context, req service.RetrievalRequest) ([]entity.Passage, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, errs.ErrEmptyQuery
	}
	if strings.TrimSpace(req.UserID) == "" {
		return nil, errs.ErrInvalidUserID
	}

	body, err := json.Marshal(retrievalRequest{
		Query:  req.Query,
		Filter: retrievalFilter{Scope: req.Scope, UserID: req.UserID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal retrieval request: %w", err)
	}

	var decoded retrievalResponse
	if err := c.do(ctx, http.MethodPost, retrievalsPath, "application/json", bytes.NewReader(body), &decoded); err != nil {
		return nil, err
	}

	passages := make([]entity.Passage, 0, len(decoded.ScoredChunks))
	for _, chunk := range decoded.ScoredChunks {
		passages = append(passages, entity.Passage{Text: chunk.Text, Score: chunk.Score})
	}

	c.logger.Debug("Retrieved passages", map[string]any{
		"user_id":  req.UserID,
		"passages": len(passages),
	})
	return passages, nil
}

// UploadDocument sends a file for indexing, tagged with the owner and scope
func (c *Client) UploadDocument(ctx context.Context, upload service.DocumentUpload) (*entity.Document, error) {
	if strings.TrimSpace(upload.UserID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(upload.Name) == "" || upload.Content == nil {
		return nil, fmt.Errorf("%w: document name and content are required", errs.ErrInvalidRequest)
	}

	metadata, err := json.Marshal(documentMetadata{
		Title:  upload.Name,
		Scope:  upload.Scope,
		UserID: upload.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document metadata: %w", err)
	}

	pipeReader, pipeWriter := io.Pipe()
	form := multipart.NewWriter(pipeWriter)
	go func() {
		pipeWriter.CloseWithError(writeUploadForm(form, upload, metadata))
	}()

	var decoded documentResponse
	err = c.do(ctx, http.MethodPost, documentsPath, form.FormDataContentType(), pipeReader, &decoded)
	pipeReader.Close()
	if err != nil {
		return nil, err
	}

	c.logger.Info("Document uploaded", map[string]any{
		"user_id":     upload.UserID,
		"document_id": decoded.ID,
		"name":        upload.Name,
	})

	name := decoded.Name
	if name == "" {
		name = upload.Name
	}
	return &entity.Document{ID: decoded.ID, Name: name, Status: decoded.Status}, nil
}

func writeUploadForm(form *multipart.Writer, upload service.DocumentUpload, metadata []byte) error {
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, upload.Name))
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		return err
	}
	if err := form.WriteField("metadata", string(metadata)); err != nil {
		return err
	}
	return form.Close()
}

// do sends one request and decodes a 2xx JSON body into out
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrRetrievalFailed, err)
	}

	endpoint := c.baseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Ragie request failed", map[string]any{
			"endpoint": endpoint,
			"method":   method,
			"error":    err.Error(),
		})
		return fmt.Errorf("%w: %s %s: %v", errs.ErrRetrievalFailed, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", errs.ErrRetrievalFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		retrievalErr := newRetrievalError(path, resp, respBody)
		fields := retrievalErr.LogFields()
		fields["method"] = method
		c.logger.Error("Ragie API request failed", fields)
		return retrievalErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", errs.ErrRetrievalFailed, err)
	}
	return nil
}
