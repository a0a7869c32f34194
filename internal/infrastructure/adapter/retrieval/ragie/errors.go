package ragie

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
)

// Error codes reported for failed Ragie calls
const (
	CodeUnauthorized         = "RAGIE_UNAUTHORIZED"
	CodeForbidden            = "RAGIE_FORBIDDEN"
	CodeTooLarge             = "RAGIE_TOO_LARGE"
	CodeUnsupportedMediaType = "RAGIE_UNSUPPORTED_MEDIA_TYPE"
	CodeRateLimited          = "RAGIE_RATE_LIMITED"
	CodeServerError          = "RAGIE_SERVER_ERROR"
	CodeRequestFailed        = "RAGIE_REQUEST_FAILED"
)

const (
	maxDetailLength    = 2000
	maxLogDetailLength = 500
)

// RetrievalError is a non-2xx answer from Ragie
type RetrievalError struct {
	Status    int
	Code      string
	Message   string
	Detail    string
	RequestID string
	Endpoint  string
}

// Error implements the error interface
func (e *RetrievalError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s: %s (request %s)", e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches ErrRetrievalRateLimited for 429 and ErrRetrievalFailed otherwise
func (e *RetrievalError) Is(target error) bool {
	if e.Status == http.StatusTooManyRequests {
		return target == errs.ErrRetrievalRateLimited
	}
	return target == errs.ErrRetrievalFailed
}

// UserMessage is the text safe to show to the end user
func (e *RetrievalError) UserMessage() string {
	return e.Message
}

// LogFields returns a map of fields for structured logging
func (e *RetrievalError) LogFields() map[string]any {
	return map[string]any{
		"endpoint":   e.Endpoint,
		"status":     e.Status,
		"code":       e.Code,
		"request_id": e.RequestID,
		"detail":     truncate(e.Detail, maxLogDetailLength),
	}
}

func codeForStatus(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status == http.StatusForbidden:
		return CodeForbidden
	case status == http.StatusRequestEntityTooLarge:
		return CodeTooLarge
	case status == http.StatusUnsupportedMediaType:
		return CodeUnsupportedMediaType
	case status == http.StatusTooManyRequests:
		return CodeRateLimited
	case status >= 500:
		return CodeServerError
	default:
		return CodeRequestFailed
	}
}

func messageForStatus(status int, detail string) string {
	switch {
	case status == http.StatusUnauthorized:
		return "Ragie rejected the API key (401 Unauthorized). Check the retrieval API key configuration."
	case status == http.StatusForbidden:
		lower := strings.ToLower(detail)
		if strings.Contains(lower, "account") && strings.Contains(lower, "disabled") {
			return detail
		}
		return "Ragie forbids this request (403). Your API key may not have access to this resource."
	case status == http.StatusRequestEntityTooLarge:
		return "Ragie rejected the upload because it's too large (413). Try a smaller file."
	case status == http.StatusUnsupportedMediaType:
		return "Ragie rejected the file type (415). Try a supported document format."
	case status == http.StatusTooManyRequests:
		return "Ragie rate-limited this request (429). Please retry in a moment."
	case status >= 500:
		return "Ragie is having trouble right now. Please retry in a moment."
	default:
		return fmt.Sprintf("Ragie request failed (HTTP %d).", status)
	}
}

// requestIDFrom reads the first request id header Ragie is known to send
func requestIDFrom(header http.Header) string {
	for _, name := range []string{"x-request-id", "x-requestid", "request-id"} {
		if value := header.Get(name); value != "" {
			return value
		}
	}
	return ""
}

// extractDetail prefers the detail, message or error string of a JSON body,
// falling back to the trimmed raw body
func extractDetail(contentType string, body []byte) string {
	if strings.Contains(contentType, "application/json") {
		var payload map[string]any
		if err := json.Unmarshal(body, &payload); err == nil {
			for _, key := range []string{"detail", "message", "error"} {
				if value, ok := payload[key].(string); ok && value != "" {
					return value
				}
			}
		}
	}

	return truncate(strings.TrimSpace(string(body)), maxDetailLength)
}

// newRetrievalError builds the error for a failed response whose body was already read
func newRetrievalError(endpoint string, resp *http.Response, body []byte) *RetrievalError {
	detail := extractDetail(resp.Header.Get("Content-Type"), body)
	return &RetrievalError{
		Status:    resp.StatusCode,
		Code:      codeForStatus(resp.StatusCode),
		Message:   messageForStatus(resp.StatusCode, detail),
		Detail:    detail,
		RequestID: requestIDFrom(resp.Header),
		Endpoint:  endpoint,
	}
}

func truncate(input string, maxLen int) string {
	if utf8.RuneCountInString(input) <= maxLen {
		return input
	}
	runes := []rune(input)
	return string(runes[:maxLen]) + "…"
}
