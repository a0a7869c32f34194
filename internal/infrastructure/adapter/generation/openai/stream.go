package openai

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
)

const (
	dataPrefix     = "data:"
	doneMarker     = "[DONE]"
	maxEventLength = 1024 * 1024
)

type chunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// eventStream reads text deltas out of a chat completion event stream
type eventStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	done    bool

	closeOnce sync.Once
	closeErr  error
}

func newEventStream(body io.ReadCloser) *eventStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLength)
	return &eventStream{body: body, scanner: scanner}
}

// Next returns the next non-empty text fragment, or io.EOF once the model is done
func (s *eventStream) Next(ctx context.Context) (string, error) {
	for {
		if s.done {
			return "", io.EOF
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if !s.scanner.Scan() {
			s.done = true
			if err := s.scanner.Err(); err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return "", ctxErr
				}
				return "", fmt.Errorf("%w: stream interrupted: %v", errs.ErrGenerationFailed, err)
			}
			return "", io.EOF
		}

		line := strings.TrimSpace(s.scanner.Text())
		if !strings.HasPrefix(line, dataPrefix) {
			// blank separators, comments and event/id fields
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, dataPrefix))
		if payload == doneMarker {
			s.done = true
			return "", io.EOF
		}

		var c chunk
		if err := json.Unmarshal([]byte(payload), &c); err != nil {
			s.done = true
			return "", fmt.Errorf("%w: malformed event: %v", errs.ErrGenerationFailed, err)
		}
		if c.Error != nil {
			s.done = true
			return "", fmt.Errorf("%w: %s", errs.ErrGenerationFailed, c.Error.Message)
		}

		var text strings.Builder
		for _, choice := range c.Choices {
			text.WriteString(choice.Delta.Content)
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
	}
}

// Close releases the underlying connection; it is safe to call more than once
func (s *eventStream) Close() error {
	s.closeOnce.Do(func() {
		s.done = true
		s.closeErr = s.body.Close()
	})
	return s.closeErr
}
