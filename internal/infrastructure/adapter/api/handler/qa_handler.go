package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// SSE event names
const (
	EventPassages = "passages"
	EventMessage  = "message"
	EventDone     = "done"
	EventError    = "error"
)

// QAHandler handles question answering and document requests
type QAHandler struct {
	qa             usecase.QAUseCase
	maxUploadBytes int64
	logger         coreport.Logger
}

// NewQAHandler creates a new QA handler; maxUploadBytes <= 0 disables the upload limit
func NewQAHandler(qa usecase.QAUseCase, maxUploadBytes int64, logger coreport.Logger) *QAHandler {
	return &QAHandler{qa: qa, maxUploadBytes: maxUploadBytes, logger: logger}
}

// Models handles GET /models
func (h *QAHandler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewModelResponses(h.qa.Models()))
}

// Retrieve handles POST /user/:userId/retrievals
func (h *QAHandler) Retrieve(c *gin.Context) {
	var req dto.RetrievalRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	passages, err := h.qa.Retrieve(c.Request.Context(), c.Param("userId"), req.Query)
	if err != nil {
		respondError(c, h.logger, "Error retrieving passages", err)
		return
	}

	c.JSON(http.StatusOK, dto.RetrievalResponse{Passages: dto.NewPassageResponses(passages)})
}

// Ask handles POST /user/:userId/ask, streaming the answer as server-sent events
func (h *QAHandler) Ask(c *gin.Context) {
	var req dto.AskRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	answer, err := h.qa.Ask(c.Request.Context(), usecase.AskRequest{
		UserID:   c.Param("userId"),
		Query:    req.Query,
		Model:    req.Model,
		Passages: req.Passages,
	})
	if err != nil {
		respondError(c, h.logger, "Error answering question", err)
		return
	}

	h.stream(c, answer)
}

// Summarize handles POST /user/:userId/summaries
func (h *QAHandler) Summarize(c *gin.Context) {
	var req dto.SummaryRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	answer, err := h.qa.Summarize(c.Request.Context(), usecase.SummaryRequest{
		UserID:   c.Param("userId"),
		Document: req.Document,
		Language: req.Language,
		Model:    req.Model,
		Words:    req.Words,
	})
	if err != nil {
		respondError(c, h.logger, "Error summarizing document", err)
		return
	}

	h.stream(c, answer)
}

// AnswerDocument handles POST /user/:userId/answers
func (h *QAHandler) AnswerDocument(c *gin.Context) {
	var req dto.AnswerRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	answer, err := h.qa.AnswerDocument(c.Request.Context(), usecase.DocumentQuestion{
		UserID:   c.Param("userId"),
		Document: req.Document,
		Question: req.Question,
		Model:    req.Model,
	})
	if err != nil {
		respondError(c, h.logger, "Error answering document question", err)
		return
	}

	h.stream(c, answer)
}

// stream relays the answer's fragments until the model finishes or the client goes away
func (h *QAHandler) stream(c *gin.Context, answer *usecase.Answer) {
	defer answer.Stream.Close()

	ctx := c.Request.Context()
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	if len(answer.Passages) > 0 {
		c.SSEvent(EventPassages, dto.NewPassageResponses(answer.Passages))
		c.Writer.Flush()
	}

	fragments := 0
	clientGone := c.Stream(func(w io.Writer) bool {
		fragment, err := answer.Stream.Next(ctx)
		switch {
		case errors.Is(err, io.EOF):
			c.SSEvent(EventDone, dto.DoneEvent{Model: answer.Model.Name, Cost: answer.Cost})
			return false
		case errors.Is(err, context.Canceled):
			return false
		case err != nil:
			h.logger.Error("Generation stream failed", map[string]any{
				"user_id":    c.Param("userId"),
				"model":      answer.Model.Name,
				"fragments":  fragments,
				"error":      err.Error(),
				"request_id": coreport.RequestIDFromContext(ctx),
			})
			c.SSEvent(EventError, NewErrorResponse(err))
			return false
		}

		fragments++
		c.SSEvent(EventMessage, fragment)
		return true
	})

	if clientGone {
		h.logger.Info("Client disconnected during stream", map[string]any{
			"user_id":   c.Param("userId"),
			"model":     answer.Model.Name,
			"fragments": fragments,
		})
	}
}

// UploadDocument handles POST /user/:userId/documents as multipart form data with a "file" part
func (h *QAHandler) UploadDocument(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidRequest,
				Message: fmt.Sprintf("File exceeds the %d byte upload limit", h.maxUploadBytes),
			})
			return
		}
		respondError(c, h.logger, "Invalid upload",
			fmt.Errorf("%w: a multipart file field named \"file\" is required", domainerr.ErrInvalidRequest))
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, h.logger, "Error opening upload", err)
		return
	}
	defer file.Close()

	document, err := h.qa.UploadDocument(
		c.Request.Context(),
		c.Param("userId"),
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respondError(c, h.logger, "Error uploading document", err)
		return
	}

	c.JSON(http.StatusCreated, dto.DocumentResponse{
		ID:     document.ID,
		Name:   document.Name,
		Status: document.Status,
	})
}
