package handlers

import (
	"errors"
	"net/http"

	"gynoconnect/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the scripted FAQ chat endpoints.
type AssistantHandler struct {
	Svc assistant.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler instance.
func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Svc: svc}
}

// StartSessionHandler opens a new chat session seeded with the greeting.
func (h *AssistantHandler) StartSessionHandler(c *gin.Context) {
	logger := getLogger(c)
	transcript, err := h.Svc.StartSession(c.Request.Context())
	if err != nil {
		logger.Error("Failed to start assistant session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}
	c.JSON(http.StatusCreated, transcript)
}

// EndSessionHandler discards a session's transcript. Always 204: ending an
// expired or unknown session is indistinguishable from ending a live one.
func (h *AssistantHandler) EndSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Svc.EndSession(c.Request.Context(), sessionID); err != nil {
		getLogger(c).Error("Failed to end assistant session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end session"})
		return
	}
	c.Status(http.StatusNoContent)
}

// TranscriptHandler returns the full transcript for a session.
func (h *AssistantHandler) TranscriptHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	transcript, err := h.Svc.Transcript(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, assistant.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
			return
		}
		getLogger(c).Error("Failed to load transcript", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transcript"})
		return
	}
	c.JSON(http.StatusOK, transcript)
}

// SendMessageHandler appends a free-text message and its canned answer.
// Blank input is ignored: 204, no transcript entry.
func (h *AssistantHandler) SendMessageHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	messages, err := h.Svc.SendMessage(c.Request.Context(), sessionID, input.Text)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyMessage):
			c.Status(http.StatusNoContent)
		case errors.Is(err, assistant.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		default:
			getLogger(c).Error("Failed to append message", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "messages": messages})
}

// AskPresetHandler appends a preset question and its exact table answer.
func (h *AssistantHandler) AskPresetHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	messages, err := h.Svc.AskPreset(c.Request.Context(), sessionID, input.Question)
	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrUnknownQuestion):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown preset question"})
		case errors.Is(err, assistant.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		default:
			getLogger(c).Error("Failed to append preset question", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to ask question"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "messages": messages})
}

// PresetQuestionsHandler returns the fixed preset list.
func (h *AssistantHandler) PresetQuestionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.Svc.PresetQuestions()})
}
