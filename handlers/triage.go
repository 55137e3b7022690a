package handlers

import (
	"errors"
	"net/http"

	"gynoconnect/models"
	"gynoconnect/services/triage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TriageHandler exposes the symptom selector endpoints.
type TriageHandler struct {
	Svc *triage.TriageService
}

// NewTriageHandler creates a new TriageHandler instance.
func NewTriageHandler(svc *triage.TriageService) *TriageHandler {
	return &TriageHandler{Svc: svc}
}

// SymptomsHandler returns the fixed symptom checklist.
func (h *TriageHandler) SymptomsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symptoms": h.Svc.Symptoms()})
}

// ToggleHandler flips one symptom in the selected set and returns the
// updated set. Pure; the selection itself lives with the client.
func (h *TriageHandler) ToggleHandler(c *gin.Context) {
	var input struct {
		Selected []string `json:"selected"`
		Symptom  string   `json:"symptom" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": triage.Toggle(input.Selected, input.Symptom)})
}

// AnalyzeHandler accepts a triage submission. The analysis engine is not
// wired yet, so the endpoint answers 501 until it is.
func (h *TriageHandler) AnalyzeHandler(c *gin.Context) {
	var sub models.TriageSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	assessment, err := h.Svc.Analyze(c.Request.Context(), sub)
	if err != nil {
		if errors.Is(err, triage.ErrAnalysisNotWired) {
			c.JSON(http.StatusNotImplemented, gin.H{
				"error": "symptom analysis is not available yet",
			})
			return
		}
		getLogger(c).Error("Symptom analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze symptoms"})
		return
	}
	c.JSON(http.StatusOK, assessment)
}
