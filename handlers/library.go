package handlers

import (
	"net/http"

	"gynoconnect/services/library"

	"github.com/gin-gonic/gin"
)

// LibraryHandler serves the static health library.
type LibraryHandler struct {
	Svc *library.LibraryService
}

// NewLibraryHandler creates a new LibraryHandler instance.
func NewLibraryHandler(svc *library.LibraryService) *LibraryHandler {
	return &LibraryHandler{Svc: svc}
}

func (h *LibraryHandler) TopicsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.Svc.Topics()})
}

func (h *LibraryHandler) ToolsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.Svc.Tools()})
}

func (h *LibraryHandler) DailyTipHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tip": h.Svc.DailyTip()})
}
