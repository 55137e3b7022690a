package handlers

import (
	"net/http"

	"gynoconnect/services/contact"

	"github.com/gin-gonic/gin"
)

// ContactHandler exposes reception contact resolution.
type ContactHandler struct {
	Resolver *contact.Resolver
}

// NewContactHandler creates a new ContactHandler instance.
func NewContactHandler(resolver *contact.Resolver) *ContactHandler {
	return &ContactHandler{Resolver: resolver}
}

// ResolveReceptionHandler picks one reception number from the fixed pool.
func (h *ContactHandler) ResolveReceptionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"number":       h.Resolver.Resolve(),
		"availability": "Available 24/7 for appointments, queries, and emergency support",
	})
}

// CallReceptionHandler emits the calling notification for a resolved number.
func (h *ContactHandler) CallReceptionHandler(c *gin.Context) {
	var input struct {
		Number string `json:"number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	n := h.Resolver.Call(input.Number)
	c.JSON(http.StatusOK, gin.H{"notification": n})
}
