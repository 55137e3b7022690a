package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gynoconnect/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// allowedReportExtensions defines permitted medical report file types.
var allowedReportExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ReportsHandler handles medical report uploads.
type ReportsHandler struct {
	StorageSvc storage.StorageService
}

// NewReportsHandler creates a new ReportsHandler instance.
func NewReportsHandler(svc storage.StorageService) *ReportsHandler {
	return &ReportsHandler{StorageSvc: svc}
}

// UploadReportHandler accepts one multipart report file, uploads it, and
// returns a short-lived signed download URL.
func (h *ReportsHandler) UploadReportHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedReportExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file type; allowed formats are PDF, JPG, and PNG"})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "reports")
	if err != nil {
		logger.Error("Failed to upload report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload report"})
		return
	}

	resourceType := "image"
	if ext == ".pdf" {
		resourceType = "raw"
	}
	downloadURL, err := h.StorageSvc.GetSecureDownloadURL(c, resourceType, publicID, 24*time.Hour)
	if err != nil {
		logger.Error("Failed to construct download URL", zap.Error(err))
		// The upload is unreachable without a signed URL; don't orphan it.
		if delErr := h.StorageSvc.DeleteFile(c, publicID); delErr != nil {
			logger.Error("Failed to clean up unreachable report", zap.String("publicID", publicID), zap.Error(delErr))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "report uploaded successfully",
		"downloadURL": downloadURL,
	})
}
