package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects every endpoint handler for route registration.
type HandlerBundle struct {
	// Directory endpoints.
	FindNearbyHandler     gin.HandlerFunc
	DefaultDoctorsHandler gin.HandlerFunc

	// Booking endpoints.
	TimeSlotsHandler      gin.HandlerFunc
	ConfirmBookingHandler gin.HandlerFunc

	// Contact endpoints.
	ResolveReceptionHandler gin.HandlerFunc
	CallReceptionHandler    gin.HandlerFunc

	// Assistant endpoints.
	StartSessionHandler    gin.HandlerFunc
	EndSessionHandler      gin.HandlerFunc
	TranscriptHandler      gin.HandlerFunc
	SendMessageHandler     gin.HandlerFunc
	AskPresetHandler       gin.HandlerFunc
	PresetQuestionsHandler gin.HandlerFunc

	// Triage endpoints.
	SymptomsHandler gin.HandlerFunc
	ToggleHandler   gin.HandlerFunc
	AnalyzeHandler  gin.HandlerFunc

	// Library endpoints.
	TopicsHandler   gin.HandlerFunc
	ToolsHandler    gin.HandlerFunc
	DailyTipHandler gin.HandlerFunc

	// Report endpoints. Nil when Cloudinary is not configured.
	UploadReportHandler gin.HandlerFunc
}
