package routes

import (
	"net/http"
	"time"

	"gynoconnect/handlers"
	"gynoconnect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDirectoryRoutes registers practitioner directory endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/directory")
	{
		api.POST("/nearby", hb.FindNearbyHandler)
		api.GET("/doctors", hb.DefaultDoctorsHandler)
	}
}

// RegisterBookingRoutes registers the booking-intent endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("/slots", hb.TimeSlotsHandler)
		api.POST("/confirm", hb.ConfirmBookingHandler)
	}
}

// RegisterContactRoutes registers reception contact endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contact")
	{
		api.POST("/reception", hb.ResolveReceptionHandler)
		api.POST("/call", hb.CallReceptionHandler)
	}
}

// RegisterAssistantRoutes registers the FAQ assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/sessions", hb.StartSessionHandler)
		api.DELETE("/sessions/:sessionID", hb.EndSessionHandler)
		api.GET("/sessions/:sessionID", hb.TranscriptHandler)
		api.POST("/sessions/:sessionID/messages", hb.SendMessageHandler)
		api.POST("/sessions/:sessionID/questions", hb.AskPresetHandler)
		api.GET("/questions", hb.PresetQuestionsHandler)
	}
}

// RegisterTriageRoutes registers the symptom selector endpoints.
func RegisterTriageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/triage")
	{
		api.GET("/symptoms", hb.SymptomsHandler)
		api.POST("/toggle", hb.ToggleHandler)
		api.POST("/analyze", hb.AnalyzeHandler)
	}
}

// RegisterLibraryRoutes registers the health library endpoints.
func RegisterLibraryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/library")
	{
		api.GET("/topics", hb.TopicsHandler)
		api.GET("/tools", hb.ToolsHandler)
		api.GET("/tip", hb.DailyTipHandler)
	}
}

// RegisterReportRoutes registers report upload endpoints when storage is configured.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.UploadReportHandler == nil {
		return
	}
	api := r.Group("/api/reports")
	{
		api.POST("/upload", hb.UploadReportHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDirectoryRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterTriageRoutes(r, hb)
	RegisterLibraryRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterHealthRoute(r)
}
