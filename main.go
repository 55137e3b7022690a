// File: gynoconnect/main.go
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gynoconnect/config"
	"gynoconnect/handlers"
	"gynoconnect/middleware"
	"gynoconnect/routes"
	"gynoconnect/services/assistant"
	"gynoconnect/services/booking"
	"gynoconnect/services/contact"
	"gynoconnect/services/directory"
	"gynoconnect/services/geolocation"
	"gynoconnect/services/library"
	"gynoconnect/services/triage"
	"gynoconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetTranscriptCacheClient(),
	})

	// Notification bus dispatches user-facing notices to subscribers.
	busCtx, busCancel := context.WithCancel(context.Background())
	defer busCancel()
	bus := utils.NewNotificationBus(64, utils.LogSubscriber(logger))
	go bus.Run(busCtx)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	geoResolver := geolocation.NewIPAPIResolver(config.AppConfig.GeoIPBaseURL, logger)
	lookupClient := directory.NewHTTPLookupClient(config.AppConfig.DirectoryBaseURL)
	directoryService := directory.NewDefaultDirectoryService(
		lookupClient,
		geoResolver,
		utils.GetCacheClient(),
		bus,
		config.AppConfig.DirectoryRadiusKm,
		logger,
		rand.NewSource(time.Now().UnixNano()),
	)

	bookingService := booking.NewDefaultBookingService(bus, logger)
	contactResolver := contact.NewResolver(bus, rand.NewSource(time.Now().UnixNano()))

	transcriptStore := assistant.NewRedisTranscriptStore(utils.GetTranscriptCacheClient(), utils.TranscriptTTL)
	assistantService := assistant.NewDefaultAssistantService(transcriptStore, logger)

	triageService := triage.NewTriageService()
	libraryService := library.NewLibraryService()

	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	contactHandler := handlers.NewContactHandler(contactResolver)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	triageHandler := handlers.NewTriageHandler(triageService)
	libraryHandler := handlers.NewLibraryHandler(libraryService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Directory endpoints.
		FindNearbyHandler:     directoryHandler.FindNearbyHandler,
		DefaultDoctorsHandler: directoryHandler.DefaultDoctorsHandler,

		// Booking endpoints.
		TimeSlotsHandler:      bookingHandler.TimeSlotsHandler,
		ConfirmBookingHandler: bookingHandler.ConfirmBookingHandler,

		// Contact endpoints.
		ResolveReceptionHandler: contactHandler.ResolveReceptionHandler,
		CallReceptionHandler:    contactHandler.CallReceptionHandler,

		// Assistant endpoints.
		StartSessionHandler:    assistantHandler.StartSessionHandler,
		EndSessionHandler:      assistantHandler.EndSessionHandler,
		TranscriptHandler:      assistantHandler.TranscriptHandler,
		SendMessageHandler:     assistantHandler.SendMessageHandler,
		AskPresetHandler:       assistantHandler.AskPresetHandler,
		PresetQuestionsHandler: assistantHandler.PresetQuestionsHandler,

		// Triage endpoints.
		SymptomsHandler: triageHandler.SymptomsHandler,
		ToggleHandler:   triageHandler.ToggleHandler,
		AnalyzeHandler:  triageHandler.AnalyzeHandler,

		// Library endpoints.
		TopicsHandler:   libraryHandler.TopicsHandler,
		ToolsHandler:    libraryHandler.ToolsHandler,
		DailyTipHandler: libraryHandler.DailyTipHandler,
	}

	// Report uploads only work with Cloudinary credentials present.
	if storageService, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: report uploads disabled: %v", err)
	} else {
		reportsHandler := handlers.NewReportsHandler(storageService)
		handlerBundle.UploadReportHandler = reportsHandler.UploadReportHandler
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
