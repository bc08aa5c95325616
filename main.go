// File: tailortalk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tailortalk/calendar"
	"tailortalk/config"
	"tailortalk/handlers"
	"tailortalk/middleware"
	"tailortalk/routes"
	"tailortalk/services/agent"
	"tailortalk/services/booking"
	ai "tailortalk/services/intelligence"
	"tailortalk/services/timephrase"
	"tailortalk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()

	// Calendar collaborator: real Google Calendar or the deterministic
	// simulator, behind the same interface.
	var calendarClient calendar.Client
	switch config.AppConfig.CalendarProvider {
	case "google":
		client, err := calendar.NewGoogleClient(ctx,
			config.AppConfig.GoogleCredentialsFile,
			config.AppConfig.GoogleTokenFile,
			config.AppConfig.GoogleCalendarID,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Google Calendar client: %v", err)
		}
		calendarClient = client
	default:
		calendarClient = calendar.NewSimulator(config.AppConfig.SimulatorSeed)
	}

	// Intent classifier: Gemini when a key is configured, keyword rules
	// otherwise (and as the runtime fallback on model failure).
	classifier := &ai.DefaultIntentClassifier{}
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		model, err := ai.NewGeminiClient(ctx, key, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		classifier.Model = model
	}

	schedulerService := &booking.DefaultSchedulerService{
		Calendar: calendarClient,
		Summary:  config.AppConfig.MeetingSummary,
	}

	agentService := &agent.DefaultAgentService{
		Classifier: classifier,
		Extractor:  timephrase.NewExtractor(),
		Scheduler:  schedulerService,
		Calendar:   calendarClient,
	}

	chatHandler := handlers.NewChatHandler(agentService)
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:   chatHandler.HandleChat,
		HealthHandler: handlers.HealthHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
