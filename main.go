package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"homeshow/config"
	"homeshow/cron"
	"homeshow/database"
	listingRepoPkg "homeshow/database/repository/listing"
	"homeshow/handlers"
	"homeshow/middleware"
	"homeshow/models"
	"homeshow/routes"
	"homeshow/services/assistant"
	"homeshow/services/calendar"
	"homeshow/services/matching"
	"homeshow/services/schedule"
	"homeshow/services/tasks"
	"homeshow/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()

	// services.
	scheduleCfg, err := models.NewScheduleConfig(
		config.AppConfig.WorkStart,
		config.AppConfig.WorkEnd,
		config.AppConfig.AppointmentDurationMin,
		config.AppConfig.ScheduleBufferMin,
		config.AppConfig.AgentTimezone,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid schedule configuration: %v", err)
	}

	calendarClient := calendar.NewClient(config.AppConfig.WebhookURL)
	reminderQueue := tasks.NewAsynqReminderQueue(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisReminderQueueDB,
	)
	defer reminderQueue.Close()

	schedulingEngine := &schedule.DefaultSchedulingEngine{
		Config:    scheduleCfg,
		Parser:    schedule.NewWhenParser(),
		Calendar:  calendarClient,
		Reminders: reminderQueue,
	}

	embedder := matching.NewGeminiEmbedder(config.AppConfig.GeminiAPIKey)
	matchingService := matching.NewMatchingService(listingRepo, embedder)

	sessionStore := assistant.NewRedisSessionStore(utils.GetSessionCacheClient(), 30*time.Minute)
	dispatcher := assistant.NewToolDispatcher(matchingService, schedulingEngine)
	assistantService := assistant.NewGeminiAssistant(config.AppConfig.GeminiAPIKey, sessionStore, dispatcher)

	// Reminder delivery worker.
	cron.InitReminderWorker(calendarClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListingRepo: listingRepo,

		ChatHandler:         handlers.ChatHandler(assistantService),
		EndChatHandler:      handlers.EndChatHandler(assistantService),
		VoiceWebhookHandler: handlers.VoiceWebhookHandler(assistantService),
		STTHandler:          handlers.STTHandler,

		GetAvailabilityHandler: handlers.GetAvailabilityHandler(schedulingEngine),
		ScheduleShowingHandler: handlers.ScheduleShowingHandler(schedulingEngine, listingRepo),

		RecommendHandler:  handlers.RecommendHandler(matchingService),
		GetListingHandler: handlers.GetListingHandler(listingRepo),
	}

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
