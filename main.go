package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleanmaster/config"
	"cleanmaster/cron"
	"cleanmaster/database"
	"cleanmaster/database/repository/bookingrepo"
	"cleanmaster/database/repository/catalogrepo"
	"cleanmaster/handlers"
	"cleanmaster/middleware"
	"cleanmaster/models"
	"cleanmaster/routes"
	"cleanmaster/services/booking"
	"cleanmaster/services/chat"
	"cleanmaster/services/notify"
	"cleanmaster/services/storage"
	"cleanmaster/services/tasks"
	"cleanmaster/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitChatCache()
	utils.InitStateCache()
	utils.FirebaseInit()

	cloudinaryStorage, err := storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookRepo := bookingrepo.NewMongoBookingRepo()
	catRepo := catalogrepo.NewMongoCatalogRepo()

	// background task plumbing.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer asynqClient.Close()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:        bookRepo,
		CatalogRepo: catRepo,
		Phones: booking.NewRedisPhoneMemory(
			utils.GetStateCacheClient(),
		),
		Reminders:    &tasks.AsynqReminderScheduler{Client: asynqClient},
		MinimumArea:  config.AppConfig.MinimumArea,
		DiscountRate: config.DiscountRate(),
		AdvanceRate:  config.AdvanceRate(),
		Logger:       logger,
	}

	invoiceConfig := booking.InvoiceConfig{
		DiscountPercentage: config.AppConfig.DiscountPercentage,
		AdvancePercentage:  config.AppConfig.AdvancePercentage,
		WhatsAppNumber:     config.AppConfig.WhatsAppNumber,
	}

	geminiModel, err := chat.NewGeminiModel(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini: %v", err)
	}
	assistant := &chat.DefaultAssistantService{
		Store:                chat.NewRedisContextStore(utils.GetChatCacheClient(), 30*time.Minute),
		Model:                geminiModel,
		Booking:              bookingService,
		PaymentAccountNumber: config.AppConfig.PaymentAccountNumber,
		Invoice:              invoiceConfig,
		Logger:               logger,
	}

	// notification pipeline: poll the bookings collection and push diffs.
	sink := notify.FCMSink{}
	feed := &notify.MongoFeed{
		Repo:     bookRepo,
		Interval: time.Duration(config.AppConfig.BookingFeedIntervalMS) * time.Millisecond,
		Logger:   logger,
	}
	adminWatcher := &notify.Watcher{Sink: sink, Logger: logger, Admin: true}
	customerWatcher := &notify.Watcher{Sink: sink, Logger: logger, Broadcast: true}
	stopFeed, err := feed.Subscribe(func(snapshot []models.Booking) {
		adminWatcher.OnSnapshot(context.Background(), snapshot)
		customerWatcher.OnSnapshot(context.Background(), snapshot)
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to start booking feed: %v", err)
	}
	defer stopFeed()

	cron.InitReminderWorker(sink)

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		Booking: &handlers.BookingHandler{Svc: bookingService},
		Catalog: &handlers.CatalogHandler{Svc: bookingService, Repo: catRepo},
		Storage: &handlers.StorageHandler{Svc: cloudinaryStorage},
		Chat:    &handlers.ChatHandler{Svc: assistant},
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
