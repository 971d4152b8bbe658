package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servehub/config"
	"servehub/cron"
	"servehub/database"
	bookingRepo "servehub/database/repository/booking"
	providerRepo "servehub/database/repository/provider"
	reviewRepo "servehub/database/repository/review"
	userRepo "servehub/database/repository/user"
	"servehub/handlers"
	"servehub/middleware"
	"servehub/routes"
	"servehub/services/booking"
	"servehub/services/notification"
	"servehub/services/provider"
	"servehub/services/review"
	"servehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration.
	config.LoadConfig()

	// Initialize the logger.
	utils.InitializeLogger()
	logger := utils.GetLogger()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	// Connect to MongoDB and Redis.
	database.InitDB()
	utils.InitCache()

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	providers := providerRepo.NewMongoProviderRepo()
	users := userRepo.NewMongoUserRepo()
	reviews := reviewRepo.NewMongoReviewRepo()

	// Notification pipeline: producers enqueue, the worker delivers.
	queue := cron.NewQueueClient()
	defer queue.Close()
	notifier := notification.NewDefaultNotificationService(users, providers, queue, logger)
	emailWorker := cron.InitEmailWorker(notification.NewSMTPMailer(), logger)

	// Services.
	bookingSvc := &booking.DefaultBookingService{
		Repo:         bookings,
		ProviderRepo: providers,
		UserRepo:     users,
		Notifier:     notifier,
		Cache:        utils.GetCacheClient(),
		Grid:         booking.SlotGridFromConfig(),
		Logger:       logger,
	}
	reviewSvc := &review.DefaultReviewService{
		Repo:         reviews,
		BookingRepo:  bookings,
		ProviderRepo: providers,
		UserRepo:     users,
		Notifier:     notifier,
		Logger:       logger,
	}
	availabilitySvc := &provider.DefaultAvailabilityService{Repo: providers}

	// Nightly rating reconcile.
	reconciler := cron.InitRatingReconciler(providers, reviewSvc, logger)

	// Router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), utils.ErrorHandler(), middleware.RateLimitMiddleware())

	routes.RegisterRoutes(r, &routes.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingSvc, logger),
		Review:   handlers.NewReviewHandler(reviewSvc, logger),
		Provider: handlers.NewProviderHandler(availabilitySvc, logger),
	})

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	reconciler.Stop()
	emailWorker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited cleanly")
}
