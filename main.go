package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbook/config"
	"salonbook/cron"
	"salonbook/database"
	catalogRepo "salonbook/database/repository/catalog"
	customerRepo "salonbook/database/repository/customer"
	schedulerRepo "salonbook/database/repository/scheduler"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/booking"
	"salonbook/services/notification"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	staff := staffRepo.NewMongoStaffRepo()
	catalog := catalogRepo.NewMongoCatalogRepo()
	customers := customerRepo.NewMongoCustomerRepo()
	scheduler := schedulerRepo.NewMongoSchedulerRepo()

	// notification channels: either may be absent in a dev environment.
	notifier := &notification.DefaultNotificationService{}
	if sms, err := notification.NewTwilioSender(
		config.AppConfig.TwilioAccountSID,
		config.AppConfig.TwilioAuthToken,
		config.AppConfig.TwilioFromNumber,
	); err != nil {
		logger.Warn("SMS notifications disabled", zap.Error(err))
	} else {
		notifier.SMS = sms
	}
	if email, err := notification.NewSendgridSender(
		config.AppConfig.SendgridAPIKey,
		config.AppConfig.SendgridFrom,
		config.AppConfig.SendgridFromName,
	); err != nil {
		logger.Warn("email notifications disabled", zap.Error(err))
	} else {
		notifier.Email = email
	}

	taskQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskQueue.Close()

	bookingService := &booking.DefaultBookingService{
		StaffRepo:         staff,
		CatalogRepo:       catalog,
		CustomerRepo:      customers,
		Scheduler:         scheduler,
		Notifier:          notifier,
		TaskQueue:         taskQueue,
		GranularityMin:    config.AppConfig.SlotGranularityMin,
		CancelNoticeHours: config.AppConfig.CancelNoticeHours,
	}

	// background workers: reminder delivery and the no-show sweep.
	cron.InitReminderWorker(notifier, scheduler, customers)
	sweep := cron.InitNoShowSweep(scheduler)
	defer sweep.Stop()

	handlerBundle := &routes.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Staff:    handlers.NewStaffHandler(staff),
		Catalog:  handlers.NewCatalogHandler(catalog),
		Customer: handlers.NewCustomerHandler(customers),
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
