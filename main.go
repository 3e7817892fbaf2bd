// File: civicbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"civicbook/config"
	"civicbook/cron"
	"civicbook/database"
	appointmentRepo "civicbook/database/repository/appointment"
	restrictionRepo "civicbook/database/repository/restriction"
	"civicbook/handlers"
	"civicbook/middleware"
	"civicbook/routes"
	"civicbook/services/booking"
	"civicbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	restrRepo := restrictionRepo.NewFirestoreRestrictionRepo(utils.GetFirestoreClient())

	idxCtx, idxCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := apptRepo.EnsureIndexes(idxCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	idxCancel()

	// Reminder queue client; the worker consumes from the same Redis DB.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()
	cron.InitReminderWorker()

	// services.
	bookingService, err := booking.NewBookingSessionService(
		apptRepo,
		restrRepo,
		utils.GetSessionCacheClient(),
		queueClient,
		booking.OfficePolicy{
			OpenTime:        config.AppConfig.OfficeOpenTime,
			CloseTime:       config.AppConfig.OfficeCloseTime,
			GranularityMin:  config.AppConfig.SlotGranularityMin,
			DurationMin:     config.AppConfig.AppointmentDuration,
			AppointmentType: config.AppConfig.AppointmentType,
			Location:        config.AppConfig.OfficeLocation,
			Address:         config.AppConfig.OfficeAddress,
			TimeZone:        config.AppConfig.OfficeTimeZone,
		},
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking service: %v", err)
	}

	listenerCtx, listenerCancel := context.WithCancel(context.Background())
	defer listenerCancel()
	if err := bookingService.StartRestrictionListener(listenerCtx); err != nil {
		logger.Sugar().Warnf("main: restriction listener unavailable, using unrestricted hours: %v", err)
	}
	defer bookingService.StopRestrictionListener()

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	timesHandler := handlers.NewAppointmentTimesHandler(restrRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetMonthGrid:    bookingHandler.GetMonthGrid,
		StartSession:    bookingHandler.StartSession,
		GetAvailability: bookingHandler.GetAvailability,
		ConfirmBooking:  bookingHandler.ConfirmBooking,
		CancelSession:   bookingHandler.CancelSession,

		GetAppointmentTimes:    timesHandler.GetAppointmentTimes,
		UpdateAppointmentTimes: timesHandler.UpdateAppointmentTimes,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient()},
		database.MongoClient,
		utils.GetFirestoreClient(),
	)

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
