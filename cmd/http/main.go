package main

import (
	"context"
	"helpora-service/internal/app/config"
	"helpora-service/internal/app/delivery/http/middlewares"
	"helpora-service/internal/app/delivery/http/routers"
	"helpora-service/internal/app/drivers/database"
	"helpora-service/internal/app/drivers/logger"
	"helpora-service/internal/app/services/core/accounts"
	"helpora-service/internal/app/services/core/catalogues"
	"helpora-service/internal/app/services/core/providers"
	"helpora-service/internal/app/services/core/session"
	"helpora-service/internal/app/services/shared/locker"
	"helpora-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Accounts (read-only, owned by the auth service)
	accountRepository := accounts.NewAccountMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Provider profiles
	providerMongoRepository := providers.NewProviderProfileMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := providerMongoRepository.EnsureIndexes(indexCtx); err != nil {
		logrus.Fatalf("Failed to ensure provider profile indexes: %v", err)
	}

	providerCache := providers.NewProviderProfileRedisCache(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.CacheMirrorTTLInHours)*time.Hour,
	)
	providerUsecase := providers.NewProviderProfileUsecase(
		bootstrap.Logger,
		sessionService,
		providerMongoRepository,
		providerCache,
		accountRepository,
		lockerService,
		bootstrap.InternalConfig,
	)
	providerController := providers.NewProviderProfileController(bootstrap.Logger, providerUsecase, bootstrap.InternalConfig)

	// Catalogues
	catalogueUsecase := catalogues.NewCatalogueUsecase()
	catalogueController := catalogues.NewCatalogueController(bootstrap.Logger, catalogueUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, providerController, catalogueController)
}
