package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brm-service/internal/app/config"
	"brm-service/internal/app/contracts"
	"brm-service/internal/app/delivery/http/controllers"
	"brm-service/internal/app/delivery/http/middlewares"
	"brm-service/internal/app/delivery/http/routers"
	"brm-service/internal/app/drivers/database"
	"brm-service/internal/app/drivers/logger"
	"brm-service/internal/app/drivers/messaging"
	storageDriver "brm-service/internal/app/drivers/storage"
	"brm-service/internal/app/services/core/accounts"
	assessmentResponses "brm-service/internal/app/services/core/assessment_responses"
	"brm-service/internal/app/services/core/assessments"
	"brm-service/internal/app/services/core/contacts"
	"brm-service/internal/app/services/core/templates"
	"brm-service/internal/app/services/shared/events"
	"brm-service/internal/app/services/shared/flatfile"
	"brm-service/internal/app/services/shared/locker"
	"brm-service/internal/app/services/shared/redis"
	"brm-service/internal/app/services/shared/repositories"
	"brm-service/internal/app/services/shared/storage"
	"brm-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// closerFunc adapts a close function to io.Closer.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)

	err := config.Validate(driverConfig, internalConfig)
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log := logger.NewZapLogger(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		logrus.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
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
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Failed to release resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	ctx := context.Background()
	internalConfig := bootstrap.InternalConfig
	driverConfig := bootstrap.DriverConfig
	log := bootstrap.Logger

	// Locker
	var lockerService contracts.LockerService
	switch internalConfig.Locker.Driver {
	case constvars.LockerDriverRedis:
		redisClient := database.NewRedisClient(driverConfig)
		bootstrap.AddCloser("Redis", redisClient)
		lockerService = locker.NewLockService(redis.NewRedisRepository(redisClient), log)
	default:
		lockerService = locker.NewMemoryLockService()
	}
	keyedLocker := locker.NewKeyedLocker(
		lockerService,
		time.Duration(internalConfig.Locker.TTLInSeconds)*time.Second,
		internalConfig.Locker.RetriesPerSecond,
		log,
	)

	// Storage
	repos, err := newRepositories(ctx, bootstrap, keyedLocker)
	if err != nil {
		return err
	}

	// Events
	var eventPublisher contracts.EventPublisher
	switch internalConfig.Events.Driver {
	case constvars.EventsDriverRabbitMQ:
		connection := messaging.NewRabbitMQ(driverConfig)
		publisher, err := events.NewRabbitMQPublisher(connection, internalConfig.Events.ResponseEventsQueue, log)
		if err != nil {
			connection.Close()
			return err
		}
		if closer, ok := publisher.(io.Closer); ok {
			bootstrap.AddCloser("RabbitMQ channel", closer)
		}
		bootstrap.AddCloser("RabbitMQ", connection)
		eventPublisher = publisher
	default:
		eventPublisher = events.NewNoopPublisher(log)
	}

	// Usecases
	accountUsecase := accounts.NewAccountUsecase(repos, keyedLocker, log)
	contactUsecase := contacts.NewContactUsecase(repos, keyedLocker, log)
	templateUsecase := templates.NewTemplateUsecase(repos, log)
	assessmentUsecase := assessments.NewAssessmentUsecase(repos, keyedLocker, log)
	assessmentResponseUsecase := assessmentResponses.NewAssessmentResponseUsecase(repos, keyedLocker, eventPublisher, internalConfig, log)

	if internalConfig.App.SeedTemplates {
		defaults, err := templates.DefaultTemplates()
		if err != nil {
			return err
		}
		seeded, err := templateUsecase.SeedTemplates(ctx, defaults)
		if err != nil {
			return err
		}
		logrus.Printf("Seeded %d templates", seeded)
	}

	// Controllers
	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares.NewMiddlewares(log, internalConfig), &routers.Controllers{
		Account:            controllers.NewAccountController(log, accountUsecase, contactUsecase, assessmentUsecase, internalConfig),
		Contact:            controllers.NewContactController(log, contactUsecase, internalConfig),
		Template:           controllers.NewTemplateController(log, templateUsecase, internalConfig),
		Assessment:         controllers.NewAssessmentController(log, assessmentUsecase, assessmentResponseUsecase, internalConfig),
		AssessmentResponse: controllers.NewAssessmentResponseController(log, assessmentResponseUsecase, internalConfig),
		Health:             controllers.NewHealthController(log, repos.Health, lockerService, eventPublisher, internalConfig),
	})
	return nil
}

func newRepositories(ctx context.Context, bootstrap *config.Bootstrap, keyedLocker contracts.KeyedLocker) (*contracts.Repositories, error) {
	driverConfig := bootstrap.DriverConfig

	switch driverConfig.Storage.Driver {
	case constvars.StorageDriverSQLite:
		db := database.NewSQLite(driverConfig)
		bootstrap.AddCloser("SQLite", db)
		return repositories.NewSQLiteRepositories(ctx, db)

	case constvars.StorageDriverMongo:
		mongoDB := database.NewMongoDB(driverConfig)
		bootstrap.AddCloser("MongoDB", closerFunc(func() error {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return mongoDB.Client().Disconnect(disconnectCtx)
		}))
		return repositories.NewMongoRepositories(ctx, mongoDB)
	}

	var backend contracts.DocumentBackend
	switch driverConfig.Storage.FileBackend {
	case constvars.FileBackendMinio:
		minioClient := storageDriver.NewMinio(driverConfig)
		backend = storage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName, driverConfig.Minio.ObjectPrefix)
	default:
		localBackend, err := storage.NewLocalStorage(driverConfig.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		backend = localBackend
	}

	store := flatfile.NewStore(backend, keyedLocker, bootstrap.Logger)
	return repositories.NewFileRepositories(ctx, store)
}
