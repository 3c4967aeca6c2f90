package config

import (
	"errors"

	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Storage: Storage{
			Driver:      utils.GetEnvString("STORAGE_DRIVER", constvars.StorageDriverFile),
			FileBackend: utils.GetEnvString("FILE_BACKEND", constvars.FileBackendLocal),
			DataDir:     utils.GetEnvString("DATA_DIR", "data"),
		},
		SQLite: SQLite{
			Path: utils.GetEnvString("SQLITE_PATH", "data/brm.db"),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "brm"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvInt("RABBITMQ_PORT", 5672),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			Vhost:    utils.GetEnvString("RABBITMQ_VHOST", "/"),
		},
		Minio: Minio{
			Port:         utils.GetEnvString("MINIO_PORT", "9000"),
			Host:         utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:     utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:     utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName:   utils.GetEnvString("MINIO_BUCKET_NAME", "brm-data"),
			ObjectPrefix: utils.GetEnvString("MINIO_OBJECT_PREFIX", ""),
			UseSSL:       utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                    utils.GetEnvString("APP_PORT", ":3001"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			StaticDir:               utils.GetEnvString("APP_STATIC_DIR", ""),
			CorsAllowedOrigins:      utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUESTS", 0),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			SubmitPolicy:            utils.GetEnvString("APP_SUBMIT_POLICY", constvars.SubmitPolicyTrustClient),
			SeedTemplates:           utils.GetEnvBool("APP_SEED_TEMPLATES", false),
		},
		Locker: AppLocker{
			Driver:           utils.GetEnvString("LOCKER_DRIVER", constvars.LockerDriverMemory),
			TTLInSeconds:     utils.GetEnvInt("LOCK_TTL_IN_SECONDS", 10),
			RetriesPerSecond: utils.GetEnvInt("LOCK_RETRIES_PER_SECOND", 50),
		},
		Events: AppEvents{
			Driver:              utils.GetEnvString("EVENTS_DRIVER", constvars.EventsDriverNone),
			ResponseEventsQueue: utils.GetEnvString("APP_RABBITMQ_RESPONSE_EVENTS_QUEUE", "brm.response.status"),
		},
	}
}

// Validate checks driver names and policies so a typo fails at startup
// instead of on the first request.
func Validate(driverConfig *DriverConfig, internalConfig *InternalConfig) error {
	validate := validator.New()
	err := validate.Struct(driverConfig)
	if err == nil {
		err = validate.Struct(internalConfig)
	}
	if err != nil {
		return errors.New(utils.FormatAllValidationErrors(err))
	}
	return nil
}
