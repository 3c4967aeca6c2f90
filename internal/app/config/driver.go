package config

type (
	DriverConfig struct {
		Storage  Storage
		SQLite   SQLite
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	Storage struct {
		Driver      string `validate:"oneof=file sqlite mongo"`
		FileBackend string `validate:"oneof=local minio"`
		DataDir     string `validate:"required"`
	}
	SQLite struct {
		Path string
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string `validate:"oneof=debug info warn error"`
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     int
		Host     string
		Username string
		Password string
		Vhost    string
	}
	Minio struct {
		Port         string
		Host         string
		Username     string
		Password     string
		BucketName   string
		ObjectPrefix string
		UseSSL       bool
	}
)
