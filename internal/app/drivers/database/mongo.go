package database

import (
	"context"
	"fmt"
	"time"

	"brm-service/internal/app/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Database {
	credentials := ""
	if driverConfig.MongoDB.Username != "" {
		credentials = fmt.Sprintf("%s:%s@", driverConfig.MongoDB.Username, driverConfig.MongoDB.Password)
	}
	connectionString := fmt.Sprintf(
		"mongodb://%s%s:%s",
		credentials,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		logrus.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		logrus.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	logrus.Println("Successfully connected to mongo database")
	return client.Database(driverConfig.MongoDB.DbName)
}
