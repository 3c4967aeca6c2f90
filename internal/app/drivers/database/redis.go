package database

import (
	"context"
	"net"
	"time"

	"brm-service/internal/app/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects the client that backs the distributed locker. Lock
// calls are short, so reads and writes fail fast instead of holding a request.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password:     driverConfig.Redis.Password,
		DB:           driverConfig.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		logrus.Fatalf("Could not connect to Redis at %s: %v", rdb.Options().Addr, err)
	}
	logrus.Printf("Successfully connected to redis db %d", driverConfig.Redis.DB)

	return rdb
}
