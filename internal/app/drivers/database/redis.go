package database

import (
	"context"
	"fmt"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	log.Info("Successfully connected to Redis", zap.String("addr", rdb.Options().Addr))
	return rdb, nil
}
