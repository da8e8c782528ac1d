package config

import (
	"context"

	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Bootstrap holds the process-wide resources a client or sandbox was built
// from. Optional drivers are nil when their feature is disabled.
type Bootstrap struct {
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// Flushers drain background work before the drivers are closed.
	Flushers []func(ctx context.Context) error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	for _, flush := range b.Flushers {
		err := flush(ctx)
		if err != nil {
			b.Logger.Warn("Failed to flush pending work", zap.Error(err))
		}
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		b.Logger.Info("Successfully closing RabbitMQ")
	}

	if b.Logger != nil {
		// Sync on stdout/stderr returns EINVAL on linux.
		_ = b.Logger.Sync()
	}
	return nil
}
