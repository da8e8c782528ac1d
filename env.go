package namaste

import (
	"context"
	"strings"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/app/drivers/database"
	"github.com/fhirfly/namaste-sdk/internal/app/drivers/logger"
	"github.com/fhirfly/namaste-sdk/internal/app/drivers/messaging"
	"github.com/fhirfly/namaste-sdk/internal/app/services/auth"
	"github.com/fhirfly/namaste-sdk/internal/app/services/shared/audit"
	"github.com/fhirfly/namaste-sdk/internal/app/services/shared/locker"
	"github.com/fhirfly/namaste-sdk/internal/app/services/shared/redis"
	"github.com/fhirfly/namaste-sdk/internal/app/services/transport"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
)

// NewFromEnv builds a client from environment variables (a .env file in the
// working directory is loaded first). Depending on configuration it connects
// to redis for a shared token cache and to RabbitMQ for audit events; call
// Close to release them.
func NewFromEnv(ctx context.Context) (*Client, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return nil, err
	}

	bootstrap := &config.Bootstrap{
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	client, err := newFromBootstrap(ctx, bootstrap)
	if err != nil {
		_ = bootstrap.Shutdown(ctx)
		return nil, err
	}
	return client, nil
}

func newFromBootstrap(ctx context.Context, bootstrap *config.Bootstrap) (*Client, error) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	var redisRepo contracts.RedisRepository
	var lockService contracts.LockerService
	if strings.EqualFold(internalConfig.Auth.Mode, constvars.AuthModeJWT) &&
		strings.EqualFold(internalConfig.Auth.TokenCache, constvars.TokenCacheRedis) {
		redisClient, err := database.NewRedisClient(ctx, bootstrap.DriverConfig, log)
		if err != nil {
			return nil, err
		}
		bootstrap.Redis = redisClient
		redisRepo = redis.NewRedisRepository(redisClient)
		lockService = locker.NewLockService(redisRepo, log)
	}

	authProvider, err := auth.NewAuthProvider(internalConfig.Auth, log, redisRepo, lockService)
	if err != nil {
		return nil, err
	}

	hooks := []TransportHook{transport.NewLoggingHook(log)}
	if internalConfig.Audit.Enabled {
		conn, err := messaging.NewRabbitMQ(bootstrap.DriverConfig, log)
		if err != nil {
			return nil, err
		}
		bootstrap.RabbitMQ = conn

		publisher, err := audit.NewAuditPublisher(conn, log, internalConfig.Audit.Queue)
		if err != nil {
			return nil, err
		}
		auditHook := audit.NewAuditHook(publisher, log, internalConfig.Audit.BufferSize)
		bootstrap.Flushers = append(bootstrap.Flushers, auditHook.Close)
		hooks = append(hooks, auditHook)
	}

	transportConfig := internalConfig.Transport
	opts := []Option{
		WithAuthProvider(authProvider),
		WithLogger(log),
		WithHooks(hooks...),
		WithTimeout(time.Duration(transportConfig.TimeoutInSeconds) * time.Second),
		WithUserAgent(transportConfig.UserAgent),
		WithRetry(transportConfig.RetryMaxAttempts, time.Duration(transportConfig.RetryBaseDelayInMilliseconds)*time.Millisecond),
		WithRateLimit(transportConfig.RateLimitPerSecond, transportConfig.RateLimitBurst),
	}

	client, err := New(internalConfig.Namaste.BaseUrl, opts...)
	if err != nil {
		return nil, err
	}
	client.bootstrap = bootstrap
	return client, nil
}
