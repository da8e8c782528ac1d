package config

import (
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "namaste.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "namaste_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env: utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
		},
		Namaste: Namaste{
			BaseUrl: utils.GetEnvString("NAMASTE_BASE_URL", "http://localhost:8080"),
		},
		Auth: Auth{
			Mode:                   utils.GetEnvString("NAMASTE_AUTH_MODE", constvars.AuthModeEnv),
			Token:                  utils.GetEnvString("NAMASTE_API_TOKEN", ""),
			TokenEnvKey:            utils.GetEnvString("NAMASTE_TOKEN_ENV_KEY", constvars.DefaultTokenEnvKey),
			TokenCache:             utils.GetEnvString("NAMASTE_TOKEN_CACHE", constvars.TokenCacheMemory),
			RefreshSkewInSeconds:   utils.GetEnvInt("NAMASTE_TOKEN_REFRESH_SKEW_IN_SECONDS", 30),
			JWTAlg:                 utils.GetEnvString("NAMASTE_JWT_ALG", "HS256"),
			JWTSecret:              utils.GetEnvString("NAMASTE_JWT_SECRET", ""),
			JWTPrivateKey:          utils.GetEnvString("NAMASTE_JWT_PRIVATE_KEY", ""),
			JWTSubject:             utils.GetEnvString("NAMASTE_JWT_SUBJECT", "namaste-sdk"),
			JWTTTLInMinutes:        utils.GetEnvInt("NAMASTE_JWT_TTL_IN_MINUTES", 5),
			RefreshLockTTLInSecond: utils.GetEnvInt("NAMASTE_TOKEN_REFRESH_LOCK_TTL_IN_SECONDS", 10),
		},
		Transport: Transport{
			TimeoutInSeconds:             utils.GetEnvInt("NAMASTE_HTTP_TIMEOUT_IN_SECONDS", 30),
			RetryMaxAttempts:             utils.GetEnvInt("NAMASTE_RETRY_MAX_ATTEMPTS", 1),
			RetryBaseDelayInMilliseconds: utils.GetEnvInt("NAMASTE_RETRY_BASE_DELAY_IN_MILLISECONDS", 200),
			RateLimitPerSecond:           utils.GetEnvFloat("NAMASTE_RATE_LIMIT_PER_SECOND", 0),
			RateLimitBurst:               utils.GetEnvInt("NAMASTE_RATE_LIMIT_BURST", 1),
			UserAgent:                    utils.GetEnvString("NAMASTE_USER_AGENT", constvars.DefaultUserAgent),
		},
		Audit: Audit{
			Enabled:    utils.GetEnvBool("NAMASTE_AUDIT_ENABLED", false),
			Queue:      utils.GetEnvString("NAMASTE_AUDIT_QUEUE", "namaste.audit"),
			BufferSize: utils.GetEnvInt("NAMASTE_AUDIT_BUFFER_SIZE", 256),
		},
		Sandbox: Sandbox{
			Port:                     utils.GetEnvString("SANDBOX_PORT", ":8080"),
			MaxRequests:              utils.GetEnvInt("SANDBOX_MAX_REQUESTS", 50),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("SANDBOX_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			Timezone:                 utils.GetEnvString("SANDBOX_TIMEZONE", "Asia/Kolkata"),
			JWTSecret:                utils.GetEnvString("SANDBOX_JWT_SECRET", ""),
			APITokens:                utils.GetEnvStringSlice("SANDBOX_API_TOKENS", []string{"sandbox-token"}),
			APITokenHashes:           utils.GetEnvStringSlice("SANDBOX_API_TOKEN_HASHES", nil),
		},
	}
}
