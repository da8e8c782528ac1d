package auth

import (
	"strings"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"go.uber.org/zap"
)

// NewAuthProvider builds the provider selected by cfg.Mode. redisRepo and
// locker may be nil; they are only used by the jwt mode when the redis token
// cache is enabled.
func NewAuthProvider(cfg config.Auth, log *zap.Logger, redisRepo contracts.RedisRepository, locker contracts.LockerService) (contracts.AuthProvider, error) {
	switch strings.ToLower(cfg.Mode) {
	case constvars.AuthModeStatic:
		return NewStaticTokenProvider(cfg.Token), nil
	case constvars.AuthModeEnv, "":
		key := cfg.TokenEnvKey
		if key == "" {
			key = constvars.DefaultTokenEnvKey
		}
		return NewEnvTokenProvider(key), nil
	case constvars.AuthModeJWT:
		var source contracts.TokenSource
		jwtSource, err := NewJWTTokenSource(JWTTokenSourceConfig{
			Alg:           cfg.JWTAlg,
			Secret:        cfg.JWTSecret,
			PrivateKeyPEM: cfg.JWTPrivateKey,
			Subject:       cfg.JWTSubject,
			TTL:           time.Duration(cfg.JWTTTLInMinutes) * time.Minute,
		}, log)
		if err != nil {
			return nil, err
		}
		source = jwtSource

		skew := time.Duration(cfg.RefreshSkewInSeconds) * time.Second
		if strings.ToLower(cfg.TokenCache) == constvars.TokenCacheRedis && redisRepo != nil && locker != nil {
			lockTTL := time.Duration(cfg.RefreshLockTTLInSecond) * time.Second
			source = NewRedisTokenCache(source, redisRepo, locker, log, cfg.JWTSubject, lockTTL, skew)
		}

		return NewRefreshableTokenProvider(source, WithRefreshSkew(skew), WithRefreshLogger(log)), nil
	default:
		return nil, exceptions.ErrInvalidArgument("auth mode " + cfg.Mode)
	}
}
