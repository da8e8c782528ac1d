package auth

import (
	"context"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	defaultLockTTL      = 10 * time.Second
	defaultPollInterval = 100 * time.Millisecond
)

type cachedToken struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedisTokenCache shares tokens minted by an inner TokenSource between
// processes. Only the holder of the refresh lock calls the inner source;
// everyone else polls the shared key until the new token shows up or the
// lock expires.
type RedisTokenCache struct {
	source       contracts.TokenSource
	redisRepo    contracts.RedisRepository
	locker       contracts.LockerService
	log          *zap.Logger
	cacheKey     string
	lockKey      string
	lockTTL      time.Duration
	skew         time.Duration
	pollInterval time.Duration
	now          func() time.Time
}

func NewRedisTokenCache(
	source contracts.TokenSource,
	redisRepo contracts.RedisRepository,
	locker contracts.LockerService,
	logger *zap.Logger,
	name string,
	lockTTL time.Duration,
	skew time.Duration,
) *RedisTokenCache {
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	return &RedisTokenCache{
		source:       source,
		redisRepo:    redisRepo,
		locker:       locker,
		log:          logger,
		cacheKey:     constvars.RedisTokenCacheKeyPrefix + name,
		lockKey:      constvars.RedisTokenRefreshLockKey + name,
		lockTTL:      lockTTL,
		skew:         skew,
		pollInterval: defaultPollInterval,
		now:          time.Now,
	}
}

func (c *RedisTokenCache) FetchToken(ctx context.Context) (*contracts.Token, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if token := c.lookup(ctx, requestID); token != nil {
		return token, nil
	}

	acquired, lockValue, err := c.locker.TryLock(ctx, c.lockKey, c.lockTTL)
	if err != nil {
		c.log.Warn("RedisTokenCache.FetchToken lock unavailable, minting locally",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return c.source.FetchToken(ctx)
	}

	if !acquired {
		return c.waitForRefresh(ctx, requestID)
	}

	defer func() {
		if err := c.locker.Unlock(context.WithoutCancel(ctx), c.lockKey, lockValue); err != nil {
			c.log.Warn("RedisTokenCache.FetchToken error releasing refresh lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	// another process may have finished refreshing between lookup and lock
	if token := c.lookup(ctx, requestID); token != nil {
		return token, nil
	}

	return c.mintAndStore(ctx, requestID)
}

func (c *RedisTokenCache) mintAndStore(ctx context.Context, requestID string) (*contracts.Token, error) {
	token, err := c.source.FetchToken(ctx)
	if err != nil {
		return nil, err
	}

	var ttl time.Duration
	if !token.ExpiresAt.IsZero() {
		ttl = token.ExpiresAt.Sub(c.now())
		if ttl <= 0 {
			return token, nil
		}
	}

	err = c.redisRepo.Set(ctx, c.cacheKey, cachedToken{Value: token.Value, ExpiresAt: token.ExpiresAt}, ttl)
	if err != nil {
		c.log.Warn("RedisTokenCache.FetchToken error storing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, c.cacheKey),
			zap.Error(err),
		)
	}
	return token, nil
}

func (c *RedisTokenCache) waitForRefresh(ctx context.Context, requestID string) (*contracts.Token, error) {
	deadline := c.now().Add(c.lockTTL)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for c.now().Before(deadline) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
		if token := c.lookup(ctx, requestID); token != nil {
			return token, nil
		}
	}

	c.log.Warn("RedisTokenCache.FetchToken gave up waiting for refresh",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, c.lockKey),
	)
	return c.source.FetchToken(ctx)
}

// lookup returns the shared token if it is still usable. Redis failures are
// treated as a miss.
func (c *RedisTokenCache) lookup(ctx context.Context, requestID string) *contracts.Token {
	raw, err := c.redisRepo.Get(ctx, c.cacheKey)
	if err != nil {
		c.log.Warn("RedisTokenCache.lookup error reading token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	if raw == "" {
		return nil
	}

	var cached cachedToken
	if err := json.Unmarshal([]byte(raw), &cached); err != nil || cached.Value == "" {
		return nil
	}
	if !cached.ExpiresAt.IsZero() && !c.now().Add(c.skew).Before(cached.ExpiresAt) {
		return nil
	}
	return &contracts.Token{Value: cached.Value, ExpiresAt: cached.ExpiresAt}
}
