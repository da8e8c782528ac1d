package auth

import (
	"context"
	"sync"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"go.uber.org/zap"
)

const defaultRefreshSkew = 30 * time.Second

// RefreshableTokenProvider caches the token minted by a TokenSource and mints
// a new one on the first call after the cached one comes within Skew of its
// expiry. The mutex is held across the refresh, so concurrent callers wait
// for a single in-flight refresh and then share its result.
type RefreshableTokenProvider struct {
	source contracts.TokenSource
	skew   time.Duration
	log    *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	cached *contracts.Token
}

type RefreshOption func(*RefreshableTokenProvider)

func WithRefreshSkew(skew time.Duration) RefreshOption {
	return func(p *RefreshableTokenProvider) {
		if skew >= 0 {
			p.skew = skew
		}
	}
}

func WithRefreshLogger(logger *zap.Logger) RefreshOption {
	return func(p *RefreshableTokenProvider) {
		if logger != nil {
			p.log = logger
		}
	}
}

func NewRefreshableTokenProvider(source contracts.TokenSource, opts ...RefreshOption) *RefreshableTokenProvider {
	provider := &RefreshableTokenProvider{
		source: source,
		skew:   defaultRefreshSkew,
		log:    zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(provider)
	}
	return provider
}

func (p *RefreshableTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.valid(p.cached) {
		return p.cached.Value, nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Info("RefreshableTokenProvider.Token refreshing token",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := p.source.FetchToken(ctx)
	if err != nil {
		p.log.Error("RefreshableTokenProvider.Token error fetching token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsKind(err, exceptions.KindAuth) {
			return "", err
		}
		return "", exceptions.ErrTokenRefresh(err)
	}
	if token == nil || token.Value == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}

	p.cached = token
	p.log.Info("RefreshableTokenProvider.Token refreshed token",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingTokenExpiresAtKey, token.ExpiresAt),
	)
	return token.Value, nil
}

func (p *RefreshableTokenProvider) valid(token *contracts.Token) bool {
	if token == nil || token.Value == "" {
		return false
	}
	if token.ExpiresAt.IsZero() {
		return true
	}
	return p.now().Add(p.skew).Before(token.ExpiresAt)
}
