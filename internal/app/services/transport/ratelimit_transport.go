package transport

import (
	"context"
	"errors"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"golang.org/x/time/rate"
)

// RateLimitedTransport holds every call until the token bucket allows it.
type RateLimitedTransport struct {
	next    contracts.Transport
	limiter *rate.Limiter
}

func NewRateLimitedTransport(next contracts.Transport, perSecond float64, burst int) *RateLimitedTransport {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (t *RateLimitedTransport) Get(ctx context.Context, path string) ([]byte, error) {
	if err := t.wait(ctx, path); err != nil {
		return nil, err
	}
	return t.next.Get(ctx, path)
}

func (t *RateLimitedTransport) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	if err := t.wait(ctx, path); err != nil {
		return nil, err
	}
	return t.next.Post(ctx, path, body)
}

func (t *RateLimitedTransport) wait(ctx context.Context, path string) error {
	err := t.limiter.Wait(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return exceptions.ErrSendHTTPRequest(err)
	}
	return exceptions.ErrRequestTimeout(err, path)
}
