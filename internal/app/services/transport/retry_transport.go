package transport

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultRetryBaseDelay = 200 * time.Millisecond
	maxRetryDelay         = 5 * time.Second
)

// RetryTransport retries calls on next that failed with a retryable error,
// backing off exponentially from baseDelay between attempts. Posts are not
// idempotent, so they are only retried when the server never saw them.
type RetryTransport struct {
	next        contracts.Transport
	maxAttempts int
	baseDelay   time.Duration
	log         *zap.Logger
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewRetryTransport(next contracts.Transport, maxAttempts int, baseDelay time.Duration, logger *zap.Logger) *RetryTransport {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = defaultRetryBaseDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetryTransport{
		next:        next,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		log:         logger,
		sleep:       sleepContext,
	}
}

func (t *RetryTransport) Get(ctx context.Context, path string) ([]byte, error) {
	return t.retry(ctx, path, IsRetryable, func(ctx context.Context) ([]byte, error) {
		return t.next.Get(ctx, path)
	})
}

func (t *RetryTransport) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return t.retry(ctx, path, IsRetryableBeforeSend, func(ctx context.Context) ([]byte, error) {
		return t.next.Post(ctx, path, body)
	})
}

func (t *RetryTransport) retry(ctx context.Context, path string, retryable func(error) bool, call func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	// every attempt carries the same X-Request-ID
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	}

	var lastErr error
	for attempt := 1; attempt <= t.maxAttempts; attempt++ {
		body, err := call(ctx)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt == t.maxAttempts || !retryable(err) || ctx.Err() != nil {
			break
		}

		delay := t.backoff(attempt)
		t.log.Warn("RetryTransport.retry retrying request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, path),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
			zap.Duration(constvars.LoggingDurationKey, delay),
		)
		if err := t.sleep(ctx, delay); err != nil {
			break
		}
	}
	return nil, lastErr
}

func (t *RetryTransport) backoff(attempt int) time.Duration {
	delay := t.baseDelay << (attempt - 1)
	if delay <= 0 || delay > maxRetryDelay {
		return maxRetryDelay
	}
	return delay
}

// IsRetryable reports whether err is a transient transport failure: a
// network error, a timeout, a 5xx or a 429.
func IsRetryable(err error) bool {
	switch exceptions.KindOf(err) {
	case exceptions.KindNetwork, exceptions.KindTimeout:
		return true
	case exceptions.KindHTTP:
		status := exceptions.StatusCode(err)
		return status >= constvars.StatusInternalServerError || status == constvars.StatusTooManyRequests
	default:
		return false
	}
}

// IsRetryableBeforeSend reports whether err proves the request was never
// processed: the connection could not be dialed, or the server answered 429.
func IsRetryableBeforeSend(err error) bool {
	if exceptions.KindOf(err) == exceptions.KindHTTP {
		return exceptions.StatusCode(err) == constvars.StatusTooManyRequests
	}
	if exceptions.KindOf(err) != exceptions.KindNetwork {
		return false
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
