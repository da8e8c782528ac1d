package transport

import (
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type scriptedTransport struct {
	calls      int32
	results    []error
	mu         sync.Mutex
	requestIDs []string
}

func (s *scriptedTransport) next(ctx context.Context) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.mu.Lock()
	s.requestIDs = append(s.requestIDs, requestID)
	s.mu.Unlock()

	n := int(atomic.AddInt32(&s.calls, 1)) - 1
	if n < len(s.results) && s.results[n] != nil {
		return nil, s.results[n]
	}
	return []byte("ok"), nil
}

func (s *scriptedTransport) Get(ctx context.Context, path string) ([]byte, error) {
	return s.next(ctx)
}

func (s *scriptedTransport) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return s.next(ctx)
}

func noSleep(ctx context.Context, d time.Duration) error { return nil }

func TestRetryTransport(t *testing.T) {
	t.Run("Retries Transient Failures", func(t *testing.T) {
		inner := &scriptedTransport{results: []error{
			exceptions.ErrSendHTTPRequest(nil),
			exceptions.ErrHTTPStatus(503, "u", nil),
		}}
		retry := NewRetryTransport(inner, 3, time.Millisecond, zap.NewNop())
		retry.sleep = noSleep

		body, err := retry.Get(context.Background(), "/diagnoses")
		require.NoError(t, err)
		assert.Equal(t, "ok", string(body))
		assert.Equal(t, int32(3), inner.calls)
	})

	t.Run("Does Not Retry Client Errors", func(t *testing.T) {
		inner := &scriptedTransport{results: []error{exceptions.ErrHTTPStatus(400, "u", nil)}}
		retry := NewRetryTransport(inner, 5, time.Millisecond, zap.NewNop())
		retry.sleep = noSleep

		_, err := retry.Post(context.Background(), "/bundle/upload", []byte("{}"))
		assert.Equal(t, 400, exceptions.StatusCode(err))
		assert.Equal(t, int32(1), inner.calls)
	})

	t.Run("Gives Up After Max Attempts", func(t *testing.T) {
		inner := &scriptedTransport{results: []error{
			exceptions.ErrHTTPStatus(429, "u", nil),
			exceptions.ErrHTTPStatus(429, "u", nil),
		}}
		retry := NewRetryTransport(inner, 2, time.Millisecond, zap.NewNop())
		retry.sleep = noSleep

		_, err := retry.Get(context.Background(), "/diagnoses")
		assert.Equal(t, 429, exceptions.StatusCode(err))
		assert.Equal(t, int32(2), inner.calls)
	})

	t.Run("Backoff Doubles And Caps", func(t *testing.T) {
		retry := NewRetryTransport(&scriptedTransport{}, 10, 100*time.Millisecond, nil)
		assert.Equal(t, 100*time.Millisecond, retry.backoff(1))
		assert.Equal(t, 400*time.Millisecond, retry.backoff(3))
		assert.Equal(t, maxRetryDelay, retry.backoff(10))
	})

	t.Run("Post Is Not Retried Once The Server Saw It", func(t *testing.T) {
		for _, failure := range []error{
			exceptions.ErrHTTPStatus(502, "u", nil),
			exceptions.ErrRequestTimeout(nil, "u"),
			exceptions.ErrReadHTTPResponse(errors.New("connection reset")),
		} {
			inner := &scriptedTransport{results: []error{failure}}
			retry := NewRetryTransport(inner, 3, time.Millisecond, zap.NewNop())
			retry.sleep = noSleep

			_, err := retry.Post(context.Background(), "/bundle/upload", []byte("{}"))
			assert.Equal(t, failure, err)
			assert.Equal(t, int32(1), inner.calls)
		}
	})

	t.Run("Post Is Retried When Never Delivered", func(t *testing.T) {
		dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		inner := &scriptedTransport{results: []error{
			exceptions.ErrSendHTTPRequest(dialErr),
			exceptions.ErrHTTPStatus(429, "u", nil),
		}}
		retry := NewRetryTransport(inner, 3, time.Millisecond, zap.NewNop())
		retry.sleep = noSleep

		body, err := retry.Post(context.Background(), "/bundle/upload", []byte("{}"))
		require.NoError(t, err)
		assert.Equal(t, "ok", string(body))
		assert.Equal(t, int32(3), inner.calls)
	})

	t.Run("Attempts Share One Request ID", func(t *testing.T) {
		inner := &scriptedTransport{results: []error{
			exceptions.ErrHTTPStatus(503, "u", nil),
			exceptions.ErrHTTPStatus(503, "u", nil),
		}}
		retry := NewRetryTransport(inner, 3, time.Millisecond, zap.NewNop())
		retry.sleep = noSleep

		_, err := retry.Get(context.Background(), "/diagnoses")
		require.NoError(t, err)
		require.Len(t, inner.requestIDs, 3)
		assert.Len(t, inner.requestIDs[0], 36)
		assert.Equal(t, inner.requestIDs[0], inner.requestIDs[1])
		assert.Equal(t, inner.requestIDs[0], inner.requestIDs[2])
	})

	t.Run("Retryable Kinds", func(t *testing.T) {
		assert.True(t, IsRetryable(exceptions.ErrRequestTimeout(nil, "u")))
		assert.True(t, IsRetryable(exceptions.ErrHTTPStatus(500, "u", nil)))
		assert.False(t, IsRetryable(exceptions.ErrHTTPStatus(404, "u", nil)))
		assert.False(t, IsRetryable(exceptions.ErrTokenMissing(nil)))
		assert.False(t, IsRetryable(exceptions.ErrDecodeResponse(nil, "translation")))
	})
}

func TestRateLimitedTransport(t *testing.T) {
	t.Run("Passes Through Within Burst", func(t *testing.T) {
		inner := &scriptedTransport{}
		limited := NewRateLimitedTransport(inner, 1, 2)

		for i := 0; i < 2; i++ {
			_, err := limited.Get(context.Background(), "/diagnoses")
			require.NoError(t, err)
		}
		assert.Equal(t, int32(2), inner.calls)
	})

	t.Run("Deadline While Waiting Is A Timeout", func(t *testing.T) {
		inner := &scriptedTransport{}
		limited := NewRateLimitedTransport(inner, 0.1, 1)
		_, err := limited.Get(context.Background(), "/diagnoses")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err = limited.Get(ctx, "/diagnoses")
		assert.True(t, exceptions.IsKind(err, exceptions.KindTimeout))
		assert.Equal(t, int32(1), inner.calls)
	})
}
