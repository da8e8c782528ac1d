package audit

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingChannel struct {
	key      string
	messages []amqp091.Publishing
	err      error
}

func (c *recordingChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.key = key
	c.messages = append(c.messages, msg)
	return nil
}

func TestAuditPublisher(t *testing.T) {
	t.Run("Publishes Persistent JSON", func(t *testing.T) {
		channel := &recordingChannel{}
		publisher := newAuditPublisher(channel, zap.NewNop(), "namaste.audit")

		err := publisher.PublishAuditEvent(context.Background(), &contracts.AuditEvent{
			Event:     constvars.AuditEventTransportRequest,
			RequestID: "req-1",
			Method:    "GET",
		})
		require.NoError(t, err)
		require.Len(t, channel.messages, 1)
		assert.Equal(t, "namaste.audit", channel.key)
		assert.Equal(t, amqp091.Persistent, channel.messages[0].DeliveryMode)
		assert.Equal(t, "req-1", channel.messages[0].MessageId)

		var decoded contracts.AuditEvent
		require.NoError(t, json.Unmarshal(channel.messages[0].Body, &decoded))
		assert.Equal(t, "GET", decoded.Method)
	})

	t.Run("Publish Failure Is Wrapped", func(t *testing.T) {
		publisher := newAuditPublisher(&recordingChannel{err: errors.New("channel closed")}, zap.NewNop(), "q")
		err := publisher.PublishAuditEvent(context.Background(), &contracts.AuditEvent{})
		assert.True(t, exceptions.IsKind(err, exceptions.KindInternal))
	})
}

type recordingPublisher struct {
	events []*contracts.AuditEvent
	err    error
}

func (p *recordingPublisher) PublishAuditEvent(ctx context.Context, event *contracts.AuditEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func TestAuditHook(t *testing.T) {
	t.Run("Records Failed Calls With Kind", func(t *testing.T) {
		publisher := &recordingPublisher{}
		hook := NewAuditHook(publisher, zap.NewNop(), 8)
		hook.now = func() time.Time { return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC) }

		hook.AfterResponse(context.Background(), contracts.ResponseEvent{
			RequestEvent: contracts.RequestEvent{RequestID: "req-9", Method: "POST", URL: "http://api/bundle/upload"},
			StatusCode:   503,
			Duration:     1500 * time.Millisecond,
			Err:          exceptions.ErrHTTPStatus(503, "http://api/bundle/upload", nil),
		})
		require.NoError(t, hook.Close(context.Background()))

		require.Len(t, publisher.events, 1)
		event := publisher.events[0]
		assert.Equal(t, "req-9", event.RequestID)
		assert.Equal(t, int64(1500), event.DurationMs)
		assert.Equal(t, "http", event.ErrorKind)
		assert.Equal(t, "2024-01-15T10:30:00Z", event.OccurredAt)
	})

	t.Run("Slow Broker Does Not Block The Caller", func(t *testing.T) {
		release := make(chan struct{})
		publisher := &blockingPublisher{release: release}
		hook := NewAuditHook(publisher, zap.NewNop(), 1)

		start := time.Now()
		for i := 0; i < 5; i++ {
			hook.AfterResponse(context.Background(), contracts.ResponseEvent{})
		}
		assert.Less(t, time.Since(start), time.Second)

		close(release)
		require.NoError(t, hook.Close(context.Background()))
		assert.LessOrEqual(t, int(atomic.LoadInt32(&publisher.calls)), 2)
	})

	t.Run("Close Gives Up When Context Ends", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		hook := NewAuditHook(&blockingPublisher{release: release}, zap.NewNop(), 4)
		hook.AfterResponse(context.Background(), contracts.ResponseEvent{})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, hook.Close(ctx), context.DeadlineExceeded)

		assert.NotPanics(t, func() {
			hook.AfterResponse(context.Background(), contracts.ResponseEvent{})
		})
	})

	t.Run("Publish Error Does Not Panic", func(t *testing.T) {
		hook := NewAuditHook(&recordingPublisher{err: errors.New("down")}, zap.NewNop(), 0)
		assert.NotPanics(t, func() {
			hook.AfterResponse(context.Background(), contracts.ResponseEvent{})
		})
		require.NoError(t, hook.Close(context.Background()))
	})
}

type blockingPublisher struct {
	calls   int32
	release chan struct{}
}

func (p *blockingPublisher) PublishAuditEvent(ctx context.Context, event *contracts.AuditEvent) error {
	atomic.AddInt32(&p.calls, 1)
	<-p.release
	return nil
}
