package audit

import (
	"context"
	"sync"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"go.uber.org/zap"
)

const (
	defaultBufferSize = 256
	publishTimeout    = 5 * time.Second
)

// Hook turns every completed transport call into an audit event. Events are
// queued and published by a background worker, so a slow broker never holds
// up the request being audited. A full queue drops the event.
type Hook struct {
	publisher contracts.AuditPublisher
	log       *zap.Logger
	now       func() time.Time

	events    chan *contracts.AuditEvent
	done      chan struct{}
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

func NewAuditHook(publisher contracts.AuditPublisher, logger *zap.Logger, bufferSize int) *Hook {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	h := &Hook{
		publisher: publisher,
		log:       logger,
		now:       time.Now,
		events:    make(chan *contracts.AuditEvent, bufferSize),
		done:      make(chan struct{}),
	}
	go h.worker()
	return h
}

func (h *Hook) BeforeRequest(ctx context.Context, event contracts.RequestEvent) {}

func (h *Hook) AfterResponse(ctx context.Context, event contracts.ResponseEvent) {
	auditEvent := &contracts.AuditEvent{
		Event:      constvars.AuditEventTransportRequest,
		RequestID:  event.RequestID,
		Method:     event.Method,
		URL:        event.URL,
		StatusCode: event.StatusCode,
		DurationMs: event.Duration.Milliseconds(),
		OccurredAt: h.now().UTC().Format(time.RFC3339),
	}
	if event.Err != nil {
		auditEvent.ErrorKind = string(exceptions.KindOf(event.Err))
		auditEvent.Error = event.Err.Error()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.events <- auditEvent:
	default:
		h.log.Warn("audit.Hook.AfterResponse queue full, dropping audit event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		)
	}
}

// Close stops accepting events and waits until the queued ones are published
// or ctx is done.
func (h *Hook) Close(ctx context.Context) error {
	h.closeOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.events)
		h.mu.Unlock()
	})

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hook) worker() {
	defer close(h.done)
	for auditEvent := range h.events {
		h.publish(auditEvent)
	}
}

func (h *Hook) publish(auditEvent *contracts.AuditEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := h.publisher.PublishAuditEvent(ctx, auditEvent)
	if err != nil {
		h.log.Warn("audit.Hook.publish failed to publish audit event",
			zap.String(constvars.LoggingRequestIDKey, auditEvent.RequestID),
			zap.Error(err),
		)
	}
}
