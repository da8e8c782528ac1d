package contracts

import (
	"context"
	"time"
)

// Transport issues authenticated requests against the NAMASTE API. Paths are
// relative to the configured base URL and POST bodies are already serialized.
type Transport interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Post(ctx context.Context, path string, body []byte) ([]byte, error)
}

type RequestEvent struct {
	RequestID string
	Method    string
	URL       string
	BodySize  int
}

type ResponseEvent struct {
	RequestEvent
	StatusCode int
	Duration   time.Duration
	Err        error
}

// TransportHook observes transport traffic. Hooks run synchronously on the
// calling goroutine and must not block for long.
type TransportHook interface {
	BeforeRequest(ctx context.Context, event RequestEvent)
	AfterResponse(ctx context.Context, event ResponseEvent)
}
