package namaste

import (
	"net/http"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/app/services/auth"
	"go.uber.org/zap"
)

type (
	AuthProvider  = contracts.AuthProvider
	Transport     = contracts.Transport
	TransportHook = contracts.TransportHook
	RequestEvent  = contracts.RequestEvent
	ResponseEvent = contracts.ResponseEvent
)

type clientOptions struct {
	auth          AuthProvider
	httpClient    *http.Client
	timeout       time.Duration
	userAgent     string
	log           *zap.Logger
	hooks         []TransportHook
	transport     Transport
	retryAttempts int
	retryDelay    time.Duration
	ratePerSecond float64
	rateBurst     int
}

type Option func(*clientOptions)

// WithAuthProvider replaces the default provider, which reads the
// NAMASTE_API_TOKEN environment variable.
func WithAuthProvider(provider AuthProvider) Option {
	return func(o *clientOptions) { o.auth = provider }
}

// WithToken authenticates every request with a fixed bearer token.
func WithToken(token string) Option {
	return func(o *clientOptions) { o.auth = auth.NewStaticTokenProvider(token) }
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = client }
}

// WithTimeout bounds each request when no custom HTTP client is given.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) { o.timeout = timeout }
}

func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) { o.userAgent = userAgent }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *clientOptions) {
		if logger != nil {
			o.log = logger
		}
	}
}

// WithHooks registers observers called around every HTTP request.
func WithHooks(hooks ...TransportHook) Option {
	return func(o *clientOptions) { o.hooks = append(o.hooks, hooks...) }
}

// WithTransport substitutes the HTTP transport, typically with a fake in
// tests. The base URL, auth provider and HTTP options are then unused for
// I/O, though the auth provider is still checked at construction.
func WithTransport(transport Transport) Option {
	return func(o *clientOptions) { o.transport = transport }
}

// WithRetry retries network failures, timeouts, 5xx and 429 responses up to
// maxAttempts calls in total, backing off exponentially from baseDelay.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(o *clientOptions) {
		o.retryAttempts = maxAttempts
		o.retryDelay = baseDelay
	}
}

// WithRateLimit caps outgoing requests to perSecond with the given burst.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(o *clientOptions) {
		o.ratePerSecond = perSecond
		o.rateBurst = burst
	}
}
