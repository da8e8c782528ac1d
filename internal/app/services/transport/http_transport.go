package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

type HTTPTransportConfig struct {
	BaseURL string
	// HTTPClient is shared by all calls. When nil a client with Timeout is created.
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
	Hooks      []contracts.TransportHook
}

// HTTPTransport sends authenticated JSON requests to the NAMASTE API. It
// keeps no per-call state and is safe for concurrent use.
type HTTPTransport struct {
	baseURL   string
	client    *http.Client
	auth      contracts.AuthProvider
	userAgent string
	hooks     []contracts.TransportHook
	log       *zap.Logger
}

func NewHTTPTransport(cfg HTTPTransportConfig, auth contracts.AuthProvider, logger *zap.Logger) (*HTTPTransport, error) {
	parsed, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, exceptions.ErrInvalidBaseURL(err, cfg.BaseURL)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, exceptions.ErrInvalidBaseURL(errors.New("base URL must be absolute http(s)"), cfg.BaseURL)
	}
	if auth == nil {
		return nil, exceptions.ErrInvalidArgument("auth provider")
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = constvars.DefaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HTTPTransport{
		baseURL:   strings.TrimRight(parsed.String(), "/"),
		client:    client,
		auth:      auth,
		userAgent: userAgent,
		hooks:     cfg.Hooks,
		log:       logger,
	}, nil
}

func (t *HTTPTransport) Get(ctx context.Context, path string) ([]byte, error) {
	return t.do(ctx, constvars.MethodGet, path, nil)
}

func (t *HTTPTransport) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return t.do(ctx, constvars.MethodPost, path, body)
}

func (t *HTTPTransport) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	if !utils.IsRelativePath(path) {
		return nil, exceptions.ErrInvalidPath(path)
	}
	fullURL := utils.JoinURL(t.baseURL, path)

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	}

	token, err := t.auth.Token(ctx)
	if err != nil {
		t.log.Error("HTTPTransport.do error getting token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderUserAgent, t.userAgent)
	req.Header.Set(constvars.HeaderXRequestID, requestID)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	requestEvent := contracts.RequestEvent{
		RequestID: requestID,
		Method:    method,
		URL:       fullURL,
		BodySize:  len(body),
	}
	for _, hook := range t.hooks {
		hook.BeforeRequest(ctx, requestEvent)
	}

	start := time.Now()
	statusCode, respBody, err := t.send(ctx, req, fullURL)
	responseEvent := contracts.ResponseEvent{
		RequestEvent: requestEvent,
		StatusCode:   statusCode,
		Duration:     time.Since(start),
		Err:          err,
	}
	for _, hook := range t.hooks {
		hook.AfterResponse(ctx, responseEvent)
	}

	if err != nil {
		return nil, err
	}
	return respBody, nil
}

func (t *HTTPTransport) send(ctx context.Context, req *http.Request, fullURL string) (int, []byte, error) {
	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, classifySendError(ctx, err, fullURL)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, classifyReadError(ctx, err, fullURL)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		customErr := exceptions.ErrHTTPStatus(resp.StatusCode, fullURL, respBody)
		if message := upstreamMessage(respBody); message != "" {
			customErr.DevMessage += ": " + message
		}
		return resp.StatusCode, respBody, customErr
	}
	return resp.StatusCode, respBody, nil
}

// upstreamMessagePaths covers the sandbox error body, FHIR OperationOutcome
// and the common {"error": "..."} shape.
var upstreamMessagePaths = []string{"dev_message", "message", "issue.0.diagnostics", "error"}

func upstreamMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range upstreamMessagePaths {
		result := gjson.GetBytes(body, path)
		if result.Type == gjson.String && result.Str != "" {
			return result.Str
		}
	}
	return ""
}

func classifySendError(ctx context.Context, err error, fullURL string) error {
	if isTimeout(ctx, err) {
		return exceptions.ErrRequestTimeout(err, fullURL)
	}
	return exceptions.ErrSendHTTPRequest(err)
}

func classifyReadError(ctx context.Context, err error, fullURL string) error {
	if isTimeout(ctx, err) {
		return exceptions.ErrRequestTimeout(err, fullURL)
	}
	return exceptions.ErrReadHTTPResponse(err)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
