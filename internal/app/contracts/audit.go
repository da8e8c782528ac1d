package contracts

import "context"

type AuditEvent struct {
	Event      string `json:"event"`
	RequestID  string `json:"request_id"`
	Method     string `json:"method"`
	URL        string `json:"url"`
	StatusCode int    `json:"status_code"`
	DurationMs int64  `json:"duration_ms"`
	ErrorKind  string `json:"error_kind,omitempty"`
	Error      string `json:"error,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

type AuditPublisher interface {
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error
}
