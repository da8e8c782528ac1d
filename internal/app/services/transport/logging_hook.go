package transport

import (
	"context"

	"github.com/fhirfly/namaste-sdk/internal/app/contracts"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"go.uber.org/zap"
)

// LoggingHook writes one line per request and one per response.
type LoggingHook struct {
	Log *zap.Logger
}

func NewLoggingHook(logger *zap.Logger) *LoggingHook {
	return &LoggingHook{Log: logger}
}

func (h *LoggingHook) BeforeRequest(ctx context.Context, event contracts.RequestEvent) {
	h.Log.Debug("HTTPTransport.do sending request",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingMethodKey, event.Method),
		zap.String(constvars.LoggingURLKey, event.URL),
	)
}

func (h *LoggingHook) AfterResponse(ctx context.Context, event contracts.ResponseEvent) {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingMethodKey, event.Method),
		zap.String(constvars.LoggingURLKey, event.URL),
		zap.Int(constvars.LoggingStatusCodeKey, event.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, event.Duration),
	}
	if event.Err != nil {
		fields = append(fields,
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(event.Err))),
			zap.Error(event.Err),
		)
		h.Log.Error("HTTPTransport.do request failed", fields...)
		return
	}
	h.Log.Info("HTTPTransport.do succeeded", fields...)
}
