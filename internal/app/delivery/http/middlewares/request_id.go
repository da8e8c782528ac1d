package middlewares

import (
	"context"
	"net/http"

	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/google/uuid"
)

// RequestID stores the caller's X-Request-ID in the request context, minting
// one when absent, and echoes it on the response.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
