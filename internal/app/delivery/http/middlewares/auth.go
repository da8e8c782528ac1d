package middlewares

import (
	"net/http"
	"strings"

	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
	"go.uber.org/zap"
)

// Authenticate accepts a bearer token that matches one of the sandbox API
// token hashes, or an HS256 JWT signed with the sandbox secret.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		header := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		if !m.verifyToken(token) {
			m.Log.Warn("Middlewares.Authenticate rejected token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingPathKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalid(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) verifyToken(token string) bool {
	if _, ok := m.verified.Load(token); ok {
		return true
	}

	for _, hash := range m.tokenHashes {
		if utils.CheckTokenHash(token, hash) {
			m.verified.Store(token, struct{}{})
			return true
		}
	}

	// JWTs expire, so they are verified on every request
	secret := m.InternalConfig.Sandbox.JWTSecret
	if secret == "" {
		return false
	}
	subject, err := utils.ParseJWT(token, secret)
	return err == nil && subject != ""
}
