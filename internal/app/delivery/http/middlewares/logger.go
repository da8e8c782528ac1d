package middlewares

import (
	"net/http"
	"time"

	"github.com/fhirfly/namaste-sdk/internal/app/config"
	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (m *Middlewares) RequestLogger(sandboxConfig config.Sandbox, log *logrus.Logger) func(next http.Handler) http.Handler {
	tz, err := time.LoadLocation(sandboxConfig.Timezone)
	if err != nil {
		log.Printf("Invalid time zone: %v", err)
		tz = time.UTC
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: constvars.StatusOK}
			next.ServeHTTP(recorder, r)
			duration := time.Since(start)

			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			log.WithFields(logrus.Fields{
				constvars.LoggingRequestIDKey:  requestID,
				constvars.LoggingStatusCodeKey: recorder.status,
			}).Printf(`{%s} | {%s} | {%s} ==> {%s} | {%s}`, time.Now().In(tz).Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, duration)
		})
	}
}
