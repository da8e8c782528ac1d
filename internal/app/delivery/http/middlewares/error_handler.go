package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/fhirfly/namaste-sdk/internal/pkg/utils"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrRouteNotFound(r.URL.Path))
}

func (m *Middlewares) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrMethodNotAllowed(r.Method))
}
