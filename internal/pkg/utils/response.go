package utils

import (
	"errors"
	"net/http"

	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildJSONResponse writes data as the bare response body. The NAMASTE wire
// format has no envelope, so clients decode payloads directly.
func BuildJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String("kind", string(customErr.Kind)),
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
	}
	BuildJSONResponse(w, code, response)
}
