package exceptions

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
)

// Kind classifies a failure so callers can branch without string matching.
type Kind string

const (
	// KindAuth means no credential was configured or it was rejected.
	KindAuth Kind = "auth"
	// KindNetwork means the request never produced an HTTP response.
	KindNetwork Kind = "network"
	// KindHTTP means the upstream answered with a non-2xx status.
	KindHTTP Kind = "http"
	// KindTimeout means a deadline expired before the response arrived.
	KindTimeout Kind = "timeout"
	// KindParse means a response body could not be decoded.
	KindParse Kind = "parse"
	// KindUpstream means the upstream failed in a way the service could not absorb.
	KindUpstream        Kind = "upstream"
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindInternal        Kind = "internal"
)

type CustomError struct {
	Kind          Kind     `json:"-"`
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"dev_message,omitempty"`
	Body          []byte   `json:"-"`
	Location      Location `json:"-"`
	Err           error    `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s: %s (%s:%d)", e.Kind, e.DevMessage, filepath.Base(e.Location.File), e.Location.Line)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func WrapWithoutError(kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(2),
	}
}

func WrapWithError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      getLocation(2),
		Err:           err,
	}
}

// BuildNewCustomError records the location of whoever called the Err* constructor.
func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
		Err:           err,
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return customErr
}

// IsKind reports whether any CustomError in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var customErr *CustomError
		if !errors.As(err, &customErr) {
			return false
		}
		if customErr.Kind == kind {
			return true
		}
		err = customErr.Err
	}
	return false
}

// KindOf returns the kind of the outermost CustomError in err's chain.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return ""
}

// StatusCode returns the HTTP status carried by the first KindHTTP error in the
// chain, or 0 when the failure never reached an HTTP response.
func StatusCode(err error) int {
	for err != nil {
		var customErr *CustomError
		if !errors.As(err, &customErr) {
			return 0
		}
		if customErr.Kind == KindHTTP {
			return customErr.StatusCode
		}
		err = customErr.Err
	}
	return 0
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
