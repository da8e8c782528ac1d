package exceptions

import (
	"fmt"

	"github.com/fhirfly/namaste-sdk/internal/pkg/constvars"
)

var (
	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenRefresh = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenRefresh)
	}
	ErrTokenSigningKey = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningKey)
	}
	ErrTokenUnsupportedAlg = func(alg string) *CustomError {
		return BuildNewCustomError(nil, KindAuth, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevAuthUnsupportedAlg, alg))
	}

	// Transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadHTTPResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevReadHTTPResponse)
	}
	ErrRequestTimeout = func(err error, url string) *CustomError {
		return BuildNewCustomError(err, KindTimeout, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, fmt.Sprintf(constvars.ErrDevRequestTimeout, url))
	}
	ErrHTTPStatus = func(statusCode int, url string, body []byte) *CustomError {
		customErr := BuildNewCustomError(nil, KindHTTP, statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevHTTPStatus, statusCode, url))
		customErr.Body = body
		return customErr
	}
	ErrInvalidPath = func(path string) *CustomError {
		return BuildNewCustomError(nil, KindInvalidArgument, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidPath, path))
	}
	ErrInvalidBaseURL = func(err error, baseURL string) *CustomError {
		return BuildNewCustomError(err, KindInvalidArgument, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidBaseURL, baseURL))
	}

	// Service
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindParse, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrUpstream = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindUpstream, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevUpstreamFailure, resource))
	}
	ErrInvalidArgument = func(argument string) *CustomError {
		return BuildNewCustomError(nil, KindInvalidArgument, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidArgument, argument))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidArgument, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidArgument, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrNotFound = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf(constvars.ErrDevNotFound, resource))
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Router
	ErrRouteNotFound = func(path string) *CustomError {
		return BuildNewCustomError(nil, KindNotFound, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf("%s: %s", constvars.ErrDevRouteNotFound, path))
	}
	ErrMethodNotAllowed = func(method string) *CustomError {
		return BuildNewCustomError(nil, KindInvalidArgument, constvars.StatusMethodNotAllowed, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s: %s", constvars.ErrDevMethodNotAllowed, method))
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
