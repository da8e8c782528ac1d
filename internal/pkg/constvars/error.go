package constvars

// Validation messages, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"notblank": "must not be blank",
}

var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientUpstreamUnavailable           = "the terminology service is unavailable"
	ErrClientResourceNotFound              = "resource not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevValidationFailed  = "validation failed"
	ErrDevCannotParseJSON   = "cannot parse JSON"
	ErrDevCannotMarshalJSON = "cannot marshal JSON"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevReadHTTPResponse  = "failed to read HTTP response body"
	ErrDevHTTPStatus        = "unexpected HTTP status %d from %s"
	ErrDevRequestTimeout    = "request to %s timed out"
	ErrDevInvalidPath       = "path %q must be relative to the base URL"
	ErrDevInvalidBaseURL    = "invalid base URL %q"

	ErrDevAuthTokenMissing   = "no credential configured"
	ErrDevAuthTokenInvalid   = "invalid token"
	ErrDevAuthTokenRefresh   = "failed to refresh token"
	ErrDevAuthSigningMethod  = "unexpected signing method"
	ErrDevAuthSigningKey     = "invalid signing key"
	ErrDevAuthUnsupportedAlg = "unsupported JWT algorithm: %s"

	ErrDevDecodeResponse  = "failed to decode %s response"
	ErrDevUpstreamFailure = "upstream failure while requesting %s"
	ErrDevNotFound        = "%s not found"

	ErrDevRedisGetData     = "failed to get data from redis"
	ErrDevRedisSetData     = "failed to set data to redis"
	ErrDevRedisDeleteData  = "failed to delete data from redis"
	ErrDevRedisUnlock      = "failed to release redis lock"
	ErrDevRabbitMQPublish  = "failed to publish message to queue %s"
	ErrDevServerProcess    = "server failed to process request"
	ErrDevInvalidArgument  = "invalid argument: %s"
	ErrDevRouteNotFound    = "route not found"
	ErrDevMethodNotAllowed = "method not allowed"
)
