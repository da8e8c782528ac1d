package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingURLKey           = "url"
	LoggingPathKey          = "path"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingAttemptKey       = "attempt"
	LoggingErrorKindKey     = "error_kind"
	LoggingSourceCodeKey    = "source_code"
	LoggingTargetCodeKey    = "target_code"
	LoggingBundleIDKey      = "bundle_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingQueryKey         = "query"
	LoggingResponseCountKey = "response_count"
	LoggingQueueNameKey     = "queue_name"
	LoggingRedisKey         = "redis_key"
	LoggingMessageKey       = "message"
	LoggingSuccessKey       = "success"
	LoggingRemoteAddrKey    = "remote_addr"

	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingTokenExpiresAtKey     = "token_expires_at"
)
