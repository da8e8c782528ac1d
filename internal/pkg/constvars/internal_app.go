package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	AuthModeStatic = "static"
	AuthModeEnv    = "env"
	AuthModeJWT    = "jwt"

	TokenCacheMemory = "memory"
	TokenCacheRedis  = "redis"

	DefaultTokenEnvKey = "NAMASTE_API_TOKEN"
	DefaultUserAgent   = "namaste-sdk-go"
)
