package config

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)

type InternalConfig struct {
	App       App
	Namaste   Namaste
	Auth      Auth
	Transport Transport
	Audit     Audit
	Sandbox   Sandbox
}

type App struct {
	Env string
}

type Namaste struct {
	BaseUrl string
}

type Auth struct {
	// Mode selects the token source: static, env or jwt.
	Mode        string
	Token       string
	TokenEnvKey string
	// TokenCache is memory or redis; redis shares minted tokens between processes.
	TokenCache             string
	RefreshSkewInSeconds   int
	JWTAlg                 string
	JWTSecret              string
	JWTPrivateKey          string
	JWTSubject             string
	JWTTTLInMinutes        int
	RefreshLockTTLInSecond int
}

type Transport struct {
	TimeoutInSeconds             int
	RetryMaxAttempts             int
	RetryBaseDelayInMilliseconds int
	RateLimitPerSecond           float64
	RateLimitBurst               int
	UserAgent                    string
}

type Audit struct {
	Enabled    bool
	Queue      string
	BufferSize int
}

type Sandbox struct {
	Port                     string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	Timezone                 string
	JWTSecret                string
	// APITokens are hashed with bcrypt at startup; APITokenHashes are used as-is.
	APITokens      []string
	APITokenHashes []string
}
