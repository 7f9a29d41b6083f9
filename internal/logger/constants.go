package logger

// HeaderRequestID carries the request id between the API, its clients and the logs
const HeaderRequestID = "X-Request-ID"

// FallbackRequestID is logged when a request id cannot be generated
const FallbackRequestID = "00000000-0000-0000-0000-000000000000"

// Levels and formats accepted in LOG_LEVEL and LOG_FORMAT
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Identity defaults
const (
	DefaultServiceName = "hexbrew"
	DefaultVersion     = "dev"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyPlayerID    = "player_id"
)
