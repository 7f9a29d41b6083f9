package database

// DefaultMinConnections keeps a couple of warm connections for the cycle ticker
// and the request path
const DefaultMinConnections int32 = 2

// Migration settings
const (
	GooseDialect  = "postgres"
	MigrationsDir = "migrations"
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log messages
const (
	LogMsgConnectedToDatabase = "Connected to the database"
	LogMsgMigrationsApplied   = "Database migrations applied"
)
