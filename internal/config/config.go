package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // API key for authentication
	DevMode     bool

	// Storage
	StorageBackend    string // "postgres" or "memory"
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// World clock
	CycleDayDuration   time.Duration
	CycleNightDuration time.Duration
	CyclePollInterval  time.Duration

	// Game rules
	OrdersMin       int
	OrdersMax       int
	StartingGold    int
	CauldronQuality int
	ForageCooldown  time.Duration
	ShopNightOnly   bool

	WorkerCount    int
	TrustedProxies []string

	// LogDir receives a session log file next to stdout when set
	LogDir string

	// Event publisher retries
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// ShopSeed fixes order generation when non-zero
	ShopSeed int64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", EnvDev),
		APIKey:      getEnv("API_KEY", ""),
		DevMode:     getEnvAsBool("DEV_MODE", false),

		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "hexbrew"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 20),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		CycleDayDuration:   getEnvAsDuration("CYCLE_DAY_DURATION", domain.DefaultDayDuration),
		CycleNightDuration: getEnvAsDuration("CYCLE_NIGHT_DURATION", domain.DefaultNightDuration),
		CyclePollInterval:  getEnvAsDuration("CYCLE_POLL_INTERVAL", domain.DefaultPollInterval),

		OrdersMin:       getEnvAsInt("ORDERS_MIN", domain.DefaultOrdersMin),
		OrdersMax:       getEnvAsInt("ORDERS_MAX", domain.DefaultOrdersMax),
		StartingGold:    getEnvAsInt("STARTING_GOLD", domain.DefaultStartingGold),
		CauldronQuality: getEnvAsInt("CAULDRON_QUALITY", domain.DefaultCauldronQuality),
		ForageCooldown:  getEnvAsDuration("FORAGE_COOLDOWN", domain.DefaultForageCooldown),
		ShopNightOnly:   getEnvAsBool("SHOP_NIGHT_ONLY", true),

		WorkerCount:    getEnvAsInt("WORKER_COUNT", 2),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		LogDir: getEnv("LOG_DIR", ""),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", 5),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", 2*time.Second),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", "logs/event_deadletter.jsonl"),

		ShopSeed: int64(getEnvAsInt("SHOP_SEED", 0)),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints of a loaded config
func (c *Config) Validate() error {
	// API key is optional only for local development
	if c.APIKey == "" && c.Environment != EnvDev {
		return fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}
	if c.StorageBackend != StorageBackendPostgres && c.StorageBackend != StorageBackendMemory {
		return fmt.Errorf("invalid STORAGE_BACKEND %q: expected %s or %s", c.StorageBackend, StorageBackendPostgres, StorageBackendMemory)
	}
	if c.CycleDayDuration <= 0 || c.CycleNightDuration <= 0 {
		return fmt.Errorf("cycle durations must be positive (day=%s, night=%s)", c.CycleDayDuration, c.CycleNightDuration)
	}
	if c.CyclePollInterval <= 0 {
		return fmt.Errorf("CYCLE_POLL_INTERVAL must be positive, got %s", c.CyclePollInterval)
	}
	if c.OrdersMin < 0 || c.OrdersMax < c.OrdersMin {
		return fmt.Errorf("invalid order bounds: ORDERS_MIN=%d ORDERS_MAX=%d", c.OrdersMin, c.OrdersMax)
	}
	if c.CauldronQuality <= 0 {
		return fmt.Errorf("CAULDRON_QUALITY must be positive, got %d", c.CauldronQuality)
	}
	if c.StartingGold < 0 {
		return fmt.Errorf("STARTING_GOLD must not be negative, got %d", c.StartingGold)
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = 1
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// UseMemoryStorage reports whether the in-process store is selected
func (c *Config) UseMemoryStorage() bool {
	return c.StorageBackend == StorageBackendMemory
}
