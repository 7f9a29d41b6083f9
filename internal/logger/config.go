package logger

import (
	"log/slog"
	"strings"
)

// Config describes how the process logs
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds a Config from explicit values. Empty identity fields fall
// back to the service defaults so every line stays attributable.
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	c := Config{
		Level:       strings.ToLower(strings.TrimSpace(level)),
		Format:      strings.ToLower(strings.TrimSpace(format)),
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Environment == "" {
		c.Environment = EnvironmentDev
	}
	return c
}

// ForEnvironment returns the preset for env: JSON at info in production and
// staging, text at debug with source locations everywhere else
func ForEnvironment(env string) Config {
	switch env {
	case EnvironmentProduction, EnvironmentStaging:
		return NewConfig(LogLevelInfo, LogFormatJSON, DefaultServiceName, DefaultVersion, env, false)
	case EnvironmentTest:
		return NewConfig(LogLevelWarn, LogFormatText, DefaultServiceName, DefaultVersion, env, false)
	default:
		return NewConfig(LogLevelDebug, LogFormatText, DefaultServiceName, DefaultVersion, EnvironmentDev, true)
	}
}

// LogLevel maps Level to a slog level, defaulting to info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON reports whether the JSON handler is selected
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
