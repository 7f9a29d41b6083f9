package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/HexBrew_Go/internal/config"
	"github.com/osse101/HexBrew_Go/internal/discord"
	"github.com/osse101/HexBrew_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Discord bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	logCfg := logger.ForEnvironment(os.Getenv("ENVIRONMENT"))
	logger.InitLogger(logger.NewConfig(
		envOr("LOG_LEVEL", logCfg.Level),
		envOr("LOG_FORMAT", logCfg.Format),
		"hexbrew-discord",
		envOr("VERSION", logCfg.Version),
		logCfg.Environment,
		logCfg.AddSource,
	))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Commands registered on an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	healthServer := discord.NewHTTPServer(envOr("DISCORD_HEALTH_PORT", DefaultHealthPort), bot)
	healthServer.Start()
	defer healthServer.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.NotificationChannelID != "" {
		notifier := discord.NewSSENotifier(bot)
		stream := discord.NewSSEClient(cfg.APIURL, cfg.APIKey, notifier.EventTypes())
		notifier.RegisterHandlers(stream)
		stream.Start(ctx)
		defer stream.Stop()
		slog.Info("SSE notifications enabled", "channel_id", cfg.NotificationChannelID)
	}

	return bot.Run(ctx)
}

// loadConfig reads the bot configuration from the environment
func loadConfig() (discord.Config, error) {
	if err := config.ValidateDiscordEnv(); err != nil {
		return discord.Config{}, err
	}

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	apiURL := envOr("API_URL", DefaultAPIURL)
	slog.Info("Configured API URL", "url", apiURL)

	return discord.Config{
		Token:                 os.Getenv("DISCORD_TOKEN"),
		AppID:                 os.Getenv("DISCORD_APP_ID"),
		APIURL:                apiURL,
		APIKey:                apiKey,
		NotificationChannelID: os.Getenv("DISCORD_NOTIFICATION_CHANNEL_ID"),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
