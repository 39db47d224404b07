package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fueltrack/internal/api"
	"fueltrack/internal/collector"
	"fueltrack/internal/config"
	"fueltrack/internal/database"
	"fueltrack/internal/store"
	"fueltrack/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/fueltrack.yaml", "path to config file")
	envFile := flag.String("env", ".env", "path to optional .env file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting collector",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Secrets may live in a .env file next to the binary; absence is fine.
	if err := godotenv.Load(*envFile); err == nil {
		logger.Info("loaded env file", "path", *envFile)
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"api_url", cfg.API.BaseURL,
		"region_id", cfg.API.RegionID,
	)

	token, err := cfg.API.ResolveToken()
	if err != nil {
		logger.Error("failed to resolve api token", "error", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("applying migrations", "database", cfg.Database.Name)
	if err := database.Migrate(cfg.Database); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	logger.Info("connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"database", cfg.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger.Info("database connected")

	apiClient := api.NewClient(
		cfg.API.BaseURL,
		token,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, cfg.API.Timeout/10),
	)

	region := api.Region{
		CountryID: cfg.API.CountryID,
		Level:     cfg.API.RegionLevel,
		ID:        cfg.API.RegionID,
	}

	st := store.New(pool, cfg.Collector.BatchSize, logger)
	c := collector.New(apiClient, st, region, logger)

	run, err := c.Run(ctx)
	if err != nil {
		logger.Error("collection run failed", "run_id", run.ID, "error", err)
		os.Exit(1)
	}

	logger.Info("collector finished",
		"run_id", run.ID,
		"inserted", run.Inserted,
		"conflicts", run.Conflicts,
	)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
