package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fueltrack/internal/config"
	"fueltrack/internal/database"
	"fueltrack/internal/plot"
	"fueltrack/internal/store"
	"fueltrack/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/fueltrack.yaml", "path to config file")
	envFile := flag.String("env", ".env", "path to optional .env file")
	output := flag.String("output", "", "chart output path (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting plotter",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	if err := godotenv.Load(*envFile); err == nil {
		logger.Info("loaded env file", "path", *envFile)
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	outputPath := cfg.Plot.OutputPath
	if *output != "" {
		outputPath = *output
	}

	loc, err := time.LoadLocation(cfg.Plot.Timezone)
	if err != nil {
		logger.Error("failed to load timezone", "timezone", cfg.Plot.Timezone, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	st := store.New(pool, cfg.Collector.BatchSize, logger)

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -cfg.Plot.WindowDays)

	points, err := st.QueryWindow(ctx, from, to)
	if err != nil {
		logger.Error("failed to query window", "error", err)
		os.Exit(1)
	}

	logger.Info("window queried",
		"from", from,
		"to", to,
		"points", len(points),
	)

	series := plot.BuildSeries(points, plot.Options{
		MaxPrice:     cfg.Plot.MaxPrice,
		ExcludeFuels: cfg.Plot.ExcludeFuels,
		Location:     loc,
	})
	if len(series) == 0 {
		logger.Error("no chartable observations in window",
			"window_days", cfg.Plot.WindowDays,
		)
		os.Exit(1)
	}

	png, err := plot.Render(series, cfg.Plot.Width, cfg.Plot.Height)
	if err != nil {
		logger.Error("failed to render chart", "error", err)
		os.Exit(1)
	}

	if err := plot.WriteFile(outputPath, png); err != nil {
		logger.Error("failed to write chart", "path", outputPath, "error", err)
		os.Exit(1)
	}

	logger.Info("chart written",
		"path", outputPath,
		"fuels", len(series),
		"bytes", len(png),
	)
}
