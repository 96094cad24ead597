// main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gewnthar/bikeshare/config"
	"github.com/gewnthar/bikeshare/datasource"
	"github.com/gewnthar/bikeshare/logging"
	"github.com/gewnthar/bikeshare/shell"
	"github.com/gewnthar/bikeshare/store"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (defaults to ./config.yaml or ./config/config.yaml if present)")
	dataDir := flag.String("data-dir", "", "directory holding the city CSV files (overrides config)")
	noColor := flag.Bool("no-color", false, "disable coloured output")
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	cfg := config.AppConfig
	if *dataDir != "" {
		cfg.Data.Dir = *dataDir
	}
	if *noColor {
		cfg.Display.Color = false
	}

	logger, logCloser, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Error initializing logging: %v", err)
	}
	defer logging.SafeCloseWithLogging(logCloser, logger, "close_log_file")

	logging.LogOperation(logger, "bikeshare_starting",
		slog.String("data_dir", cfg.Data.Dir),
		slog.Bool("cache", cfg.Cache.Enabled))

	trips := store.NewTripStore(
		datasource.FileLoader(cfg.Data.Dir, cfg.Data.Files, logger),
		cfg.Cache.Enabled,
		logger,
	)

	sh := shell.New(os.Stdin, os.Stdout, trips, shell.Options{
		Color:       cfg.Display.Color,
		ClearScreen: cfg.Display.ClearScreen,
		Logger:      logger,
	})
	if err := sh.Run(); err != nil {
		logging.LogError(logger, "session ended with error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.SafeCloseWithLogging(logCloser, logger, "close_log_file")
		os.Exit(1)
	}

	for _, v := range trips.Versions() {
		logging.LogOperation(logger, "data_source_used",
			slog.String("city", string(v.City)),
			slog.String("path", v.FilePath),
			slog.Int("rows", v.Rows),
			slog.String("data_hash", v.DataHash))
	}
}
