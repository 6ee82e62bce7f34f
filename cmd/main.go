package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/app"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/config"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the loader
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()
	os.Exit(run(context.Background(), configPath))
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting fx-rates-warehouse loader version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run loads the configuration, initializes logging and performs one incremental load.
// It returns the process exit code: 1 when the run could not start or reach the
// warehouse, 0 otherwise.
func run(ctx context.Context, configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return 1
	}

	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.ErrorLogPath); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		return 1
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		logger.Log.Errorw("loader stopped with error", "error", err)
		return 1
	}
	return 0
}
