package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/edelwud/pillar-validator/internal/config"
	"github.com/edelwud/pillar-validator/internal/domain"
	"github.com/edelwud/pillar-validator/internal/handlers"
	"github.com/edelwud/pillar-validator/internal/infrastructure/logger"
	"github.com/edelwud/pillar-validator/internal/services/metrics"
	"github.com/edelwud/pillar-validator/internal/services/monitor"
	"github.com/edelwud/pillar-validator/internal/services/pillar"
	"github.com/edelwud/pillar-validator/internal/services/validation"
	netutils "github.com/edelwud/pillar-validator/pkg/utils"
)

//nolint:gochecknoglobals // We are using global variables for version information.
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// Exit codes of a one-shot validation.
const (
	exitValid   = 0
	exitInvalid = 1
	exitFailure = 2
)

func main() {
	os.Exit(run())
}

// run wires the application and returns the process exit code.
func run() int {
	var (
		configPath     = flag.String("config", "", "Path to configuration file")
		pillarPath     = flag.String("pillar", "", "Read the pillar from this file instead of the configured source")
		deployed       = flag.String("deployed", "", "Comma separated hostnames already managed by the orchestrator")
		serve          = flag.Bool("serve", false, "Run the HTTP validation API instead of validating once")
		showVersion    = flag.Bool("version", false, "Show version information")
		logLevel       = flag.String("log-level", "", "Log level (debug, info, warn, error)")
		validateConfig = flag.Bool("validate-config", false, "Validate configuration and exit")
	)
	flag.Parse()

	if *showVersion {
		showVersionInfo()
		return exitValid
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		// Logger is not available before configuration is loaded.
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return exitFailure
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	if *pillarPath != "" {
		cfg.Source.Type = string(domain.PillarSourceTypeFile)
		cfg.Source.File.Path = *pillarPath
		cfg.Source.File.Format = ""
	}

	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return exitFailure
	}

	if *validateConfig {
		showValidationSuccess()
		return exitValid
	}

	appLogger := logger.NewStructuredLogger(cfg.Logging.Level, cfg.Logging.Format)

	source, err := pillar.NewSource(cfg.Source, appLogger)
	if err != nil {
		appLogger.Error("Failed to create pillar source",
			domain.Field{Key: "type", Value: cfg.Source.Type},
			logger.Error(err))
		return exitFailure
	}
	if closer, ok := source.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	metricsService := metrics.NewService(appLogger)
	validationService := validation.NewService(source, metricsService, appLogger)

	if *serve {
		return runServer(cfg, validationService, metricsService, appLogger)
	}

	return runOnce(cfg, validationService, *deployed, appLogger)
}

// runOnce validates the pillar a single time and reports the outcome on stdout.
//
//nolint:forbidigo // We are using fmt.Println for CLI utility purposes.
func runOnce(
	cfg *config.Config,
	service *validation.Service,
	deployedList string,
	log domain.Logger,
) int {
	nodes := toNodes(netutils.SplitHostList(deployedList))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Source.Timeout)
	defer cancel()

	report, err := service.Validate(ctx, nodes)
	if err != nil {
		log.Error("Pillar validation could not run", logger.Source(service.SourceName()), logger.Error(err))
		return exitFailure
	}

	if report.Valid {
		fmt.Println("Pillar is valid")
		return exitValid
	}

	fmt.Println(report.Issue.Error())
	return exitInvalid
}

// runServer serves the validation API until SIGINT or SIGTERM.
func runServer(
	cfg *config.Config,
	service *validation.Service,
	metricsService *metrics.Service,
	log domain.Logger,
) int {
	log.Info("Starting pillar-validator",
		domain.Field{Key: "version", Value: version},
		domain.Field{Key: "build_time", Value: buildTime},
		domain.Field{Key: "git_commit", Value: gitCommit},
		logger.Source(service.SourceName()),
		domain.Field{Key: "server_address", Value: cfg.Server.Address},
		domain.Field{Key: "log_level", Value: cfg.Logging.Level},
	)

	healthHandler := handlers.NewHealthHandler(log, version, service, cfg.Source.Timeout)
	validateHandler := handlers.NewValidateHandler(service, log, cfg.Server.MaxBodyBytes)

	mux := http.NewServeMux()
	mux.Handle("/health", healthHandler)
	mux.Handle("/ready", healthHandler)
	mux.Handle("/validate", handlers.Instrument(validateHandler, metricsService, log))

	if cfg.Metrics.Enabled {
		mux.Handle(cfg.Metrics.Path, metricsService.Handler())
		log.Info("Metrics endpoint enabled", domain.Field{Key: "path", Value: cfg.Metrics.Path})
	}

	ctx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()

	if cfg.Monitor.Enabled {
		pillarMonitor := monitor.New(monitor.Config{
			Interval: cfg.Monitor.Interval,
			Timeout:  cfg.Source.Timeout,
			Deployed: toNodes(cfg.Monitor.Deployed),
		}, service, nil, log)

		if err := pillarMonitor.Start(ctx); err != nil {
			log.Error("Failed to start pillar monitor", logger.Error(err))
			return exitFailure
		}
		defer pillarMonitor.Stop()

		mux.Handle("/status", handlers.NewStatusHandler(pillarMonitor, log))
	}

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      mux,
		ReadTimeout:  cfg.Server.Timeouts.Read,
		WriteTimeout: cfg.Server.Timeouts.Write,
		IdleTimeout:  cfg.Server.Timeouts.Idle,
	}

	startupErr := make(chan error, 1)

	go func() {
		log.Info("Server starting", domain.Field{Key: "address", Value: cfg.Server.Address})
		if serverErr := server.ListenAndServe(); serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
			startupErr <- serverErr
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-startupErr:
		log.Error("Server startup failed", logger.Error(err))
		return exitFailure
	case sig := <-sigChan:
		log.Info("Received shutdown signal", domain.Field{Key: "signal", Value: sig.String()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeouts.Shutdown)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", logger.Error(err))
		return exitFailure
	}

	log.Info("Server stopped gracefully")
	return exitValid
}

// showVersionInfo displays version information to stdout.
//
//nolint:forbidigo // We are using fmt.Printf for CLI utility purposes.
func showVersionInfo() {
	fmt.Printf("pillar-validator (ceph-salt pillar validator)\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build time: %s\n", buildTime)
	fmt.Printf("Git commit: %s\n", gitCommit)
}

// showValidationSuccess displays configuration validation success message.
//
//nolint:forbidigo // We are using fmt.Println for CLI utility purposes.
func showValidationSuccess() {
	fmt.Println("Configuration is valid")
}

func toNodes(hostnames []string) []domain.Node {
	nodes := make([]domain.Node, 0, len(hostnames))
	for _, hostname := range hostnames {
		nodes = append(nodes, domain.Node{Hostname: hostname})
	}

	return nodes
}
