// docker-mcp exposes Docker Engine and Docker Hub operations as MCP
// tools over stdio. Credentials come from the process environment; the
// tool surface is gated on which credential sets are present.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"docker-mcp/pkg/tenant"
	"docker-mcp/pkg/tools"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string
	var logLevel string

	root := &cobra.Command{
		Use:           "docker-mcp",
		Short:         "MCP server for Docker Engine and Docker Hub",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, logLevel)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to an env file to load before reading configuration")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, logLevel)
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("docker-mcp %s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		},
	}

	root.AddCommand(serve, version)
	return root
}

func runServe(envFile, logLevel string) error {
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	if logLevel == "" {
		logLevel = os.Getenv("DOCKER_MCP_LOG_LEVEL")
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseSlogLevel(logLevel),
	}))

	creds := tenant.FromEnv()
	if !creds.HasEngine() {
		logger.Warn("no engine endpoint configured, engine tools disabled", "key", tenant.KeyEngineHost)
	}
	if !creds.HasHub() {
		logger.Warn("no hub credentials configured, hub tools disabled")
	}
	if !creds.HasEngine() && !creds.HasHub() {
		return errors.New("no backend credentials configured: set DOCKER_HOST and/or Docker Hub credentials")
	}

	mcpServer := server.NewMCPServer("docker-mcp", Version, server.WithToolCapabilities(false))
	registry := tools.NewRegistry(creds, logger)
	registered, err := registry.Register(mcpServer)
	if err != nil {
		return errors.Wrap(err, "registering tools")
	}

	logger.Info("starting docker-mcp",
		"version", Version,
		"tools", registered,
		"engine", creds.HasEngine(),
		"hub", creds.HasHub())

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ServeStdio(mcpServer)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("received shutdown signal", "signal", sig.String())
		// Let in-flight log writes drain before the process exits.
		time.Sleep(100 * time.Millisecond)
		return nil
	case err := <-serverErr:
		if err != nil {
			return errors.Wrap(err, "server failed")
		}
		logger.Info("stdin closed, shutting down")
		return nil
	}
}

// loadEnvFile loads environment variables from file
func loadEnvFile(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return errors.Wrapf(err, "failed to load env file %s", envFile)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		godotenv.Load(".env")
	}
	return nil
}

// parseSlogLevel converts string log level to slog.Level
func parseSlogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
