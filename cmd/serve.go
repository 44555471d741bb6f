package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"sirs/internal/audit"
	"sirs/internal/configuration"
	"sirs/internal/score/assessor"
	"sirs/internal/server"
	"sirs/internal/session"

	"github.com/spf13/cobra"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the score HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "/etc/sirs/config.yaml", "configuration file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	config, err := configuration.LoadConfig(serveConfigPath)
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}
	prepareLogger(config.Logger.Level)

	appCtx, appCancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer appCancel()

	ranker, err := assessor.NewFromFile(config.Assessment.Rules)
	if err != nil {
		return fmt.Errorf("unable to load assessment rules: %w", err)
	}

	sessions := session.NewRepository(config.Sessions.Length, config.Sessions.TTL)
	go sessions.Serve(time.Minute)
	defer sessions.Stop()

	recorder := audit.Discard
	if config.Audit.File != "" {
		recorder = audit.NewJSONRecorder(config.Audit.File, config.Audit.Size, config.Audit.Backups)
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Error("Audit log close", "error", err)
		}
	}()

	router := server.NewApiV1Router(config.Server.Static, ranker, sessions, recorder)
	srv := server.NewServer(config.Server.Address, router)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			appCancel()
		}
	}()
	slog.Info("Server listening " + config.Server.Address)
	<-appCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*10)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown", "error", err)
	}
	slog.Info("Server stopped")

	return nil
}
