package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/wmimouni/voyagr-api/app/api"
	"github.com/wmimouni/voyagr-api/app/cfg"
	"github.com/wmimouni/voyagr-api/app/content"
	"github.com/wmimouni/voyagr-api/app/delivery"
	"github.com/wmimouni/voyagr-api/app/mailer"
	"github.com/wmimouni/voyagr-api/app/submission"
)

func main() {
	// Load configuration from environment variables and command-line flags
	appConfig, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appConfig.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Voyagr portfolio API", "version", appConfig.Version)

	// Load static content collections
	contentStore := content.NewStore(appConfig.ContentDir)
	if err := contentStore.Run(); err != nil {
		slog.Error("Failed to load content", "dir", appConfig.ContentDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Content loaded",
		"projects", len(contentStore.Projects()),
		"experiences", len(contentStore.Experiences()),
		"events", len(contentStore.Events()),
		"recognition", len(contentStore.Recognition()))

	// Dispatcher is constructed once per process and handed to the
	// pipelines explicitly, so tests can substitute a fake
	dispatcher := mailer.NewResendClient(appConfig.ResendAPIKey)

	contactRecipients := submission.SplitRecipients(appConfig.ContactTo, cfg.DefaultRecipient)
	devReqConfigured := appConfig.DevReqTo
	if devReqConfigured == "" {
		devReqConfigured = appConfig.ContactTo
	}
	devReqRecipients := submission.SplitRecipients(devReqConfigured, cfg.DefaultRecipient)

	contactPipeline := delivery.NewContactPipeline(dispatcher, appConfig.FromAddress, contactRecipients)
	devReqPipeline := delivery.NewDevRequestPipeline(dispatcher, appConfig.FromAddress, devReqRecipients)

	// Initialize HTTP server
	apiHandler := api.NewHandler(contactPipeline, devReqPipeline, contentStore)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appConfig.Port,
			"contact_recipients", len(contactRecipients),
			"devreq_recipients", len(devReqRecipients))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
