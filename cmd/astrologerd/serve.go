package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "github.com/Siddhartha1011/AI-Astrologer/internal/adapters/http"
	"github.com/Siddhartha1011/AI-Astrologer/internal/adapters/llm/groq"
	"github.com/Siddhartha1011/AI-Astrologer/internal/adapters/search/tavily"
	"github.com/Siddhartha1011/AI-Astrologer/internal/app"
	"github.com/Siddhartha1011/AI-Astrologer/internal/config"
	"github.com/Siddhartha1011/AI-Astrologer/internal/domain"
	"github.com/Siddhartha1011/AI-Astrologer/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	searcher := tavily.NewClient(cfg.TavilyAPIKey, cfg.TavilyEndpoint, cfg.SearchTimeout, logger)
	generator := groq.NewClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel, cfg.LLMTimeout, logger)

	svc := app.NewAstrologerService(searcher, generator, domain.SystemClock{}, logger)

	handler := httpadapter.NewHandler(svc, httpadapter.Status{
		GroqConfigured:   cfg.GroqConfigured(),
		TavilyConfigured: cfg.TavilyConfigured(),
	}, logger)
	e := httpadapter.NewServer(handler, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("model", cfg.GroqModel),
			zap.Bool("groq_configured", cfg.GroqConfigured()),
			zap.Bool("tavily_configured", cfg.TavilyConfigured()),
		)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
		return err
	}
	return nil
}
