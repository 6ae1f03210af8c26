package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/example/coworking-hub/internal/application"
	"github.com/example/coworking-hub/internal/assistant"
	"github.com/example/coworking-hub/internal/blob"
	"github.com/example/coworking-hub/internal/config"
	httptransport "github.com/example/coworking-hub/internal/http"
	"github.com/example/coworking-hub/internal/logging"
	"github.com/example/coworking-hub/internal/store"
)

func main() {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(os.Stdout, parseLogLevel(cfg.LogLevel))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	archive, err := blob.Open(ctx, blob.Config{
		Driver:          blob.Driver(cfg.BlobDriver),
		Root:            cfg.BlobRoot,
		Bucket:          cfg.BlobBucket,
		Region:          cfg.BlobRegion,
		Endpoint:        cfg.BlobEndpoint,
		AccessKeyID:     cfg.BlobAccessKeyID,
		SecretAccessKey: cfg.BlobSecretAccessKey,
		PathStyle:       cfg.BlobPathStyle,
	})
	if err != nil {
		logger.Error("failed to open backup archive", "error", err)
		os.Exit(1)
	}

	st := store.New()
	gate := application.NewGate(st)
	idGenerator := uuid.NewString
	now := time.Now

	authService := application.NewAuthServiceWithLogger(st, cfg.AdminPassword, logger)
	wikiService := application.NewWikiServiceWithLogger(st, gate, idGenerator, now, logger)
	announcementService := application.NewAnnouncementServiceWithLogger(st, gate, idGenerator, now, logger)
	spaceService := application.NewSpaceServiceWithLogger(st, gate, idGenerator, logger)
	partnerService := application.NewPartnerServiceWithLogger(st, gate, idGenerator, application.RandomSwatch, logger)
	officeService := application.NewOfficeServiceWithLogger(st, gate, logger)
	memberService := application.NewMemberServiceWithLogger(st, gate, logger)
	backupService := application.NewBackupServiceWithLogger(st, gate, archive, now, logger)
	assistantService := assistant.New(assistant.Config{
		APIKey:  cfg.AssistantAPIKey,
		BaseURL: cfg.AssistantBaseURL,
		Model:   cfg.AssistantModel,
		Timeout: cfg.AssistantTimeout,
	}, st, logger)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Sessions:      httptransport.NewSessionHandler(authService, logger),
		Wiki:          httptransport.NewWikiHandler(wikiService, logger),
		Announcements: httptransport.NewAnnouncementHandler(announcementService, logger),
		Spaces:        httptransport.NewSpaceHandler(spaceService, logger),
		Partners:      httptransport.NewPartnerHandler(partnerService, logger),
		Offices:       httptransport.NewOfficeHandler(officeService, logger),
		Members:       httptransport.NewMemberHandler(memberService, logger),
		Backup:        httptransport.NewBackupHandler(backupService, logger),
		Assistant:     httptransport.NewAssistantHandler(assistantService, logger),
		Reference:     httptransport.NewReferenceHandler(logger),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("coworking hub API listening", "addr", server.Addr, "blob_driver", archive.Driver())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
