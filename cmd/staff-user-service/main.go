// Package main starts the HTTP service proxying staff user CRUD operations
// to a SharePoint list through the Microsoft Graph API.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"staff-user-service/internal/config"
	"staff-user-service/internal/graph"
	httpapi "staff-user-service/internal/http"
	"staff-user-service/internal/repository"
	"staff-user-service/internal/service"
)

func main() {
	// Best-effort .env load for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// The credential and Graph client are constructed once and reused across
	// requests; they are stateless apart from internal token caching.
	cred, err := graph.Credential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret)
	if err != nil {
		log.Fatalf("failed to build credential: %v", err)
	}
	client, err := graph.NewClient(cred)
	if err != nil {
		log.Fatalf("failed to init graph client: %v", err)
	}

	gr := repository.NewGraph(client)
	resolver := repository.NewResolver(gr, cfg.SitePath(), cfg.ListName, logger)
	userRepo := repository.NewUserRepo(gr, resolver)
	eventRepo := repository.NewEventRepo(gr, resolver)

	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo)

	handler := httpapi.NewHandler(userService, eventService, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("starting http server",
			slog.String("addr", server.Addr),
			slog.String("site_path", cfg.SitePath()),
			slog.String("list_name", cfg.ListName),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
