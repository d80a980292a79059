package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ntereshin/eventform-gateway/internal/config"
	httpHandlers "github.com/ntereshin/eventform-gateway/internal/http/handlers"
	httpRouter "github.com/ntereshin/eventform-gateway/internal/http/router"
	"github.com/ntereshin/eventform-gateway/internal/identity"
	"github.com/ntereshin/eventform-gateway/internal/logger"
	"github.com/ntereshin/eventform-gateway/internal/service"
	"github.com/ntereshin/eventform-gateway/internal/upstream"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Внешние клиенты.
	tokenManager := identity.NewTokenManager(cfg.IdentityJWTSecret, cfg.AllowedEmailDomains)
	identityClient := identity.NewClient(cfg.IdentityURL, cfg.IdentityAPIKey, cfg.UpstreamTimeout)
	proposalAPI := upstream.NewClient(cfg.ProposalAPIBaseURL, cfg.UpstreamTimeout)

	// Сервисы.
	sessions := service.NewSessionStore(cfg.SessionTTL)
	defer sessions.Close()
	proposalService := service.NewProposalService(sessions, proposalAPI, identityClient)

	// HTTP хэндлеры.
	formHandler := httpHandlers.NewFormHandler(proposalService)
	proposalHandler := httpHandlers.NewProposalHandler(proposalService)
	catalogHandler := httpHandlers.NewCatalogHandler()
	authHandler := httpHandlers.NewAuthHandler(identityClient)
	healthHandler := httpHandlers.NewHealthHandler()

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, formHandler, proposalHandler, catalogHandler, authHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	logger.WithComponent("main").Infof("сервер запущен на порту %s (env=%s)", cfg.HTTPPort, cfg.Env)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: ошибка http сервера: %v", err)
	}

	logger.WithComponent("main").Info("сервер остановлен")
}
