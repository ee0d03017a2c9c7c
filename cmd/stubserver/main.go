package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/corpcrawl/internal/application/backend"
	"github.com/jhoicas/corpcrawl/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/corpcrawl/internal/interfaces/http"
	"github.com/jhoicas/corpcrawl/pkg/config"
	"github.com/jhoicas/corpcrawl/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if cfg.JWT.Secret == "" {
		// Sin secreto no hay tokens verificables; en desarrollo usamos uno fijo.
		cfg.JWT.Secret = "corpcrawl-stub-secret"
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando stub server")

	users := memory.NewUserStore()
	crawls := memory.NewCrawlStore()
	companies := memory.NewCompanyStore()
	tokens := memory.NewTokenStore()
	content := memory.NewContentStore()
	plans := memory.NewPlanStore()

	authSvc := backend.NewAuthService(users, cfg.JWT, cfg.Stub.InitialCredits)
	crawlSvc := backend.NewCrawlService(users, crawls, companies, cfg.Stub.MaxBulkRows)
	tokenSvc := backend.NewTokenService(tokens)
	contentSvc := backend.NewContentService(content)
	adminSvc := backend.NewAdminService(users, plans)
	crmSvc := backend.NewCRMService("https://app.hubspot.com/oauth/authorize?client_id=stub")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:      authSvc,
		Crawl:     crawlSvc,
		Tokens:    tokenSvc,
		Content:   contentSvc,
		Admin:     adminSvc,
		CRM:       crmSvc,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("stub server detenido")
}
