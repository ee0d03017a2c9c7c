package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/corpcrawl/internal/application/admin"
	"github.com/jhoicas/corpcrawl/internal/application/content"
	"github.com/jhoicas/corpcrawl/internal/application/crawl"
	"github.com/jhoicas/corpcrawl/internal/application/crm"
	"github.com/jhoicas/corpcrawl/internal/application/session"
	"github.com/jhoicas/corpcrawl/internal/application/tokens"
	"github.com/jhoicas/corpcrawl/internal/infrastructure/api"
	"github.com/jhoicas/corpcrawl/internal/infrastructure/store"
	"github.com/jhoicas/corpcrawl/internal/interfaces/cli"
	"github.com/jhoicas/corpcrawl/pkg/config"
	"github.com/jhoicas/corpcrawl/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	sessionDir, err := cfg.Session.Path()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sessionStore, err := store.NewFileStore(sessionDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// El cliente HTTP necesita la sesión para adjuntar el bearer y desmontarla
	// ante un 401, y la sesión necesita el gateway de auth; se enlazan en dos pasos.
	client := api.New(cfg.API, log)
	sess := session.New(sessionStore, client, log)
	client.BindSession(sess)
	sess.Restore()

	crawlSvc := crawl.NewService(client, sess, log)
	bulk := crawl.NewBulkController(client, log, nil)

	app := &cli.App{
		Session: sess,
		Crawl:   crawlSvc,
		Bulk:    bulk,
		Tokens:  tokens.NewUseCase(client),
		Content: content.NewUseCase(client),
		Admin:   admin.NewUseCase(client, sess),
		CRM:     crm.NewUseCase(client),
		Log:     log,
		Out:     os.Stdout,
		In:      os.Stdin,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", cli.Explain(err))
		os.Exit(1)
	}
}
