package main

import (
	"context"
	"fmt"

	"github.com/boardhive/jobboard/internal/config"
	myHTTP "github.com/boardhive/jobboard/internal/handler/http"
	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/mailer"
	"github.com/boardhive/jobboard/internal/objectstore"
	"github.com/boardhive/jobboard/internal/server"
	"github.com/boardhive/jobboard/internal/service"
	"github.com/boardhive/jobboard/internal/store"
	"github.com/boardhive/jobboard/internal/workers"
	"github.com/boardhive/jobboard/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("jobboard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	blobs, err := objectstore.NewS3Store(ctx, cfg.ObjectStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object store")
	}

	mail, err := mailer.NewHTTPMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	mailWorker := workers.NewMailWorker(mail, cfg.Workers.MailQueueSize, cfg.Mail.RequestTimeout, log)
	workers.NewWorkers(mailWorker).Run()

	services := service.NewServices(*storages, blobs, mailWorker, cfg, log)
	handler := myHTTP.NewHandler(services, blobs, cfg.App, log)

	drainMail := func(ctx context.Context) {
		if err := mailWorker.Shutdown(ctx); err != nil {
			log.Err(err).Msg("error draining mail worker")
		}
	}

	srv, err := server.NewServer(handler.Init(), cfg.Server, log, drainMail)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
