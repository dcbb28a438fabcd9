package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-employee-registry/internal/adapter"
	"github.com/MKhiriev/go-employee-registry/internal/client"
	"github.com/MKhiriev/go-employee-registry/internal/config"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/internal/store"
	"github.com/MKhiriev/go-employee-registry/internal/tui"
	"github.com/MKhiriev/go-employee-registry/internal/workers"
	"github.com/MKhiriev/go-employee-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("registry-client", cfg.App.LogFile)

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	dispatcher := workers.NewActivityDispatcher(cfg.Workers.ActivityQueueSize, log)
	services := service.NewClientServices(localStorage, backend, dispatcher, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(dispatcher), localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
