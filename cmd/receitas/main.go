package main

import (
	"fmt"

	"github.com/Hipolitoneto/receitas/internal/adapter"
	"github.com/Hipolitoneto/receitas/internal/client"
	"github.com/Hipolitoneto/receitas/internal/config"
	"github.com/Hipolitoneto/receitas/internal/logger"
	"github.com/Hipolitoneto/receitas/internal/notify"
	"github.com/Hipolitoneto/receitas/internal/service"
	"github.com/Hipolitoneto/receitas/internal/store"
	"github.com/Hipolitoneto/receitas/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("receitas-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	remote, err := adapter.NewFromConfig(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	gateway := notify.NewLocalGateway(0)

	services := service.NewClientServices(remote, storages, gateway, cfg.Feed, log)

	ui, err := tui.New(services, gateway, cfg.App.Name, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
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
