package main

import (
	"context"
	"fmt"

	"github.com/wellmind/wellmind/internal/adapter"
	"github.com/wellmind/wellmind/internal/classifier"
	"github.com/wellmind/wellmind/internal/config"
	myHTTP "github.com/wellmind/wellmind/internal/handler/http"
	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/internal/server"
	"github.com/wellmind/wellmind/internal/service"
	"github.com/wellmind/wellmind/internal/store"
	"github.com/wellmind/wellmind/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("wellmind-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	emotionClassifier, err := classifier.New(cfg.Classifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading emotion model")
	}

	tipGenerator := adapter.NewGeminiTipGenerator(cfg.Tips, log)

	historyWriter := workers.NewHistoryWriter(storages.HistoryRepository, log)
	workers.NewWorkers(historyWriter).Run()
	defer historyWriter.Stop()

	services := service.NewServices(storages, emotionClassifier, tipGenerator, historyWriter, cfg.App, log)

	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
