package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/realsense-capture-service/internal/config"
	"github.com/MKhiriev/realsense-capture-service/internal/handler"
	"github.com/MKhiriev/realsense-capture-service/internal/logger"
	"github.com/MKhiriev/realsense-capture-service/internal/server"
	"github.com/MKhiriev/realsense-capture-service/internal/service"
	"github.com/MKhiriev/realsense-capture-service/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("capture-server")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	resolver, err := service.NewFileConfigurationResolver(os.UserHomeDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating configuration resolver")
	}

	captureCfg, err := resolver.Resolve(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving capture configuration")
	}

	services := service.NewServices(captureCfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
