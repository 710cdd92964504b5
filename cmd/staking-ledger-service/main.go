package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/stakevault/staking-ledger-service/cmd/staking-ledger-service/cli"
	"github.com/stakevault/staking-ledger-service/internal/api"
	"github.com/stakevault/staking-ledger-service/internal/attestation"
	"github.com/stakevault/staking-ledger-service/internal/clients"
	"github.com/stakevault/staking-ledger-service/internal/config"
	"github.com/stakevault/staking-ledger-service/internal/db/model"
	"github.com/stakevault/staking-ledger-service/internal/events"
	"github.com/stakevault/staking-ledger-service/internal/observability/healthcheck"
	"github.com/stakevault/staking-ledger-service/internal/observability/metrics"
	"github.com/stakevault/staking-ledger-service/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	if err := model.Setup(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger db model")
	}

	emitter, err := events.NewRabbitMqClient(&cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("error while connecting to the event queue")
	}

	externalClients := clients.New(cfg)
	verifier := attestation.NewEcdsaVerifier()

	services, err := services.New(ctx, cfg, externalClients.Custody, verifier, emitter)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger services layer")
	}

	if err := healthcheck.StartHealthCheckCron(ctx, emitter, cfg.Server.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger api server")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting ledger api server")
	}
}
