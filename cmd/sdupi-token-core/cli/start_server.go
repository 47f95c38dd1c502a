package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sdupi-network/sdupi-token-core/consumer"
	"github.com/sdupi-network/sdupi-token-core/internal/api"
	"github.com/sdupi-network/sdupi-token-core/internal/clients/webhookclient"
	"github.com/sdupi-network/sdupi-token-core/internal/config"
	"github.com/sdupi-network/sdupi-token-core/internal/db"
	dbmodel "github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/metrics"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/tracing"
	"github.com/sdupi-network/sdupi-token-core/internal/queue"
	"github.com/sdupi-network/sdupi-token-core/internal/services"
)

const finalSnapshotTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the SDUPI token core server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	var sinks []consumer.EventSink
	if cfg.Queue != nil {
		queueManager, err := queue.NewQueueManager(cfg.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize queue manager")
		}
		sinks = append(sinks, queueManager)
	}
	if cfg.Webhook != nil {
		sinks = append(sinks, webhookclient.NewClient(cfg.Webhook))
	}
	for _, sink := range sinks {
		if err := sink.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start event sink")
		}
	}

	service := services.NewService(cfg, dbClient, sinks...)
	if err := service.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap ledger service")
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartSnapshotPoller(ctx)
	service.StartStatsPoller(ctx)

	if err := api.New(cfg, service).Start(ctx); err != nil {
		log.Error().Err(err).Msg("API server stopped with error")
	}

	// Final snapshot so nothing applied since the last poll is lost on a
	// clean shutdown.
	snapshotCtx, cancel := context.WithTimeout(context.Background(), finalSnapshotTimeout)
	defer cancel()
	if err := service.PersistSnapshot(snapshotCtx); err != nil {
		log.Error().Err(err).Msg("failed to persist final snapshot")
	}

	for _, sink := range sinks {
		if err := sink.Stop(); err != nil {
			log.Error().Err(err).Msg("failed to stop event sink")
		}
	}

	return nil
}
