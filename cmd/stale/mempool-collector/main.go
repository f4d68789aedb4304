package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/staleblocks/internal/dataset"
	"github.com/goodnatureofminers/staleblocks/internal/explorer"
	"github.com/goodnatureofminers/staleblocks/internal/metrics"
	"github.com/goodnatureofminers/staleblocks/internal/rawblock"
	"github.com/goodnatureofminers/staleblocks/internal/service"
)

type config struct {
	ExplorerConfig string        `long:"explorer-config" env:"STALE_MEMPOOL_EXPLORER_CONFIG" description:"YAML file with the explorer mirror list"`
	Timeout        time.Duration `long:"timeout" env:"STALE_MEMPOOL_TIMEOUT" description:"HTTP timeout per explorer request, overrides the config file"`
	HeaderCSV      string        `long:"header-csv" env:"STALE_MEMPOOL_HEADER_CSV" description:"dataset file" default:"stale-blocks.csv"`
	BlocksDir      string        `long:"blocks-dir" env:"STALE_MEMPOOL_BLOCKS_DIR" description:"raw block directory" default:"blocks"`
	NoFullBlocks   bool          `long:"no-full-blocks" env:"STALE_MEMPOOL_NO_FULL_BLOCKS" description:"do not download raw blocks"`
	Workers        int           `long:"workers" env:"STALE_MEMPOOL_WORKERS" description:"concurrent raw block downloads" default:"2"`
	MetricsAddr    string        `long:"metrics-addr" env:"STALE_MEMPOOL_METRICS_ADDR" description:"address for metrics server, disabled when empty"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("mempool stale block collector failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	explorerCfg, err := explorer.LoadConfig(cfg.ExplorerConfig)
	if err != nil {
		return err
	}
	if cfg.Timeout > 0 {
		explorerCfg.Timeout = cfg.Timeout
	}
	client, err := explorer.NewClient(explorerCfg, metrics.NewExplorerClient())
	if err != nil {
		return fmt.Errorf("init explorer client: %w", err)
	}

	store, err := dataset.LoadFile(cfg.HeaderCSV)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.HeaderCSV, err)
	}
	before := store.Len()

	collector, err := service.NewMempoolCollector(
		client,
		store,
		rawblock.NewDir(cfg.BlocksDir),
		metrics.NewCollector("mempool"),
		logger,
		service.MempoolCollectorConfig{
			FetchRawBlocks: !cfg.NoFullBlocks,
			Workers:        cfg.Workers,
		},
	)
	if err != nil {
		return err
	}

	res, err := collector.Run(ctx)
	if err != nil {
		return err
	}

	changed, err := store.Save(cfg.HeaderCSV)
	if err != nil {
		return err
	}
	if changed {
		logger.Info("wrote dataset",
			zap.String("path", cfg.HeaderCSV),
			zap.Int("new", store.Len()-before),
			zap.Int("headers_filled", res.HeadersFilled))
	} else {
		logger.Info("no new stale blocks")
	}

	if res.HasConflicts() {
		return fmt.Errorf("%d observations conflict with recorded heights", len(res.Conflicts))
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
