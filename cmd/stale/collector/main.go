package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/staleblocks/internal/dataset"
	"github.com/goodnatureofminers/staleblocks/internal/metrics"
	observed "github.com/goodnatureofminers/staleblocks/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/staleblocks/internal/rawblock"
	"github.com/goodnatureofminers/staleblocks/internal/service"
)

type config struct {
	RPCURL        string `long:"rpc-url" env:"STALE_COLLECTOR_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string `long:"rpc-user" env:"STALE_COLLECTOR_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string `long:"rpc-password" env:"STALE_COLLECTOR_RPC_PASSWORD" description:"Bitcoin RPC password"`
	Network       string `long:"network" env:"STALE_COLLECTOR_NETWORK" description:"network name used in metrics" default:"mainnet"`
	HeaderCSV     string `long:"header-csv" env:"STALE_COLLECTOR_HEADER_CSV" description:"dataset file" default:"stale-blocks.csv"`
	BlocksDir     string `long:"blocks-dir" env:"STALE_COLLECTOR_BLOCKS_DIR" description:"raw block directory" default:"blocks"`
	GetFullBlocks bool   `long:"get-full-blocks" env:"STALE_COLLECTOR_GET_FULL_BLOCKS" description:"download raw blocks of visited stale blocks"`
	Workers       int    `long:"workers" env:"STALE_COLLECTOR_WORKERS" description:"concurrent raw block downloads" default:"4"`
	MetricsAddr   string `long:"metrics-addr" env:"STALE_COLLECTOR_METRICS_ADDR" description:"address for metrics server, disabled when empty"`
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
		logger.Fatal("stale block collector failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	store, err := dataset.LoadFile(cfg.HeaderCSV)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.HeaderCSV, err)
	}
	logger.Info("loaded dataset", zap.String("path", cfg.HeaderCSV), zap.Int("records", store.Len()))

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init btc rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	rpc := observed.NewObservedClient(rpcClient, metrics.NewRPCClient(cfg.Network))

	collector, err := service.NewNodeCollector(
		rpc,
		store,
		rawblock.NewDir(cfg.BlocksDir),
		metrics.NewCollector("node"),
		logger,
		service.NodeCollectorConfig{
			FetchRawBlocks: cfg.GetFullBlocks,
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
		logger.Info("wrote dataset", zap.String("path", cfg.HeaderCSV), zap.Int("records", store.Len()))
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

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}
