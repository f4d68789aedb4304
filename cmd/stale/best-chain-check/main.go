package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/staleblocks/internal/dataset"
	"github.com/goodnatureofminers/staleblocks/internal/explorer"
	"github.com/goodnatureofminers/staleblocks/internal/metrics"
	"github.com/goodnatureofminers/staleblocks/internal/service"
)

type config struct {
	HeaderCSV      string `long:"header-csv" env:"STALE_BESTCHAIN_HEADER_CSV" description:"dataset file, - reads stdin" default:"stale-blocks.csv"`
	ExplorerConfig string `long:"explorer-config" env:"STALE_BESTCHAIN_EXPLORER_CONFIG" description:"YAML file with the explorer configuration"`
	StatusAPI      string `long:"status-api" env:"STALE_BESTCHAIN_STATUS_API" description:"esplora base URL, overrides the config file"`
	RPS            int    `long:"rps" env:"STALE_BESTCHAIN_RPS" description:"status requests per second, overrides the config file"`
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

	checked, problems, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("best chain check failed", zap.Error(err))
	}
	if len(problems) > 0 {
		for _, problem := range problems {
			fmt.Println(problem)
		}
		fmt.Printf("not-in-best-chain-check failed: %d problem(s)\n", len(problems))
		_ = logger.Sync()
		os.Exit(1)
	}
	fmt.Printf("not-in-best-chain-check successful: %d row(s) checked\n", checked)
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (int, []error, error) {
	explorerCfg, err := explorer.LoadConfig(cfg.ExplorerConfig)
	if err != nil {
		return 0, nil, err
	}
	if cfg.StatusAPI != "" {
		explorerCfg.StatusAPI = cfg.StatusAPI
	}
	if cfg.RPS > 0 {
		explorerCfg.StatusRPS = cfg.RPS
	}
	client, err := explorer.NewClient(explorerCfg, metrics.NewExplorerClient())
	if err != nil {
		return 0, nil, fmt.Errorf("init explorer client: %w", err)
	}

	rows, err := readRows(cfg.HeaderCSV)
	if err != nil {
		return 0, nil, err
	}
	entries, problems := dataset.Check(rows)

	valid := make([]dataset.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.HeightOK && entry.HashOK {
			valid = append(valid, entry)
		}
	}

	checker, err := service.NewBestChainChecker(client, logger)
	if err != nil {
		return 0, nil, err
	}
	problems = append(problems, checker.Check(ctx, valid)...)
	return len(valid), problems, nil
}

func readRows(path string) ([]dataset.Row, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}
	return dataset.ReadRows(r)
}
