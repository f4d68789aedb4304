package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/staleblocks/internal/dataset"
	"github.com/goodnatureofminers/staleblocks/internal/rawblock"
	"github.com/goodnatureofminers/staleblocks/internal/site"
)

type config struct {
	HeaderCSV string `long:"header-csv" env:"STALE_SITE_HEADER_CSV" description:"dataset file" default:"stale-blocks.csv"`
	BlocksDir string `long:"blocks-dir" env:"STALE_SITE_BLOCKS_DIR" description:"raw block directory" default:"blocks"`
	OutDir    string `long:"out-dir" env:"STALE_SITE_OUT_DIR" description:"output directory" default:"site"`
	RepoURL   string `long:"repo-url" env:"STALE_SITE_REPO_URL" description:"dataset repository URL" default:"https://github.com/bitcoin-data/stale-blocks"`
	BlocksURL string `long:"blocks-url" env:"STALE_SITE_BLOCKS_URL" description:"base URL of raw block downloads, derived from the repository URL when empty"`
}

func main() {
	cfg := config{}

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

	if err := run(cfg, logger); err != nil {
		logger.Fatal("site generator failed", zap.Error(err))
	}
}

func run(cfg config, logger *zap.Logger) error {
	store, err := dataset.LoadFile(cfg.HeaderCSV)
	if store == nil {
		return err
	}
	if err != nil {
		logger.Warn("dataset has problems, rendering the valid rows", zap.Error(err))
	}

	page, err := site.Build(store.Records(), rawblock.NewDir(cfg.BlocksDir), site.Options{
		RepoURL:   cfg.RepoURL,
		BlocksURL: cfg.BlocksURL,
	})
	if err != nil {
		return fmt.Errorf("build page: %w", err)
	}
	if err := site.WriteIndex(cfg.OutDir, page); err != nil {
		return err
	}
	logger.Info("generated site",
		zap.String("dir", cfg.OutDir),
		zap.Int("blocks", page.Total),
		zap.Int("with_header", page.WithHeader),
		zap.Int("with_block", page.WithBlock))
	return nil
}
