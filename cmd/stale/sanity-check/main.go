package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/staleblocks/internal/dataset"
	"github.com/goodnatureofminers/staleblocks/internal/rawblock"
	"github.com/goodnatureofminers/staleblocks/internal/validator"
)

type config struct {
	HeaderCSV  string `long:"header-csv" env:"STALE_CHECK_HEADER_CSV" description:"dataset file" default:"stale-blocks.csv"`
	BlocksDir  string `long:"blocks-dir" env:"STALE_CHECK_BLOCKS_DIR" description:"raw block directory" default:"blocks"`
	SkipBlocks bool   `long:"skip-blocks" env:"STALE_CHECK_SKIP_BLOCKS" description:"do not cross-check raw block files"`
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

	report, err := run(cfg)
	if err != nil {
		logger.Fatal("sanity check failed", zap.Error(err))
	}

	if !report.OK() {
		for _, problem := range report.Problems {
			fmt.Println(problem)
		}
		fmt.Printf("sanity-check failed: %d problem(s)\n", len(report.Problems))
		_ = logger.Sync()
		os.Exit(1)
	}
	fmt.Printf("sanity-check successful: %d row(s), %d header(s), %d raw block(s) verified\n",
		report.Rows, report.Headers, report.RawBlocks)
}

func run(cfg config) (validator.Report, error) {
	f, err := os.Open(cfg.HeaderCSV)
	if err != nil {
		return validator.Report{}, fmt.Errorf("open dataset: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := dataset.ReadRows(f)
	if err != nil {
		return validator.Report{}, err
	}

	var blocks validator.RawBlocks
	if !cfg.SkipBlocks {
		blocks = rawblock.NewDir(cfg.BlocksDir)
	}
	return validator.Validate(rows, blocks), nil
}
