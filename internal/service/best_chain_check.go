package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/staleblocks/internal/dataset"
	"github.com/goodnatureofminers/staleblocks/internal/model"
)

// BestChainChecker asserts that no dataset row is part of the best chain
// according to an explorer.
type BestChainChecker struct {
	explorer ExplorerClient
	logger   *zap.Logger
}

func NewBestChainChecker(explorer ExplorerClient, logger *zap.Logger) (*BestChainChecker, error) {
	if explorer == nil {
		return nil, errors.New("explorer client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BestChainChecker{explorer: explorer, logger: logger.Named("best_chain_check")}, nil
}

// Check queries the status of every entry. Blocks in the best chain yield a
// *model.BestChainError, failed lookups a *model.TransportError. All problems
// are returned; a done ctx stops the run and is reported last.
func (c *BestChainChecker) Check(ctx context.Context, entries []dataset.Entry) []error {
	var problems []error
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return append(problems, err)
		}
		r := entry.Record
		status, err := c.explorer.BlockStatus(ctx, r.Hash)
		if err != nil {
			var transportErr *model.TransportError
			if !errors.As(err, &transportErr) {
				err = &model.TransportError{Op: "block status", Target: r.Hash, Err: err}
			}
			problems = append(problems, err)
			c.logger.Warn("block status failed", zap.Int("line", entry.Line), zap.String("hash", r.Hash), zap.Error(err))
			continue
		}
		c.logger.Debug("checked row", zap.Int("line", entry.Line), zap.String("hash", r.Hash), zap.Bool("in_best_chain", status.InBestChain))
		if status.InBestChain {
			problems = append(problems, &model.BestChainError{Line: entry.Line, Height: r.Height, Hash: r.Hash})
		}
	}
	return problems
}
