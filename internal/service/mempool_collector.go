package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/staleblocks/internal/header"
	"github.com/goodnatureofminers/staleblocks/internal/model"
	"github.com/goodnatureofminers/staleblocks/internal/rawblock"
	"github.com/goodnatureofminers/staleblocks/pkg/workerpool"
)

// MempoolCollectorConfig tunes a MempoolCollector run.
type MempoolCollectorConfig struct {
	FetchRawBlocks bool
	Workers        int
}

// MempoolCollector merges the stale tips published by mempool.space style
// explorers into the store.
type MempoolCollector struct {
	explorer ExplorerClient
	store    Store
	blocks   RawBlocks
	metrics  CollectorMetrics
	logger   *zap.Logger
	cfg      MempoolCollectorConfig
}

func NewMempoolCollector(
	explorer ExplorerClient,
	store Store,
	blocks RawBlocks,
	metrics CollectorMetrics,
	logger *zap.Logger,
	cfg MempoolCollectorConfig,
) (*MempoolCollector, error) {
	if explorer == nil {
		return nil, errors.New("explorer client is required")
	}
	if store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.FetchRawBlocks && blocks == nil {
		return nil, errors.New("raw block directory is required to fetch raw blocks")
	}
	if metrics == nil {
		return nil, errors.New("collector metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &MempoolCollector{
		explorer: explorer,
		store:    store,
		blocks:   blocks,
		metrics:  metrics,
		logger:   logger.Named("mempool_collector"),
		cfg:      cfg,
	}, nil
}

// Run queries every mirror. It fails only when no mirror answered.
func (c *MempoolCollector) Run(ctx context.Context) (Result, error) {
	var (
		res      Result
		answered int
		errs     []error
		fetch    []rawblock.Key
		queued   = make(map[string]struct{})
	)

	for _, mirror := range c.explorer.Mirrors() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		tips, err := c.explorer.StaleTips(ctx, mirror)
		if err != nil {
			errs = append(errs, err)
			c.logger.Warn("fetch stale tips failed", zap.String("mirror", mirror), zap.Error(err))
			continue
		}
		answered++
		c.logger.Info("fetched stale tips", zap.String("mirror", mirror), zap.Int("tips", len(tips)))

		for _, tip := range tips {
			record, ok := c.record(mirror, tip.Height, tip.Hash, tip.Header())
			if !ok {
				continue
			}
			res.Tips++
			c.metrics.ObserveTip()
			merge(c.store, c.metrics, c.logger, record, &res)

			if _, dup := queued[record.Hash]; !dup {
				queued[record.Hash] = struct{}{}
				fetch = append(fetch, rawblock.Key{Height: record.Height, Hash: record.Hash})
			}
		}
	}

	if answered == 0 {
		return res, &model.TransportError{Op: "stale-tips", Target: "all mirrors", Err: errors.Join(errs...)}
	}

	if c.cfg.FetchRawBlocks {
		if err := c.fetchRawBlocks(ctx, fetch, &res); err != nil {
			return res, err
		}
	}

	c.logger.Info("collection finished",
		zap.Int("mirrors_answered", answered),
		zap.Int("tips", res.Tips),
		zap.Int("added", res.Added),
		zap.Int("headers_filled", res.HeadersFilled),
		zap.Int64("raw_saved", res.RawSaved),
		zap.Int64("raw_failed", res.RawFailed),
		zap.Int("conflicts", len(res.Conflicts)))
	return res, nil
}

// record turns an explorer tip into a record. Tips without header or with a
// header that does not hash to the tip hash are dropped.
func (c *MempoolCollector) record(mirror string, height uint64, hash, headerHex string) (model.Record, bool) {
	if headerHex == "" {
		c.logger.Debug("skip tip without header", zap.String("mirror", mirror), zap.String("hash", hash))
		return model.Record{}, false
	}
	hdr, err := header.Parse(headerHex)
	if err != nil {
		c.logger.Warn("skip tip with malformed header", zap.String("mirror", mirror), zap.String("hash", hash), zap.Error(err))
		return model.Record{}, false
	}
	if got := hdr.IdentityHash(); got != hash {
		c.logger.Warn("skip tip with unbound header",
			zap.String("mirror", mirror),
			zap.String("hash", hash),
			zap.String("header_hash", got))
		return model.Record{}, false
	}
	return model.Record{Height: height, Hash: hash, Header: hdr.Hex()}, true
}

func (c *MempoolCollector) fetchRawBlocks(ctx context.Context, keys []rawblock.Key, res *Result) error {
	var pending []rawblock.Key
	for _, key := range keys {
		// skip tips the store rejected or holds at another height
		if stored, ok := c.store.Get(key.Hash); !ok || stored.Height != key.Height {
			continue
		}
		has, err := c.blocks.Has(key.Height, key.Hash)
		if err != nil {
			res.rawFailed()
			c.logger.Warn("stat raw block failed", zap.String("file", key.FileName()), zap.Error(err))
			continue
		}
		if !has {
			pending = append(pending, key)
		}
	}

	return workerpool.ProcessAll(ctx, c.cfg.Workers, pending, func(ctx context.Context, key rawblock.Key) error {
		if ctx.Err() != nil {
			return nil
		}
		raw, err := c.explorer.RawBlock(ctx, key.Hash, func(raw []byte) error {
			return bindRawBlock(key.Hash, raw)
		})
		if err == nil {
			err = c.blocks.Write(key.Height, key.Hash, raw)
		}
		c.metrics.ObserveRawBlock(err)
		if err != nil {
			res.rawFailed()
			c.logger.Warn("fetch raw block failed", zap.String("file", key.FileName()), zap.Error(err))
			return nil
		}
		res.rawSaved()
		c.logger.Info("saved raw block", zap.String("file", key.FileName()))
		return nil
	})
}
