package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/staleblocks/internal/header"
	"github.com/goodnatureofminers/staleblocks/internal/model"
	"github.com/goodnatureofminers/staleblocks/internal/rawblock"
	"github.com/goodnatureofminers/staleblocks/pkg/safe"
	"github.com/goodnatureofminers/staleblocks/pkg/workerpool"
)

// NodeCollectorConfig tunes a NodeCollector run.
type NodeCollectorConfig struct {
	// FetchRawBlocks downloads the full block of every visited record.
	FetchRawBlocks bool
	// Workers bounds concurrent raw block downloads.
	Workers int
}

// NodeCollector walks the stale branches reported by a node's getchaintips
// and merges every visited block into the store.
type NodeCollector struct {
	node    NodeClient
	store   Store
	blocks  RawBlocks
	metrics CollectorMetrics
	logger  *zap.Logger
	cfg     NodeCollectorConfig
}

func NewNodeCollector(
	node NodeClient,
	store Store,
	blocks RawBlocks,
	metrics CollectorMetrics,
	logger *zap.Logger,
	cfg NodeCollectorConfig,
) (*NodeCollector, error) {
	if node == nil {
		return nil, errors.New("node client is required")
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
	return &NodeCollector{
		node:    node,
		store:   store,
		blocks:  blocks,
		metrics: metrics,
		logger:  logger.Named("node_collector"),
		cfg:     cfg,
	}, nil
}

// Run performs one collection pass. A failing getchaintips or
// getblockchaininfo call is returned; per block failures are logged and
// counted. The store must not be persisted when Run returns an error.
func (c *NodeCollector) Run(ctx context.Context) (Result, error) {
	var res Result

	tips, err := c.node.GetChainTips()
	if err != nil {
		return res, &model.TransportError{Op: "getchaintips", Err: err}
	}

	var pruneHeight uint64
	if c.cfg.FetchRawBlocks {
		info, err := c.node.GetBlockChainInfo()
		if err != nil {
			return res, &model.TransportError{Op: "getblockchaininfo", Err: err}
		}
		if info.Pruned {
			if pruneHeight, err = safe.Uint64(info.PruneHeight); err != nil {
				return res, fmt.Errorf("prune height: %w", err)
			}
		}
	}

	var fetch []rawblock.Key
	for _, tip := range tips {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		t, err := toChainTip(tip.Height, tip.Hash, tip.Status, tip.BranchLen)
		if err != nil {
			res.Failures++
			c.logger.Warn("skip malformed chain tip", zap.String("hash", tip.Hash), zap.Error(err))
			continue
		}
		if !t.Stale() {
			continue
		}
		res.Tips++
		c.metrics.ObserveTip()
		fetch = append(fetch, c.walk(t, &res)...)
	}

	if c.cfg.FetchRawBlocks {
		if err := c.fetchRawBlocks(ctx, fetch, pruneHeight, &res); err != nil {
			return res, err
		}
	}

	c.logger.Info("collection finished",
		zap.Int("tips", res.Tips),
		zap.Int("visited", res.Visited),
		zap.Int("added", res.Added),
		zap.Int("headers_filled", res.HeadersFilled),
		zap.Int64("raw_saved", res.RawSaved),
		zap.Int64("raw_failed", res.RawFailed),
		zap.Int("conflicts", len(res.Conflicts)))
	return res, nil
}

// walk follows previous block links from the tip for BranchLen blocks, at
// least one. It returns the visited blocks.
func (c *NodeCollector) walk(tip model.ChainTip, res *Result) []rawblock.Key {
	steps := tip.BranchLen
	if steps == 0 {
		steps = 1
	}

	var visited []rawblock.Key
	hash, height := tip.Hash, tip.Height
	for i := uint64(0); i < steps && height > 0; i++ {
		hdr, err := c.header(hash)
		if err != nil {
			res.Failures++
			c.logger.Warn("fetch header failed, abandoning branch",
				zap.Uint64("height", height),
				zap.String("hash", hash),
				zap.String("tip", tip.Hash),
				zap.Error(err))
			return visited
		}

		merge(c.store, c.metrics, c.logger, model.Record{Height: height, Hash: hash, Header: hdr.Hex()}, res)
		if stored, ok := c.store.Get(hash); ok && stored.Height == height {
			visited = append(visited, rawblock.Key{Height: height, Hash: hash})
		}

		hash = hdr.PreviousHash()
		height--
	}
	return visited
}

// header returns the header of hash, from the store when already known.
func (c *NodeCollector) header(hash string) (*header.Header, error) {
	if known, ok := c.store.Get(hash); ok && known.HasHeader() {
		return header.Parse(known.Header)
	}

	h, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return nil, fmt.Errorf("parse hash: %w", err)
	}
	bh, err := c.node.GetBlockHeader(h)
	if err != nil {
		return nil, &model.TransportError{Op: "getblockheader", Target: hash, Err: err}
	}
	var buf bytes.Buffer
	if err := bh.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize header: %w", err)
	}
	hdr, err := header.ParseBytes(buf.Bytes())
	if err != nil {
		return nil, err
	}
	if got := hdr.IdentityHash(); got != hash {
		return nil, &model.BindingError{Hash: hash, Got: got, Expected: hash, Reason: "node header does not hash to requested hash"}
	}
	return hdr, nil
}

func (c *NodeCollector) fetchRawBlocks(ctx context.Context, keys []rawblock.Key, pruneHeight uint64, res *Result) error {
	var pending []rawblock.Key
	for _, key := range keys {
		if key.Height < pruneHeight {
			c.logger.Debug("skip pruned block", zap.Uint64("height", key.Height), zap.String("hash", key.Hash))
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

	err := workerpool.ProcessAll(ctx, c.cfg.Workers, pending, func(ctx context.Context, key rawblock.Key) error {
		if ctx.Err() != nil {
			return nil
		}
		err := c.fetchRawBlock(key)
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
	return err
}

func (c *NodeCollector) fetchRawBlock(key rawblock.Key) error {
	h, err := chainhash.NewHashFromStr(key.Hash)
	if err != nil {
		return fmt.Errorf("parse hash: %w", err)
	}
	block, err := c.node.GetBlock(h)
	if err != nil {
		return &model.TransportError{Op: "getblock", Target: key.Hash, Err: err}
	}
	var buf bytes.Buffer
	if err := block.Serialize(&buf); err != nil {
		return fmt.Errorf("serialize block: %w", err)
	}
	raw := buf.Bytes()
	if err := bindRawBlock(key.Hash, raw); err != nil {
		return err
	}
	return c.blocks.Write(key.Height, key.Hash, raw)
}

func toChainTip(height int32, hash, status string, branchLen int32) (model.ChainTip, error) {
	h, err := safe.Height(height)
	if err != nil {
		return model.ChainTip{}, fmt.Errorf("height: %w", err)
	}
	l, err := safe.Uint64(branchLen)
	if err != nil {
		return model.ChainTip{}, fmt.Errorf("branch length: %w", err)
	}
	return model.ChainTip{Height: h, Hash: hash, Status: model.TipStatus(status), BranchLen: l}, nil
}
