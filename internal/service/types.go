package service

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/staleblocks/internal/dataset"
	"github.com/goodnatureofminers/staleblocks/internal/explorer"
	"github.com/goodnatureofminers/staleblocks/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeClient interface {
		GetChainTips() ([]*btcjson.GetChainTipsResult, error)
		GetBlockHeader(blockHash *chainhash.Hash) (*wire.BlockHeader, error)
		GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error)
		GetBlockChainInfo() (*btcjson.GetBlockChainInfoResult, error)
	}
	ExplorerClient interface {
		Mirrors() []string
		StaleTips(ctx context.Context, mirror string) ([]explorer.StaleTip, error)
		RawBlock(ctx context.Context, hash string, verify func([]byte) error) ([]byte, error)
		BlockStatus(ctx context.Context, hash string) (explorer.BlockStatus, error)
	}
	Store interface {
		Get(hash string) (model.Record, bool)
		Upsert(r model.Record) (dataset.Change, error)
	}
	RawBlocks interface {
		Has(height uint64, hash string) (bool, error)
		Write(height uint64, hash string, data []byte) error
	}
	CollectorMetrics interface {
		ObserveTip()
		ObserveRecord(outcome string)
		ObserveRawBlock(err error)
	}
)
