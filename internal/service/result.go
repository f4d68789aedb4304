package service

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/staleblocks/internal/dataset"
	"github.com/goodnatureofminers/staleblocks/internal/header"
	"github.com/goodnatureofminers/staleblocks/internal/model"
)

// Result summarizes one collection run.
type Result struct {
	Tips          int
	Visited       int
	Added         int
	HeadersFilled int
	Failures      int
	RawSaved      int64
	RawFailed     int64
	Conflicts     []*model.ConflictError
}

// HasConflicts reports whether an observation disagreed with the stored height.
func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// merge upserts record into store and accounts the outcome. It reports
// whether the record was stored as new.
func merge(store Store, metrics CollectorMetrics, logger *zap.Logger, record model.Record, res *Result) bool {
	res.Visited++
	change, err := store.Upsert(record)
	if err != nil {
		var conflict *model.ConflictError
		if errors.As(err, &conflict) {
			metrics.ObserveRecord("conflict")
			res.Conflicts = append(res.Conflicts, conflict)
			logger.Error("conflicting observation", zap.Error(err))
			return false
		}
		metrics.ObserveRecord("rejected")
		res.Failures++
		logger.Warn("record rejected",
			zap.Uint64("height", record.Height),
			zap.String("hash", record.Hash),
			zap.Error(err))
		return false
	}

	switch change {
	case dataset.Added:
		metrics.ObserveRecord("added")
		res.Added++
		logger.Info("record added", zap.Uint64("height", record.Height), zap.String("hash", record.Hash))
		return true
	case dataset.HeaderFilled:
		metrics.ObserveRecord("header_filled")
		res.HeadersFilled++
		logger.Info("header filled", zap.Uint64("height", record.Height), zap.String("hash", record.Hash))
	default:
		metrics.ObserveRecord("unchanged")
	}
	return false
}

// bindRawBlock checks that raw starts with the header of hash.
func bindRawBlock(hash string, raw []byte) error {
	if len(raw) < header.Size {
		return fmt.Errorf("raw block %s is %d bytes, shorter than a header", hash, len(raw))
	}
	if got := header.IdentityHash(raw[:header.Size]); got != hash {
		return &model.BindingError{Hash: hash, Got: got, Expected: hash, Reason: "raw block does not hash to its name"}
	}
	return nil
}

func (r *Result) rawSaved() {
	atomic.AddInt64(&r.RawSaved, 1)
}

func (r *Result) rawFailed() {
	atomic.AddInt64(&r.RawFailed, 1)
}
