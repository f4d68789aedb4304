// Package explorer talks to public block explorer HTTP APIs.
package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/staleblocks/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records explorer request outcomes.
	Metrics interface {
		Observe(operation, endpoint string, err error, started time.Time)
	}
)

// StaleTip is one entry of the mempool.space stale tips endpoint.
type StaleTip struct {
	Height uint64     `json:"height"`
	Hash   string     `json:"hash"`
	Stale  *StaleInfo `json:"stale"`
}

// StaleInfo carries the stale block details.
type StaleInfo struct {
	Extras struct {
		Header string `json:"header"`
	} `json:"extras"`
}

// Header returns the reported block header hex, or empty.
func (t StaleTip) Header() string {
	if t.Stale == nil {
		return ""
	}
	return t.Stale.Extras.Header
}

// BlockStatus is the esplora block status.
type BlockStatus struct {
	InBestChain bool   `json:"in_best_chain"`
	Height      uint64 `json:"height"`
	NextBest    string `json:"next_best"`
}

// Client queries explorer mirrors.
type Client struct {
	http      *resty.Client
	mirrors   []string
	statusAPI string
	limiter   ratelimit.Limiter
	metrics   Metrics
}

// NewClient builds a Client from cfg.
func NewClient(cfg Config, metrics Metrics) (*Client, error) {
	return newClient(cfg, resty.New(), metrics)
}

func newClient(cfg Config, rc *resty.Client, metrics Metrics) (*Client, error) {
	cfg = cfg.normalized()
	if len(cfg.Mirrors) == 0 {
		return nil, errors.New("at least one explorer mirror is required")
	}
	if metrics == nil {
		return nil, errors.New("explorer metrics is required")
	}
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.StatusRPS > 0 {
		limiter = ratelimit.New(cfg.StatusRPS)
	}

	return &Client{
		http:      rc,
		mirrors:   cfg.Mirrors,
		statusAPI: cfg.StatusAPI,
		limiter:   limiter,
		metrics:   metrics,
	}, nil
}

// Mirrors returns the configured mirror base URLs in order.
func (c *Client) Mirrors() []string {
	return append([]string(nil), c.mirrors...)
}

// StaleTips fetches the stale tips known to one mirror.
func (c *Client) StaleTips(ctx context.Context, mirror string) (tips []StaleTip, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("stale_tips", host(mirror), err, started)
	}()

	target := mirror + "/api/v1/stale-tips"
	body, err := c.get(ctx, target)
	if err != nil {
		return nil, &model.TransportError{Op: "fetch stale tips", Target: target, Err: err}
	}
	if err := json.Unmarshal(body, &tips); err != nil {
		return nil, &model.TransportError{Op: "decode stale tips", Target: target, Err: err}
	}
	return tips, nil
}

// RawBlock downloads a full block, trying each mirror in order. A response
// rejected by verify counts as a failure of that mirror.
func (c *Client) RawBlock(ctx context.Context, hash string, verify func([]byte) error) ([]byte, error) {
	var errs []error
	for _, mirror := range c.mirrors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := c.rawBlock(ctx, mirror, hash, verify)
		if err == nil {
			return data, nil
		}
		errs = append(errs, err)
	}
	return nil, &model.TransportError{Op: "fetch raw block", Target: hash, Err: errors.Join(errs...)}
}

func (c *Client) rawBlock(ctx context.Context, mirror, hash string, verify func([]byte) error) (data []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("raw_block", host(mirror), err, started)
	}()

	target := mirror + "/api/block/" + hash + "/raw"
	data, err = c.get(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}
	if verify != nil {
		if err := verify(data); err != nil {
			return nil, fmt.Errorf("%s: %w", target, err)
		}
	}
	return data, nil
}

// BlockStatus fetches the best chain status of a block. Calls are paced by
// the configured rate limit.
func (c *Client) BlockStatus(ctx context.Context, hash string) (status BlockStatus, err error) {
	c.limiter.Take()

	started := time.Now()
	defer func() {
		c.metrics.Observe("block_status", host(c.statusAPI), err, started)
	}()

	target := c.statusAPI + "/api/block/" + hash + "/status"
	body, err := c.get(ctx, target)
	if err != nil {
		return BlockStatus{}, &model.TransportError{Op: "fetch block status", Target: target, Err: err}
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return BlockStatus{}, &model.TransportError{Op: "decode block status", Target: target, Err: err}
	}
	return status, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(target)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %s", resp.Status())
	}
	return resp.Body(), nil
}

func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
