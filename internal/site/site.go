// Package site renders the static overview page of the dataset.
package site

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/staleblocks/internal/header"
	"github.com/goodnatureofminers/staleblocks/internal/model"
	"github.com/goodnatureofminers/staleblocks/pkg/atomicfile"
)

// DefaultRepoURL is the public home of the dataset.
const DefaultRepoURL = "https://github.com/bitcoin-data/stale-blocks"

//go:embed index.html.tmpl
var indexTemplate string

var tmpl = template.Must(template.New("index").Parse(indexTemplate))

// RawBlocks reads raw block files.
type RawBlocks interface {
	Has(height uint64, hash string) (bool, error)
	Read(height uint64, hash string) ([]byte, error)
}

// Options configure links on the page.
type Options struct {
	RepoURL   string
	BlocksURL string
}

func (o Options) normalized() Options {
	o.RepoURL = strings.TrimSuffix(o.RepoURL, "/")
	if o.RepoURL == "" {
		o.RepoURL = DefaultRepoURL
	}
	o.BlocksURL = strings.TrimSuffix(o.BlocksURL, "/")
	if o.BlocksURL == "" {
		o.BlocksURL = o.RepoURL + "/raw/master/blocks"
	}
	return o
}

// Page is the data behind index.html.
type Page struct {
	RepoURL    string
	Total      int
	WithHeader int
	WithBlock  int
	Rows       []Row
}

// Row is one dataset record with what is known about it.
type Row struct {
	Height   uint64
	Hash     string
	Header   *header.Fields
	BlockURL string
	TxCount  int
	Size     int
	BlockErr string
}

// Time formats the header timestamp.
func (r Row) Time() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Timestamp.Format(time.DateTime)
}

// Build assembles the page. records are expected in dataset order. A raw
// block that cannot be decoded is shown as such; read failures are returned.
func Build(records []model.Record, blocks RawBlocks, opts Options) (Page, error) {
	opts = opts.normalized()
	page := Page{RepoURL: opts.RepoURL, Total: len(records), Rows: make([]Row, 0, len(records))}

	for _, r := range records {
		row := Row{Height: r.Height, Hash: r.Hash}
		if r.HasHeader() {
			hdr, err := header.Parse(r.Header)
			if err != nil {
				return Page{}, fmt.Errorf("header of %s: %w", r.Hash, err)
			}
			fields := hdr.Fields()
			row.Header = &fields
			page.WithHeader++
		}

		if blocks != nil {
			if err := fillBlock(&row, blocks, opts.BlocksURL); err != nil {
				return Page{}, err
			}
			if row.BlockURL != "" {
				page.WithBlock++
			}
		}
		page.Rows = append(page.Rows, row)
	}
	return page, nil
}

func fillBlock(row *Row, blocks RawBlocks, blocksURL string) error {
	has, err := blocks.Has(row.Height, row.Hash)
	if err != nil {
		return fmt.Errorf("stat raw block %d-%s: %w", row.Height, row.Hash, err)
	}
	if !has {
		return nil
	}
	raw, err := blocks.Read(row.Height, row.Hash)
	if err != nil {
		return fmt.Errorf("read raw block %d-%s: %w", row.Height, row.Hash, err)
	}

	row.BlockURL = fmt.Sprintf("%s/%d-%s.bin", blocksURL, row.Height, row.Hash)
	row.Size = len(raw)
	block, err := btcutil.NewBlockFromBytes(raw)
	if err != nil {
		row.BlockErr = "undecodable"
		return nil
	}
	row.TxCount = len(block.Transactions())
	return nil
}

// Render writes the page as HTML.
func Render(w io.Writer, page Page) error {
	return tmpl.Execute(w, page)
}

// WriteIndex renders page into dir/index.html, replacing it atomically.
func WriteIndex(dir string, page Page) error {
	if dir == "" {
		return errors.New("output directory is required")
	}
	var sb strings.Builder
	if err := Render(&sb, page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return atomicfile.Write(filepath.Join(dir, "index.html"), []byte(sb.String()), 0o644)
}
