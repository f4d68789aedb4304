// Package rawblock manages the directory of full serialized stale blocks.
package rawblock

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/staleblocks/internal/header"
	"github.com/goodnatureofminers/staleblocks/internal/model"
	"github.com/goodnatureofminers/staleblocks/pkg/atomicfile"
)

const ext = ".bin"

// Key names one raw block file.
type Key struct {
	Height uint64
	Hash   string
}

// FileName returns "{height}-{hash}.bin".
func (k Key) FileName() string {
	return FileName(k.Height, k.Hash)
}

// FileName returns the raw block file name for a block.
func FileName(height uint64, hash string) string {
	return strconv.FormatUint(height, 10) + "-" + hash + ext
}

// Dir is a directory of raw block files.
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Path returns the file path for a block.
func (d *Dir) Path(height uint64, hash string) string {
	return filepath.Join(d.root, FileName(height, hash))
}

// Has reports whether the raw block file exists.
func (d *Dir) Has(height uint64, hash string) (bool, error) {
	_, err := os.Stat(d.Path(height, hash))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Header returns the first header.Size bytes of the raw block file. ok is
// false when the file does not exist.
func (d *Dir) Header(height uint64, hash string) (raw []byte, ok bool, err error) {
	f, err := os.Open(d.Path(height, hash))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	raw = make([]byte, header.Size)
	n, err := io.ReadFull(f, raw)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return nil, true, &model.FormatError{
			Field: "raw block " + FileName(height, hash),
			Err:   fmt.Errorf("file has %d bytes, shorter than a header", n),
		}
	}
	if err != nil {
		return nil, true, err
	}
	return raw, true, nil
}

// Read returns the full raw block.
func (d *Dir) Read(height uint64, hash string) ([]byte, error) {
	return os.ReadFile(d.Path(height, hash))
}

// Write atomically stores a raw block, creating the directory when needed.
func (d *Dir) Write(height uint64, hash string, data []byte) error {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("create blocks dir: %w", err)
	}
	return atomicfile.Write(d.Path(height, hash), data, 0o644)
}

// List returns the keys of all well-named raw block files, ordered by height
// descending then hash descending. A missing directory is empty.
func (d *Dir) List() ([]Key, error) {
	entries, err := os.ReadDir(d.root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	keys := make([]Key, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if k, ok := ParseFileName(e.Name()); ok {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Height != keys[j].Height {
			return keys[i].Height > keys[j].Height
		}
		return keys[i].Hash > keys[j].Hash
	})
	return keys, nil
}

// ParseFileName parses "{height}-{hash}.bin".
func ParseFileName(name string) (Key, bool) {
	base, found := strings.CutSuffix(name, ext)
	if !found {
		return Key{}, false
	}
	heightPart, hash, found := strings.Cut(base, "-")
	if !found || len(hash) != 64 {
		return Key{}, false
	}
	height, err := strconv.ParseUint(heightPart, 10, 64)
	if err != nil || height == 0 {
		return Key{}, false
	}
	return Key{Height: height, Hash: hash}, true
}
