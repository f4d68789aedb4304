// Package header decodes and hashes 80-byte Bitcoin block headers.
package header

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/staleblocks/internal/model"
)

// Size is the serialized length of a block header.
const Size = wire.MaxBlockHeaderPayload

// HexSize is the length of a hex encoded block header.
const HexSize = 2 * Size

// Header is a parsed block header that keeps its exact wire bytes.
type Header struct {
	raw  [Size]byte
	wire wire.BlockHeader
}

// Fields are the decoded header values, for display.
type Fields struct {
	Version      int32
	PreviousHash string
	MerkleRoot   string
	Timestamp    time.Time
	Bits         uint32
	Nonce        uint32
}

// Parse decodes a hex encoded header.
func Parse(s string) (*Header, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, &model.FormatError{Field: "header", Err: err}
	}
	return ParseBytes(raw)
}

// ParseBytes decodes exactly Size bytes of header.
func ParseBytes(raw []byte) (*Header, error) {
	if len(raw) != Size {
		return nil, &model.FormatError{
			Field: "header",
			Err:   fmt.Errorf("got %d bytes, want %d", len(raw), Size),
		}
	}

	h := &Header{}
	copy(h.raw[:], raw)
	if err := h.wire.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, &model.FormatError{Field: "header", Err: err}
	}
	return h, nil
}

// Bytes returns a copy of the wire bytes.
func (h *Header) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, h.raw[:])
	return out
}

// Hex returns the lowercase hex encoding of the wire bytes.
func (h *Header) Hex() string {
	return hex.EncodeToString(h.raw[:])
}

// IdentityHash returns the block hash in display byte order.
func (h *Header) IdentityHash() string {
	return IdentityHash(h.raw[:])
}

// PreviousHash returns the hash of the parent block in display byte order.
func (h *Header) PreviousHash() string {
	return h.wire.PrevBlock.String()
}

// Fields decodes the header values.
func (h *Header) Fields() Fields {
	return Fields{
		Version:      h.wire.Version,
		PreviousHash: h.wire.PrevBlock.String(),
		MerkleRoot:   h.wire.MerkleRoot.String(),
		Timestamp:    h.wire.Timestamp.UTC(),
		Bits:         h.wire.Bits,
		Nonce:        h.wire.Nonce,
	}
}

// IdentityHash computes double-SHA256 of raw and returns it byte-reversed as hex.
func IdentityHash(raw []byte) string {
	return chainhash.DoubleHashH(raw).String()
}
