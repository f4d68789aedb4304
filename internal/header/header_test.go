package header

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodnatureofminers/staleblocks/internal/model"
)

const (
	block1Header = "010000006fe28c0ab6f1b372c1a6a246ae63f74f931e8365e15a089c68d6190000000000982051fd1e4ba744bbbe680e1fee14677ba1a3c3540bf7b1cdb606e857233e0e61bc6649ffff001d01e36299"
	block1Hash   = "00000000839a8e6886ab5951d76f411475428afc90947ee320161bbf18eb6048"
	genesisHash  = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
)

func TestParse(t *testing.T) {
	h, err := Parse(block1Header)
	require.NoError(t, err)

	assert.Equal(t, block1Header, h.Hex())
	assert.Equal(t, block1Hash, h.IdentityHash())
	assert.Equal(t, genesisHash, h.PreviousHash())
	assert.Len(t, h.Bytes(), Size)
}

func TestParse_RoundTrip(t *testing.T) {
	h, err := Parse(block1Header)
	require.NoError(t, err)

	again, err := ParseBytes(h.Bytes())
	require.NoError(t, err)
	assert.Equal(t, h, again)
	assert.Equal(t, h.IdentityHash(), again.IdentityHash())
}

func TestParse_AcceptsUpperCase(t *testing.T) {
	h, err := Parse(strings.ToUpper(block1Header))
	require.NoError(t, err)
	assert.Equal(t, block1Header, h.Hex())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not hex", input: strings.Repeat("zz", Size)},
		{name: "odd length", input: block1Header[:159]},
		{name: "too short", input: block1Header[:158]},
		{name: "too long", input: block1Header + "00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var formatErr *model.FormatError
			assert.True(t, errors.As(err, &formatErr), "want *model.FormatError, got %T", err)
		})
	}
}

func TestHeader_Fields(t *testing.T) {
	h, err := Parse(block1Header)
	require.NoError(t, err)

	f := h.Fields()
	assert.Equal(t, int32(1), f.Version)
	assert.Equal(t, genesisHash, f.PreviousHash)
	assert.Equal(t, "0e3e2357e806b6cdb1f70b54c3a3a17b6714ee1f0e68bebb44a74b1efd512098", f.MerkleRoot)
	assert.Equal(t, time.Unix(1231469665, 0).UTC(), f.Timestamp)
	assert.Equal(t, uint32(0x1d00ffff), f.Bits)
	assert.Equal(t, uint32(2573394689), f.Nonce)
}

func TestIdentityHash_Deterministic(t *testing.T) {
	h, err := Parse(block1Header)
	require.NoError(t, err)

	first := h.IdentityHash()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, h.IdentityHash())
	}
	assert.Equal(t, first, IdentityHash(h.Bytes()))
}
