package service

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const (
	block1Hash   = "00000000839a8e6886ab5951d76f411475428afc90947ee320161bbf18eb6048"
	block1Header = "010000006fe28c0ab6f1b372c1a6a246ae63f74f931e8365e15a089c68d6190000000000982051fd1e4ba744bbbe680e1fee14677ba1a3c3540bf7b1cdb606e857233e0e61bc6649ffff001d01e36299"
	block2Hash   = "000000006a625f06636b8bb6ac7b960a8d03705d1ace08b1a19da3fdcc99ddbd"
	block2Header = "010000004860eb18bf1b1620e37e9490fc8a427514416fd75159ab86688e9a8300000000d5fdcc541e25de1c7a5addedf24858b8bb665c9f36ef744ee42c316022c90f9bb0bc6649ffff001d08d2bd61"
)

func wireHeader(t *testing.T, s string) *wire.BlockHeader {
	t.Helper()
	raw, err := hex.DecodeString(s)
	require.NoError(t, err)
	var bh wire.BlockHeader
	require.NoError(t, bh.Deserialize(bytes.NewReader(raw)))
	return &bh
}

func hashOf(t *testing.T, s string) *chainhash.Hash {
	t.Helper()
	h, err := chainhash.NewHashFromStr(s)
	require.NoError(t, err)
	return h
}

// rawBlock is a header followed by an empty transaction count.
func rawBlock(t *testing.T, headerHex string) []byte {
	t.Helper()
	raw, err := hex.DecodeString(headerHex + "00")
	require.NoError(t, err)
	return raw
}

func anyMetrics(ctrl *gomock.Controller) *MockCollectorMetrics {
	m := NewMockCollectorMetrics(ctrl)
	m.EXPECT().ObserveTip().AnyTimes()
	m.EXPECT().ObserveRecord(gomock.Any()).AnyTimes()
	m.EXPECT().ObserveRawBlock(gomock.Any()).AnyTimes()
	return m
}
