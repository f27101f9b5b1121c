package common

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTxLegacy(t *testing.T) {
	p := legacyParams()
	p.Value = BigParam(big.NewInt(7))
	p.Data = []byte{0x01}

	tx, err := BuildTx(p, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, uint8(types.LegacyTxType), tx.Type())
	assert.Equal(t, uint64(21000), tx.Gas())
	assert.Equal(t, int64(1e9), tx.GasPrice().Int64())
	assert.Equal(t, int64(7), tx.Value().Int64())
	assert.Equal(t, *p.To, *tx.To())
	assert.Equal(t, []byte{0x01}, tx.Data())
}

func TestBuildTxDynamicFeeDefaultsTipToZero(t *testing.T) {
	p := legacyParams()
	p.GasPrice = nil
	p.MaxFeePerGas = BigParam(big.NewInt(3e9))

	tx, err := BuildTx(p, big.NewInt(10))
	require.NoError(t, err)
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, int64(10), tx.ChainId().Int64())
	assert.Equal(t, int64(3e9), tx.GasFeeCap().Int64())
	assert.Equal(t, int64(0), tx.GasTipCap().Int64())
}

func TestBuildTxContractCreation(t *testing.T) {
	p := legacyParams()
	p.To = nil
	tx, err := BuildTx(p, big.NewInt(1))
	require.NoError(t, err)
	assert.Nil(t, tx.To())
}

func TestBuildTxNeedsChainIDAndCompleteParams(t *testing.T) {
	_, err := BuildTx(legacyParams(), nil)
	require.Error(t, err)

	p := legacyParams()
	p.Nonce = nil
	_, err = BuildTx(p, big.NewInt(1))
	require.Error(t, err)
}

func TestEncodeSignedTxAndHash(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	tx, err := BuildTx(legacyParams(), big.NewInt(1))
	require.NoError(t, err)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(1)), key)
	require.NoError(t, err)

	payload, err := EncodeSignedTx(signed)
	require.NoError(t, err)
	assert.Regexp(t, "^0x[0-9a-f]+$", payload)

	hash, err := RawTxToHash(payload)
	require.NoError(t, err)
	assert.Equal(t, signed.Hash().Hex(), hash)

	_, err = RawTxToHash("nothex")
	assert.Error(t, err)
}
