package common

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// RawTxToHash returns valid hex data of a transaction to
// transaction hash
func RawTxToHash(data string) (string, error) {
	raw, err := hexutil.Decode(data)
	if err != nil {
		return "", err
	}
	return crypto.Keccak256Hash(raw).Hex(), nil
}

// BuildTx turns the params into an unsigned transaction for chainID.
// It never fills in missing fields, see TxParams.Validate.
func BuildTx(params TxParams, chainID *big.Int) (*types.Transaction, error) {
	if chainID == nil {
		return nil, fmt.Errorf("chain id is required")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.IsDynamicFee() {
		tip := big.NewInt(0)
		if params.MaxPriorityFeePerGas != nil {
			tip = new(big.Int).Set((*big.Int)(params.MaxPriorityFeePerGas))
		}
		feeCap := new(big.Int).Set((*big.Int)(params.MaxFeePerGas))
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   new(big.Int).Set(chainID),
			Nonce:     uint64(*params.Nonce),
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       uint64(*params.Gas),
			To:        params.To,
			Value:     params.ValueWei(),
			Data:      params.Data,
		}), nil
	}
	return types.NewTx(&types.LegacyTx{
		Nonce:    uint64(*params.Nonce),
		GasPrice: new(big.Int).Set((*big.Int)(params.GasPrice)),
		Gas:      uint64(*params.Gas),
		To:       params.To,
		Value:    params.ValueWei(),
		Data:     params.Data,
	}), nil
}

// EncodeSignedTx returns the 0x prefixed hex of the tx's binary encoding,
// the form eth_sendRawTransaction expects.
func EncodeSignedTx(tx *types.Transaction) (string, error) {
	data, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("tx is not valid, couldn't encode it: %w", err)
	}
	return hexutil.Encode(data), nil
}
