package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/pflag"

	txcommon "github.com/tranvictor/txsubmit/common"
	"github.com/tranvictor/txsubmit/config"
)

// TxParamsFromFlags reads the --params file (if any) and applies every
// params flag that was explicitly set on top of it. in is used when the
// file is "-".
func TxParamsFromFlags(flags *pflag.FlagSet, in io.Reader) (txcommon.TxParams, error) {
	var (
		params txcommon.TxParams
		err    error
	)
	switch config.ParamsFile {
	case "":
	case "-":
		params, err = txcommon.DecodeTxParams(in)
	default:
		params, err = txcommon.ReadTxParamsFile(config.ParamsFile)
	}
	if err != nil {
		return params, err
	}

	if flags.Changed("from") {
		if params.From, err = addressFlag("from", config.From); err != nil {
			return params, err
		}
	}
	if flags.Changed("to") {
		if params.To, err = addressFlag("to", config.To); err != nil {
			return params, err
		}
	}
	if flags.Changed("value") {
		wei, err := txcommon.EthToWei(config.Value)
		if err != nil {
			return params, fmt.Errorf("invalid value: %w", err)
		}
		params.Value = txcommon.BigParam(wei)
	}
	if flags.Changed("gasprice") {
		wei, err := txcommon.GweiToWei(config.GasPrice)
		if err != nil {
			return params, fmt.Errorf("invalid gas price: %w", err)
		}
		params.GasPrice = txcommon.BigParam(wei)
	}
	if flags.Changed("maxfee") {
		wei, err := txcommon.GweiToWei(config.MaxFeeGas)
		if err != nil {
			return params, fmt.Errorf("invalid max fee: %w", err)
		}
		params.MaxFeePerGas = txcommon.BigParam(wei)
	}
	if flags.Changed("tipgas") {
		wei, err := txcommon.GweiToWei(config.TipGas)
		if err != nil {
			return params, fmt.Errorf("invalid tip: %w", err)
		}
		params.MaxPriorityFeePerGas = txcommon.BigParam(wei)
	}
	if flags.Changed("gas") {
		params.Gas = txcommon.Uint64Param(config.GasLimit)
	}
	if flags.Changed("nonce") {
		params.Nonce = txcommon.Uint64Param(config.Nonce)
	}
	if flags.Changed("chain-id") {
		params.ChainID = txcommon.Uint64Param(config.ChainID)
	}
	if flags.Changed("data") {
		data := strings.TrimSpace(config.Data)
		if !strings.HasPrefix(data, "0x") && !strings.HasPrefix(data, "0X") {
			data = "0x" + data
		}
		if params.Data, err = hexutil.Decode(data); err != nil {
			return params, fmt.Errorf("invalid data: %w", err)
		}
	}
	return params, nil
}

func addressFlag(name, value string) (*common.Address, error) {
	if !common.IsHexAddress(value) {
		return nil, fmt.Errorf("invalid %s address: %q", name, value)
	}
	return txcommon.AddressParam(value), nil
}
