package common

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
)

// TxParams describes a fully formed transaction the way json-rpc wallets
// receive it. Numeric fields accept JSON numbers, decimal strings and
// 0x-prefixed hex strings.
//
// A TxParams with MaxFeePerGas set is built as a dynamic fee (EIP-1559)
// transaction, otherwise as a legacy one.
type TxParams struct {
	From                 *common.Address       `json:"from,omitempty"`
	To                   *common.Address       `json:"to,omitempty"`
	Value                *math.HexOrDecimal256 `json:"value,omitempty"`
	Gas                  *math.HexOrDecimal64  `json:"gas,omitempty"`
	GasPrice             *math.HexOrDecimal256 `json:"gasPrice,omitempty"`
	MaxFeePerGas         *math.HexOrDecimal256 `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *math.HexOrDecimal256 `json:"maxPriorityFeePerGas,omitempty"`
	Data                 hexutil.Bytes         `json:"data,omitempty"`
	Nonce                *math.HexOrDecimal64  `json:"nonce,omitempty"`
	ChainID              *math.HexOrDecimal64  `json:"chainId,omitempty"`
}

func (p *TxParams) IsDynamicFee() bool {
	return p.MaxFeePerGas != nil
}

// Validate checks the params carry everything needed to build a tx
// except the chain id: nonce and gas always, gasPrice for legacy txs and
// maxFeePerGas for dynamic fee ones.
func (p *TxParams) Validate() error {
	if p.Nonce == nil {
		return fmt.Errorf("nonce is required")
	}
	if p.Gas == nil {
		return fmt.Errorf("gas is required")
	}
	if p.IsDynamicFee() {
		if p.GasPrice != nil {
			return fmt.Errorf("gasPrice can't be combined with maxFeePerGas")
		}
		if p.MaxPriorityFeePerGas != nil &&
			(*big.Int)(p.MaxPriorityFeePerGas).Cmp((*big.Int)(p.MaxFeePerGas)) > 0 {
			return fmt.Errorf(
				"maxPriorityFeePerGas %s is higher than maxFeePerGas %s",
				(*big.Int)(p.MaxPriorityFeePerGas), (*big.Int)(p.MaxFeePerGas),
			)
		}
		return nil
	}
	if p.MaxPriorityFeePerGas != nil {
		return fmt.Errorf("maxPriorityFeePerGas is set without maxFeePerGas")
	}
	if p.GasPrice == nil {
		return fmt.Errorf("gasPrice is required for legacy transactions")
	}
	return nil
}

// ValueWei returns the value in wei, zero when it is not set.
func (p *TxParams) ValueWei() *big.Int {
	if p.Value == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set((*big.Int)(p.Value))
}

// ChainIDBig returns nil when the chain id is not set.
func (p *TxParams) ChainIDBig() *big.Int {
	if p.ChainID == nil {
		return nil
	}
	return new(big.Int).SetUint64(uint64(*p.ChainID))
}

func DecodeTxParams(r io.Reader) (TxParams, error) {
	var params TxParams
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		return TxParams{}, fmt.Errorf("couldn't decode tx params: %w", err)
	}
	return params, nil
}

// ReadTxParamsFile reads params from a json file, "-" means stdin.
func ReadTxParamsFile(file string) (TxParams, error) {
	if file == "-" {
		return DecodeTxParams(os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return TxParams{}, err
	}
	defer f.Close()
	return DecodeTxParams(f)
}

func Uint64Param(v uint64) *math.HexOrDecimal64 {
	p := math.HexOrDecimal64(v)
	return &p
}

func BigParam(v *big.Int) *math.HexOrDecimal256 {
	if v == nil {
		return nil
	}
	return (*math.HexOrDecimal256)(new(big.Int).Set(v))
}

func AddressParam(hex string) *common.Address {
	addr := common.HexToAddress(hex)
	return &addr
}
