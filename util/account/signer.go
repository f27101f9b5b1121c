package account

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

// Signer signs an already built tx for a chain.
type Signer interface {
	SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error)
}
