package reader

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

// EthereumNode is the read side of a node that submission needs: the chain
// id to sign against and receipts to follow a broadcasted tx.
type EthereumNode interface {
	NodeName() string
	NodeURL() string
	ChainID(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error)
	Close()
}
