package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

const DefaultPollInterval = 5 * time.Second

type TxStatus string

const (
	TxStatusDone     TxStatus = "done"
	TxStatusReverted TxStatus = "reverted"
	// TxStatusLost means the context ended before the tx was mined.
	TxStatusLost TxStatus = "lost"
)

type TxInfo struct {
	Status  TxStatus
	TxHash  string
	Receipt *types.Receipt
}

type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error)
}

type TxMonitor struct {
	reader   ReceiptReader
	interval time.Duration
}

func NewGenericTxMonitor(r ReceiptReader) *TxMonitor {
	return NewTxMonitorWithInterval(r, DefaultPollInterval)
}

func NewTxMonitorWithInterval(r ReceiptReader, interval time.Duration) *TxMonitor {
	return &TxMonitor{reader: r, interval: interval}
}

// BlockingWait polls for the receipt until the tx is mined or ctx is done.
// Node errors other than "not found" are returned right away.
func (self *TxMonitor) BlockingWait(ctx context.Context, txHash string) (TxInfo, error) {
	ticker := time.NewTicker(self.interval)
	defer ticker.Stop()
	for {
		info, done, err := self.check(ctx, txHash)
		if err != nil || done {
			return info, err
		}
		select {
		case <-ctx.Done():
			return TxInfo{Status: TxStatusLost, TxHash: txHash}, nil
		case <-ticker.C:
		}
	}
}

func (self *TxMonitor) check(ctx context.Context, txHash string) (TxInfo, bool, error) {
	receipt, err := self.reader.TransactionReceipt(ctx, txHash)
	switch {
	case errors.Is(err, ethereum.NotFound):
		return TxInfo{}, false, nil
	case ctx.Err() != nil:
		return TxInfo{Status: TxStatusLost, TxHash: txHash}, true, nil
	case err != nil:
		return TxInfo{}, false, err
	case receipt == nil:
		return TxInfo{}, false, nil
	}
	status := TxStatusDone
	if receipt.Status == types.ReceiptStatusFailed {
		status = TxStatusReverted
	}
	return TxInfo{Status: status, TxHash: txHash, Receipt: receipt}, true, nil
}
