package util

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/tranvictor/txsubmit/common"
	"github.com/tranvictor/txsubmit/submitter"
	"github.com/tranvictor/txsubmit/ui"
	"github.com/tranvictor/txsubmit/util/monitor"
)

const notSet = "(not set)"

func bigOrNotSet(v *big.Int, unit string) string {
	if v == nil {
		return notSet
	}
	return fmt.Sprintf("%s %s", v.String(), unit)
}

func BuildTxDisplay(params common.TxParams, nativeSymbol string) TxDisplay {
	d := TxDisplay{
		From:    ui.StyledText{Text: "(from private key)", Severity: ui.SeverityInfo},
		To:      ui.StyledText{Text: "(contract creation)", Severity: ui.SeverityWarn},
		Value:   fmt.Sprintf("%s %s", common.BigToFloatString(params.ValueWei(), 18), nativeSymbol),
		Nonce:   notSet,
		Gas:     notSet,
		ChainID: "(from node)",
		Data:    fmt.Sprintf("%d bytes", len(params.Data)),
	}
	if params.From != nil {
		d.From = ui.StyledText{Text: params.From.Hex(), Severity: ui.SeverityCritical}
	}
	if params.To != nil {
		d.To = ui.StyledText{Text: params.To.Hex(), Severity: ui.SeverityCritical}
	}
	if params.Nonce != nil {
		d.Nonce = fmt.Sprintf("%d", uint64(*params.Nonce))
	}
	if params.Gas != nil {
		d.Gas = fmt.Sprintf("%d", uint64(*params.Gas))
	}
	if params.ChainID != nil {
		d.ChainID = fmt.Sprintf("%d", uint64(*params.ChainID))
	}
	if params.IsDynamicFee() {
		d.Fees = [][2]string{
			{"Max fee", bigOrNotSet((*big.Int)(params.MaxFeePerGas), "wei")},
			{"Max tip", bigOrNotSet((*big.Int)(params.MaxPriorityFeePerGas), "wei")},
		}
	} else {
		d.Fees = [][2]string{
			{"Gas price", bigOrNotSet((*big.Int)(params.GasPrice), "wei")},
		}
	}
	if len(params.Data) > 0 && len(params.Data) <= 64 {
		d.Data = hexutil.Encode(params.Data)
	}
	return d
}

// DisplayTxParams prints the tx for review and returns what was printed.
func DisplayTxParams(u ui.UI, params common.TxParams, nativeSymbol string) TxDisplay {
	d := BuildTxDisplay(params, nativeSymbol)
	u.Section("Confirm tx data before signing")
	rows := [][2]string{
		{"From", u.Style(d.From)},
		{"To", u.Style(d.To)},
		{"Value", d.Value},
		{"Nonce", d.Nonce},
		{"Gas", d.Gas},
	}
	rows = append(rows, d.Fees...)
	rows = append(rows, [2]string{"Chain id", d.ChainID}, [2]string{"Data", d.Data})
	u.KeyValue(rows)
	return d
}

func BuildResultDisplay(r submitter.Result) ResultDisplay {
	if r.IsOK() {
		return ResultDisplay{
			Status: ui.StyledText{Text: string(r.Status), Severity: ui.SeveritySuccess},
			TxID:   r.TxID(),
		}
	}
	d := ResultDisplay{
		Status: ui.StyledText{Text: string(r.Status), Severity: ui.SeverityError},
		Code:   r.Code,
	}
	for _, e := range r.Errors {
		d.Errors = append(d.Errors, []string{e.Title, e.Detail})
	}
	return d
}

func DisplayResult(u ui.UI, r submitter.Result) ResultDisplay {
	d := BuildResultDisplay(r)
	if r.IsOK() {
		u.Success("Broadcasted tx: %s", u.Style(d.Status))
		u.Critical("Tx hash: %s", d.TxID)
		return d
	}
	switch d.Code {
	case submitter.CodeNodeRejected:
		u.Error("The node rejected the tx (code %d)", d.Code)
	default:
		u.Error("Couldn't submit the tx (code %d)", d.Code)
	}
	u.Table([]string{"Title", "Detail"}, d.Errors)
	return d
}

func DisplaySignedTx(u ui.UI, payload string, txHash string) {
	u.Section("Signed tx")
	u.Critical("Tx hash: %s", txHash)
	u.Info("Raw tx: %s", payload)
}

func DisplayTxInfo(u ui.UI, info monitor.TxInfo) {
	switch info.Status {
	case monitor.TxStatusDone:
		u.Success("Mined in block %s, gas used %d", info.Receipt.BlockNumber, info.Receipt.GasUsed)
	case monitor.TxStatusReverted:
		u.Error("Reverted in block %s, gas used %d", info.Receipt.BlockNumber, info.Receipt.GasUsed)
	default:
		u.Warn("Gave up waiting for %s, it may still be mined later", info.TxHash)
	}
}
