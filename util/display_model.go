package util

import "github.com/tranvictor/txsubmit/ui"

// TxDisplay is what the user reviews before a tx is signed.
type TxDisplay struct {
	From    ui.StyledText
	To      ui.StyledText
	Value   string
	Nonce   string
	Gas     string
	Fees    [][2]string
	ChainID string
	Data    string
}

// ResultDisplay is the rendered form of a submission result.
type ResultDisplay struct {
	Status ui.StyledText
	TxID   string
	Code   int
	// one row per error: title, detail
	Errors [][]string
}
