package cmd

import (
	"github.com/spf13/cobra"

	cmdutil "github.com/tranvictor/txsubmit/cmd/util"
	"github.com/tranvictor/txsubmit/common"
	"github.com/tranvictor/txsubmit/config"
	"github.com/tranvictor/txsubmit/util"
	"github.com/tranvictor/txsubmit/util/account"
)

type signedTx struct {
	RawTx  string `json:"raw_tx"`
	TxHash string `json:"tx_hash"`
}

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign the tx params without broadcasting",
	Long: `Sign fully formed tx params and print the signed tx and its hash. Nothing
is sent to the node except eth_chainId when --chain-id is not set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		u := newCmdUI(cmd)

		params, err := cmdutil.TxParamsFromFlags(cmd.Flags(), cmd.InOrStdin())
		if err != nil {
			return err
		}
		node, symbol, err := cmdutil.ResolveNode()
		if err != nil {
			return err
		}

		util.DisplayTxParams(u, params, symbol)
		if !config.YesToAllPrompt && !u.Confirm("Sign the tx?", false) {
			return errAborted
		}

		key, err := cmdutil.ResolvePrivateKey(u, cmdutil.TerminalPassword)
		if err != nil {
			return err
		}
		payload, err := account.NewEndpointSigner(cmdutil.NewHTTPClient()).
			Sign(cmd.Context(), params, key, node)
		if err != nil {
			return err
		}
		hash, err := common.RawTxToHash(payload)
		if err != nil {
			return err
		}

		if config.OutputFormat == config.OutputJSON {
			return printJSON(cmd.OutOrStdout(), signedTx{RawTx: payload, TxHash: hash})
		}
		util.DisplaySignedTx(u, payload, hash)
		return nil
	},
}

func init() {
	AddCommonFlagsToTransactionalCmds(signCmd)
	rootCmd.AddCommand(signCmd)
}
