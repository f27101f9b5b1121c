package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/txsubmit/config"
)

// AddCommonFlagsToTransactionalCmds registers the params and key flags
// shared by send and sign. Every params flag overrides the same field of
// the --params file.
func AddCommonFlagsToTransactionalCmds(c *cobra.Command) {
	c.PersistentFlags().
		StringVarP(&config.ParamsFile, "params", "j", "", "JSON file with the tx params, - reads stdin. Fields: from, to, value, gas, gasPrice, maxFeePerGas, maxPriorityFeePerGas, data, nonce, chainId")
	c.PersistentFlags().
		StringVarP(&config.GasPrice, "gasprice", "p", "", "Gas price in gwei, makes the tx a legacy one")
	c.PersistentFlags().
		StringVarP(&config.MaxFeeGas, "maxfee", "m", "", "Max fee per gas in gwei, makes the tx a dynamic fee one")
	c.PersistentFlags().
		StringVarP(&config.TipGas, "tipgas", "s", "", "Max priority fee per gas (tip) in gwei. Defaults to 0 for dynamic fee txs")
	c.PersistentFlags().
		Uint64VarP(&config.GasLimit, "gas", "g", 0, "Gas limit of the tx")
	c.PersistentFlags().
		Uint64VarP(&config.Nonce, "nonce", "n", 0, "Nonce of the from account")
	c.PersistentFlags().
		Uint64VarP(&config.ChainID, "chain-id", "c", 0, "Chain id. If it is not set, it is asked from the node")
	c.PersistentFlags().
		StringVarP(&config.From, "from", "f", "", "Expected sender address. Signing fails if the key belongs to another address")
	c.PersistentFlags().
		StringVarP(&config.To, "to", "t", "", "Recipient address. Leave it empty to deploy a contract")
	c.PersistentFlags().
		StringVarP(&config.Value, "value", "v", "", "Amount of native token to send, in ETH unit (e.g. 0.1)")
	c.PersistentFlags().
		StringVarP(&config.Data, "data", "D", "", "Hex encoded tx data")
	c.PersistentFlags().
		String(config.KeyPrivateKey, "", "Hex private key of the sender. Prefer the TXSUBMIT_PRIVATE_KEY env var")
	c.PersistentFlags().
		String(config.KeyKeystore, "", "Keystore file of the sender, its password is asked interactively")
	c.PersistentFlags().
		BoolVarP(&config.YesToAllPrompt, "yes", "y", false, "Don't ask for confirmation before signing")
}
