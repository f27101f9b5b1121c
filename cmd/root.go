// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/txsubmit/config"
	"github.com/tranvictor/txsubmit/networks"
)

// errSubmissionFailed is returned after a failed result has already been
// printed, so Execute only needs to set the exit code.
var errSubmissionFailed = errors.New("submission failed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "txsubmit",
	Short: "Sign a transaction locally and submit it to an ethereum node",
	Long: fmt.Sprintf(`txsubmit signs fully formed transaction params with a private key,
sends the signed tx to a node with eth_sendRawTransaction and prints a
uniform result:

	{"status":"OK","data":{"tx_id":"0x.."}}
	{"status":"ERROR","code":201|500,"errors":[{"title","detail","meta","stack"}]}

Code 201 means the node rejected the tx, its response is kept in
meta.nodeResponse. Code 500 means anything else went wrong.

txsubmit does not estimate gas or pick nonces, params must be complete.
The chain id is the only thing it may ask the node for.

Supported networks: %v. The node is taken from --node, then from
the network's env var (e.g. ETHEREUM_MAINNET_NODE), then from a public
default. Every flag can also be set with a %s_ env var, optionally loaded
from a .env file.`,
		networks.GetSupportedNetworkNames(),
		config.EnvPrefix,
	),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.Load(config.EnvFile)
		if err != nil {
			return err
		}
		if err := config.BindFlags(v, cmd.Flags()); err != nil {
			return err
		}
		return config.Apply(v)
	},
}

const exitNotMined = 2

func exitCode(err error) int {
	if errors.Is(err, errTxNotMined) {
		return exitNotMined
	}
	return 1
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSubmissionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&config.Network, config.KeyNetwork, "k", "mainnet", fmt.Sprintf("network used to pick a node when --node is not set. Valid values: %v", networks.GetSupportedNetworkNames()))
	pf.StringVarP(&config.Node, config.KeyNode, "u", "", "JSON-RPC endpoint of the node, overrides --network")
	pf.StringVar(&config.EnvFile, "env-file", ".env", "dotenv file to load before reading TXSUBMIT_ env vars")
	pf.Duration(config.KeyRPCTimeout, 0, "timeout of every http request to the node (default 30s)")
	pf.StringP(config.KeyOutput, "o", config.OutputText, "result format: text or json")
	pf.String(config.KeyLogLevel, "info", "log level: trace, debug, info, warn, error or disabled")
	pf.Bool(config.KeyLogPretty, true, "human readable logs instead of json lines")
}
