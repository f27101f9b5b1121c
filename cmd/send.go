package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	cmdutil "github.com/tranvictor/txsubmit/cmd/util"
	"github.com/tranvictor/txsubmit/config"
	"github.com/tranvictor/txsubmit/logger"
	"github.com/tranvictor/txsubmit/submitter"
	"github.com/tranvictor/txsubmit/ui"
	"github.com/tranvictor/txsubmit/util"
	"github.com/tranvictor/txsubmit/util/account"
	"github.com/tranvictor/txsubmit/util/broadcaster"
	"github.com/tranvictor/txsubmit/util/monitor"
	"github.com/tranvictor/txsubmit/util/reader"
)

var errAborted = errors.New("aborted")

// errTxNotMined means the node accepted the tx but --wait gave up before a
// receipt showed up. Execute exits with exitNotMined for it.
var errTxNotMined = errors.New("tx was not mined before the wait timeout")

// waitForReceipt blocks until the tx is mined, reverted or ctx is done.
func waitForReceipt(ctx context.Context, u ui.UI, m *monitor.TxMonitor, txID string) error {
	stop := u.Spinner("Waiting for " + txID + " to be mined")
	info, err := m.BlockingWait(ctx, txID)
	stop()
	if err != nil {
		return err
	}
	util.DisplayTxInfo(u, info)
	switch info.Status {
	case monitor.TxStatusReverted:
		return errSubmissionFailed
	case monitor.TxStatusLost:
		return errTxNotMined
	}
	return nil
}

// newSubmitMetrics registers the submission metrics on a fresh registry
// when a metrics file is configured.
func newSubmitMetrics(file string) (*prometheus.Registry, []submitter.Option, error) {
	if file == "" {
		return nil, nil, nil
	}
	reg := prometheus.NewRegistry()
	m, err := submitter.NewMetrics(reg)
	if err != nil {
		return nil, nil, err
	}
	return reg, []submitter.Option{submitter.WithMetrics(m)}, nil
}

// newCmdUI writes human output to stdout in text mode and to stderr in
// json mode, so stdout only ever carries the result document.
func newCmdUI(cmd *cobra.Command) ui.UI {
	if config.OutputFormat == config.OutputJSON {
		return ui.NewTerminalUIWithIO(cmd.ErrOrStderr(), cmd.InOrStdin())
	}
	return ui.NewTerminalUIWithIO(cmd.OutOrStdout(), cmd.InOrStdin())
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Sign the tx params and send them to the node",
	Long: `Sign fully formed tx params with the given key and broadcast the signed tx
with eth_sendRawTransaction. Params come from --params and/or the params
flags. Exit code is 0 when the node accepted the tx and 1 otherwise. With
--wait it is 2 when the tx was accepted but not mined before --wait-timeout.`,
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
		if !config.YesToAllPrompt && !u.Confirm("Sign and send the tx?", false) {
			return errAborted
		}

		key, err := cmdutil.ResolvePrivateKey(u, cmdutil.TerminalPassword)
		if err != nil {
			return err
		}

		httpClient := cmdutil.NewHTTPClient()
		log := logger.Module(logger.New(config.LogLevel, config.LogPretty), "send")
		reg, opts, err := newSubmitMetrics(config.MetricsFile)
		if err != nil {
			return err
		}
		sub := submitter.New(
			account.NewEndpointSigner(httpClient),
			broadcaster.NewBroadcaster(httpClient),
			log,
			opts...,
		)

		stop := u.Spinner("Broadcasting to " + node)
		result := sub.Submit(cmd.Context(), submitter.Request{
			Params:       params,
			PrivateKey:   key,
			NodeEndpoint: node,
		})
		stop()

		if reg != nil {
			// textfile collector format, written atomically
			if err := prometheus.WriteToTextfile(config.MetricsFile, reg); err != nil {
				log.Error().Err(err).Str("file", config.MetricsFile).Msg("couldn't write metrics")
			}
		}

		if config.OutputFormat == config.OutputJSON {
			if err := printJSON(cmd.OutOrStdout(), result); err != nil {
				return err
			}
		} else {
			util.DisplayResult(u, result)
		}
		if !result.IsOK() {
			return errSubmissionFailed
		}

		if config.WaitToBeMined {
			r := reader.NewOneNodeReader("submission-node", node, httpClient)
			defer r.Close()
			ctx, cancel := context.WithTimeout(cmd.Context(), config.WaitTimeout)
			defer cancel()

			return waitForReceipt(ctx, u, monitor.NewGenericTxMonitor(r), result.TxID())
		}
		return nil
	},
}

func init() {
	AddCommonFlagsToTransactionalCmds(sendCmd)
	sendCmd.Flags().BoolVarP(&config.WaitToBeMined, "wait", "w", false, "Wait for the tx to be mined after the node accepted it")
	sendCmd.Flags().Duration(config.KeyWaitTimeout, 0, "How long --wait waits for the receipt (default 5m). Exit code is 2 when it gives up")
	sendCmd.Flags().StringVar(&config.MetricsFile, "metrics-file", "", "Write submission metrics to this file in prometheus text format, e.g. for node_exporter's textfile collector")
	rootCmd.AddCommand(sendCmd)
}
