// Package main implements the "profit" command, which queries the
// Flashbots mev-blocks API for one block and reports the miner profit:
// the block's base miner reward plus the total of per-transaction
// coinbase transfers.
//
// Usage:
//
//	profit <block_number> [flags]
//	profit 18000000
//	profit 18000000 --txs
//	profit 18000000 --json
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmagro/mev-profit/internal/config"
	"github.com/dmagro/mev-profit/internal/flashbots"
	"github.com/dmagro/mev-profit/internal/output"
	"github.com/dmagro/mev-profit/internal/profit"
	"github.com/dmagro/mev-profit/internal/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		endpoint string
		showTxs  bool
		rawOut   bool
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "profit <block_number>",
		Short: "Fetch a block and report the miner profit",
		Long: `Fetch a block from the Flashbots mev-blocks API and report the miner
profit: the block's miner reward and the sum of the coinbase transfers of
its transactions.

Examples:
  profit 18000000
  profit 18000000 --txs
  profit 18000000 --raw
  profit 18000000 --endpoint http://localhost:8080`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blockNumber, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid block_number %q: must be an integer", args[0])
			}
			// Argument parsing is done; errors past this point are
			// runtime failures, not usage mistakes.
			cmd.SilenceUsage = true
			return runProfit(cmd.Context(), blockNumber, cfgPath, endpoint, showTxs, rawOut, jsonOut)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Settings file path (default: "+config.DefaultPath+" if present)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "API base URL (overrides settings file)")
	cmd.Flags().BoolVar(&showTxs, "txs", false, "Show per-transaction breakdown after the summary")
	cmd.Flags().BoolVar(&rawOut, "raw", false, "Show raw API response instead of the summary")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Also write a JSON report to the reports directory")

	return cmd
}

func runProfit(ctx context.Context, blockNumber int64, cfgPath, endpoint string, showTxs, rawOut, jsonOut bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	client := flashbots.NewClient(cfg.Endpoint, cfg.Timeout)
	url := client.BlockURL(blockNumber)
	fmt.Println("Fetching:", url)

	block, raw, err := client.GetBlock(ctx, blockNumber)
	if err != nil {
		return fmt.Errorf("failed to fetch block: %w", err)
	}

	if rawOut {
		output.RenderRaw(raw)
		return nil
	}

	summary, err := profit.Compute(block)
	if err != nil {
		return err
	}
	fmt.Println(summary.String())

	if showTxs {
		output.RenderTransactions(block.Transactions)
	}

	if jsonOut {
		path, err := report.WriteJSON(report.New(url, block, summary), "profit")
		if err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "JSON report written to: %s\n", path)
	}

	return nil
}
