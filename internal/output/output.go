// Package output contains terminal rendering for the optional display
// modes. The default summary line is deliberately not rendered here: its
// format is a stable contract and lives next to the computation in the
// profit package.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/mev-profit/internal/flashbots"
)

var bold = color.New(color.Bold).SprintFunc()

// RenderTransactions prints a per-transaction breakdown of the block's
// bundles below the summary line.
func RenderTransactions(txs []flashbots.Transaction) {
	fmt.Println()
	fmt.Println(bold(fmt.Sprintf("Transactions (%d)", len(txs))))

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Idx", "Bundle", "Hash", "From", "To", "Gas Used", "Coinbase Transfer")
	tbl.WithHeaderFormatter(headerFmt)

	for _, tx := range txs {
		tbl.AddRow(
			tx.TxIndex,
			tx.BundleIndex,
			truncateHash(tx.Hash),
			truncateHash(tx.From),
			truncateHash(tx.To),
			tx.GasUsed,
			tx.CoinbaseTransfer,
		)
	}

	tbl.Print()
	fmt.Println()
}

// RenderRaw pretty-prints the raw API response body.
func RenderRaw(raw []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Println(string(raw))
	}
}

func truncateHash(hash string) string {
	if len(hash) <= 14 {
		return hash
	}
	return hash[:6] + "..." + hash[len(hash)-4:]
}
