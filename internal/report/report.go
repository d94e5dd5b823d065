// Package report writes JSON report files for profit queries.
// Reports are saved to a "reports" directory with timestamped filenames
// to allow tracking results over time.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmagro/mev-profit/internal/flashbots"
	"github.com/dmagro/mev-profit/internal/profit"
)

// Report is the JSON-serializable record of one profit query.
type Report struct {
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url"`

	BlockNumber       flashbots.Decimal `json:"block_number"`
	Miner             string            `json:"miner,omitempty"`
	MinerReward       flashbots.Decimal `json:"miner_reward"`
	CoinbaseTransfers string            `json:"miner_coinbase_transfers"`
	GasUsed           int64             `json:"gas_used,omitempty"`
	TxCount           int               `json:"tx_count"`
}

// New builds a report from a fetched block and its computed summary.
func New(url string, block *flashbots.Block, summary *profit.Summary) *Report {
	return &Report{
		Timestamp:         time.Now(),
		URL:               url,
		BlockNumber:       summary.BlockNumber,
		Miner:             block.Miner,
		MinerReward:       summary.MinerReward,
		CoinbaseTransfers: summary.CoinbaseTransfers,
		GasUsed:           block.GasUsed,
		TxCount:           len(block.Transactions),
	}
}

// WriteJSON writes the report to reports/{prefix}-{timestamp}.json and
// returns the path of the created file. The reports directory is created
// if it does not exist.
func WriteJSON(data interface{}, prefix string) (string, error) {
	reportsDir := "reports"
	if err := os.MkdirAll(reportsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(reportsDir, fmt.Sprintf("%s-%s.json", prefix, timestamp))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}

	return path, nil
}
