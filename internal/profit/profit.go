// Package profit computes the miner-profit summary for one block:
// the total of per-transaction coinbase transfers alongside the block's
// base miner reward.
package profit

import (
	"fmt"
	"math/big"

	"github.com/dmagro/mev-profit/internal/flashbots"
)

// Summary holds the fields of the one-line profit report. BlockNumber and
// MinerReward are carried verbatim as received from the API.
type Summary struct {
	BlockNumber       flashbots.Decimal
	MinerReward       flashbots.Decimal
	CoinbaseTransfers string
}

// Compute sums coinbase_transfer over the block's transactions.
// An empty transaction list yields a sum of zero; a transaction without a
// coinbase_transfer field is an error.
func Compute(block *flashbots.Block) (*Summary, error) {
	total := new(big.Float).SetPrec(192)
	for i, tx := range block.Transactions {
		if tx.CoinbaseTransfer == "" {
			return nil, fmt.Errorf("transaction %d (%s) has no coinbase_transfer", i, tx.Hash)
		}
		v, err := tx.CoinbaseTransfer.Float()
		if err != nil {
			return nil, fmt.Errorf("transaction %d (%s): %w", i, tx.Hash, err)
		}
		total.Add(total, v)
	}

	return &Summary{
		BlockNumber:       block.BlockNumber,
		MinerReward:       block.MinerReward,
		CoinbaseTransfers: total.Text('f', -1),
	}, nil
}

// String renders the summary line.
func (s *Summary) String() string {
	return fmt.Sprintf("block_number=%s, miner_reward=%s, miner_coinbase_transfers=%s",
		s.BlockNumber, s.MinerReward, s.CoinbaseTransfers)
}
