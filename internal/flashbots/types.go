// Package flashbots is a client for the Flashbots mev-blocks API
// (https://blocks.flashbots.net/). The API reports, per block, the bundles
// that were mined and how much each transaction paid the miner directly
// via coinbase transfers.
package flashbots

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Precision used for coinbase-transfer arithmetic. Wei values routinely
// exceed 64 bits; 192 bits keeps integer sums exact far beyond anything
// the API can return.
const decimalPrec = 192

// Decimal is a numeric API field kept in its wire representation.
// The mev-blocks API serializes most amounts as decimal strings
// ("1500000000000000") but some deployments and fixtures use bare JSON
// numbers; Decimal accepts both and preserves the literal so it can be
// printed back verbatim. The zero value means the field was absent.
type Decimal string

func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = Decimal(n.String())
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

func (d Decimal) String() string { return string(d) }

// Float parses the decimal literal for arithmetic.
func (d Decimal) Float() (*big.Float, error) {
	f, ok := new(big.Float).SetPrec(decimalPrec).SetString(string(d))
	if !ok {
		return nil, fmt.Errorf("invalid decimal value %q", string(d))
	}
	return f, nil
}

// BlocksResponse is the envelope returned by GET /v1/blocks.
type BlocksResponse struct {
	LatestBlockNumber int64   `json:"latest_block_number"`
	Blocks            []Block `json:"blocks"`
}

// Block describes one block as reported by the API.
type Block struct {
	BlockNumber       Decimal       `json:"block_number"`
	Miner             string        `json:"miner"`
	MinerReward       Decimal       `json:"miner_reward"`
	CoinbaseTransfers Decimal       `json:"coinbase_transfers"`
	GasUsed           int64         `json:"gas_used"`
	GasPrice          Decimal       `json:"gas_price"`
	Transactions      []Transaction `json:"transactions"`
}

// Transaction is one entry of a block's bundle transaction list.
type Transaction struct {
	Hash             string  `json:"transaction_hash"`
	TxIndex          int64   `json:"tx_index"`
	BundleIndex      int64   `json:"bundle_index"`
	BlockNumber      int64   `json:"block_number"`
	From             string  `json:"eoa_address"`
	To               string  `json:"to_address"`
	GasUsed          int64   `json:"gas_used"`
	GasPrice         Decimal `json:"gas_price"`
	CoinbaseTransfer Decimal `json:"coinbase_transfer"`
	TotalMinerReward Decimal `json:"total_miner_reward"`
}
