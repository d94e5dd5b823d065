package flashbots

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public mev-blocks endpoint.
const DefaultBaseURL = "https://blocks.flashbots.net"

type Client struct {
	baseURL string
	http    *resty.Client
}

// NewClient returns a client for the given API base URL. A zero timeout
// leaves the transport without a deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New()
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BlockURL returns the query URL for a single block.
func (c *Client) BlockURL(blockNumber int64) string {
	return c.baseURL + "/v1/blocks?block_number=" + strconv.FormatInt(blockNumber, 10)
}

// GetBlock fetches the block record for blockNumber and returns the first
// element of the response's blocks array along with the raw response body.
// An empty blocks array is an error: the API returns one entry per known
// block, so an empty result means the block is unknown to Flashbots.
func (c *Client) GetBlock(ctx context.Context, blockNumber int64) (*Block, []byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.BlockURL(blockNumber))
	if err != nil {
		return nil, nil, err
	}
	if resp.IsError() {
		return nil, resp.Body(), fmt.Errorf("HTTP %d", resp.StatusCode())
	}

	var result BlocksResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, resp.Body(), fmt.Errorf("invalid JSON response: %w", err)
	}
	if len(result.Blocks) == 0 {
		return nil, resp.Body(), fmt.Errorf("no blocks returned for block_number=%d", blockNumber)
	}

	return &result.Blocks[0], resp.Body(), nil
}
