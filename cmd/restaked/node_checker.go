package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// rpcNodeChecker implements NodeHealthChecker against the node's own
// CometBFT RPC endpoint using plain JSON queries.
type rpcNodeChecker struct {
	rpcAddr string
	client  *http.Client
}

// NewRPCNodeChecker creates a node health checker for the given RPC address.
func NewRPCNodeChecker(rpcAddr string) *rpcNodeChecker {
	return &rpcNodeChecker{
		rpcAddr: rpcAddr,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *rpcNodeChecker) get(path string, out interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", c.rpcAddr+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("rpc unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// CheckRPC checks if the RPC endpoint is accessible
func (c *rpcNodeChecker) CheckRPC() error {
	return c.get("/health", nil)
}

// CheckSync reports whether the node is catching up and its latest height.
func (c *rpcNodeChecker) CheckSync() (syncing bool, height int64, err error) {
	var status struct {
		Result struct {
			SyncInfo struct {
				CatchingUp        bool   `json:"catching_up"`
				LatestBlockHeight string `json:"latest_block_height"`
			} `json:"sync_info"`
		} `json:"result"`
	}

	if err := c.get("/status", &status); err != nil {
		return false, 0, err
	}

	blockHeight, _ := strconv.ParseInt(status.Result.SyncInfo.LatestBlockHeight, 10, 64)
	return status.Result.SyncInfo.CatchingUp, blockHeight, nil
}

// CheckConsensus checks if the node is participating in consensus.
// Non-validator nodes always pass; validators would need a voting-power query.
func (c *rpcNodeChecker) CheckConsensus() error {
	return nil
}

// GetPeerCount returns the number of connected peers
func (c *rpcNodeChecker) GetPeerCount() (int, error) {
	var netInfo struct {
		Result struct {
			NPeers string `json:"n_peers"`
		} `json:"result"`
	}

	if err := c.get("/net_info", &netInfo); err != nil {
		return 0, err
	}

	peers, _ := strconv.Atoi(netInfo.Result.NPeers)
	return peers, nil
}

// GetBlockHeight returns the current block height
func (c *rpcNodeChecker) GetBlockHeight() (int64, error) {
	_, height, err := c.CheckSync()
	return height, err
}
