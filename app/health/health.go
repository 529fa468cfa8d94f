// Package health exposes liveness and readiness endpoints for restake nodes.
//
// Three endpoints hang off the API server router:
//   - /health          basic liveness check
//   - /health/ready    readiness for load balancers (RPC, consensus, peers)
//   - /health/detailed full report including restake module state counts
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/gorilla/mux"

	rpcclient "github.com/cometbft/cometbft/rpc/client/http"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
	StatusUnknown   Status = "unknown"
)

// ComponentHealth represents the health status of a single component
type ComponentHealth struct {
	Status    Status                 `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metrics   map[string]interface{} `json:"metrics,omitempty"`
}

// HealthCheck represents the overall health check response
type HealthCheck struct {
	Status     Status                     `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
	Metrics    map[string]interface{}     `json:"metrics,omitempty"`
}

// ModuleProber reports per-module state counts for the detailed endpoint.
// The app wires this with a closure over its keepers so the health package
// stays free of keeper imports.
type ModuleProber func(ctx context.Context) map[string]map[string]interface{}

// Checker performs health checks against the node's own RPC endpoint.
type Checker struct {
	logger    log.Logger
	rpcClient *rpcclient.HTTP
	clientCtx client.Context
	prober    ModuleProber

	maxBlockLag     int64
	maxResponseTime time.Duration
	minPeerCount    int

	mu            sync.RWMutex
	lastCheck     time.Time
	cachedHealth  *HealthCheck
	cacheDuration time.Duration
}

// Config holds configuration for the health checker
type Config struct {
	// RPCURL is the URL of the CometBFT RPC endpoint
	RPCURL string

	// MaxBlockLag is how many block intervals the latest block may trail
	// wall clock before the node counts as stale
	MaxBlockLag int64

	// MaxResponseTime is the maximum acceptable RPC response time
	MaxResponseTime time.Duration

	// MinPeerCount is the minimum number of peers before marking as degraded
	MinPeerCount int

	// CacheDuration is how long to cache health check results
	CacheDuration time.Duration
}

// DefaultConfig returns the default health check configuration
func DefaultConfig() Config {
	return Config{
		RPCURL:          "http://localhost:26657",
		MaxBlockLag:     10,
		MaxResponseTime: 5 * time.Second,
		MinPeerCount:    3,
		CacheDuration:   5 * time.Second,
	}
}

// expectedBlockInterval is the block cadence MaxBlockLag is measured in.
const expectedBlockInterval = 6 * time.Second

// NewChecker creates a new health checker
func NewChecker(logger log.Logger, cfg Config, clientCtx client.Context) (*Checker, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("RPC URL is required")
	}

	rpcClient, err := rpcclient.New(cfg.RPCURL, "/websocket")
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC client: %w", err)
	}

	return &Checker{
		logger:          logger,
		rpcClient:       rpcClient,
		clientCtx:       clientCtx,
		maxBlockLag:     cfg.MaxBlockLag,
		maxResponseTime: cfg.MaxResponseTime,
		minPeerCount:    cfg.MinPeerCount,
		cacheDuration:   cfg.CacheDuration,
	}, nil
}

// SetModuleProber installs the callback the detailed endpoint uses to report
// restake module state.
func (c *Checker) SetModuleProber(p ModuleProber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prober = p
}

// Check runs every registered check and aggregates the results. Readiness callers get a
// cached result inside cacheDuration; the detailed endpoint always re-probes.
func (c *Checker) Check(ctx context.Context, detailed bool) (*HealthCheck, error) {
	if !detailed && c.shouldUseCached() {
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.cachedHealth, nil
	}

	health := &HealthCheck{
		Timestamp:  time.Now(),
		Components: make(map[string]ComponentHealth),
		Metrics:    make(map[string]interface{}),
	}

	checks := []struct {
		name string
		fn   func(context.Context) ComponentHealth
	}{
		{"rpc", c.checkRPC},
		{"consensus", c.checkConsensus},
		{"network", c.checkNetwork},
		{"database", c.checkDatabase},
	}

	if detailed {
		checks = append(checks,
			struct {
				name string
				fn   func(context.Context) ComponentHealth
			}{"modules", c.checkModules},
		)
	}

	// probes run in parallel, each carries its own timeout
	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, check := range checks {
		wg.Add(1)
		go func(name string, fn func(context.Context) ComponentHealth) {
			defer wg.Done()
			result := fn(ctx)
			mu.Lock()
			health.Components[name] = result
			mu.Unlock()
		}(check.name, check.fn)
	}
	wg.Wait()

	health.Status = c.calculateOverallStatus(health.Components)

	c.mu.Lock()
	c.lastCheck = time.Now()
	c.cachedHealth = health
	c.mu.Unlock()

	return health, nil
}

// checkRPC verifies RPC endpoint connectivity and responsiveness
func (c *Checker) checkRPC(ctx context.Context) ComponentHealth {
	start := time.Now()

	timeoutCtx, cancel := context.WithTimeout(ctx, c.maxResponseTime)
	defer cancel()

	status, err := c.rpcClient.Status(timeoutCtx)
	duration := time.Since(start)

	if err != nil {
		return ComponentHealth{
			Status:    StatusUnhealthy,
			Message:   fmt.Sprintf("RPC connection failed: %v", err),
			Timestamp: time.Now(),
		}
	}

	metrics := map[string]interface{}{
		"response_time_ms": duration.Milliseconds(),
		"node_info":        status.NodeInfo.Moniker,
		"network":          status.NodeInfo.Network,
	}

	componentStatus := StatusHealthy
	message := "RPC endpoint is responsive"

	if duration > c.maxResponseTime/2 {
		componentStatus = StatusDegraded
		message = "RPC endpoint response time is degraded"
	}

	return ComponentHealth{
		Status:    componentStatus,
		Message:   message,
		Timestamp: time.Now(),
		Metrics:   metrics,
	}
}

// checkConsensus verifies the node is producing or receiving blocks. A node
// that stops advancing also stops dispatching restake runs, so staleness is
// the primary signal here.
func (c *Checker) checkConsensus(ctx context.Context) ComponentHealth {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.maxResponseTime)
	defer cancel()

	status, err := c.rpcClient.Status(timeoutCtx)
	if err != nil {
		return ComponentHealth{
			Status:    StatusUnhealthy,
			Message:   fmt.Sprintf("Failed to get consensus status: %v", err),
			Timestamp: time.Now(),
		}
	}

	isSyncing := status.SyncInfo.CatchingUp
	latestBlockHeight := status.SyncInfo.LatestBlockHeight
	latestBlockTime := status.SyncInfo.LatestBlockTime

	metrics := map[string]interface{}{
		"latest_block_height": latestBlockHeight,
		"latest_block_time":   latestBlockTime.Format(time.RFC3339),
		"catching_up":         isSyncing,
	}

	staleAfter := time.Duration(c.maxBlockLag) * expectedBlockInterval
	if blockAge := time.Since(latestBlockTime); !isSyncing && blockAge > staleAfter {
		metrics["block_age_seconds"] = blockAge.Seconds()
		return ComponentHealth{
			Status:    StatusUnhealthy,
			Message:   fmt.Sprintf("Node is stale (last block %.1f minutes ago)", blockAge.Minutes()),
			Timestamp: time.Now(),
			Metrics:   metrics,
		}
	}

	componentStatus := StatusHealthy
	message := "Consensus is healthy"

	if isSyncing {
		componentStatus = StatusDegraded
		message = "Node is catching up with the network"
	}

	return ComponentHealth{
		Status:    componentStatus,
		Message:   message,
		Timestamp: time.Now(),
		Metrics:   metrics,
	}
}

// checkNetwork verifies network connectivity and peer status
func (c *Checker) checkNetwork(ctx context.Context) ComponentHealth {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.maxResponseTime)
	defer cancel()

	netInfo, err := c.rpcClient.NetInfo(timeoutCtx)
	if err != nil {
		return ComponentHealth{
			Status:    StatusUnhealthy,
			Message:   fmt.Sprintf("Failed to get network info: %v", err),
			Timestamp: time.Now(),
		}
	}

	peerCount := netInfo.NPeers

	metrics := map[string]interface{}{
		"peer_count": peerCount,
		"listening":  netInfo.Listening,
		"listeners":  netInfo.Listeners,
	}

	componentStatus := StatusHealthy
	message := fmt.Sprintf("Network healthy with %d peers", peerCount)

	if peerCount < c.minPeerCount {
		componentStatus = StatusDegraded
		message = fmt.Sprintf("Low peer count: %d (minimum recommended: %d)", peerCount, c.minPeerCount)
	}

	if peerCount == 0 {
		componentStatus = StatusUnhealthy
		message = "No peers connected"
	}

	return ComponentHealth{
		Status:    componentStatus,
		Message:   message,
		Timestamp: time.Now(),
		Metrics:   metrics,
	}
}

// checkDatabase verifies state store responsiveness via an ABCI info query.
func (c *Checker) checkDatabase(ctx context.Context) ComponentHealth {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.maxResponseTime)
	defer cancel()

	start := time.Now()
	_, err := c.rpcClient.ABCIInfo(timeoutCtx)
	duration := time.Since(start)

	if err != nil {
		return ComponentHealth{
			Status:    StatusUnhealthy,
			Message:   fmt.Sprintf("Database query failed: %v", err),
			Timestamp: time.Now(),
		}
	}

	metrics := map[string]interface{}{
		"query_time_ms": duration.Milliseconds(),
	}

	componentStatus := StatusHealthy
	message := "Database is responsive"

	if duration > time.Second {
		componentStatus = StatusDegraded
		message = "Database response time is degraded"
	}

	return ComponentHealth{
		Status:    componentStatus,
		Message:   message,
		Timestamp: time.Now(),
		Metrics:   metrics,
	}
}

// checkModules reports restake module state counts via the installed prober.
func (c *Checker) checkModules(ctx context.Context) ComponentHealth {
	c.mu.RLock()
	prober := c.prober
	c.mu.RUnlock()

	if prober == nil {
		return ComponentHealth{
			Status:    StatusUnknown,
			Message:   "No module prober installed",
			Timestamp: time.Now(),
		}
	}

	moduleStats := prober(ctx)

	metrics := make(map[string]interface{}, len(moduleStats))
	for name, stats := range moduleStats {
		metrics[name] = stats
	}

	return ComponentHealth{
		Status:    StatusHealthy,
		Message:   fmt.Sprintf("%d modules reporting", len(moduleStats)),
		Timestamp: time.Now(),
		Metrics:   metrics,
	}
}

// calculateOverallStatus determines the overall health status based on component statuses
func (c *Checker) calculateOverallStatus(components map[string]ComponentHealth) Status {
	hasUnhealthy := false
	hasDegraded := false

	for _, component := range components {
		switch component.Status {
		case StatusUnhealthy:
			hasUnhealthy = true
		case StatusDegraded:
			hasDegraded = true
		}
	}

	if hasUnhealthy {
		return StatusUnhealthy
	}
	if hasDegraded {
		return StatusDegraded
	}
	return StatusHealthy
}

func (c *Checker) shouldUseCached() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cachedHealth == nil {
		return false
	}

	return time.Since(c.lastCheck) < c.cacheDuration
}

// RegisterRoutes registers health check endpoints with the API server
func (c *Checker) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", c.handleHealth).Methods("GET")
	router.HandleFunc("/health/ready", c.handleHealthReady).Methods("GET")
	router.HandleFunc("/health/detailed", c.handleHealthDetailed).Methods("GET")
}

func (c *Checker) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (c *Checker) handleHealthReady(w http.ResponseWriter, r *http.Request) {
	c.serveCheck(w, r, false)
}

func (c *Checker) handleHealthDetailed(w http.ResponseWriter, r *http.Request) {
	c.serveCheck(w, r, true)
}

func (c *Checker) serveCheck(w http.ResponseWriter, r *http.Request, detailed bool) {
	health, err := c.Check(r.Context(), detailed)
	if err != nil {
		c.logger.Error("Health check failed", "detailed", detailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	statusCode := http.StatusOK
	if health.Status == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(health)
}
