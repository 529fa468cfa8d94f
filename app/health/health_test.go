package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t testing.TB, cfg Config) *Checker {
	t.Helper()
	checker, err := NewChecker(log.NewNopLogger(), cfg, client.Context{})
	require.NoError(t, err)
	return checker
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "http://localhost:26657", cfg.RPCURL)
	require.Equal(t, int64(10), cfg.MaxBlockLag)
	require.Equal(t, 5*time.Second, cfg.MaxResponseTime)
	require.Equal(t, 3, cfg.MinPeerCount)
	require.Equal(t, 5*time.Second, cfg.CacheDuration)
}

func TestNewChecker(t *testing.T) {
	checker := newTestChecker(t, DefaultConfig())
	require.Equal(t, int64(10), checker.maxBlockLag)
	require.Equal(t, 5*time.Second, checker.maxResponseTime)
	require.Equal(t, 3, checker.minPeerCount)

	// RPC URL is mandatory
	cfg := DefaultConfig()
	cfg.RPCURL = ""
	_, err := NewChecker(log.NewNopLogger(), cfg, client.Context{})
	require.ErrorContains(t, err, "RPC URL is required")
}

func TestCalculateOverallStatus(t *testing.T) {
	checker := newTestChecker(t, DefaultConfig())

	tests := []struct {
		name       string
		components map[string]ComponentHealth
		expected   Status
	}{
		{
			"all healthy",
			map[string]ComponentHealth{
				"rpc":       {Status: StatusHealthy},
				"consensus": {Status: StatusHealthy},
			},
			StatusHealthy,
		},
		{
			"one degraded",
			map[string]ComponentHealth{
				"rpc":       {Status: StatusHealthy},
				"consensus": {Status: StatusDegraded},
			},
			StatusDegraded,
		},
		{
			"one unhealthy",
			map[string]ComponentHealth{
				"rpc":       {Status: StatusHealthy},
				"consensus": {Status: StatusUnhealthy},
			},
			StatusUnhealthy,
		},
		{
			"unhealthy beats degraded",
			map[string]ComponentHealth{
				"rpc":       {Status: StatusDegraded},
				"consensus": {Status: StatusUnhealthy},
			},
			StatusUnhealthy,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, checker.calculateOverallStatus(tc.components))
		})
	}
}

func TestShouldUseCached(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CacheDuration = 100 * time.Millisecond
	checker := newTestChecker(t, cfg)

	require.False(t, checker.shouldUseCached())

	checker.mu.Lock()
	checker.cachedHealth = &HealthCheck{Status: StatusHealthy, Timestamp: time.Now()}
	checker.lastCheck = time.Now()
	checker.mu.Unlock()

	require.True(t, checker.shouldUseCached())

	time.Sleep(150 * time.Millisecond)
	require.False(t, checker.shouldUseCached())
}

func TestCheckModules(t *testing.T) {
	checker := newTestChecker(t, DefaultConfig())

	// without a prober the component is unknown, not unhealthy
	result := checker.checkModules(context.Background())
	require.Equal(t, StatusUnknown, result.Status)

	checker.SetModuleProber(func(ctx context.Context) map[string]map[string]interface{} {
		return map[string]map[string]interface{}{
			"autoclaim":  {"subscriptions": 4, "pending_operations": 2},
			"orderguard": {"markets": 1, "resting_orders": 7},
		}
	})

	result = checker.checkModules(context.Background())
	require.Equal(t, StatusHealthy, result.Status)
	require.Contains(t, result.Metrics, "autoclaim")
	require.Contains(t, result.Metrics, "orderguard")
}

func TestHandleHealth(t *testing.T) {
	checker := newTestChecker(t, DefaultConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	checker.handleHealth(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "ok", response["status"])
	require.NotEmpty(t, response["timestamp"])
}

func TestRegisterRoutes(t *testing.T) {
	checker := newTestChecker(t, DefaultConfig())

	router := mux.NewRouter()
	checker.RegisterRoutes(router)

	for _, route := range []string{"/health", "/health/ready", "/health/detailed"} {
		req := httptest.NewRequest("GET", route, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.NotEqual(t, http.StatusNotFound, w.Code, "route %s should be registered", route)
	}
}

func TestConcurrentLivenessRequests(t *testing.T) {
	checker := newTestChecker(t, DefaultConfig())

	const numRequests = 10
	results := make(chan error, numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			w := httptest.NewRecorder()
			checker.handleHealth(w, httptest.NewRequest("GET", "/health", nil))
			if w.Code != http.StatusOK {
				results <- fmt.Errorf("unexpected status %d", w.Code)
				return
			}
			results <- nil
		}()
	}

	for i := 0; i < numRequests; i++ {
		require.NoError(t, <-results)
	}
}

func BenchmarkHandleHealth(b *testing.B) {
	checker := newTestChecker(b, DefaultConfig())
	req := httptest.NewRequest("GET", "/health", nil)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		checker.handleHealth(w, req)
	}
}
