//go:build e2e

package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sdupi-network/sdupi-token-core/e2etest/container"
	"github.com/sdupi-network/sdupi-token-core/internal/api"
	"github.com/sdupi-network/sdupi-token-core/internal/config"
	"github.com/sdupi-network/sdupi-token-core/internal/db"
	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/metrics"
	"github.com/sdupi-network/sdupi-token-core/internal/services"
)

const (
	mongoUsername     = "user"
	mongoPassword     = "password"
	mongoDatabaseName = "e2e-database"

	// e2eOwner receives the genesis supply and signs administrative calls.
	e2eOwner = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

	eventuallyWaitTimeOut = 40 * time.Second
	eventuallyPollTime    = 1 * time.Second
)

// TestManager runs the full service in-process against a dockertest
// provisioned mongo: real config, real db client, real HTTP server.
type TestManager struct {
	Config   *config.Config
	Service  *services.Service
	DbClient *db.Database

	manager    *container.Manager
	httpClient *http.Client
	baseURL    string

	stopServer context.CancelFunc
	serverDone chan struct{}
}

// StartManager provisions mongo, bootstraps the service at genesis and
// starts the API server. The genesis section can be adjusted through
// adjustGenesis, e.g. to shorten the lock period so unstaking is testable.
func StartManager(t *testing.T, adjustGenesis func(*config.GenesisConfig)) *TestManager {
	t.Helper()
	ctx := context.Background()

	manager, err := container.NewManager(t)
	require.NoError(t, err)

	mongoHostPort, err := manager.RunMongoResource(container.MongoCredentials{
		Username: mongoUsername,
		Password: mongoPassword,
		DbName:   mongoDatabaseName,
	})
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: freePort(t),
		},
		Db: config.DbConfig{
			Username: mongoUsername,
			Password: mongoPassword,
			Address:  fmt.Sprintf("mongodb://localhost:%s/", mongoHostPort),
			DbName:   mongoDatabaseName,
		},
		Genesis: config.GenesisConfig{
			OwnerAddress: e2eOwner,
		},
		Poller: config.PollerConfig{
			SnapshotPollingInterval: time.Second,
			StatsPollingInterval:    time.Second,
		},
		Metrics: config.MetricsConfig{
			Host: "127.0.0.1",
			Port: freePort(t),
		},
	}
	if adjustGenesis != nil {
		adjustGenesis(&cfg.Genesis)
	}
	require.NoError(t, cfg.Validate())

	// mongo may still be starting inside the container
	require.Eventually(t, func() bool {
		return model.Setup(ctx, &cfg.Db) == nil
	}, eventuallyWaitTimeOut, eventuallyPollTime)

	// collectors must be registered before the API server takes traffic
	metrics.Init(cfg.Metrics.GetMetricsPort())

	tm := &TestManager{
		Config:     cfg,
		manager:    manager,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	tm.startService(t)

	t.Cleanup(func() {
		tm.Stop(t)
	})

	return tm
}

// startService builds a service over the configured database, bootstraps
// it and serves the API until StopServer.
func (tm *TestManager) startService(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	dbClient, err := db.New(ctx, tm.Config.Db)
	require.NoError(t, err)
	tm.DbClient = dbClient

	svc := services.NewService(tm.Config, db.NewDbWithMetrics(dbClient))
	require.NoError(t, svc.Bootstrap(ctx))
	tm.Service = svc

	serverCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	tm.stopServer = cancel
	tm.serverDone = done
	tm.baseURL = fmt.Sprintf("http://%s", tm.Config.Server.Address())

	svc.StartSnapshotPoller(serverCtx)
	svc.StartStatsPoller(serverCtx)

	server := api.New(tm.Config, svc)
	go func() {
		defer close(done)
		if err := server.Start(serverCtx); err != nil {
			t.Logf("API server stopped with error: %v", err)
		}
	}()

	require.Eventually(t, func() bool {
		resp, err := tm.httpClient.Get(tm.baseURL + "/healthcheck")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, eventuallyWaitTimeOut, eventuallyPollTime)
}

// StopServer persists a final snapshot and shuts the API server down,
// mirroring the start-server shutdown path.
func (tm *TestManager) StopServer(t *testing.T) {
	t.Helper()

	require.NoError(t, tm.Service.PersistSnapshot(context.Background()))
	tm.stopServer()
	select {
	case <-tm.serverDone:
	case <-time.After(eventuallyWaitTimeOut):
		t.Fatal("API server did not shut down")
	}
	require.NoError(t, tm.DbClient.Disconnect(context.Background()))
}

// RestartServer stops the running service and brings up a fresh one over
// the same database, as a process restart would.
func (tm *TestManager) RestartServer(t *testing.T) {
	t.Helper()

	tm.StopServer(t)
	tm.Config.Server.Port = freePort(t)
	tm.startService(t)
}

func (tm *TestManager) Stop(t *testing.T) {
	if tm.stopServer == nil {
		return
	}
	tm.stopServer()
	tm.stopServer = nil
	<-tm.serverDone
	_ = tm.DbClient.Disconnect(context.Background())
}

// Get issues a GET and decodes the JSON response into out, requiring a
// 200 status.
func (tm *TestManager) Get(t *testing.T, path string, out any) {
	t.Helper()

	status, body := tm.request(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, status, "GET %s: %s", path, string(body))
	require.NoError(t, json.Unmarshal(body, out))
}

// Post issues a JSON POST and returns the status code and raw body.
func (tm *TestManager) Post(t *testing.T, path string, payload any) (int, []byte) {
	t.Helper()
	return tm.request(t, http.MethodPost, path, payload)
}

// PostOK issues a JSON POST, requires a 200 status and decodes the
// operation response.
func (tm *TestManager) PostOK(t *testing.T, path string, payload any) operationResult {
	t.Helper()

	status, body := tm.Post(t, path, payload)
	require.Equal(t, http.StatusOK, status, "POST %s: %s", path, string(body))

	var result operationResult
	require.NoError(t, json.Unmarshal(body, &result))
	return result
}

// PostRejected issues a JSON POST and requires the given status and stable
// error code from the error envelope.
func (tm *TestManager) PostRejected(t *testing.T, path string, payload any, wantStatus int, wantCode string) {
	t.Helper()

	status, body := tm.Post(t, path, payload)
	require.Equal(t, wantStatus, status, "POST %s: %s", path, string(body))

	var envelope struct {
		ErrorCode string `json:"errorCode"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Equal(t, wantCode, envelope.ErrorCode)
}

func (tm *TestManager) request(t *testing.T, method, path string, payload any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, tm.baseURL+path, reqBody)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tm.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, body
}

// operationResult mirrors the operation response envelope of the API.
type operationResult struct {
	Kind      string `json:"kind"`
	Principal string `json:"principal"`
	Reward    string `json:"reward"`
	Events    []struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	} `json:"events"`
}

func freePort(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	return listener.Addr().(*net.TCPAddr).Port
}
