package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sdupi-network/sdupi-token-core/internal/config"
	"github.com/sdupi-network/sdupi-token-core/internal/db"
	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/metrics"
	"github.com/sdupi-network/sdupi-token-core/internal/services"
)

const (
	testOwner = "0xa1b2c3d4e5f6a7b8c9d0a1b2c3d4e5f6a7b8c9d0"
	testAlice = "0x1111111111111111111111111111111111111111"
	testBob   = "0x2222222222222222222222222222222222222222"
)

// fakeStore is an in-memory DbInterface for handler tests.
type fakeStore struct {
	mu       sync.Mutex
	accounts []*model.AccountDocument
	stakes   []*model.StakeDocument
	pool     *model.PoolDocument
	system   *model.SystemStateDocument
	journal  []*model.OperationDocument
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func (f *fakeStore) ReplaceAccounts(ctx context.Context, accounts []*model.AccountDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts = accounts
	return nil
}

func (f *fakeStore) GetAccounts(ctx context.Context) ([]*model.AccountDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts, nil
}

func (f *fakeStore) ReplaceStakes(ctx context.Context, stakes []*model.StakeDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stakes = stakes
	return nil
}

func (f *fakeStore) GetStakes(ctx context.Context) ([]*model.StakeDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stakes, nil
}

func (f *fakeStore) SavePool(ctx context.Context, pool *model.PoolDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pool = pool
	return nil
}

func (f *fakeStore) GetPool(ctx context.Context) (*model.PoolDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pool == nil {
		return nil, &db.NotFoundError{Key: model.PoolID, Message: "pool not found"}
	}
	return f.pool, nil
}

func (f *fakeStore) SaveSystemState(ctx context.Context, state *model.SystemStateDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.system = state
	return nil
}

func (f *fakeStore) GetSystemState(ctx context.Context) (*model.SystemStateDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.system == nil {
		return nil, &db.NotFoundError{Key: model.SystemStateID, Message: "system state not found"}
	}
	return f.system, nil
}

func (f *fakeStore) AppendOperation(ctx context.Context, op *model.OperationDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.journal = append(f.journal, op)
	return nil
}

func (f *fakeStore) GetRecentOperations(ctx context.Context, limit int64) ([]*model.OperationDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ops []*model.OperationDocument
	for i := len(f.journal) - 1; i >= 0 && int64(len(ops)) < limit; i-- {
		ops = append(ops, f.journal[i])
	}
	return ops, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Genesis: config.GenesisConfig{OwnerAddress: testOwner},
		Poller: config.PollerConfig{
			SnapshotPollingInterval: 10 * time.Second,
			StatsPollingInterval:    10 * time.Second,
		},
	}
}

// newTestServer bootstraps a genesis ledger behind a fresh server.
func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	metrics.Init(9999)

	svc := services.NewService(cfg, &fakeStore{})
	require.NoError(t, svc.Bootstrap(t.Context()))

	return New(cfg, svc)
}

func doRequest(t *testing.T, srv *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func requireErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	resp := decodeResponse[errorResponse](t, rec)
	require.Equal(t, code, resp.ErrorCode)
	require.NotEmpty(t, resp.Message)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := doRequest(t, srv, http.MethodGet, "/healthcheck", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse[map[string]string](t, rec)
	require.Equal(t, "ok", resp["status"])
}

func TestUnknownRouteReturns404(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := doRequest(t, srv, http.MethodGet, "/v1/unknown", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
