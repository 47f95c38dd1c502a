package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/sdupi-network/sdupi-token-core/consumer"
	"github.com/sdupi-network/sdupi-token-core/internal/config"
	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/db"
	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"github.com/sdupi-network/sdupi-token-core/pkg"
)

const (
	testOwner = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testAlice = "0x1111111111111111111111111111111111111111"
	testBob   = "0x2222222222222222222222222222222222222222"
)

func whole(n int64) math.Int {
	return math.NewIntWithDecimal(n, core.Decimals)
}

// fakeDb is an in-memory DbInterface for unit tests; the mongo-backed
// implementation has its own integration tests.
type fakeDb struct {
	mu sync.Mutex

	accounts []*model.AccountDocument
	stakes   []*model.StakeDocument
	pool     *model.PoolDocument
	system   *model.SystemStateDocument
	journal  []*model.OperationDocument

	failAppend bool
}

var _ db.DbInterface = (*fakeDb)(nil)

func newFakeDb() *fakeDb {
	return &fakeDb{}
}

func (f *fakeDb) Ping(ctx context.Context) error {
	return nil
}

func (f *fakeDb) ReplaceAccounts(ctx context.Context, accounts []*model.AccountDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts = accounts
	return nil
}

func (f *fakeDb) GetAccounts(ctx context.Context) ([]*model.AccountDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts, nil
}

func (f *fakeDb) ReplaceStakes(ctx context.Context, stakes []*model.StakeDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stakes = stakes
	return nil
}

func (f *fakeDb) GetStakes(ctx context.Context) ([]*model.StakeDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stakes, nil
}

func (f *fakeDb) SavePool(ctx context.Context, pool *model.PoolDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pool = pool
	return nil
}

func (f *fakeDb) GetPool(ctx context.Context) (*model.PoolDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pool == nil {
		return nil, &db.NotFoundError{Key: model.PoolID, Message: "staking pool not found"}
	}
	return f.pool, nil
}

func (f *fakeDb) SaveSystemState(ctx context.Context, state *model.SystemStateDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.system = state
	return nil
}

func (f *fakeDb) GetSystemState(ctx context.Context) (*model.SystemStateDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.system == nil {
		return nil, &db.NotFoundError{Key: model.SystemStateID, Message: "system state not found"}
	}
	return f.system, nil
}

func (f *fakeDb) AppendOperation(ctx context.Context, op *model.OperationDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAppend {
		return &db.DuplicateKeyError{Key: op.ID, Message: "operation already journaled"}
	}
	f.journal = append(f.journal, op)
	return nil
}

func (f *fakeDb) GetRecentOperations(ctx context.Context, limit int64) ([]*model.OperationDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ops := make([]*model.OperationDocument, 0, limit)
	for i := len(f.journal) - 1; i >= 0 && int64(len(ops)) < limit; i-- {
		ops = append(ops, f.journal[i])
	}
	return ops, nil
}

func (f *fakeDb) journalEntries() []*model.OperationDocument {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.OperationDocument(nil), f.journal...)
}

// recordingSink captures pushed events; with fail set it rejects them all.
type recordingSink struct {
	mu     sync.Mutex
	events []*consumer.OperationEvent
	fail   bool
}

var _ consumer.EventSink = (*recordingSink)(nil)

func (r *recordingSink) Start() error { return nil }
func (r *recordingSink) Stop() error  { return nil }

func (r *recordingSink) Push(ctx context.Context, ev *consumer.OperationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return context.DeadlineExceeded
	}
	r.events = append(r.events, ev)
	return nil
}

func (r *recordingSink) pushed() []*consumer.OperationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*consumer.OperationEvent(nil), r.events...)
}

func testConfig() *config.Config {
	return &config.Config{
		Genesis: config.GenesisConfig{
			OwnerAddress: testOwner,
		},
		Poller: config.PollerConfig{
			SnapshotPollingInterval: 10 * time.Second,
			StatsPollingInterval:    10 * time.Second,
		},
	}
}

func testConfigWithPool(apy uint64, lock time.Duration) *config.Config {
	cfg := testConfig()
	cfg.Genesis.APYPercent = pkg.Ptr(apy)
	cfg.Genesis.LockPeriod = pkg.Ptr(lock)
	return cfg
}

// newTestService bootstraps a service at genesis against a fresh fakeDb.
func newTestService(t *testing.T, cfg *config.Config, sinks ...consumer.EventSink) (*Service, *fakeDb) {
	t.Helper()

	fdb := newFakeDb()
	s := NewService(cfg, fdb, sinks...)
	require.NoError(t, s.Bootstrap(context.Background()))
	return s, fdb
}
