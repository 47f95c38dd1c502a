package db

import (
	"context"
	"time"

	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) ReplaceAccounts(ctx context.Context, accounts []*model.AccountDocument) error {
	return d.run("ReplaceAccounts", func() error {
		return d.db.ReplaceAccounts(ctx, accounts)
	})
}

func (d *DbWithMetrics) GetAccounts(ctx context.Context) (result []*model.AccountDocument, err error) {
	//nolint:errcheck
	d.run("GetAccounts", func() error {
		result, err = d.db.GetAccounts(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) ReplaceStakes(ctx context.Context, stakes []*model.StakeDocument) error {
	return d.run("ReplaceStakes", func() error {
		return d.db.ReplaceStakes(ctx, stakes)
	})
}

func (d *DbWithMetrics) GetStakes(ctx context.Context) (result []*model.StakeDocument, err error) {
	//nolint:errcheck
	d.run("GetStakes", func() error {
		result, err = d.db.GetStakes(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SavePool(ctx context.Context, pool *model.PoolDocument) error {
	return d.run("SavePool", func() error {
		return d.db.SavePool(ctx, pool)
	})
}

func (d *DbWithMetrics) GetPool(ctx context.Context) (result *model.PoolDocument, err error) {
	//nolint:errcheck
	d.run("GetPool", func() error {
		result, err = d.db.GetPool(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveSystemState(ctx context.Context, state *model.SystemStateDocument) error {
	return d.run("SaveSystemState", func() error {
		return d.db.SaveSystemState(ctx, state)
	})
}

func (d *DbWithMetrics) GetSystemState(ctx context.Context) (result *model.SystemStateDocument, err error) {
	//nolint:errcheck
	d.run("GetSystemState", func() error {
		result, err = d.db.GetSystemState(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) AppendOperation(ctx context.Context, op *model.OperationDocument) error {
	return d.run("AppendOperation", func() error {
		return d.db.AppendOperation(ctx, op)
	})
}

func (d *DbWithMetrics) GetRecentOperations(ctx context.Context, limit int64) (result []*model.OperationDocument, err error) {
	//nolint:errcheck
	d.run("GetRecentOperations", func() error {
		result, err = d.db.GetRecentOperations(ctx, limit)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
