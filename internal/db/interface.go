package db

import (
	"context"

	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
)

type DbInterface interface {
	Ping(ctx context.Context) error
	ReplaceAccounts(ctx context.Context, accounts []*model.AccountDocument) error
	GetAccounts(ctx context.Context) ([]*model.AccountDocument, error)
	ReplaceStakes(ctx context.Context, stakes []*model.StakeDocument) error
	GetStakes(ctx context.Context) ([]*model.StakeDocument, error)
	SavePool(ctx context.Context, pool *model.PoolDocument) error
	GetPool(ctx context.Context) (*model.PoolDocument, error)
	SaveSystemState(ctx context.Context, state *model.SystemStateDocument) error
	GetSystemState(ctx context.Context) (*model.SystemStateDocument, error)
	AppendOperation(ctx context.Context, op *model.OperationDocument) error
	GetRecentOperations(ctx context.Context, limit int64) ([]*model.OperationDocument, error)
}
