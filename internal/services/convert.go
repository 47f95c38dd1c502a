package services

import (
	"encoding/json"
	"fmt"
	"time"

	"cosmossdk.io/math"

	"github.com/sdupi-network/sdupi-token-core/consumer"
	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// stateToDocuments flattens a core snapshot into the snapshot collections.
func stateToDocuments(state *core.State, now time.Time) (
	[]*model.AccountDocument,
	[]*model.StakeDocument,
	*model.PoolDocument,
	*model.SystemStateDocument,
) {
	accounts := make([]*model.AccountDocument, 0, len(state.Balances))
	for addr, balance := range state.Balances {
		accounts = append(accounts, &model.AccountDocument{
			Address: string(addr),
			Balance: balance.String(),
		})
	}

	stakes := make([]*model.StakeDocument, 0, len(state.Stakes))
	for addr, record := range state.Stakes {
		stakes = append(stakes, &model.StakeDocument{
			Address:           string(addr),
			Amount:            record.Amount.String(),
			StartTime:         record.StartTime.Unix(),
			SnapshotTime:      record.SnapshotTime.Unix(),
			LockPeriodSeconds: int64(record.LockPeriod / time.Second),
		})
	}

	pool := &model.PoolDocument{
		TotalStaked:       state.Pool.TotalStaked.String(),
		TotalRewardsPaid:  state.Pool.TotalRewardsPaid.String(),
		APYPercent:        state.Pool.APYPercent,
		LockPeriodSeconds: int64(state.Pool.LockPeriod / time.Second),
		Active:            state.Pool.Active,
	}

	system := &model.SystemStateDocument{
		OwnerAddress: string(state.Owner),
		Paused:       state.Paused,
		TotalSupply:  state.TotalSupply.String(),
		UpdatedAt:    now.Unix(),
	}

	return accounts, stakes, pool, system
}

// documentsToState rebuilds a core snapshot from the persisted documents.
// Sub-second precision is not preserved; stake timestamps are stored as
// Unix seconds, which is the granularity reward accrual works at anyway.
func documentsToState(
	accounts []*model.AccountDocument,
	stakes []*model.StakeDocument,
	pool *model.PoolDocument,
	system *model.SystemStateDocument,
) (*core.State, error) {
	totalSupply, err := parseAmount(system.TotalSupply)
	if err != nil {
		return nil, fmt.Errorf("invalid total supply: %w", err)
	}

	balances := make(map[types.Address]math.Int, len(accounts))
	for _, account := range accounts {
		balance, err := parseAmount(account.Balance)
		if err != nil {
			return nil, fmt.Errorf("invalid balance for %s: %w", account.Address, err)
		}
		balances[types.Address(account.Address)] = balance
	}

	records := make(map[types.Address]*core.StakeRecord, len(stakes))
	for _, stake := range stakes {
		amount, err := parseAmount(stake.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid stake amount for %s: %w", stake.Address, err)
		}
		records[types.Address(stake.Address)] = &core.StakeRecord{
			Amount:       amount,
			StartTime:    time.Unix(stake.StartTime, 0).UTC(),
			LockPeriod:   time.Duration(stake.LockPeriodSeconds) * time.Second,
			SnapshotTime: time.Unix(stake.SnapshotTime, 0).UTC(),
			Active:       true,
		}
	}

	totalStaked, err := parseAmount(pool.TotalStaked)
	if err != nil {
		return nil, fmt.Errorf("invalid pool total staked: %w", err)
	}
	totalRewardsPaid, err := parseAmount(pool.TotalRewardsPaid)
	if err != nil {
		return nil, fmt.Errorf("invalid pool total rewards paid: %w", err)
	}

	return &core.State{
		Owner:       types.Address(system.OwnerAddress),
		Paused:      system.Paused,
		TotalSupply: totalSupply,
		Balances:    balances,
		Stakes:      records,
		Pool: core.Pool{
			TotalStaked:      totalStaked,
			TotalRewardsPaid: totalRewardsPaid,
			APYPercent:       pool.APYPercent,
			LockPeriod:       time.Duration(pool.LockPeriodSeconds) * time.Second,
			Active:           pool.Active,
		},
	}, nil
}

func parseAmount(s string) (math.Int, error) {
	amount, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("not a decimal integer: %q", s)
	}
	return amount, nil
}

// formatAmount tolerates the nil amounts carried by rejected operations.
func formatAmount(amount math.Int) string {
	if amount.IsNil() {
		return ""
	}
	return amount.String()
}

// opParams renders an operation's arguments for the journal.
func opParams(op core.Operation) map[string]string {
	switch o := op.(type) {
	case core.TransferOp:
		return map[string]string{"to": string(o.To), "amount": formatAmount(o.Amount)}
	case core.MintOp:
		return map[string]string{"to": string(o.To), "amount": formatAmount(o.Amount)}
	case core.BurnOp:
		return map[string]string{"amount": formatAmount(o.Amount)}
	case core.StakeOp:
		return map[string]string{"amount": formatAmount(o.Amount)}
	case core.UpdatePoolOp:
		return map[string]string{
			"apy_percent":         fmt.Sprintf("%d", o.APYPercent),
			"lock_period_seconds": fmt.Sprintf("%d", int64(o.LockPeriod/time.Second)),
		}
	case core.SetStakingActiveOp:
		return map[string]string{"active": fmt.Sprintf("%t", o.Active)}
	case core.TransferOwnershipOp:
		return map[string]string{"new_owner": string(o.NewOwner)}
	default:
		// UnstakeOp, ClaimRewardsOp, PauseOp, UnpauseOp carry no
		// arguments beyond the caller
		return nil
	}
}

// receiptToOperationEvents renders the receipt's events as sink payloads,
// one per emitted event, in application order.
func receiptToOperationEvents(
	opID string,
	op core.Operation,
	receipt *core.Receipt,
	timestamp time.Time,
) ([]*consumer.OperationEvent, error) {
	events := make([]*consumer.OperationEvent, 0, len(receipt.Events))
	for _, event := range receipt.Events {
		data, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event %s: %w", event.EventType(), err)
		}

		events = append(events, &consumer.OperationEvent{
			ID:        opID,
			Kind:      op.Kind().String(),
			Caller:    string(op.CallerAddress()),
			Type:      event.EventType().String(),
			Data:      data,
			Timestamp: timestamp.Unix(),
		})
	}
	return events, nil
}
