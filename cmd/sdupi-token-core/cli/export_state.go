package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/spf13/cobra"

	"github.com/sdupi-network/sdupi-token-core/internal/config"
	"github.com/sdupi-network/sdupi-token-core/internal/db"
)

func ExportStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-state",
		Short: "Dumps the persisted ledger snapshot as JSON",
		Args:  cobra.ExactArgs(0),
		RunE:  exportState,
	}

	cmd.Flags().String("output", "", "Write the export to a file instead of stdout")

	return cmd
}

type accountExport struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

type stakeExport struct {
	Address           string `json:"address"`
	Amount            string `json:"amount"`
	StartTime         int64  `json:"start_time"`
	SnapshotTime      int64  `json:"snapshot_time"`
	LockPeriodSeconds int64  `json:"lock_period_seconds"`
}

type stateExport struct {
	ExportedAt        int64           `json:"exported_at"`
	Owner             string          `json:"owner"`
	Paused            bool            `json:"paused"`
	TotalSupply       string          `json:"total_supply"`
	SnapshotUpdatedAt int64           `json:"snapshot_updated_at"`
	PoolTotalStaked   string          `json:"pool_total_staked"`
	PoolRewardsPaid   string          `json:"pool_rewards_paid"`
	PoolAPYPercent    uint64          `json:"pool_apy_percent"`
	PoolLockSeconds   int64           `json:"pool_lock_period_seconds"`
	PoolActive        bool            `json:"pool_active"`
	Accounts          []accountExport `json:"accounts"`
	Stakes            []stakeExport   `json:"stakes"`
}

func exportState(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	// The export often runs right after the stack comes up, so give the
	// database a few attempts to become reachable.
	dbClient, err := retry.DoWithData(
		func() (*db.Database, error) {
			return db.New(ctx, cfg.Db)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to db: %w", err)
	}

	system, err := dbClient.GetSystemState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load system state: %w", err)
	}
	pool, err := dbClient.GetPool(ctx)
	if err != nil {
		return fmt.Errorf("failed to load staking pool: %w", err)
	}
	accounts, err := dbClient.GetAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	stakes, err := dbClient.GetStakes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stakes: %w", err)
	}

	export := stateExport{
		ExportedAt:        time.Now().Unix(),
		Owner:             system.OwnerAddress,
		Paused:            system.Paused,
		TotalSupply:       system.TotalSupply,
		SnapshotUpdatedAt: system.UpdatedAt,
		PoolTotalStaked:   pool.TotalStaked,
		PoolRewardsPaid:   pool.TotalRewardsPaid,
		PoolAPYPercent:    pool.APYPercent,
		PoolLockSeconds:   pool.LockPeriodSeconds,
		PoolActive:        pool.Active,
		Accounts:          make([]accountExport, 0, len(accounts)),
		Stakes:            make([]stakeExport, 0, len(stakes)),
	}
	for _, account := range accounts {
		export.Accounts = append(export.Accounts, accountExport{
			Address: account.Address,
			Balance: account.Balance,
		})
	}
	for _, stake := range stakes {
		export.Stakes = append(export.Stakes, stakeExport{
			Address:           stake.Address,
			Amount:            stake.Amount,
			StartTime:         stake.StartTime,
			SnapshotTime:      stake.SnapshotTime,
			LockPeriodSeconds: stake.LockPeriodSeconds,
		})
	}

	out, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if outputPath == "" {
		fmt.Println(string(out))
		return nil
	}

	if err := os.WriteFile(outputPath, out, 0o600); err != nil {
		return fmt.Errorf("failed to write export to %s: %w", outputPath, err)
	}

	return nil
}
