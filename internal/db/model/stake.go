package model

const StakeCollection = "stakes"

// StakeDocument is one account's active stake. Only active stakes are
// persisted; an unstake removes the document.
type StakeDocument struct {
	Address           string `bson:"_id"`                 // staker address
	Amount            string `bson:"amount"`              // staked principal as decimal string
	StartTime         int64  `bson:"start_time"`          // Unix timestamp when the stake was placed
	SnapshotTime      int64  `bson:"snapshot_time"`       // Unix timestamp rewards accrue from
	LockPeriodSeconds int64  `bson:"lock_period_seconds"` // lock period frozen at stake time
}
