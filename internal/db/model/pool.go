package model

const PoolCollection = "staking_pool"

// PoolID is the fixed _id of the singleton pool document.
const PoolID = "staking_pool"

// PoolDocument represents the single staking pool.
type PoolDocument struct {
	ID                string `bson:"_id"`                 // always PoolID
	TotalStaked       string `bson:"total_staked"`        // sum of active principals as decimal string
	TotalRewardsPaid  string `bson:"total_rewards_paid"`  // lifetime minted rewards as decimal string
	APYPercent        uint64 `bson:"apy_percent"`         // whole-percent APY
	LockPeriodSeconds int64  `bson:"lock_period_seconds"` // lock applied to new stakes
	Active            bool   `bson:"active"`              // whether new stakes are accepted
}
