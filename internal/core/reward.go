package core

import (
	"time"

	"cosmossdk.io/math"
)

// secondsPerYear is the accrual basis: a flat 365-day year.
const secondsPerYear = 365 * 24 * 60 * 60

// rewardAt computes the reward accrued by a stake record between its
// snapshot time and now, at the pool's current APY:
//
//	annual = floor(amount * apy / 100)
//	reward = floor(annual * elapsedSeconds / secondsPerYear)
//
// Linear on the original principal, no compounding; both divisions
// truncate toward zero. Returns zero for a missing or inactive record and
// for non-positive elapsed time.
func rewardAt(record *StakeRecord, apyPercent uint64, now time.Time) math.Int {
	if record == nil || !record.Active {
		return math.ZeroInt()
	}

	elapsed := now.Unix() - record.SnapshotTime.Unix()
	if elapsed <= 0 {
		return math.ZeroInt()
	}

	annual := record.Amount.MulRaw(int64(apyPercent)).QuoRaw(100)

	return annual.MulRaw(elapsed).QuoRaw(secondsPerYear)
}
