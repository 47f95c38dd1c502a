package model

const SystemStateCollection = "system_state"

// SystemStateID is the fixed _id of the singleton system state document.
const SystemStateID = "system_state"

// SystemStateDocument holds the global ledger fields that are not
// per-account: ownership, the pause flag and the total supply.
type SystemStateDocument struct {
	ID           string `bson:"_id"`           // always SystemStateID
	OwnerAddress string `bson:"owner_address"` // current owner
	Paused       bool   `bson:"paused"`
	TotalSupply  string `bson:"total_supply"` // base-unit amount as decimal string
	UpdatedAt    int64  `bson:"updated_at"`   // Unix timestamp of last snapshot
}
