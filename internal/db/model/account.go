package model

const AccountCollection = "accounts"

// AccountDocument is a single ledger account balance.
// Balances are stored as decimal strings because token amounts
// (18 decimals) exceed the range of int64/uint64.
type AccountDocument struct {
	Address string `bson:"_id"`     // normalized 0x hex address
	Balance string `bson:"balance"` // base-unit amount as decimal string
}
