package model

const AccountCollection = "accounts"

// AccountDocument is the per-address ledger row. Accounts are created
// zero-valued on first deposit and are never deleted.
//
// Invariant: PendingClaim > 0 if and only if CooldownDeadline > 0. The two
// fields are always set and cleared together inside the same transaction.
type AccountDocument struct {
	Address          string `bson:"_id"` // lowercase hex address, primary key
	Staked           uint64 `bson:"staked"`
	PendingClaim     uint64 `bson:"pending_claim"`
	CooldownDeadline int64  `bson:"cooldown_deadline"` // unix seconds, 0 means no active cooldown
	Locked           bool   `bson:"locked"`
}
