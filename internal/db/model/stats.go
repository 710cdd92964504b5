package model

const (
	LedgerStatsCollection     = "ledger_stats"
	ConsumedRequestCollection = "consumed_requests"
)

// LedgerStatsId is the primary key of the single ledger stats document.
const LedgerStatsId = "ledger_stats"

// LedgerStatsDocument holds the maintained aggregates of the ledger.
// TotalStaked is updated with $inc inside the same transaction as the
// account mutation, so it always reconciles with sum(accounts.staked).
type LedgerStatsDocument struct {
	Id                string `bson:"_id"`
	TotalStaked       uint64 `bson:"total_staked"`
	TotalPendingClaim uint64 `bson:"total_pending_claim"`
	DepositCount      uint64 `bson:"deposit_count"`
}

// ConsumedRequestDocument marks a redemption request id as used. The _id
// uniqueness is the replay defense: a second redemption carrying the same
// request id fails with a duplicate key error inside the transaction.
type ConsumedRequestDocument struct {
	RequestId string `bson:"_id"`
	Address   string `bson:"address"`
	Amount    uint64 `bson:"amount"`
}
