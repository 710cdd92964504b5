package model

const EmergencyWithdrawalCollection = "emergency_withdrawals"

// EmergencyWithdrawalDocument is the audit row recorded for every use of the
// emergency withdrawal escape hatch. It intentionally does not touch any
// account fields.
type EmergencyWithdrawalDocument struct {
	Reference string `bson:"_id"` // idempotency reference passed to the custodian
	To        string `bson:"to"`
	Amount    uint64 `bson:"amount"`
	Timestamp int64  `bson:"timestamp"`
}
