package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stakevault/staking-ledger-service/internal/db/model"
)

// SaveEmergencyWithdrawal records the audit row for an emergency withdrawal.
// The escape hatch bypasses all per-account ledger state, so this row is the
// only trace the ledger keeps of the custody movement.
func (db *Database) SaveEmergencyWithdrawal(ctx context.Context, reference, to string, amount uint64, timestamp int64) error {
	client := db.Client.Database(db.DbName).Collection(model.EmergencyWithdrawalCollection)
	document := model.EmergencyWithdrawalDocument{
		Reference: reference,
		To:        to,
		Amount:    amount,
		Timestamp: timestamp,
	}
	_, err := client.InsertOne(ctx, document)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     reference,
				Message: "emergency withdrawal reference already recorded",
			}
		}
		return err
	}
	return nil
}
