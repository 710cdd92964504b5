package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakevault/staking-ledger-service/internal/db/model"
)

func (db *Database) FindAccountByAddress(ctx context.Context, address string) (*model.AccountDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.AccountCollection)
	filter := bson.M{"_id": address}
	var account model.AccountDocument
	err := client.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     address,
				Message: "Account not found",
			}
		}
		return nil, err
	}
	return &account, nil
}

// SetAccountLock toggles the administrative lock flag. Locking blocks future
// redemption requests only; staked and pending claim balances are untouched
// and an already pending claim can still be finalized.
func (db *Database) SetAccountLock(ctx context.Context, address string, locked bool) error {
	client := db.Client.Database(db.DbName).Collection(model.AccountCollection)
	filter := bson.M{"_id": address}
	update := bson.M{
		"$set":         bson.M{"locked": locked},
		"$setOnInsert": bson.M{"staked": int64(0), "pending_claim": int64(0), "cooldown_deadline": int64(0)},
	}
	_, err := client.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
