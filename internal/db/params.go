package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stakevault/staking-ledger-service/internal/db/model"
)

func (db *Database) GetParams(ctx context.Context) (*model.ParamsDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.ParamsCollection)
	filter := bson.M{"_id": model.ParamsId}
	var params model.ParamsDocument
	err := client.FindOne(ctx, filter).Decode(&params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.ParamsId,
				Message: "Ledger params not found",
			}
		}
		return nil, err
	}
	return &params, nil
}

// UpdateCooldownPeriod changes the duration applied to future redemption
// requests. Already set cooldown deadlines are not altered.
func (db *Database) UpdateCooldownPeriod(ctx context.Context, seconds int64) error {
	client := db.Client.Database(db.DbName).Collection(model.ParamsCollection)
	filter := bson.M{"_id": model.ParamsId}
	update := bson.M{"$set": bson.M{"cooldown_seconds": seconds}}
	_, err := client.UpdateOne(ctx, filter, update)
	return err
}

// UpdateAttestationAuthority rotates the trusted signer configuration. It
// takes effect immediately for subsequent redemption requests.
func (db *Database) UpdateAttestationAuthority(ctx context.Context, appId, publicKeyHex, verifierAddress string) error {
	client := db.Client.Database(db.DbName).Collection(model.ParamsCollection)
	filter := bson.M{"_id": model.ParamsId}
	update := bson.M{"$set": bson.M{
		"app_id":             appId,
		"attestation_pk_hex": publicKeyHex,
		"verifier_address":   verifierAddress,
	}}
	_, err := client.UpdateOne(ctx, filter, update)
	return err
}

// SetPaused toggles the global kill switch rejecting deposit, redemption and
// claim operations. Admin functions remain available while paused.
func (db *Database) SetPaused(ctx context.Context, paused bool) error {
	client := db.Client.Database(db.DbName).Collection(model.ParamsCollection)
	filter := bson.M{"_id": model.ParamsId}
	update := bson.M{"$set": bson.M{"paused": paused}}
	_, err := client.UpdateOne(ctx, filter, update)
	return err
}
