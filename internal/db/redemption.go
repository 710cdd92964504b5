package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakevault/staking-ledger-service/internal/db/model"
)

// SaveRedemption moves a verified amount from staked to pending claim and
// consumes the request id, all inside one transaction. The attestation has
// already been verified by the caller; no state is touched when any of the
// precondition checks fail.
//
// Repeated redemptions accumulate the pending claim and overwrite the
// cooldown deadline with the newest one.
func (db *Database) SaveRedemption(
	ctx context.Context, address string, amount uint64, requestId string, cooldownDeadline int64,
) error {
	database := db.Client.Database(db.DbName)
	accountClient := database.Collection(model.AccountCollection)
	consumedClient := database.Collection(model.ConsumedRequestCollection)
	statsClient := database.Collection(model.LedgerStatsCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		var account model.AccountDocument
		err := accountClient.FindOne(sessCtx, bson.M{"_id": address}).Decode(&account)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &InsufficientBalanceError{Address: address, Staked: 0, Requested: amount}
			}
			return nil, err
		}

		if err := checkRedemptionPreconditions(&account, amount); err != nil {
			return nil, err
		}

		// Consume the request id. The unique _id turns a replayed
		// attestation into a duplicate key error before any balance moves.
		consumedDocument := model.ConsumedRequestDocument{
			RequestId: requestId,
			Address:   address,
			Amount:    amount,
		}
		if _, err := consumedClient.InsertOne(sessCtx, consumedDocument); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, &DuplicateKeyError{
					Key:     requestId,
					Message: "redemption request id already consumed",
				}
			}
			return nil, err
		}

		accountUpdate := redemptionAccountUpdate(amount, cooldownDeadline)
		if _, err := accountClient.UpdateOne(sessCtx, bson.M{"_id": address}, accountUpdate); err != nil {
			return nil, err
		}

		statsUpdate := redemptionStatsUpdate(amount)
		if _, err := statsClient.UpdateOne(sessCtx, bson.M{"_id": model.LedgerStatsId}, statsUpdate, options.Update().SetUpsert(true)); err != nil {
			return nil, err
		}

		return nil, nil
	}

	_, err := db.txWithRetries(ctx, transactionWork)
	return err
}

// checkRedemptionPreconditions rejects a redemption that would mutate state
// it must not touch: a locked account or a staked balance lower than the
// requested amount. The balance check also keeps staked from going negative,
// since the update below subtracts exactly the checked amount.
func checkRedemptionPreconditions(account *model.AccountDocument, amount uint64) error {
	if account.Locked {
		return &AccountLockedError{Address: account.Address}
	}
	if account.Staked < amount {
		return &InsufficientBalanceError{
			Address:   account.Address,
			Staked:    account.Staked,
			Requested: amount,
		}
	}
	return nil
}

// redemptionAccountUpdate moves the amount from staked to pending claim.
// The pending claim is incremented, not set, so repeated redemptions
// accumulate, while the cooldown deadline is overwritten with the newest one.
func redemptionAccountUpdate(amount uint64, cooldownDeadline int64) bson.M {
	return bson.M{
		"$inc": bson.M{"staked": -int64(amount), "pending_claim": int64(amount)},
		"$set": bson.M{"cooldown_deadline": cooldownDeadline},
	}
}

func redemptionStatsUpdate(amount uint64) bson.M {
	return bson.M{
		"$inc": bson.M{
			"total_staked":        -int64(amount),
			"total_pending_claim": int64(amount),
		},
	}
}
