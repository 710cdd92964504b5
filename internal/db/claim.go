package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakevault/staking-ledger-service/internal/db/model"
)

// ReleaseFunc releases the claimed amount from custody to the account owner.
// It is invoked inside the claim transaction after the pending claim has been
// zeroed; a release error aborts the whole transaction so the entitlement is
// preserved for a retry.
type ReleaseFunc func(ctx context.Context, amount uint64) error

// FinalizeClaim pays out a matured pending claim. The state is zeroed before
// the custody release runs, and both commit or abort together, keeping the
// exactly-once payout property.
func (db *Database) FinalizeClaim(
	ctx context.Context, address string, now int64, release ReleaseFunc,
) (uint64, error) {
	database := db.Client.Database(db.DbName)
	accountClient := database.Collection(model.AccountCollection)
	statsClient := database.Collection(model.LedgerStatsCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		var account model.AccountDocument
		err := accountClient.FindOne(sessCtx, bson.M{"_id": address}).Decode(&account)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &NoPendingClaimError{Address: address}
			}
			return nil, err
		}

		if err := checkClaimPreconditions(&account, now); err != nil {
			return nil, err
		}

		amount := account.PendingClaim

		if _, err := accountClient.UpdateOne(sessCtx, bson.M{"_id": address}, claimAccountUpdate()); err != nil {
			return nil, err
		}

		statsUpdate := claimStatsUpdate(amount)
		if _, err := statsClient.UpdateOne(sessCtx, bson.M{"_id": model.LedgerStatsId}, statsUpdate, options.Update().SetUpsert(true)); err != nil {
			return nil, err
		}

		// The release runs last so a custody failure rolls back the state
		// zeroing above instead of burning the entitlement.
		if err := release(sessCtx, amount); err != nil {
			return nil, &ReleaseFailedError{Err: err}
		}

		return amount, nil
	}

	result, err := db.txWithRetries(ctx, transactionWork)
	if err != nil {
		return 0, err
	}
	return result.(uint64), nil
}

// checkClaimPreconditions rejects a claim with nothing pending or whose
// cooldown deadline has not elapsed. The deadline comparison is inclusive:
// a claim at exactly the deadline succeeds.
func checkClaimPreconditions(account *model.AccountDocument, now int64) error {
	if account.PendingClaim == 0 {
		return &NoPendingClaimError{Address: account.Address}
	}
	if now < account.CooldownDeadline {
		return &CooldownActiveError{
			Address:  account.Address,
			Deadline: account.CooldownDeadline,
		}
	}
	return nil
}

// claimAccountUpdate zeroes the pending claim and the cooldown deadline
// together; the two fields are always set and cleared as a pair.
func claimAccountUpdate() bson.M {
	return bson.M{
		"$set": bson.M{"pending_claim": int64(0), "cooldown_deadline": int64(0)},
	}
}

func claimStatsUpdate(amount uint64) bson.M {
	return bson.M{
		"$inc": bson.M{"total_pending_claim": -int64(amount)},
	}
}
