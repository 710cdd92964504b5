package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakevault/staking-ledger-service/internal/db/model"
)

// SaveDeposit credits a reconciled deposit to the account and appends the
// audit record, all inside one transaction so the totalStaked aggregate can
// never drift from the per-account balances.
func (db *Database) SaveDeposit(ctx context.Context, address string, amount uint64) (uint64, error) {
	database := db.Client.Database(db.DbName)
	counterClient := database.Collection(model.CounterCollection)
	depositClient := database.Collection(model.DepositCollection)
	accountClient := database.Collection(model.AccountCollection)
	statsClient := database.Collection(model.LedgerStatsCollection)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		// Allocate a fresh sequence id for the deposit record
		counterFilter := bson.M{"_id": model.DepositSequenceCounter}
		counterUpdate := bson.M{"$inc": bson.M{"sequence": int64(1)}}
		counterOpts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

		var counter model.CounterDocument
		if err := counterClient.FindOneAndUpdate(sessCtx, counterFilter, counterUpdate, counterOpts).Decode(&counter); err != nil {
			return nil, err
		}

		depositDocument := model.DepositDocument{
			Id:      counter.Sequence,
			Address: address,
			Amount:  amount,
		}
		if _, err := depositClient.InsertOne(sessCtx, depositDocument); err != nil {
			return nil, err
		}

		// Implicitly creates the zero-valued account on first reference
		accountFilter := bson.M{"_id": address}
		accountUpdate := bson.M{
			"$inc":         bson.M{"staked": int64(amount)},
			"$setOnInsert": bson.M{"pending_claim": int64(0), "cooldown_deadline": int64(0), "locked": false},
		}
		if _, err := accountClient.UpdateOne(sessCtx, accountFilter, accountUpdate, options.Update().SetUpsert(true)); err != nil {
			return nil, err
		}

		statsFilter := bson.M{"_id": model.LedgerStatsId}
		statsUpdate := bson.M{
			"$inc": bson.M{
				"total_staked":  int64(amount),
				"deposit_count": int64(1),
			},
		}
		if _, err := statsClient.UpdateOne(sessCtx, statsFilter, statsUpdate, options.Update().SetUpsert(true)); err != nil {
			return nil, err
		}

		return counter.Sequence, nil
	}

	result, err := db.txWithRetries(ctx, transactionWork)
	if err != nil {
		return 0, err
	}
	return result.(uint64), nil
}

// FindDepositsByAddress returns the deposit audit records for an address in
// descending sequence order, newest first, with the standard pagination token.
func (db *Database) FindDepositsByAddress(ctx context.Context, address string, paginationToken string) (*DbResultMap[model.DepositDocument], error) {
	client := db.Client.Database(db.DbName).Collection(model.DepositCollection)

	filter := bson.M{"address": address}
	options := options.Find().SetSort(bson.M{"_id": -1}) // Sorting in descending order

	options.SetLimit(db.cfg.MaxPaginationLimit)
	// Decode the pagination token first if it exist
	if paginationToken != "" {
		decodedToken, err := model.DecodeDepositByAddressPaginationToken(paginationToken)
		if err != nil {
			return nil, &InvalidPaginationTokenError{
				Message: "Invalid pagination token",
			}
		}
		filter = bson.M{
			"address": address,
			"_id":     bson.M{"$lt": decodedToken.Id},
		}
	}

	cursor, err := client.Find(ctx, filter, options)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var deposits []model.DepositDocument
	if err = cursor.All(ctx, &deposits); err != nil {
		return nil, err
	}

	return toResultMapWithPaginationToken(db.cfg, deposits, model.BuildDepositByAddressPaginationToken)
}
