package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stakevault/staking-ledger-service/internal/db/model"
)

// GetLedgerStats fetches the maintained aggregates. A missing document means
// no deposit has ever been processed, which is reported as zero values.
func (db *Database) GetLedgerStats(ctx context.Context) (*model.LedgerStatsDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.LedgerStatsCollection)
	filter := bson.M{"_id": model.LedgerStatsId}
	var stats model.LedgerStatsDocument
	err := client.FindOne(ctx, filter).Decode(&stats)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &model.LedgerStatsDocument{Id: model.LedgerStatsId}, nil
		}
		return nil, err
	}
	return &stats, nil
}
