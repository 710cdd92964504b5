package model

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stakevault/staking-ledger-service/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type index struct {
	Indexes map[string]int
	Unique  bool
}

var collections = map[string][]index{
	AccountCollection:             {{Indexes: map[string]int{}}},
	DepositCollection:             {{Indexes: map[string]int{"address": 1, "_id": -1}, Unique: false}},
	CounterCollection:             {{Indexes: map[string]int{}}},
	ParamsCollection:              {{Indexes: map[string]int{}}},
	LedgerStatsCollection:         {{Indexes: map[string]int{}}},
	ConsumedRequestCollection:     {{Indexes: map[string]int{"address": 1}, Unique: false}},
	EmergencyWithdrawalCollection: {{Indexes: map[string]int{"timestamp": -1}, Unique: false}},
}

func Setup(ctx context.Context, cfg *config.Config) error {
	clientOps := options.Client().ApplyURI(cfg.Db.Address)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}

	// Create a context with timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Access a database and create collections.
	database := client.Database(cfg.Db.DbName)

	// Create collections.
	for collection := range collections {
		createCollection(ctx, database, collection)
	}

	for name, idxs := range collections {
		for _, idx := range idxs {
			createIndex(ctx, database, name, idx)
		}
	}

	if err := seedParams(ctx, database, &cfg.Ledger); err != nil {
		return err
	}

	log.Info().Msg("Collections and Indexes created successfully.")
	return nil
}

// seedParams inserts the initial runtime params document if it does not
// exist yet. An existing document is left untouched so admin changes
// survive restarts.
func seedParams(ctx context.Context, database *mongo.Database, cfg *config.LedgerConfig) error {
	filter := bson.M{"_id": ParamsId}
	update := bson.M{
		"$setOnInsert": &ParamsDocument{
			Id:               ParamsId,
			CooldownSeconds:  cfg.CooldownSeconds,
			AppId:            cfg.AppId,
			AttestationPkHex: cfg.AttestationPkHex,
			VerifierAddress:  cfg.VerifierAddress,
			Paused:           false,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := database.Collection(ParamsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) {
	// Check if the collection already exists.
	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, mongo.IndexModel{}); err != nil {
		log.Debug().Msg(fmt.Sprintf("Collection maybe already exists: %s, skip the rest. info: %s", collectionName, err))
		return
	}

	// Create the collection.
	if err := database.CreateCollection(ctx, collectionName); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to create collection: " + collectionName)
		return
	}

	log.Debug().Msg("Collection created successfully: " + collectionName)
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) {
	if len(idx.Indexes) == 0 {
		return
	}

	indexKeys := bson.D{}
	for k, v := range idx.Indexes {
		indexKeys = append(indexKeys, bson.E{Key: k, Value: v})
	}

	index := mongo.IndexModel{
		Keys:    indexKeys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, index); err != nil {
		log.Debug().Msg(fmt.Sprintf("Failed to create index on collection '%s': %v", collectionName, err))
		return
	}

	log.Debug().Msg("Index created successfully on collection: " + collectionName)
}
