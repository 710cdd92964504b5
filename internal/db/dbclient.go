package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stakevault/staking-ledger-service/internal/config"
	"github.com/stakevault/staking-ledger-service/internal/utils"

	"github.com/rs/zerolog/log"
)

const (
	defaultMaxAttempts    = 4 // max attempt INCLUDES the first execution
	defaultInitialBackoff = 100 * time.Millisecond
	defaultBackoffFactor  = 2.0
)

type Database struct {
	DbName string
	Client *mongo.Client
	cfg    config.DbConfig
}

type DbResultMap[T any] struct {
	Data            []T    `json:"data"`
	PaginationToken string `json:"paginationToken"`
}

func New(ctx context.Context, cfg config.DbConfig) (*Database, error) {
	clientOps := options.Client().ApplyURI(cfg.Address)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return nil, err
	}

	return &Database{
		DbName: cfg.DbName,
		Client: client,
		cfg:    cfg,
	}, nil
}

func (db *Database) Ping(ctx context.Context) error {
	err := db.Client.Ping(ctx, nil)
	if err != nil {
		return err
	}
	return nil
}

// txWithRetries executes the given transaction work, retrying with
// exponential backoff on transient errors such as write conflicts. The
// ledger relies on these transactions to serialize updates to shared
// aggregates, so write conflicts between concurrent operations are expected
// and safe to retry.
func (db *Database) txWithRetries(
	ctx context.Context,
	txnFunc func(sessCtx mongo.SessionContext) (interface{}, error),
) (interface{}, error) {
	var (
		result  interface{}
		err     error
		backoff = defaultInitialBackoff
	)

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		session, sessionErr := db.Client.StartSession()
		if sessionErr != nil {
			return nil, sessionErr
		}

		result, err = session.WithTransaction(ctx, txnFunc)
		session.EndSession(ctx)

		if err != nil {
			if shouldRetry(err) && attempt < defaultMaxAttempts {
				log.Ctx(ctx).Warn().Err(err).Int("attempt", attempt).
					Msg("transaction failed with retryable error, retrying")
				utils.Sleep(backoff)
				backoff *= time.Duration(defaultBackoffFactor)
				continue
			}
			return nil, err
		}
		break
	}
	return result, nil
}

// Check for network-related, timeout errors, write conflicts or transaction
// aborted, which are generally transient and should be retried. Other errors
// such as duplicated keys or the typed ledger errors are non-retryable.
func shouldRetry(err error) bool {
	if mongo.IsNetworkError(err) {
		return true
	}
	if mongo.IsTimeout(err) {
		return true
	}

	if IsWriteConflictError(err) {
		return true
	}

	if IsTransactionAbortedError(err) {
		return true
	}

	return false
}

// This function is used to build the result map with pagination token
// It will return the result map with pagination token if the result length is equal to the fetch limit
// Otherwise it will return the result map without pagination token. i.e pagination token will be empty string
func toResultMapWithPaginationToken[T any](cfg config.DbConfig, result []T, paginationKeyBuilder func(T) (string, error)) (*DbResultMap[T], error) {
	if len(result) > 0 && len(result) == int(cfg.MaxPaginationLimit) {
		paginationToken, err := paginationKeyBuilder(result[len(result)-1])
		if err != nil {
			return nil, err
		}
		return &DbResultMap[T]{
			Data:            result,
			PaginationToken: paginationToken,
		}, nil

	}

	return &DbResultMap[T]{
		Data:            result,
		PaginationToken: "",
	}, nil
}
