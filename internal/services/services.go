package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stakevault/staking-ledger-service/internal/attestation"
	"github.com/stakevault/staking-ledger-service/internal/clients/custody"
	"github.com/stakevault/staking-ledger-service/internal/config"
	"github.com/stakevault/staking-ledger-service/internal/db"
	"github.com/stakevault/staking-ledger-service/internal/db/model"
	"github.com/stakevault/staking-ledger-service/internal/events"
	"github.com/stakevault/staking-ledger-service/internal/observability/metrics"
	"github.com/stakevault/staking-ledger-service/internal/types"
)

// Services contains the ledger business logic. It orchestrates the database
// and the two external collaborators: the custody client which moves the
// underlying asset, and the attestation verifier which gates redemptions.
type Services struct {
	DbClient db.DBClient
	Custody  custody.Client
	Verifier attestation.Verifier
	Emitter  events.Emitter

	// timeNow is swapped out in tests to control the cooldown clock.
	timeNow func() time.Time
}

func New(
	ctx context.Context,
	cfg *config.Config,
	custodyClient custody.Client,
	verifier attestation.Verifier,
	emitter events.Emitter,
) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}
	return &Services{
		DbClient: dbClient,
		Custody:  custodyClient,
		Verifier: verifier,
		Emitter:  emitter,
		timeNow:  time.Now,
	}, nil
}

// DoHealthCheck checks the health of the services by ping the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}

// getParams loads the runtime ledger params owned by the admin surface.
func (s *Services) getParams(ctx context.Context) (*model.ParamsDocument, *types.Error) {
	params, err := s.DbClient.GetParams(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching ledger params")
		return nil, types.NewErrorWithMsg(
			http.StatusInternalServerError, types.InternalServiceError, "error while fetching ledger params",
		)
	}
	return params, nil
}

// requireNotPaused loads the params and rejects the operation when the
// global kill switch is on. Admin functions do not go through this gate.
func (s *Services) requireNotPaused(ctx context.Context) (*model.ParamsDocument, *types.Error) {
	params, paramsErr := s.getParams(ctx)
	if paramsErr != nil {
		return nil, paramsErr
	}
	if params.Paused {
		return nil, types.NewErrorWithMsg(
			http.StatusServiceUnavailable, types.Paused, "ledger operations are paused",
		)
	}
	return params, nil
}

// publishEvent sends an observable event for external indexers. The ledger
// state has already committed at this point; a publish failure is logged and
// counted, never propagated.
func (s *Services) publishEvent(ctx context.Context, routingKey string, event interface{}) {
	if err := s.Emitter.PublishEvent(ctx, routingKey, event); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("routingKey", routingKey).Msg("failed to publish ledger event")
		metrics.RecordEventPublish(metrics.Error)
		return
	}
	metrics.RecordEventPublish(metrics.Success)
}
