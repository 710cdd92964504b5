package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/stakevault/staking-ledger-service/internal/db"
	"github.com/stakevault/staking-ledger-service/internal/events"
	"github.com/stakevault/staking-ledger-service/internal/observability/metrics"
	"github.com/stakevault/staking-ledger-service/internal/types"
	"github.com/stakevault/staking-ledger-service/internal/utils"
)

type ClaimPublic struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// FinalizeClaim pays out a pending claim whose cooldown has elapsed. The
// pending claim is zeroed and the custody release happens inside the same
// transaction; a release failure aborts everything so the entitlement is
// preserved and the payout can never happen twice.
func (s *Services) FinalizeClaim(ctx context.Context, address string) (*ClaimPublic, *types.Error) {
	if _, pausedErr := s.requireNotPaused(ctx); pausedErr != nil {
		metrics.RecordLedgerOperation("finalize_claim", metrics.Error)
		return nil, pausedErr
	}

	address = utils.NormalizeAddress(address)
	now := s.timeNow().Unix()

	// The reference is allocated once per claim, not per release attempt.
	// The claim transaction is retried on transient errors, and a retried
	// release must carry the same idempotency key so the custodian can
	// deduplicate a release whose first attempt already went through.
	reference := uuid.NewString()
	release := func(releaseCtx context.Context, amount uint64) error {
		if releaseErr := s.Custody.ReleaseTo(releaseCtx, address, amount, reference); releaseErr != nil {
			return releaseErr
		}
		return nil
	}

	amount, err := s.DbClient.FinalizeClaim(ctx, address, now, release)
	if err != nil {
		metrics.RecordLedgerOperation("finalize_claim", metrics.Error)
		if ok := db.IsNoPendingClaimError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Str("address", address).Msg("no pending claim to finalize")
			return nil, types.NewError(http.StatusForbidden, types.NoPendingClaim, err)
		}
		if ok := db.IsCooldownActiveError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Str("address", address).Msg("cooldown has not elapsed yet")
			return nil, types.NewError(http.StatusForbidden, types.CooldownActive, err)
		}
		if ok := db.IsReleaseFailedError(err); ok {
			log.Ctx(ctx).Error().Err(err).Str("address", address).
				Msg("custody release failed, claim rolled back")
			return nil, types.NewError(http.StatusBadGateway, types.TransferFailed, err)
		}
		log.Ctx(ctx).Error().Err(err).Str("address", address).Msg("failed to finalize claim")
		return nil, types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	s.publishEvent(ctx, events.ClaimedRoutingKey, events.NewClaimedEvent(address, amount))
	metrics.RecordLedgerOperation("finalize_claim", metrics.Success)

	return &ClaimPublic{
		Address: address,
		Amount:  amount,
	}, nil
}
