package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stakevault/staking-ledger-service/internal/attestation"
	"github.com/stakevault/staking-ledger-service/internal/db"
	"github.com/stakevault/staking-ledger-service/internal/events"
	"github.com/stakevault/staking-ledger-service/internal/observability/metrics"
	"github.com/stakevault/staking-ledger-service/internal/types"
	"github.com/stakevault/staking-ledger-service/internal/utils"
)

type RedemptionPublic struct {
	Address          string `json:"address"`
	Amount           uint64 `json:"amount"`
	RequestId        string `json:"request_id"`
	CooldownDeadline int64  `json:"cooldown_deadline"`
}

// RequestRedemption verifies the attestation authorizing the redemption and,
// on success, moves the amount from staked to pending claim and starts the
// cooldown. Verification happens strictly before any balance mutation, so a
// failed attestation leaves no partial effects.
func (s *Services) RequestRedemption(
	ctx context.Context, address string, amount uint64, requestId, signatureHex string,
) (*RedemptionPublic, *types.Error) {
	params, pausedErr := s.requireNotPaused(ctx)
	if pausedErr != nil {
		metrics.RecordLedgerOperation("request_redemption", metrics.Error)
		return nil, pausedErr
	}

	if amount == 0 {
		metrics.RecordLedgerOperation("request_redemption", metrics.Error)
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ZeroAmount, "redemption amount must be greater than zero",
		)
	}

	address = utils.NormalizeAddress(address)

	digest, digestErr := attestation.BuildDigest(params.AppId, requestId, address, amount)
	if digestErr != nil {
		metrics.RecordLedgerOperation("request_redemption", metrics.Error)
		return nil, types.NewError(http.StatusBadRequest, types.SignatureInvalid, digestErr)
	}

	valid, verifyErr := s.Verifier.Verify(digest, signatureHex, params.AttestationPkHex)
	if verifyErr != nil {
		log.Ctx(ctx).Warn().Err(verifyErr).Str("address", address).Str("requestId", requestId).
			Msg("attestation is malformed")
		metrics.RecordLedgerOperation("request_redemption", metrics.Error)
		return nil, types.NewError(http.StatusForbidden, types.SignatureInvalid, verifyErr)
	}
	if !valid {
		log.Ctx(ctx).Warn().Str("address", address).Str("requestId", requestId).
			Msg("attestation did not pass verification")
		metrics.RecordLedgerOperation("request_redemption", metrics.Error)
		return nil, types.NewErrorWithMsg(
			http.StatusForbidden, types.SignatureInvalid, "attestation verification failed",
		)
	}

	// Each successful request overwrites the deadline and accumulates the
	// pending claim; earlier pending amounts wait for the newest deadline.
	cooldownDeadline := s.timeNow().Unix() + params.CooldownSeconds

	err := s.DbClient.SaveRedemption(ctx, address, amount, requestId, cooldownDeadline)
	if err != nil {
		metrics.RecordLedgerOperation("request_redemption", metrics.Error)
		if ok := db.IsAccountLockedError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Str("address", address).Msg("account is locked for redemptions")
			return nil, types.NewError(http.StatusForbidden, types.AccountLocked, err)
		}
		if ok := db.IsInsufficientBalanceError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Str("address", address).Msg("staked balance too low for redemption")
			return nil, types.NewError(http.StatusForbidden, types.InsufficientBalance, err)
		}
		if ok := db.IsDuplicateKeyError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Str("requestId", requestId).
				Msg("redemption request id already consumed, replay rejected")
			return nil, types.NewError(http.StatusForbidden, types.SignatureInvalid, err)
		}
		log.Ctx(ctx).Error().Err(err).Str("address", address).Msg("failed to save redemption")
		return nil, types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	s.publishEvent(ctx, events.RedeemedRoutingKey, events.NewRedeemedEvent(address, amount, requestId, cooldownDeadline))
	metrics.RecordLedgerOperation("request_redemption", metrics.Success)

	return &RedemptionPublic{
		Address:          address,
		Amount:           amount,
		RequestId:        requestId,
		CooldownDeadline: cooldownDeadline,
	}, nil
}
