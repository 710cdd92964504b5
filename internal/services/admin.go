package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/stakevault/staking-ledger-service/internal/events"
	"github.com/stakevault/staking-ledger-service/internal/observability/metrics"
	"github.com/stakevault/staking-ledger-service/internal/types"
	"github.com/stakevault/staking-ledger-service/internal/utils"
)

type EmergencyWithdrawalPublic struct {
	To        string `json:"to"`
	Amount    uint64 `json:"amount"`
	Reference string `json:"reference"`
}

// EmergencyWithdraw releases custody funds to an arbitrary address without
// touching any account state. It is the audited escape hatch for stuck
// funds and intentionally may desynchronize custody from totalStaked; no
// automatic reconciliation is attempted.
func (s *Services) EmergencyWithdraw(ctx context.Context, to string, amount uint64) (*EmergencyWithdrawalPublic, *types.Error) {
	if amount == 0 {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ZeroAmount, "withdrawal amount must be greater than zero",
		)
	}

	to = utils.NormalizeAddress(to)
	reference := uuid.NewString()

	if releaseErr := s.Custody.ReleaseTo(ctx, to, amount, reference); releaseErr != nil {
		log.Ctx(ctx).Error().Err(releaseErr).Str("to", to).Uint64("amount", amount).
			Msg("emergency withdrawal release failed")
		metrics.RecordLedgerOperation("emergency_withdraw", metrics.Error)
		return nil, types.NewError(http.StatusBadGateway, types.TransferFailed, releaseErr)
	}

	timestamp := s.timeNow().Unix()
	if err := s.DbClient.SaveEmergencyWithdrawal(ctx, reference, to, amount, timestamp); err != nil {
		// The release already happened; the missing audit row is an
		// operator problem, not a reason to fail the withdrawal.
		log.Ctx(ctx).Error().Err(err).Str("reference", reference).
			Msg("failed to record emergency withdrawal audit row")
	}

	log.Ctx(ctx).Info().Str("to", to).Uint64("amount", amount).Str("reference", reference).
		Msg("emergency withdrawal executed")
	metrics.RecordLedgerOperation("emergency_withdraw", metrics.Success)

	return &EmergencyWithdrawalPublic{
		To:        to,
		Amount:    amount,
		Reference: reference,
	}, nil
}

// SetAccountLock toggles the administrative lock on an account. A locked
// account cannot initiate new redemptions; its balances and any already
// pending claim are unaffected.
func (s *Services) SetAccountLock(ctx context.Context, address string, locked bool) *types.Error {
	address = utils.NormalizeAddress(address)

	if err := s.DbClient.SetAccountLock(ctx, address, locked); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("address", address).Msg("failed to set account lock")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	s.publishEvent(ctx, events.AccountLockedRoutingKey, events.NewAccountLockedEvent(address, locked))
	return nil
}

// SetCooldownPeriod changes the cooldown applied to future redemption
// requests. Already running cooldowns keep their deadline.
func (s *Services) SetCooldownPeriod(ctx context.Context, seconds int64) *types.Error {
	if seconds < 0 {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "cooldown seconds cannot be negative",
		)
	}

	if err := s.DbClient.UpdateCooldownPeriod(ctx, seconds); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to update cooldown period")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	log.Ctx(ctx).Info().Int64("seconds", seconds).Msg("cooldown period updated")
	return nil
}

// SetAttestationAuthority rotates the trusted signer configuration used by
// redemption verification. It takes effect immediately; a request in flight
// with a signature from the previous key fails verification.
func (s *Services) SetAttestationAuthority(ctx context.Context, appId, publicKeyHex, verifierAddress string) *types.Error {
	if appId == "" {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "app id cannot be empty")
	}

	pkBytes, err := utils.DecodeHex(publicKeyHex)
	if err != nil || (len(pkBytes) != 33 && len(pkBytes) != 65) {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "public key must be 33 or 65 bytes of hex",
		)
	}

	if verifierAddress != "" && !utils.IsValidAddress(verifierAddress) {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid verifier address")
	}

	if err := s.DbClient.UpdateAttestationAuthority(ctx, appId, publicKeyHex, verifierAddress); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to update attestation authority")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	log.Ctx(ctx).Info().Str("appId", appId).Msg("attestation authority rotated")
	return nil
}

// SetPaused flips the global kill switch. While paused, deposit, redemption
// and claim are all rejected; the admin surface stays available.
func (s *Services) SetPaused(ctx context.Context, paused bool) *types.Error {
	if err := s.DbClient.SetPaused(ctx, paused); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to update paused flag")
		return types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	log.Ctx(ctx).Info().Msg(fmt.Sprintf("ledger paused flag set to %t", paused))
	return nil
}
