package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/stakevault/staking-ledger-service/internal/events"
	"github.com/stakevault/staking-ledger-service/internal/observability/metrics"
	"github.com/stakevault/staking-ledger-service/internal/types"
	"github.com/stakevault/staking-ledger-service/internal/utils"
)

type DepositPublic struct {
	DepositId uint64 `json:"deposit_id"`
	Address   string `json:"address"`
	Amount    uint64 `json:"amount"`
}

// Deposit pulls the amount into custody and credits the account with the
// amount actually received. The deposit requires strict equality between the
// requested and received amount; a fee charging asset that delivers less
// fails the whole operation so the totalStaked aggregate stays honest.
func (s *Services) Deposit(ctx context.Context, address string, amount uint64) (*DepositPublic, *types.Error) {
	if _, pausedErr := s.requireNotPaused(ctx); pausedErr != nil {
		metrics.RecordLedgerOperation("deposit", metrics.Error)
		return nil, pausedErr
	}

	if amount == 0 {
		metrics.RecordLedgerOperation("deposit", metrics.Error)
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ZeroAmount, "deposit amount must be greater than zero",
		)
	}

	address = utils.NormalizeAddress(address)

	received, pullErr := s.Custody.PullInto(ctx, address, amount)
	if pullErr != nil {
		log.Ctx(ctx).Error().Err(pullErr).Str("address", address).Msg("custody pull failed")
		metrics.RecordLedgerOperation("deposit", metrics.Error)
		return nil, types.NewError(http.StatusBadGateway, types.TransferFailed, pullErr)
	}

	if received != amount {
		log.Ctx(ctx).Warn().Str("address", address).
			Uint64("requested", amount).Uint64("received", received).
			Msg("custody received a different amount than requested, refunding")
		// The measured delta can exceed the request when an unrelated
		// deposit lands between the two balance reads. Only the requested
		// amount is known to belong to this caller, so the refund is
		// capped there.
		refund := received
		if refund > amount {
			refund = amount
		}
		s.refundPulledAmount(ctx, address, refund)
		metrics.RecordLedgerOperation("deposit", metrics.Error)
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.TransferMismatch,
			"amount received in custody does not equal the requested amount",
		)
	}

	depositId, err := s.DbClient.SaveDeposit(ctx, address, received)
	if err != nil {
		// The funds are already in custody but the ledger refused the
		// credit, hand them back so no value is stranded.
		log.Ctx(ctx).Error().Err(err).Str("address", address).Msg("failed to save deposit, refunding")
		s.refundPulledAmount(ctx, address, received)
		metrics.RecordLedgerOperation("deposit", metrics.Error)
		return nil, types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	s.publishEvent(ctx, events.StakedRoutingKey, events.NewStakedEvent(address, received, depositId))
	metrics.RecordLedgerOperation("deposit", metrics.Success)

	return &DepositPublic{
		DepositId: depositId,
		Address:   address,
		Amount:    received,
	}, nil
}

// refundPulledAmount releases funds pulled by a deposit that could not be
// credited. A refund failure leaves custody over-funded relative to the
// ledger, which is surfaced loudly for operator reconciliation.
func (s *Services) refundPulledAmount(ctx context.Context, address string, amount uint64) {
	if amount == 0 {
		return
	}
	if releaseErr := s.Custody.ReleaseTo(ctx, address, amount, uuid.NewString()); releaseErr != nil {
		log.Ctx(ctx).Error().Err(releaseErr).Str("address", address).Uint64("amount", amount).
			Msg("failed to refund pulled deposit amount, custody and ledger are out of sync")
	}
}
