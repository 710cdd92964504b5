package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stakevault/staking-ledger-service/internal/db"
	"github.com/stakevault/staking-ledger-service/internal/db/model"
	"github.com/stakevault/staking-ledger-service/internal/types"
	"github.com/stakevault/staking-ledger-service/internal/utils"
)

type AccountPublic struct {
	Address          string `json:"address"`
	Staked           uint64 `json:"staked"`
	PendingClaim     uint64 `json:"pending_claim"`
	CooldownDeadline int64  `json:"cooldown_deadline"`
	Locked           bool   `json:"locked"`
}

type StatsPublic struct {
	TotalStaked       uint64 `json:"total_staked"`
	TotalPendingClaim uint64 `json:"total_pending_claim"`
	DepositCount      uint64 `json:"deposit_count"`
}

func fromAccountDocument(d *model.AccountDocument) *AccountPublic {
	return &AccountPublic{
		Address:          d.Address,
		Staked:           d.Staked,
		PendingClaim:     d.PendingClaim,
		CooldownDeadline: d.CooldownDeadline,
		Locked:           d.Locked,
	}
}

// GetAccount returns the ledger view of an address. An address that never
// deposited is reported as a zero-valued account, matching the implicit
// account creation semantics.
func (s *Services) GetAccount(ctx context.Context, address string) (*AccountPublic, *types.Error) {
	address = utils.NormalizeAddress(address)

	account, err := s.DbClient.FindAccountByAddress(ctx, address)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			return &AccountPublic{Address: address}, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("address", address).Msg("error while fetching account")
		return nil, types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	return fromAccountDocument(account), nil
}

type DepositRecordPublic struct {
	DepositId uint64 `json:"deposit_id"`
	Address   string `json:"address"`
	Amount    uint64 `json:"amount"`
}

// GetDeposits returns the append-only deposit audit records of an address,
// newest first.
func (s *Services) GetDeposits(
	ctx context.Context, address string, paginationToken string,
) ([]DepositRecordPublic, string, *types.Error) {
	address = utils.NormalizeAddress(address)

	resultMap, err := s.DbClient.FindDepositsByAddress(ctx, address, paginationToken)
	if err != nil {
		if ok := db.IsInvalidPaginationTokenError(err); ok {
			log.Ctx(ctx).Warn().Err(err).Msg("invalid pagination token while fetching deposits")
			return nil, "", types.NewError(http.StatusBadRequest, types.BadRequest, err)
		}
		log.Ctx(ctx).Error().Err(err).Str("address", address).Msg("error while fetching deposits")
		return nil, "", types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}

	deposits := make([]DepositRecordPublic, 0, len(resultMap.Data))
	for _, d := range resultMap.Data {
		deposits = append(deposits, DepositRecordPublic{
			DepositId: d.Id,
			Address:   d.Address,
			Amount:    d.Amount,
		})
	}
	return deposits, resultMap.PaginationToken, nil
}

// GetLedgerStats returns the maintained ledger aggregates.
func (s *Services) GetLedgerStats(ctx context.Context) (*StatsPublic, *types.Error) {
	stats, err := s.DbClient.GetLedgerStats(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching ledger stats")
		return nil, types.NewError(http.StatusInternalServerError, types.InternalServiceError, err)
	}
	return &StatsPublic{
		TotalStaked:       stats.TotalStaked,
		TotalPendingClaim: stats.TotalPendingClaim,
		DepositCount:      stats.DepositCount,
	}, nil
}
