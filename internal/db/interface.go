package db

import (
	"context"

	"github.com/stakevault/staking-ledger-service/internal/db/model"
)

type DBClient interface {
	Ping(ctx context.Context) error
	SaveDeposit(ctx context.Context, address string, amount uint64) (uint64, error)
	FindDepositsByAddress(
		ctx context.Context, address string, paginationToken string,
	) (*DbResultMap[model.DepositDocument], error)
	SaveRedemption(
		ctx context.Context, address string, amount uint64, requestId string, cooldownDeadline int64,
	) error
	FinalizeClaim(ctx context.Context, address string, now int64, release ReleaseFunc) (uint64, error)
	FindAccountByAddress(ctx context.Context, address string) (*model.AccountDocument, error)
	SetAccountLock(ctx context.Context, address string, locked bool) error
	GetParams(ctx context.Context) (*model.ParamsDocument, error)
	UpdateCooldownPeriod(ctx context.Context, seconds int64) error
	UpdateAttestationAuthority(ctx context.Context, appId, publicKeyHex, verifierAddress string) error
	SetPaused(ctx context.Context, paused bool) error
	GetLedgerStats(ctx context.Context) (*model.LedgerStatsDocument, error)
	SaveEmergencyWithdrawal(ctx context.Context, reference, to string, amount uint64, timestamp int64) error
}
