package custody

import (
	"context"

	"github.com/stakevault/staking-ledger-service/internal/types"
)

// Client is the value transfer port: it moves the underlying asset in and
// out of custody and reports the amount actually moved. The deposit path
// must credit the measured delta, never the requested amount, so fee
// charging assets cannot desynchronize the ledger aggregates.
type Client interface {
	// PullInto pulls the requested amount from the depositor into custody
	// and returns the amount actually received, measured as the custody
	// balance delta around the transfer.
	PullInto(ctx context.Context, from string, amount uint64) (uint64, *types.Error)
	// ReleaseTo releases the amount from custody to the recipient. The
	// reference is an idempotency key so a retried release is not paid twice.
	ReleaseTo(ctx context.Context, to string, amount uint64, reference string) *types.Error
	// Balance reports the current custody balance.
	Balance(ctx context.Context) (uint64, *types.Error)
}
