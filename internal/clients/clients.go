package clients

import (
	"github.com/stakevault/staking-ledger-service/internal/clients/custody"
	"github.com/stakevault/staking-ledger-service/internal/config"
)

type Clients struct {
	Custody custody.Client
}

func New(cfg *config.Config) *Clients {
	custodyClient := custody.NewCustodyClient(&cfg.Custody)

	return &Clients{
		Custody: custodyClient,
	}
}
