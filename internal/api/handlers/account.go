package handlers

import (
	"net/http"

	"github.com/stakevault/staking-ledger-service/internal/types"
)

// GetAccount godoc
// @Summary Get account
// @Description Returns the ledger view of an address: staked balance, pending claim, cooldown deadline and lock flag.
// @Produce json
// @Param address query string true "Account address"
// @Success 200 {object} PublicResponse[services.AccountPublic] "The account view"
// @Failure 400 {object} types.Error "Missing or invalid 'address' query parameter"
// @Router /v1/account [get]
func (h *Handler) GetAccount(request *http.Request) (*Result, *types.Error) {
	address, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}

	account, accountErr := h.services.GetAccount(request.Context(), address)
	if accountErr != nil {
		return nil, accountErr
	}

	return NewResult(account), nil
}

// GetDeposits godoc
// @Summary Get deposit records
// @Description Returns the append-only deposit audit records of an address, newest first.
// @Produce json
// @Param address query string true "Account address"
// @Param pagination_key query string false "Pagination key to fetch the next page"
// @Success 200 {object} PublicResponse[[]services.DepositRecordPublic] "List of deposit records with pagination token"
// @Failure 400 {object} types.Error "Missing or invalid 'address' query parameter"
// @Router /v1/deposits [get]
func (h *Handler) GetDeposits(request *http.Request) (*Result, *types.Error) {
	address, err := parseAddressQuery(request, "address")
	if err != nil {
		return nil, err
	}
	paginationKey := request.URL.Query().Get("pagination_key")

	deposits, paginationToken, depositsErr := h.services.GetDeposits(request.Context(), address, paginationKey)
	if depositsErr != nil {
		return nil, depositsErr
	}

	return NewResultWithPagination(deposits, paginationToken), nil
}

// GetLedgerStats godoc
// @Summary Get ledger stats
// @Description Returns the maintained ledger aggregates: total staked, total pending claim and deposit count.
// @Produce json
// @Success 200 {object} PublicResponse[services.StatsPublic] "The ledger aggregates"
// @Router /v1/stats [get]
func (h *Handler) GetLedgerStats(request *http.Request) (*Result, *types.Error) {
	stats, statsErr := h.services.GetLedgerStats(request.Context())
	if statsErr != nil {
		return nil, statsErr
	}

	return NewResult(stats), nil
}
