package handlers

import (
	"net/http"

	"github.com/stakevault/staking-ledger-service/internal/types"
	"github.com/stakevault/staking-ledger-service/internal/utils"
)

type DepositRequestPayload struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

func parseDepositRequestPayload(request *http.Request) (*DepositRequestPayload, *types.Error) {
	payload, err := decodeJsonPayload[DepositRequestPayload](request)
	if err != nil {
		return nil, err
	}
	if !utils.IsValidAddress(payload.Address) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid address",
		)
	}
	return payload, nil
}

// Deposit godoc
// @Summary Deposit into the staking ledger
// @Description Pulls the amount into custody and credits the caller's staked balance with the reconciled amount.
// @Accept json
// @Produce json
// @Param payload body DepositRequestPayload true "Deposit Request Payload"
// @Success 200 {object} PublicResponse[services.DepositPublic] "The deposit was credited"
// @Failure 400 {object} types.Error "Invalid request payload, zero amount or transfer mismatch"
// @Router /v1/deposit [post]
func (h *Handler) Deposit(request *http.Request) (*Result, *types.Error) {
	payload, err := parseDepositRequestPayload(request)
	if err != nil {
		return nil, err
	}

	deposit, depositErr := h.services.Deposit(request.Context(), payload.Address, payload.Amount)
	if depositErr != nil {
		return nil, depositErr
	}

	return NewResult(deposit), nil
}
