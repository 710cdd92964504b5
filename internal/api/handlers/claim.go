package handlers

import (
	"net/http"

	"github.com/stakevault/staking-ledger-service/internal/types"
	"github.com/stakevault/staking-ledger-service/internal/utils"
)

type ClaimRequestPayload struct {
	Address string `json:"address"`
}

func parseClaimRequestPayload(request *http.Request) (*ClaimRequestPayload, *types.Error) {
	payload, err := decodeJsonPayload[ClaimRequestPayload](request)
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

// FinalizeClaim godoc
// @Summary Finalize a matured claim
// @Description Pays out the pending claim once the cooldown deadline has elapsed. The payout happens exactly once.
// @Accept json
// @Produce json
// @Param payload body ClaimRequestPayload true "Claim Request Payload"
// @Success 200 {object} PublicResponse[services.ClaimPublic] "The claim was paid out"
// @Failure 403 {object} types.Error "No pending claim or cooldown still active"
// @Router /v1/claim [post]
func (h *Handler) FinalizeClaim(request *http.Request) (*Result, *types.Error) {
	payload, err := parseClaimRequestPayload(request)
	if err != nil {
		return nil, err
	}

	claim, claimErr := h.services.FinalizeClaim(request.Context(), payload.Address)
	if claimErr != nil {
		return nil, claimErr
	}

	return NewResult(claim), nil
}
