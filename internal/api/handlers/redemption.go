package handlers

import (
	"net/http"

	"github.com/stakevault/staking-ledger-service/internal/types"
	"github.com/stakevault/staking-ledger-service/internal/utils"
)

type RedemptionRequestPayload struct {
	Address      string `json:"address"`
	Amount       uint64 `json:"amount"`
	RequestId    string `json:"request_id"`
	SignatureHex string `json:"signature_hex"`
}

func parseRedemptionRequestPayload(request *http.Request) (*RedemptionRequestPayload, *types.Error) {
	payload, err := decodeJsonPayload[RedemptionRequestPayload](request)
	if err != nil {
		return nil, err
	}
	// Validate the payload fields
	if !utils.IsValidAddress(payload.Address) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid address",
		)
	}
	if !utils.IsValidRequestId(payload.RequestId) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid request id",
		)
	}
	if !utils.IsValidSignatureFormat(payload.SignatureHex) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid signature hex",
		)
	}

	return payload, nil
}

// RequestRedemption godoc
// @Summary Request a redemption
// @Description Verifies the third-party attestation authorizing the redemption, moves the amount from staked to pending claim and starts the cooldown.
// @Accept json
// @Produce json
// @Param payload body RedemptionRequestPayload true "Redemption Request Payload"
// @Success 200 {object} PublicResponse[services.RedemptionPublic] "The redemption was accepted"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Failure 403 {object} types.Error "Attestation invalid, balance too low or account locked"
// @Router /v1/redemption [post]
func (h *Handler) RequestRedemption(request *http.Request) (*Result, *types.Error) {
	payload, err := parseRedemptionRequestPayload(request)
	if err != nil {
		return nil, err
	}

	redemption, redemptionErr := h.services.RequestRedemption(
		request.Context(), payload.Address, payload.Amount,
		payload.RequestId, payload.SignatureHex,
	)
	if redemptionErr != nil {
		return nil, redemptionErr
	}

	return NewResult(redemption), nil
}
