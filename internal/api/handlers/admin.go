package handlers

import (
	"net/http"

	"github.com/stakevault/staking-ledger-service/internal/types"
	"github.com/stakevault/staking-ledger-service/internal/utils"
)

type EmergencyWithdrawRequestPayload struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// EmergencyWithdraw godoc
// @Summary Emergency withdrawal escape hatch
// @Description Releases custody funds to an arbitrary address, bypassing all per-account ledger state. Admin only.
// @Accept json
// @Produce json
// @Param payload body EmergencyWithdrawRequestPayload true "Emergency Withdraw Payload"
// @Success 200 {object} PublicResponse[services.EmergencyWithdrawalPublic] "The withdrawal was executed"
// @Failure 401 {object} types.Error "Missing or invalid admin token"
// @Router /v1/admin/emergency-withdraw [post]
func (h *Handler) EmergencyWithdraw(request *http.Request) (*Result, *types.Error) {
	payload, err := decodeJsonPayload[EmergencyWithdrawRequestPayload](request)
	if err != nil {
		return nil, err
	}
	if !utils.IsValidAddress(payload.To) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid recipient address",
		)
	}

	withdrawal, withdrawErr := h.services.EmergencyWithdraw(request.Context(), payload.To, payload.Amount)
	if withdrawErr != nil {
		return nil, withdrawErr
	}

	return NewResult(withdrawal), nil
}

type SetAccountLockRequestPayload struct {
	Address string `json:"address"`
	Locked  bool   `json:"locked"`
}

// SetAccountLock godoc
// @Summary Lock or unlock an account
// @Description Toggles the administrative lock blocking future redemption requests for the address. Admin only.
// @Accept json
// @Produce json
// @Param payload body SetAccountLockRequestPayload true "Account Lock Payload"
// @Success 200 "The lock flag was updated"
// @Failure 401 {object} types.Error "Missing or invalid admin token"
// @Router /v1/admin/lock [post]
func (h *Handler) SetAccountLock(request *http.Request) (*Result, *types.Error) {
	payload, err := decodeJsonPayload[SetAccountLockRequestPayload](request)
	if err != nil {
		return nil, err
	}
	if !utils.IsValidAddress(payload.Address) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid address",
		)
	}

	if lockErr := h.services.SetAccountLock(request.Context(), payload.Address, payload.Locked); lockErr != nil {
		return nil, lockErr
	}

	return &Result{Status: http.StatusOK}, nil
}

type SetCooldownRequestPayload struct {
	Seconds int64 `json:"seconds"`
}

// SetCooldownPeriod godoc
// @Summary Set the cooldown period
// @Description Changes the cooldown applied to future redemption requests. Already running cooldowns are unaffected. Admin only.
// @Accept json
// @Produce json
// @Param payload body SetCooldownRequestPayload true "Cooldown Payload"
// @Success 200 "The cooldown period was updated"
// @Failure 401 {object} types.Error "Missing or invalid admin token"
// @Router /v1/admin/cooldown [post]
func (h *Handler) SetCooldownPeriod(request *http.Request) (*Result, *types.Error) {
	payload, err := decodeJsonPayload[SetCooldownRequestPayload](request)
	if err != nil {
		return nil, err
	}

	if cooldownErr := h.services.SetCooldownPeriod(request.Context(), payload.Seconds); cooldownErr != nil {
		return nil, cooldownErr
	}

	return &Result{Status: http.StatusOK}, nil
}

type SetAttestationAuthorityRequestPayload struct {
	AppId           string `json:"app_id"`
	PublicKeyHex    string `json:"public_key_hex"`
	VerifierAddress string `json:"verifier_address"`
}

// SetAttestationAuthority godoc
// @Summary Rotate the attestation authority
// @Description Replaces the trusted signer configuration used to verify redemption attestations. Takes effect immediately. Admin only.
// @Accept json
// @Produce json
// @Param payload body SetAttestationAuthorityRequestPayload true "Attestation Authority Payload"
// @Success 200 "The attestation authority was rotated"
// @Failure 401 {object} types.Error "Missing or invalid admin token"
// @Router /v1/admin/attestation-authority [post]
func (h *Handler) SetAttestationAuthority(request *http.Request) (*Result, *types.Error) {
	payload, err := decodeJsonPayload[SetAttestationAuthorityRequestPayload](request)
	if err != nil {
		return nil, err
	}

	if authorityErr := h.services.SetAttestationAuthority(
		request.Context(), payload.AppId, payload.PublicKeyHex, payload.VerifierAddress,
	); authorityErr != nil {
		return nil, authorityErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// Pause godoc
// @Summary Pause the ledger
// @Description Rejects deposit, redemption and claim operations until unpaused. Admin functions remain available. Admin only.
// @Produce json
// @Success 200 "The ledger was paused"
// @Failure 401 {object} types.Error "Missing or invalid admin token"
// @Router /v1/admin/pause [post]
func (h *Handler) Pause(request *http.Request) (*Result, *types.Error) {
	if pauseErr := h.services.SetPaused(request.Context(), true); pauseErr != nil {
		return nil, pauseErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// Unpause godoc
// @Summary Unpause the ledger
// @Description Re-enables deposit, redemption and claim operations. Admin only.
// @Produce json
// @Success 200 "The ledger was unpaused"
// @Failure 401 {object} types.Error "Missing or invalid admin token"
// @Router /v1/admin/unpause [post]
func (h *Handler) Unpause(request *http.Request) (*Result, *types.Error) {
	if pauseErr := h.services.SetPaused(request.Context(), false); pauseErr != nil {
		return nil, pauseErr
	}

	return &Result{Status: http.StatusOK}, nil
}
