package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/stakevault/staking-ledger-service/internal/db"
	"github.com/stakevault/staking-ledger-service/internal/events"
	"github.com/stakevault/staking-ledger-service/internal/types"
)

const testSignature = "deadbeef"

func TestRequestRedemptionStartsCooldown(t *testing.T) {
	expectedDeadline := testTime.Unix() + testParams().CooldownSeconds

	mockDB := new(MockDBClient)
	mockDB.On("GetParams", mock.Anything).Return(testParams(), nil)
	mockDB.On("SaveRedemption", mock.Anything, testAddress, uint64(40), testRequestId, expectedDeadline).
		Return(nil)

	emitter := &fakeEmitter{}
	services := newTestServices(mockDB, nil, &fakeVerifier{valid: true}, emitter)

	result, err := services.RequestRedemption(context.Background(), testAddress, 40, testRequestId, testSignature)
	assert.Nil(t, err)
	assert.Equal(t, uint64(40), result.Amount)
	assert.Equal(t, expectedDeadline, result.CooldownDeadline)

	assert.Len(t, emitter.published, 1)
	assert.Equal(t, events.RedeemedRoutingKey, emitter.published[0].routingKey)
	mockDB.AssertExpectations(t)
}

func TestRequestRedemptionInvalidAttestation(t *testing.T) {
	mockDB := new(MockDBClient)
	mockDB.On("GetParams", mock.Anything).Return(testParams(), nil)

	emitter := &fakeEmitter{}
	services := newTestServices(mockDB, nil, &fakeVerifier{valid: false}, emitter)

	result, err := services.RequestRedemption(context.Background(), testAddress, 40, testRequestId, testSignature)
	assert.Nil(t, result)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.SignatureInvalid, err.ErrorCode)

	// A failed attestation must leave no partial effects.
	assert.Empty(t, emitter.published)
	mockDB.AssertNotCalled(t, "SaveRedemption", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestRedemptionMalformedAttestation(t *testing.T) {
	mockDB := new(MockDBClient)
	mockDB.On("GetParams", mock.Anything).Return(testParams(), nil)

	services := newTestServices(mockDB, nil, &fakeVerifier{err: errors.New("signature must be 64 or 65 bytes")}, nil)

	result, err := services.RequestRedemption(context.Background(), testAddress, 40, testRequestId, "zz")
	assert.Nil(t, result)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.SignatureInvalid, err.ErrorCode)
	mockDB.AssertNotCalled(t, "SaveRedemption", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestRedemptionBadRequestId(t *testing.T) {
	mockDB := new(MockDBClient)
	mockDB.On("GetParams", mock.Anything).Return(testParams(), nil)

	services := newTestServices(mockDB, nil, nil, nil)

	// 4 bytes instead of 32, the digest cannot be built.
	result, err := services.RequestRedemption(context.Background(), testAddress, 40, "deadbeef", testSignature)
	assert.Nil(t, result)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.SignatureInvalid, err.ErrorCode)
}

func TestRequestRedemptionZeroAmount(t *testing.T) {
	mockDB := new(MockDBClient)
	mockDB.On("GetParams", mock.Anything).Return(testParams(), nil)

	services := newTestServices(mockDB, nil, nil, nil)

	result, err := services.RequestRedemption(context.Background(), testAddress, 0, testRequestId, testSignature)
	assert.Nil(t, result)
	assert.Equal(t, types.ZeroAmount, err.ErrorCode)
}

func TestRequestRedemptionInsufficientBalance(t *testing.T) {
	mockDB := new(MockDBClient)
	mockDB.On("GetParams", mock.Anything).Return(testParams(), nil)
	mockDB.On("SaveRedemption", mock.Anything, testAddress, mock.Anything, testRequestId, mock.Anything).
		Return(&db.InsufficientBalanceError{Address: testAddress, Staked: 100, Requested: 150})

	services := newTestServices(mockDB, nil, nil, nil)

	result, err := services.RequestRedemption(context.Background(), testAddress, 150, testRequestId, testSignature)
	assert.Nil(t, result)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.InsufficientBalance, err.ErrorCode)
}

func TestRequestRedemptionLockedAccount(t *testing.T) {
	mockDB := new(MockDBClient)
	mockDB.On("GetParams", mock.Anything).Return(testParams(), nil)
	mockDB.On("SaveRedemption", mock.Anything, testAddress, mock.Anything, testRequestId, mock.Anything).
		Return(&db.AccountLockedError{Address: testAddress})

	services := newTestServices(mockDB, nil, nil, nil)

	result, err := services.RequestRedemption(context.Background(), testAddress, 40, testRequestId, testSignature)
	assert.Nil(t, result)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.AccountLocked, err.ErrorCode)
}

func TestRequestRedemptionReplayRejected(t *testing.T) {
	mockDB := new(MockDBClient)
	mockDB.On("GetParams", mock.Anything).Return(testParams(), nil)
	mockDB.On("SaveRedemption", mock.Anything, testAddress, mock.Anything, testRequestId, mock.Anything).
		Return(&db.DuplicateKeyError{Key: testRequestId, Message: "request id already consumed"})

	emitter := &fakeEmitter{}
	services := newTestServices(mockDB, nil, nil, emitter)

	result, err := services.RequestRedemption(context.Background(), testAddress, 40, testRequestId, testSignature)
	assert.Nil(t, result)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.SignatureInvalid, err.ErrorCode)
	assert.Empty(t, emitter.published)
}

func TestRequestRedemptionRejectedWhilePaused(t *testing.T) {
	params := testParams()
	params.Paused = true

	mockDB := new(MockDBClient)
	mockDB.On("GetParams", mock.Anything).Return(params, nil)

	services := newTestServices(mockDB, nil, nil, nil)

	result, err := services.RequestRedemption(context.Background(), testAddress, 40, testRequestId, testSignature)
	assert.Nil(t, result)
	assert.Equal(t, types.Paused, err.ErrorCode)
}

func TestRequestRedemptionCooldownChangeNotRetroactive(t *testing.T) {
	// A request made under the old cooldown keeps its deadline; only the
	// params document consulted at request time matters.
	params := testParams()
	params.CooldownSeconds = 7200
	expectedDeadline := testTime.Unix() + 7200

	mockDB := new(MockDBClient)
	mockDB.On("GetParams", mock.Anything).Return(params, nil)
	mockDB.On("SaveRedemption", mock.Anything, testAddress, uint64(10), testRequestId, expectedDeadline).
		Return(nil)

	services := newTestServices(mockDB, nil, nil, nil)

	result, err := services.RequestRedemption(context.Background(), testAddress, 10, testRequestId, testSignature)
	assert.Nil(t, err)
	assert.Equal(t, expectedDeadline, result.CooldownDeadline)
	mockDB.AssertExpectations(t)
}
