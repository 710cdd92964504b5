package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTypedErrorHelpers(t *testing.T) {
	assert.True(t, IsDuplicateKeyError(&DuplicateKeyError{Key: "k", Message: "dup"}))
	assert.True(t, IsNotFoundError(&NotFoundError{Key: "k", Message: "missing"}))
	assert.True(t, IsInvalidPaginationTokenError(&InvalidPaginationTokenError{Message: "bad token"}))
	assert.True(t, IsAccountLockedError(&AccountLockedError{Address: "0xabc"}))
	assert.True(t, IsInsufficientBalanceError(&InsufficientBalanceError{Address: "0xabc", Staked: 1, Requested: 2}))
	assert.True(t, IsNoPendingClaimError(&NoPendingClaimError{Address: "0xabc"}))
	assert.True(t, IsCooldownActiveError(&CooldownActiveError{Address: "0xabc", Deadline: 100}))
	assert.True(t, IsReleaseFailedError(&ReleaseFailedError{Err: errors.New("boom")}))

	plain := errors.New("plain")
	assert.False(t, IsDuplicateKeyError(plain))
	assert.False(t, IsNotFoundError(plain))
	assert.False(t, IsAccountLockedError(plain))
	assert.False(t, IsInsufficientBalanceError(plain))
	assert.False(t, IsNoPendingClaimError(plain))
	assert.False(t, IsCooldownActiveError(plain))
	assert.False(t, IsReleaseFailedError(plain))
}

func TestTypedErrorHelpersUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("saving redemption: %w", &AccountLockedError{Address: "0xabc"})
	assert.True(t, IsAccountLockedError(wrapped))
	assert.False(t, IsInsufficientBalanceError(wrapped))
}

func TestIsWriteConflictError(t *testing.T) {
	assert.True(t, IsWriteConflictError(mongo.CommandError{Code: 112}))
	assert.False(t, IsWriteConflictError(mongo.CommandError{Code: 11000}))
	assert.False(t, IsWriteConflictError(errors.New("plain")))
	assert.False(t, IsWriteConflictError(nil))
}

func TestIsTransactionAbortedError(t *testing.T) {
	assert.True(t, IsTransactionAbortedError(mongo.CommandError{Code: 251}))
	assert.False(t, IsTransactionAbortedError(mongo.CommandError{Code: 112}))
	assert.False(t, IsTransactionAbortedError(nil))
}

func TestShouldRetry(t *testing.T) {
	assert.True(t, shouldRetry(mongo.CommandError{Code: 112}))
	assert.True(t, shouldRetry(mongo.CommandError{Code: 251}))

	// Typed ledger errors must never be retried, the outcome is final.
	assert.False(t, shouldRetry(&InsufficientBalanceError{}))
	assert.False(t, shouldRetry(&AccountLockedError{}))
	assert.False(t, shouldRetry(&DuplicateKeyError{Message: "dup"}))
	assert.False(t, shouldRetry(errors.New("plain")))
}
