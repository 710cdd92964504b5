package db

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// DuplicateKeyError is an error type for duplicate key errors
type DuplicateKeyError struct {
	Key     string
	Message string
}

func (e *DuplicateKeyError) Error() string {
	return e.Message
}

func IsDuplicateKeyError(err error) bool {
	var target *DuplicateKeyError
	return errors.As(err, &target)
}

// InvalidPaginationTokenError is an error type for invalid pagination token errors
type InvalidPaginationTokenError struct {
	Message string
}

func (e *InvalidPaginationTokenError) Error() string {
	return e.Message
}

func IsInvalidPaginationTokenError(err error) bool {
	var target *InvalidPaginationTokenError
	return errors.As(err, &target)
}

// Not found Error
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// AccountLockedError is returned when a locked account attempts a redemption
type AccountLockedError struct {
	Address string
}

func (e *AccountLockedError) Error() string {
	return "account is locked for redemptions"
}

func IsAccountLockedError(err error) bool {
	var target *AccountLockedError
	return errors.As(err, &target)
}

// InsufficientBalanceError is returned when the staked balance cannot cover
// the requested redemption amount
type InsufficientBalanceError struct {
	Address   string
	Staked    uint64
	Requested uint64
}

func (e *InsufficientBalanceError) Error() string {
	return "staked balance is lower than the requested amount"
}

func IsInsufficientBalanceError(err error) bool {
	var target *InsufficientBalanceError
	return errors.As(err, &target)
}

// NoPendingClaimError is returned when a claim is finalized with nothing pending
type NoPendingClaimError struct {
	Address string
}

func (e *NoPendingClaimError) Error() string {
	return "no pending claim for account"
}

func IsNoPendingClaimError(err error) bool {
	var target *NoPendingClaimError
	return errors.As(err, &target)
}

// CooldownActiveError is returned when a claim is finalized before the
// cooldown deadline has elapsed
type CooldownActiveError struct {
	Address  string
	Deadline int64
}

func (e *CooldownActiveError) Error() string {
	return "cooldown period has not elapsed yet"
}

func IsCooldownActiveError(err error) bool {
	var target *CooldownActiveError
	return errors.As(err, &target)
}

// ReleaseFailedError wraps a custody release failure that aborted a claim
// transaction. The pending claim entitlement is preserved for a retry.
type ReleaseFailedError struct {
	Err error
}

func (e *ReleaseFailedError) Error() string {
	return e.Err.Error()
}

func IsReleaseFailedError(err error) bool {
	var target *ReleaseFailedError
	return errors.As(err, &target)
}

// Error code references: https://www.mongodb.com/docs/manual/reference/error-codes/
func IsWriteConflictError(err error) bool {
	if err == nil {
		return false
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 112
	}

	return false
}

func IsTransactionAbortedError(err error) bool {
	if err == nil {
		return false
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 251
	}

	return false
}
