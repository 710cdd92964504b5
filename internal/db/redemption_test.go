package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/stakevault/staking-ledger-service/internal/db/model"
)

const testAccountAddress = "0x8ba1f109551bd432803012645ac136ddd64dba72"

// applyAccountUpdate mirrors the mongo $inc/$set semantics of the redemption
// and claim update documents onto an account, so the state machine can be
// walked without a live database.
func applyAccountUpdate(t *testing.T, account *model.AccountDocument, update bson.M) {
	t.Helper()
	if inc, ok := update["$inc"].(bson.M); ok {
		if delta, ok := inc["staked"]; ok {
			account.Staked = uint64(int64(account.Staked) + delta.(int64))
		}
		if delta, ok := inc["pending_claim"]; ok {
			account.PendingClaim = uint64(int64(account.PendingClaim) + delta.(int64))
		}
	}
	if set, ok := update["$set"].(bson.M); ok {
		if v, ok := set["cooldown_deadline"]; ok {
			account.CooldownDeadline = v.(int64)
		}
		if v, ok := set["pending_claim"]; ok {
			account.PendingClaim = uint64(v.(int64))
		}
	}
}

func TestCheckRedemptionPreconditions(t *testing.T) {
	account := &model.AccountDocument{Address: testAccountAddress, Staked: 100}
	assert.NoError(t, checkRedemptionPreconditions(account, 40))
	assert.NoError(t, checkRedemptionPreconditions(account, 100), "full balance redemption is allowed")

	err := checkRedemptionPreconditions(account, 101)
	assert.True(t, IsInsufficientBalanceError(err))

	locked := &model.AccountDocument{Address: testAccountAddress, Staked: 100, Locked: true}
	err = checkRedemptionPreconditions(locked, 40)
	assert.True(t, IsAccountLockedError(err))
}

func TestRedemptionUpdateMovesStakedToPending(t *testing.T) {
	update := redemptionAccountUpdate(40, 1000)

	inc, ok := update["$inc"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, int64(-40), inc["staked"])
	assert.Equal(t, int64(40), inc["pending_claim"])

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, int64(1000), set["cooldown_deadline"])

	statsInc, ok := redemptionStatsUpdate(40)["$inc"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, int64(-40), statsInc["total_staked"])
	assert.Equal(t, int64(40), statsInc["total_pending_claim"])
}

func TestRepeatedRedemptionsAccumulateAndOverwriteDeadline(t *testing.T) {
	account := &model.AccountDocument{Address: testAccountAddress, Staked: 100}

	require.NoError(t, checkRedemptionPreconditions(account, 30))
	applyAccountUpdate(t, account, redemptionAccountUpdate(30, 1000))

	assert.Equal(t, uint64(70), account.Staked)
	assert.Equal(t, uint64(30), account.PendingClaim)
	assert.Equal(t, int64(1000), account.CooldownDeadline)

	// A second request accumulates the pending claim and pushes the whole
	// pending amount out to the newest deadline.
	require.NoError(t, checkRedemptionPreconditions(account, 20))
	applyAccountUpdate(t, account, redemptionAccountUpdate(20, 2000))

	assert.Equal(t, uint64(50), account.Staked)
	assert.Equal(t, uint64(50), account.PendingClaim)
	assert.Equal(t, int64(2000), account.CooldownDeadline)
}

func TestCheckClaimPreconditions(t *testing.T) {
	empty := &model.AccountDocument{Address: testAccountAddress}
	assert.True(t, IsNoPendingClaimError(checkClaimPreconditions(empty, 5000)))

	pending := &model.AccountDocument{
		Address:          testAccountAddress,
		PendingClaim:     40,
		CooldownDeadline: 1000,
	}
	assert.True(t, IsCooldownActiveError(checkClaimPreconditions(pending, 999)))
	assert.NoError(t, checkClaimPreconditions(pending, 1000), "claim at exactly the deadline succeeds")
	assert.NoError(t, checkClaimPreconditions(pending, 1001))
}

func TestClaimUpdateZeroesPendingAndDeadlineTogether(t *testing.T) {
	set, ok := claimAccountUpdate()["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, int64(0), set["pending_claim"])
	assert.Equal(t, int64(0), set["cooldown_deadline"])

	statsInc, ok := claimStatsUpdate(40)["$inc"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, int64(-40), statsInc["total_pending_claim"])
}

func TestStakeRedeemClaimSequence(t *testing.T) {
	// Deposit 100, redeem 40, claim before and after the deadline.
	account := &model.AccountDocument{Address: testAccountAddress, Staked: 100}
	deadline := int64(1000)

	require.NoError(t, checkRedemptionPreconditions(account, 40))
	applyAccountUpdate(t, account, redemptionAccountUpdate(40, deadline))

	assert.Equal(t, uint64(60), account.Staked)
	assert.Equal(t, uint64(40), account.PendingClaim)
	assert.Equal(t, deadline, account.CooldownDeadline)

	// Before the deadline the claim is rejected and nothing moves.
	assert.True(t, IsCooldownActiveError(checkClaimPreconditions(account, deadline-1)))
	assert.Equal(t, uint64(40), account.PendingClaim)

	// At the deadline the claim pays out exactly once.
	require.NoError(t, checkClaimPreconditions(account, deadline))
	payout := account.PendingClaim
	applyAccountUpdate(t, account, claimAccountUpdate())

	assert.Equal(t, uint64(40), payout)
	assert.Equal(t, uint64(60), account.Staked)
	assert.Equal(t, uint64(0), account.PendingClaim)
	assert.Equal(t, int64(0), account.CooldownDeadline)

	// A second immediate claim finds nothing pending.
	assert.True(t, IsNoPendingClaimError(checkClaimPreconditions(account, deadline)))
}
