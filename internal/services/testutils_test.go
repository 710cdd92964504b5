package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/stakevault/staking-ledger-service/internal/db"
	"github.com/stakevault/staking-ledger-service/internal/db/model"
	"github.com/stakevault/staking-ledger-service/internal/types"
)

const (
	testAddress   = "0x8ba1f109551bd432803012645ac136ddd64dba72"
	testRequestId = "aa11223344556677889900aabbccddeeff00112233445566778899aabbccddee"
	testAppId     = "staking-ledger"
)

var testTime = time.Unix(1_700_000_000, 0)

// MockDBClient is a testify mock over the db client interface.
type MockDBClient struct {
	mock.Mock
}

func (m *MockDBClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBClient) SaveDeposit(ctx context.Context, address string, amount uint64) (uint64, error) {
	args := m.Called(ctx, address, amount)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockDBClient) FindDepositsByAddress(
	ctx context.Context, address string, paginationToken string,
) (*db.DbResultMap[model.DepositDocument], error) {
	args := m.Called(ctx, address, paginationToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.DbResultMap[model.DepositDocument]), args.Error(1)
}

func (m *MockDBClient) SaveRedemption(
	ctx context.Context, address string, amount uint64, requestId string, cooldownDeadline int64,
) error {
	args := m.Called(ctx, address, amount, requestId, cooldownDeadline)
	return args.Error(0)
}

func (m *MockDBClient) FinalizeClaim(
	ctx context.Context, address string, now int64, release db.ReleaseFunc,
) (uint64, error) {
	args := m.Called(ctx, address, now, release)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockDBClient) FindAccountByAddress(ctx context.Context, address string) (*model.AccountDocument, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountDocument), args.Error(1)
}

func (m *MockDBClient) SetAccountLock(ctx context.Context, address string, locked bool) error {
	args := m.Called(ctx, address, locked)
	return args.Error(0)
}

func (m *MockDBClient) GetParams(ctx context.Context) (*model.ParamsDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParamsDocument), args.Error(1)
}

func (m *MockDBClient) UpdateCooldownPeriod(ctx context.Context, seconds int64) error {
	args := m.Called(ctx, seconds)
	return args.Error(0)
}

func (m *MockDBClient) UpdateAttestationAuthority(ctx context.Context, appId, publicKeyHex, verifierAddress string) error {
	args := m.Called(ctx, appId, publicKeyHex, verifierAddress)
	return args.Error(0)
}

func (m *MockDBClient) SetPaused(ctx context.Context, paused bool) error {
	args := m.Called(ctx, paused)
	return args.Error(0)
}

func (m *MockDBClient) GetLedgerStats(ctx context.Context) (*model.LedgerStatsDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LedgerStatsDocument), args.Error(1)
}

func (m *MockDBClient) SaveEmergencyWithdrawal(
	ctx context.Context, reference, to string, amount uint64, timestamp int64,
) error {
	args := m.Called(ctx, reference, to, amount, timestamp)
	return args.Error(0)
}

// fakeCustody is a scripted custody client. Release calls are recorded so
// tests can assert refunds and payouts.
type fakeCustody struct {
	pullReceived uint64
	pullErr      *types.Error
	releaseErr   *types.Error
	balance      uint64

	pullCalls    int
	releaseCalls []releaseCall
}

type releaseCall struct {
	to        string
	amount    uint64
	reference string
}

func (f *fakeCustody) PullInto(ctx context.Context, from string, amount uint64) (uint64, *types.Error) {
	f.pullCalls++
	if f.pullErr != nil {
		return 0, f.pullErr
	}
	return f.pullReceived, nil
}

func (f *fakeCustody) ReleaseTo(ctx context.Context, to string, amount uint64, reference string) *types.Error {
	f.releaseCalls = append(f.releaseCalls, releaseCall{to: to, amount: amount, reference: reference})
	return f.releaseErr
}

func (f *fakeCustody) Balance(ctx context.Context) (uint64, *types.Error) {
	return f.balance, nil
}

// fakeVerifier returns a scripted verification outcome.
type fakeVerifier struct {
	valid bool
	err   error
}

func (f *fakeVerifier) Verify(digest []byte, signatureHex string, publicKeyHex string) (bool, error) {
	return f.valid, f.err
}

// fakeEmitter records every published event.
type fakeEmitter struct {
	published []publishedEvent
}

type publishedEvent struct {
	routingKey string
	event      interface{}
}

func (f *fakeEmitter) PublishEvent(ctx context.Context, routingKey string, event interface{}) error {
	f.published = append(f.published, publishedEvent{routingKey: routingKey, event: event})
	return nil
}

func (f *fakeEmitter) IsConnectionHealthy() error { return nil }

func (f *fakeEmitter) Stop() error { return nil }

func testParams() *model.ParamsDocument {
	return &model.ParamsDocument{
		Id:               model.ParamsId,
		CooldownSeconds:  3600,
		AppId:            testAppId,
		AttestationPkHex: "02a1633cafcc01ebfb6d78e39f687a1f0995c62fc95f51ead10a02ee0be551b5dc",
		Paused:           false,
	}
}

func newTestServices(
	dbClient *MockDBClient, custodyClient *fakeCustody, verifier *fakeVerifier, emitter *fakeEmitter,
) *Services {
	if custodyClient == nil {
		custodyClient = &fakeCustody{}
	}
	if verifier == nil {
		verifier = &fakeVerifier{valid: true}
	}
	if emitter == nil {
		emitter = &fakeEmitter{}
	}
	return &Services{
		DbClient: dbClient,
		Custody:  custodyClient,
		Verifier: verifier,
		Emitter:  emitter,
		timeNow:  func() time.Time { return testTime },
	}
}
