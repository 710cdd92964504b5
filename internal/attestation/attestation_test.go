package attestation

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAppId     = "staking-ledger"
	testAddress   = "0x8ba1f109551bd432803012645ac136ddd64dba72"
	testRequestId = "aa11223344556677889900aabbccddeeff00112233445566778899aabbccddee"
)

func TestBuildDigestDeterministic(t *testing.T) {
	d1, err := BuildDigest(testAppId, testRequestId, testAddress, 100)
	require.NoError(t, err)
	d2, err := BuildDigest(testAppId, testRequestId, testAddress, 100)
	require.NoError(t, err)

	assert.Len(t, d1, 32)
	assert.Equal(t, d1, d2)
}

func TestBuildDigestBindsEveryField(t *testing.T) {
	base, err := BuildDigest(testAppId, testRequestId, testAddress, 100)
	require.NoError(t, err)

	otherAmount, err := BuildDigest(testAppId, testRequestId, testAddress, 101)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherAmount)

	otherApp, err := BuildDigest("other-app", testRequestId, testAddress, 100)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherApp)

	otherAddress, err := BuildDigest(testAppId, testRequestId, "0x0000000000000000000000000000000000000001", 100)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherAddress)
}

func TestBuildDigestAddressCaseInsensitive(t *testing.T) {
	lower, err := BuildDigest(testAppId, testRequestId, testAddress, 100)
	require.NoError(t, err)
	mixed, err := BuildDigest(testAppId, testRequestId, "0x8bA1f109551bD432803012645Ac136ddd64DBA72", 100)
	require.NoError(t, err)

	assert.Equal(t, lower, mixed)
}

func TestBuildDigestRejectsBadInputs(t *testing.T) {
	_, err := BuildDigest(testAppId, "deadbeef", testAddress, 100)
	assert.Error(t, err, "short request id should be rejected")

	_, err = BuildDigest(testAppId, "zz11223344556677889900aabbccddeeff00112233445566778899aabbccddee", testAddress, 100)
	assert.Error(t, err, "non hex request id should be rejected")

	_, err = BuildDigest(testAppId, testRequestId, "not-an-address", 100)
	assert.Error(t, err, "malformed address should be rejected")
}

func TestVerifyRoundTrip(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	digest, err := BuildDigest(testAppId, testRequestId, testAddress, 100)
	require.NoError(t, err)

	signature, err := crypto.Sign(digest, key)
	require.NoError(t, err)

	compressedPk := hex.EncodeToString(crypto.CompressPubkey(&key.PublicKey))
	uncompressedPk := hex.EncodeToString(crypto.FromECDSAPub(&key.PublicKey))

	verifier := NewEcdsaVerifier()

	// crypto.Sign produces r || s || v, the verifier accepts both with and
	// without the recovery byte.
	valid, err := verifier.Verify(digest, hex.EncodeToString(signature), compressedPk)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = verifier.Verify(digest, hex.EncodeToString(signature[:64]), compressedPk)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = verifier.Verify(digest, hex.EncodeToString(signature), uncompressedPk)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyRejectsTamperedAmount(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	digest, err := BuildDigest(testAppId, testRequestId, testAddress, 100)
	require.NoError(t, err)

	signature, err := crypto.Sign(digest, key)
	require.NoError(t, err)
	pk := hex.EncodeToString(crypto.CompressPubkey(&key.PublicKey))

	// Same signature presented against the digest of a different amount.
	tampered, err := BuildDigest(testAppId, testRequestId, testAddress, 1_000_000)
	require.NoError(t, err)

	verifier := NewEcdsaVerifier()
	valid, err := verifier.Verify(tampered, hex.EncodeToString(signature), pk)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyRejectsWrongSigner(t *testing.T) {
	signerKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	otherKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	digest, err := BuildDigest(testAppId, testRequestId, testAddress, 100)
	require.NoError(t, err)

	signature, err := crypto.Sign(digest, signerKey)
	require.NoError(t, err)

	verifier := NewEcdsaVerifier()
	valid, err := verifier.Verify(digest, hex.EncodeToString(signature), hex.EncodeToString(crypto.CompressPubkey(&otherKey.PublicKey)))
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyRejectsMalformedInputs(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	pk := hex.EncodeToString(crypto.CompressPubkey(&key.PublicKey))

	digest, err := BuildDigest(testAppId, testRequestId, testAddress, 100)
	require.NoError(t, err)

	verifier := NewEcdsaVerifier()

	_, err = verifier.Verify(digest, "not-hex", pk)
	assert.Error(t, err)

	_, err = verifier.Verify(digest, "deadbeef", pk)
	assert.Error(t, err, "a 4 byte signature should be rejected")

	signature, err := crypto.Sign(digest, key)
	require.NoError(t, err)

	_, err = verifier.Verify(digest, hex.EncodeToString(signature), "deadbeef")
	assert.Error(t, err, "a 4 byte public key should be rejected")
}
