package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositByAddressPaginationTokenRoundTrip(t *testing.T) {
	token, err := BuildDepositByAddressPaginationToken(DepositDocument{
		Id:      42,
		Address: "0x8ba1f109551bd432803012645ac136ddd64dba72",
		Amount:  100,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := DecodeDepositByAddressPaginationToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), decoded.Id)
}

func TestDecodeDepositByAddressPaginationTokenInvalid(t *testing.T) {
	_, err := DecodeDepositByAddressPaginationToken("not-base64!!")
	assert.Error(t, err)

	// Valid base64 that does not decode into the expected json shape.
	_, err = DecodeDepositByAddressPaginationToken("bm90LWpzb24=")
	assert.Error(t, err)
}
