package utils

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0x8ba1f109551bd432803012645ac136ddd64dba72"))
	assert.True(t, IsValidAddress("0x8bA1f109551bD432803012645Ac136ddd64DBA72"))
	assert.True(t, IsValidAddress("8ba1f109551bd432803012645ac136ddd64dba72"))

	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress("0x8ba1"))
	assert.False(t, IsValidAddress("0xzz a1f109551bd432803012645ac136ddd64dba72"))
}

func TestNormalizeAddress(t *testing.T) {
	expected := "0x8ba1f109551bd432803012645ac136ddd64dba72"

	assert.Equal(t, expected, NormalizeAddress("0x8bA1f109551bD432803012645Ac136ddd64DBA72"))
	assert.Equal(t, expected, NormalizeAddress(expected))
	assert.Equal(t, expected, NormalizeAddress("8ba1f109551bd432803012645ac136ddd64dba72"))
}

func TestIsValidRequestId(t *testing.T) {
	assert.True(t, IsValidRequestId("aa11223344556677889900aabbccddeeff00112233445566778899aabbccddee"))
	assert.True(t, IsValidRequestId("0xaa11223344556677889900aabbccddeeff00112233445566778899aabbccddee"))

	assert.False(t, IsValidRequestId("deadbeef"))
	assert.False(t, IsValidRequestId(""))
	assert.False(t, IsValidRequestId("zz11223344556677889900aabbccddeeff00112233445566778899aabbccddee"))
}

func TestIsValidSignatureFormat(t *testing.T) {
	sig64 := make([]byte, 64)
	sig65 := make([]byte, 65)
	for i := range sig65 {
		sig65[i] = byte(i)
		if i < 64 {
			sig64[i] = byte(i)
		}
	}

	assert.True(t, IsValidSignatureFormat(hex.EncodeToString(sig64)))
	assert.True(t, IsValidSignatureFormat(hex.EncodeToString(sig65)))
	assert.True(t, IsValidSignatureFormat("0x"+hex.EncodeToString(sig64)))

	assert.False(t, IsValidSignatureFormat("deadbeef"))
	assert.False(t, IsValidSignatureFormat("not-hex"))
}

func TestDecodeHex(t *testing.T) {
	decoded, err := DecodeHex("0xdeadbeef")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, decoded)

	decoded, err = DecodeHex("deadbeef")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, decoded)

	_, err = DecodeHex("zz")
	assert.Error(t, err)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains([]int{}, 1))
}

func TestSleepFuncOverride(t *testing.T) {
	defer ResetSleepFunc()

	var slept time.Duration
	SetSleepFunc(func(d time.Duration) { slept = d })

	Sleep(5 * time.Second)
	assert.Equal(t, 5*time.Second, slept)
}
