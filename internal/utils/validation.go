package utils

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

const requestIdByteLength = 32

// IsValidAddress checks the address is a well formed 0x-prefixed 20 byte hex string.
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// NormalizeAddress canonicalizes an address into its lowercase hex form, which
// is the representation used as the account primary key in the database.
func NormalizeAddress(address string) string {
	return strings.ToLower(common.HexToAddress(address).Hex())
}

// IsValidRequestId checks the request id is a 0x-prefixed 32 byte hex string.
func IsValidRequestId(requestId string) bool {
	decoded, err := DecodeHex(requestId)
	if err != nil {
		return false
	}
	return len(decoded) == requestIdByteLength
}

// IsValidSignatureFormat checks the attestation signature is hex encoded and
// either 64 bytes (r || s) or 65 bytes (r || s || v).
func IsValidSignatureFormat(signatureHex string) bool {
	decoded, err := DecodeHex(signatureHex)
	if err != nil {
		return false
	}
	return len(decoded) == 64 || len(decoded) == 65
}

// DecodeHex decodes a hex string with or without the 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}
