package attestation

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/stakevault/staking-ledger-service/internal/utils"
)

// BuildDigest derives the canonical message digest an attestation signs over.
// The packing is fixed width so the digest is deterministic:
//
//	keccak256(keccak256(appId) || requestId[32] || address[20] || amount[8 BE])
//
// Binding the application id, request id, address and amount together means
// one attestation authorizes exactly one redemption of one amount for one
// account.
func BuildDigest(appId, requestIdHex, address string, amount uint64) ([]byte, error) {
	requestId, err := utils.DecodeHex(requestIdHex)
	if err != nil {
		return nil, fmt.Errorf("invalid request id hex: %w", err)
	}
	if len(requestId) != 32 {
		return nil, fmt.Errorf("request id must be 32 bytes, got %d", len(requestId))
	}

	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address: %s", address)
	}
	addressBytes := common.HexToAddress(address).Bytes()

	amountBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(amountBytes, amount)

	message := make([]byte, 0, 32+32+20+8)
	message = append(message, crypto.Keccak256([]byte(appId))...)
	message = append(message, requestId...)
	message = append(message, addressBytes...)
	message = append(message, amountBytes...)

	return crypto.Keccak256(message), nil
}
