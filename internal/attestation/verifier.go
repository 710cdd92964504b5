package attestation

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/stakevault/staking-ledger-service/internal/utils"
)

// Verifier validates an externally signed authorization message against the
// currently configured authority public key. It is injected into the ledger
// so tests can substitute a deterministic fake.
type Verifier interface {
	Verify(digest []byte, signatureHex string, publicKeyHex string) (bool, error)
}

// EcdsaVerifier checks secp256k1 ECDSA signatures over the canonical digest.
type EcdsaVerifier struct{}

func NewEcdsaVerifier() *EcdsaVerifier {
	return &EcdsaVerifier{}
}

// Verify returns true when the signature over the digest was produced by the
// holder of the given public key. The signature is hex encoded r || s, with
// an optional trailing recovery byte which is ignored. The public key may be
// in compressed (33 byte) or uncompressed (65 byte) form.
func (v *EcdsaVerifier) Verify(digest []byte, signatureHex string, publicKeyHex string) (bool, error) {
	signature, err := utils.DecodeHex(signatureHex)
	if err != nil {
		return false, fmt.Errorf("invalid signature hex: %w", err)
	}
	if len(signature) != 64 && len(signature) != 65 {
		return false, fmt.Errorf("signature must be 64 or 65 bytes, got %d", len(signature))
	}

	publicKey, err := utils.DecodeHex(publicKeyHex)
	if err != nil {
		return false, fmt.Errorf("invalid public key hex: %w", err)
	}
	if len(publicKey) != 33 && len(publicKey) != 65 {
		return false, fmt.Errorf("public key must be 33 or 65 bytes, got %d", len(publicKey))
	}

	return crypto.VerifySignature(publicKey, digest, signature[:64]), nil
}
