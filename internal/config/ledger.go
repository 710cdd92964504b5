package config

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/stakevault/staking-ledger-service/internal/utils"
)

// LedgerConfig holds the initial runtime parameters of the staking ledger.
// These seed the params document on first boot; after that the values are
// owned by the admin surface and mutated at runtime.
type LedgerConfig struct {
	CooldownSeconds  int64  `mapstructure:"cooldown-seconds"`
	AppId            string `mapstructure:"app-id"`
	AttestationPkHex string `mapstructure:"attestation-pk-hex"`
	VerifierAddress  string `mapstructure:"verifier-address"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.CooldownSeconds < 0 {
		return errors.New("cooldown seconds cannot be negative")
	}

	if cfg.AppId == "" {
		return errors.New("missing app id")
	}

	pkBytes, err := utils.DecodeHex(cfg.AttestationPkHex)
	if err != nil {
		return fmt.Errorf("invalid attestation public key hex: %w", err)
	}

	// Accept both compressed and uncompressed secp256k1 public keys
	switch len(pkBytes) {
	case 33:
		if _, err := crypto.DecompressPubkey(pkBytes); err != nil {
			return fmt.Errorf("invalid compressed attestation public key: %w", err)
		}
	case 65:
		if _, err := crypto.UnmarshalPubkey(pkBytes); err != nil {
			return fmt.Errorf("invalid uncompressed attestation public key: %w", err)
		}
	default:
		return fmt.Errorf("attestation public key must be 33 or 65 bytes, got %d", len(pkBytes))
	}

	if cfg.VerifierAddress != "" && !utils.IsValidAddress(cfg.VerifierAddress) {
		return errors.New("invalid verifier address")
	}

	return nil
}
