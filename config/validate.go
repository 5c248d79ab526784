package config

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-keys/internal/wallet"
	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
)

// Validate checks runtime config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	switch cfg.Network {
	case Mainnet, Testnet, Regtest, Signet:
	default:
		return fmt.Errorf("network must be one of %q, %q, %q or %q", Mainnet, Testnet, Regtest, Signet)
	}

	cfg.Crypto.Backend = strings.ToLower(strings.TrimSpace(cfg.Crypto.Backend))
	if cfg.Crypto.Backend != "" {
		if _, err := crypto.Lookup(cfg.Crypto.Backend); err != nil {
			return fmt.Errorf("crypto.backend: %w", err)
		}
	}

	if _, err := wallet.ParseStrength(cfg.Mnemonic.Strength); err != nil {
		return fmt.Errorf("mnemonic.strength: %w", err)
	}
	cfg.Mnemonic.WordList = strings.ToLower(strings.TrimSpace(cfg.Mnemonic.WordList))
	if _, err := wallet.LookupVocabulary(cfg.Mnemonic.WordList); err != nil {
		return fmt.Errorf("mnemonic.wordlist: %w", err)
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error", "disabled", "off":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, error or disabled")
	}
	return nil
}
