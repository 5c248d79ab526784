package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-keys/internal/log"
	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a derived seed in bytes (512 bits).
const SeedSize = 64

const (
	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// SeedDerivator stretches a mnemonic password and salt into a seed.
type SeedDerivator interface {
	DeriveSeed(password, salt string) ([]byte, error)
}

// PBKDF2Derivator is the BIP-39 seed function: PBKDF2-HMAC-SHA512 with
// 2048 iterations and a 64-byte output over NFKD-normalized inputs.
type PBKDF2Derivator struct {
	// Backend supplies SHA-512. Nil uses the process default.
	Backend crypto.Backend
}

// DeriveSeed implements SeedDerivator.
func (d PBKDF2Derivator) DeriveSeed(password, salt string) ([]byte, error) {
	h, err := crypto.BackendFrom(backendOpts(d.Backend)...).Hasher(crypto.SHA512)
	if err != nil {
		return nil, fmt.Errorf("pbkdf2 hash: %w", err)
	}
	defer log.Benchmark("pbkdf2 seed")()

	pw := []byte(norm.NFKD.String(password))
	defer zero(pw)
	return pbkdf2.Key(pw, []byte(norm.NFKD.String(salt)), seedIterations, SeedSize, h), nil
}

// SeedFromMnemonic derives a 512-bit seed from an English mnemonic and
// optional passphrase using PBKDF2-SHA512 as specified in BIP-39.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	m, err := ParseMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	if err := m.Validate(English); err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	seed, err := m.Seed(passphrase, nil)
	if err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}
	return seed, nil
}
