package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
	"github.com/btcsuite/btcd/chaincfg"
)

// ExtendedKey is a BIP-32 extended key built from master key material.
type ExtendedKey interface {
	// PrivateKeyBytes returns the raw 32-byte private key, or nil for a public key.
	PrivateKeyBytes() []byte
	// PublicKeyBytes returns the compressed 33-byte public key.
	PublicKeyBytes() []byte
	ChainCode() []byte
	Depth() uint8
	IsPrivate() bool
	// Neuter returns the public-only counterpart (for watch-only wallets).
	Neuter() (ExtendedKey, error)
	// String returns the base58check serialization (xprv, tprv, xpub, ...).
	String() string
}

// KeyConstructor turns master key material into a root extended key.
// It rejects key material that is not a valid secp256k1 scalar.
type KeyConstructor interface {
	NewRootKey(key, chainCode []byte, net *chaincfg.Params) (ExtendedKey, error)
}

// checkRootMaterial validates key and chain code before handing them to an
// extended key library.
func checkRootMaterial(key, chainCode []byte, b crypto.Backend) error {
	if len(chainCode) != KeySize {
		return fmt.Errorf("chain code must be %d bytes, got %d", KeySize, len(chainCode))
	}
	if _, err := crypto.Secp256k1PublicKey(key, true, backendOpts(b)...); err != nil {
		return fmt.Errorf("invalid master key: %w", err)
	}
	return nil
}

func backendOpts(b crypto.Backend) []crypto.Option {
	if b == nil {
		return nil
	}
	return []crypto.Option{crypto.WithBackend(b)}
}

// Fingerprint returns the first four bytes of HASH160 of the key's
// compressed public key, as used for BIP-32 parent fingerprints.
func Fingerprint(k ExtendedKey, opts ...crypto.Option) ([4]byte, error) {
	var fp [4]byte
	pub := k.PublicKeyBytes()
	if len(pub) != crypto.CompressedPubKeySize {
		return fp, crypto.PrimitiveFailure("extended key has no public key")
	}
	h, err := crypto.Hash160(pub, opts...)
	if err != nil {
		return fp, fmt.Errorf("fingerprint: %w", err)
	}
	copy(fp[:], h[:4])
	return fp, nil
}
