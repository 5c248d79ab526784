package wallet

import (
	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip32"
)

// BIP32Constructor builds root keys with tyler-smith/go-bip32.
type BIP32Constructor struct {
	// Backend validates the key material. Nil uses the process default.
	Backend crypto.Backend
}

// NewRootKey implements KeyConstructor.
func (c BIP32Constructor) NewRootKey(key, chainCode []byte, net *chaincfg.Params) (ExtendedKey, error) {
	if err := checkRootMaterial(key, chainCode, c.Backend); err != nil {
		return nil, err
	}

	k := &bip32.Key{
		Version:     append([]byte(nil), net.HDPrivateKeyID[:]...),
		Depth:       0,
		ChildNumber: []byte{0, 0, 0, 0},
		FingerPrint: []byte{0, 0, 0, 0},
		ChainCode:   append([]byte(nil), chainCode...),
		Key:         append([]byte(nil), key...),
		IsPrivate:   true,
	}
	return &HDKey{key: k, pubVersion: net.HDPublicKeyID}, nil
}

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key        *bip32.Key
	pubVersion [4]byte
}

// PrivateKeyBytes returns the raw 32-byte private key.
// Returns nil if this is a public-only key.
func (k *HDKey) PrivateKeyBytes() []byte {
	if !k.key.IsPrivate {
		return nil
	}
	// bip32 Key.Key may carry a leading 0x00 for private keys.
	raw := k.key.Key
	if len(raw) == 33 && raw[0] == 0 {
		return append([]byte(nil), raw[1:]...)
	}
	return append([]byte(nil), raw...)
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	if !k.key.IsPrivate {
		return append([]byte(nil), k.key.Key...)
	}
	pub := k.key.PublicKey()
	return pub.Key
}

// ChainCode returns the 32-byte chain code.
func (k *HDKey) ChainCode() []byte {
	return append([]byte(nil), k.key.ChainCode...)
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// Neuter returns a public-key-only copy (for watch-only wallets).
func (k *HDKey) Neuter() (ExtendedKey, error) {
	if !k.key.IsPrivate {
		return k, nil
	}
	pub := k.key.PublicKey()
	pub.Version = append([]byte(nil), k.pubVersion[:]...)
	return &HDKey{key: pub, pubVersion: k.pubVersion}, nil
}

// String returns the base58check serialization.
func (k *HDKey) String() string {
	return k.key.B58Serialize()
}
