package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// HDKeychainConstructor builds root keys with btcutil/hdkeychain.
type HDKeychainConstructor struct {
	// Backend validates the key material. Nil uses the process default.
	Backend crypto.Backend
}

// NewRootKey implements KeyConstructor.
func (c HDKeychainConstructor) NewRootKey(key, chainCode []byte, net *chaincfg.Params) (ExtendedKey, error) {
	if err := checkRootMaterial(key, chainCode, c.Backend); err != nil {
		return nil, err
	}

	ek := hdkeychain.NewExtendedKey(
		net.HDPrivateKeyID[:],
		append([]byte(nil), key...),
		append([]byte(nil), chainCode...),
		[]byte{0, 0, 0, 0},
		0,
		0,
		true,
	)
	return &ChainKey{key: ek}, nil
}

// ChainKey is a root extended key backed by hdkeychain.
type ChainKey struct {
	key *hdkeychain.ExtendedKey
}

// PrivateKeyBytes returns the raw 32-byte private key, or nil for a public key.
func (k *ChainKey) PrivateKeyBytes() []byte {
	priv, err := k.key.ECPrivKey()
	if err != nil {
		return nil
	}
	return priv.Serialize()
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *ChainKey) PublicKeyBytes() []byte {
	pub, err := k.key.ECPubKey()
	if err != nil {
		return nil
	}
	return pub.SerializeCompressed()
}

func (k *ChainKey) ChainCode() []byte { return k.key.ChainCode() }
func (k *ChainKey) Depth() uint8      { return k.key.Depth() }
func (k *ChainKey) IsPrivate() bool   { return k.key.IsPrivate() }
func (k *ChainKey) String() string    { return k.key.String() }

// Neuter returns the public-only counterpart.
func (k *ChainKey) Neuter() (ExtendedKey, error) {
	pub, err := k.key.Neuter()
	if err != nil {
		return nil, fmt.Errorf("neuter: %w", err)
	}
	return &ChainKey{key: pub}, nil
}
