package wallet

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/Klingon-tech/klingnet-keys/internal/log"
	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
	"github.com/btcsuite/btcd/chaincfg"
)

// masterKeyHMACKey is the BIP-32 HMAC key for secp256k1 master keys.
// Hex: 426974636f696e2073656564.
const masterKeyHMACKey = "Bitcoin seed"

// KeySize is the length of a master private key and of a chain code.
const KeySize = 32

// MasterKey is the BIP-32 master private key and chain code for a seed.
type MasterKey struct {
	key       [KeySize]byte
	chainCode [KeySize]byte
}

// MasterKeyData derives the master key from a seed of any length:
//
//	I = HMAC-SHA512(Key = "Bitcoin seed", Data = seed)
//	key = I[:32], chainCode = I[32:]
//
// The key is not range checked here; root key construction does that.
func MasterKeyData(seed []byte, opts ...crypto.Option) (MasterKey, error) {
	sum, err := crypto.HMAC(crypto.SHA512, []byte(masterKeyHMACKey), seed, opts...)
	if err != nil {
		return MasterKey{}, fmt.Errorf("master key hmac: %w", err)
	}
	defer zero(sum)

	if len(sum) != 2*KeySize {
		return MasterKey{}, crypto.PrimitiveFailure(fmt.Sprintf("master key hmac produced %d bytes, want %d", len(sum), 2*KeySize))
	}

	var mk MasterKey
	copy(mk.key[:], sum[:KeySize])
	copy(mk.chainCode[:], sum[KeySize:])
	return mk, nil
}

// MasterKeyDataFromHex decodes a hex seed and derives its master key.
func MasterKeyDataFromHex(seedHex string, opts ...crypto.Option) (MasterKey, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return MasterKey{}, crypto.ParsingFailure("decode seed hex", err)
	}
	defer zero(seed)
	return MasterKeyData(seed, opts...)
}

// Key returns a copy of the 32-byte master private key.
func (mk MasterKey) Key() []byte {
	out := make([]byte, KeySize)
	copy(out, mk.key[:])
	return out
}

// ChainCode returns a copy of the 32-byte master chain code.
func (mk MasterKey) ChainCode() []byte {
	out := make([]byte, KeySize)
	copy(out, mk.chainCode[:])
	return out
}

// Equal reports whether two master keys are identical, in constant time.
func (mk MasterKey) Equal(other MasterKey) bool {
	return subtle.ConstantTimeCompare(mk.key[:], other.key[:]) == 1 &&
		subtle.ConstantTimeCompare(mk.chainCode[:], other.chainCode[:]) == 1
}

// RootKey builds the root extended key for the given network. A nil net
// selects mainnet and a nil constructor selects a BIP32Constructor bound to
// the backend chosen by opts. A non-nil constructor uses its own Backend.
func (mk MasterKey) RootKey(net *chaincfg.Params, c KeyConstructor, opts ...crypto.Option) (ExtendedKey, error) {
	if net == nil {
		net = &chaincfg.MainNetParams
	}
	if c == nil {
		c = BIP32Constructor{Backend: crypto.BackendFrom(opts...)}
	}

	key, chainCode := mk.Key(), mk.ChainCode()
	defer zero(key)

	root, err := c.NewRootKey(key, chainCode, net)
	if err != nil {
		return nil, crypto.Upstream("construct root key", err)
	}
	log.Wallet.Debug().Str("network", net.Name).Msg("Root key constructed")
	return root, nil
}

// NewMasterKey creates the mainnet root HD key for a seed.
func NewMasterKey(seed []byte, opts ...crypto.Option) (*HDKey, error) {
	mk, err := MasterKeyData(seed, opts...)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	root, err := mk.RootKey(&chaincfg.MainNetParams, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return root.(*HDKey), nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
