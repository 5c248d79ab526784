//go:build !nobtcec

package crypto

import (
	"crypto/sha512"
	"fmt"
	"hash"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"
)

// BackendBtcec is the name of the btcsuite btcec backend.
const BackendBtcec = "btcec"

func init() {
	register(btcecBackend{}, 20)
}

// btcecBackend uses btcec for curve arithmetic and SIMD SHA-256.
type btcecBackend struct{}

func (btcecBackend) Name() string { return BackendBtcec }

func (btcecBackend) Hasher(alg HashAlgorithm) (func() hash.Hash, error) {
	switch alg {
	case SHA256:
		return sha256.New, nil
	case SHA512:
		return sha512.New, nil
	case RIPEMD160:
		return ripemd160.New, nil
	case BLAKE3:
		return newBlake3, nil
	default:
		return nil, PrimitiveFailure(fmt.Sprintf("%s: unsupported hash algorithm %s", BackendBtcec, alg))
	}
}

func (btcecBackend) NewCurveContext() (CurveContext, error) {
	return &btcecContext{order: btcec.S256().Params().N}, nil
}

type btcecContext struct {
	order *big.Int
	key   *btcec.PrivateKey
}

func (c *btcecContext) ValidPrivateKey(priv []byte) bool {
	if len(priv) != PrivateKeySize {
		return false
	}
	k := new(big.Int).SetBytes(priv)
	return k.Sign() > 0 && k.Cmp(c.order) < 0
}

func (c *btcecContext) PublicKey(priv []byte) (CurvePoint, error) {
	c.release()
	key, pub := btcec.PrivKeyFromBytes(priv)
	if pub == nil {
		return nil, fmt.Errorf("%s: no public point", BackendBtcec)
	}
	c.key = key
	return pub, nil
}

func (c *btcecContext) Close() {
	c.release()
}

func (c *btcecContext) release() {
	if c.key != nil {
		c.key.Zero()
		c.key = nil
	}
}
