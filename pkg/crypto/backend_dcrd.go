//go:build !nodcrd

package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ripemd160"
)

// BackendDcrd is the name of the decred secp256k1 backend.
const BackendDcrd = "dcrd"

func init() {
	register(dcrdBackend{}, 10)
}

// dcrdBackend uses the standard library hashes and decred's secp256k1.
type dcrdBackend struct{}

func (dcrdBackend) Name() string { return BackendDcrd }

func (dcrdBackend) Hasher(alg HashAlgorithm) (func() hash.Hash, error) {
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
		return nil, PrimitiveFailure(fmt.Sprintf("%s: unsupported hash algorithm %s", BackendDcrd, alg))
	}
}

func (dcrdBackend) NewCurveContext() (CurveContext, error) {
	return &dcrdContext{}, nil
}

type dcrdContext struct {
	key *secp256k1.PrivateKey
}

func (c *dcrdContext) ValidPrivateKey(priv []byte) bool {
	if len(priv) != PrivateKeySize {
		return false
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(priv)
	valid := !overflow && !s.IsZero()
	s.Zero()
	return valid
}

func (c *dcrdContext) PublicKey(priv []byte) (CurvePoint, error) {
	c.release()
	c.key = secp256k1.PrivKeyFromBytes(priv)
	return c.key.PubKey(), nil
}

func (c *dcrdContext) Close() {
	c.release()
}

func (c *dcrdContext) release() {
	if c.key != nil {
		c.key.Zero()
		c.key = nil
	}
}
