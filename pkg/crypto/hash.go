package crypto

import (
	"crypto/hmac"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
)

// HashAlgorithm selects the hash function used by HMAC and Hash160.
type HashAlgorithm uint8

const (
	SHA256 HashAlgorithm = iota + 1
	SHA512
	RIPEMD160
	// BLAKE3 is BLAKE3 with a 32-byte output.
	BLAKE3
)

// Hash160Size is the length of a HASH160 digest.
const Hash160Size = 20

func (a HashAlgorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	case RIPEMD160:
		return "ripemd160"
	case BLAKE3:
		return "blake3"
	default:
		return fmt.Sprintf("hash(%d)", uint8(a))
	}
}

// Size returns the digest length in bytes, or 0 for an unknown algorithm.
func (a HashAlgorithm) Size() int {
	switch a {
	case SHA256, BLAKE3:
		return 32
	case SHA512:
		return 64
	case RIPEMD160:
		return 20
	default:
		return 0
	}
}

// HMAC computes HMAC(key, data) over alg using the selected backend.
func HMAC(alg HashAlgorithm, key, data []byte, opts ...Option) ([]byte, error) {
	h, err := BackendFrom(opts...).Hasher(alg)
	if err != nil {
		return nil, err
	}
	mac := hmac.New(h, key)
	mac.Write(data)
	return mac.Sum(nil), nil
}

// Hash160 computes RIPEMD160(SHA256(data)).
func Hash160(data []byte, opts ...Option) ([]byte, error) {
	b := BackendFrom(opts...)
	sha, err := b.Hasher(SHA256)
	if err != nil {
		return nil, err
	}
	rmd, err := b.Hasher(RIPEMD160)
	if err != nil {
		return nil, err
	}

	inner := sha()
	inner.Write(data)
	outer := rmd()
	outer.Write(inner.Sum(nil))
	sum := outer.Sum(nil)
	if len(sum) != Hash160Size {
		return nil, PrimitiveFailure(fmt.Sprintf("hash160 produced %d bytes", len(sum)))
	}
	return sum, nil
}

func newBlake3() hash.Hash {
	return blake3.New()
}
