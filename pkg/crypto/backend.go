// Package crypto provides the cryptographic primitives used for Klingnet
// key derivation: HMAC, HASH160 and secp256k1 public key derivation.
//
// The primitive logic is fixed. What varies is the Backend, the library
// that supplies hash constructors and curve arithmetic. Backends are
// compiled in with build tags and the process default is bound once, see
// Init and Default. Any call may pass WithBackend to use another one.
package crypto

import "hash"

// Backend supplies the library-specific parts of the primitives.
type Backend interface {
	// Name identifies the backend in config and logs.
	Name() string
	// Hasher returns a constructor for the given hash algorithm.
	Hasher(alg HashAlgorithm) (func() hash.Hash, error)
	// NewCurveContext acquires a secp256k1 context. The caller must Close it.
	NewCurveContext() (CurveContext, error)
}

// CurveContext is a short-lived secp256k1 context owned by a single call.
type CurveContext interface {
	// ValidPrivateKey reports whether priv is a 32-byte scalar in [1, n-1].
	ValidPrivateKey(priv []byte) bool
	// PublicKey computes priv*G.
	PublicKey(priv []byte) (CurvePoint, error)
	// Close releases the context and zeroes any key material it holds.
	Close()
}

// CurvePoint is a public point that can be serialized in SEC1 form.
type CurvePoint interface {
	SerializeCompressed() []byte
	SerializeUncompressed() []byte
}

type options struct {
	backend Backend
}

// Option configures a single primitive call.
type Option func(*options)

// WithBackend overrides the process default backend for one call.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// BackendFrom resolves the backend selected by opts, falling back to Default.
func BackendFrom(opts ...Option) Backend {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		return Default()
	}
	return o.backend
}
