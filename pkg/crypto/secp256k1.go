package crypto

import (
	"errors"
	"fmt"
)

// Serialized public key lengths and prefixes.
const (
	PrivateKeySize              = 32
	CompressedPubKeySize        = 33
	UncompressedPubKeySize      = 65
	pubKeyPrefixEven       byte = 0x02
	pubKeyPrefixOdd        byte = 0x03
	pubKeyPrefixFull       byte = 0x04
)

// Secp256k1PublicKey derives the public key for a 32-byte private scalar.
// The compressed form is 33 bytes, the uncompressed form 65 bytes.
func Secp256k1PublicKey(priv []byte, compressed bool, opts ...Option) ([]byte, error) {
	ctx, err := BackendFrom(opts...).NewCurveContext()
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, err
		}
		return nil, PrimitiveFailure(fmt.Sprintf("create secp256k1 context: %v", err))
	}
	defer ctx.Close()

	if len(priv) != PrivateKeySize {
		return nil, PrimitiveFailure(fmt.Sprintf("private key must be %d bytes, got %d", PrivateKeySize, len(priv)))
	}
	if !ctx.ValidPrivateKey(priv) {
		return nil, PrimitiveFailure("private key is zero or not below the curve order")
	}

	point, err := ctx.PublicKey(priv)
	if err != nil {
		return nil, PrimitiveFailure(fmt.Sprintf("compute public key: %v", err))
	}

	if compressed {
		out := point.SerializeCompressed()
		if len(out) != CompressedPubKeySize || (out[0] != pubKeyPrefixEven && out[0] != pubKeyPrefixOdd) {
			return nil, PrimitiveFailure("serialize compressed public key")
		}
		return out, nil
	}
	out := point.SerializeUncompressed()
	if len(out) != UncompressedPubKeySize || out[0] != pubKeyPrefixFull {
		return nil, PrimitiveFailure("serialize uncompressed public key")
	}
	return out, nil
}
