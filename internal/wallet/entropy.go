package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
	"github.com/tyler-smith/go-bip39"
)

// entropySource reads bits of entropy from crypto/rand. Tests replace it.
var entropySource = bip39.NewEntropy

// NewEntropy returns s.EntropySize() bytes from a secure random source.
func NewEntropy(s Strength) ([]byte, error) {
	if !s.Valid() {
		return nil, crypto.ParsingFailure(fmt.Sprintf("unsupported strength %d bits", s), nil)
	}
	entropy, err := entropySource(s.Bits())
	if err != nil {
		return nil, crypto.Upstream("generate entropy", err)
	}
	if len(entropy) != s.EntropySize() {
		return nil, crypto.PrimitiveFailure(fmt.Sprintf("entropy source returned %d bytes, want %d", len(entropy), s.EntropySize()))
	}
	return entropy, nil
}
