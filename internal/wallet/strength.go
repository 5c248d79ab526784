package wallet

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
)

// Strength is the BIP-39 entropy size in bits.
type Strength int

const (
	Strength128 Strength = 128
	Strength160 Strength = 160
	Strength192 Strength = 192
	Strength224 Strength = 224
	Strength256 Strength = 256
)

// DefaultStrength is used for newly generated wallets (24 words).
const DefaultStrength = Strength256

// strengths is the only list of supported sizes. Word counts are derived.
var strengths = []Strength{Strength128, Strength160, Strength192, Strength224, Strength256}

// Strengths returns the supported strengths in ascending order.
func Strengths() []Strength {
	return append([]Strength(nil), strengths...)
}

// Valid reports whether s is a supported strength.
func (s Strength) Valid() bool {
	for _, v := range strengths {
		if s == v {
			return true
		}
	}
	return false
}

// Bits returns the entropy size in bits.
func (s Strength) Bits() int { return int(s) }

// EntropySize returns the entropy size in bytes.
func (s Strength) EntropySize() int { return int(s) / 8 }

// WordCount returns the mnemonic length for s: one checksum bit per 32
// entropy bits, 11 bits per word. Returns 0 for an unsupported strength.
func (s Strength) WordCount() int {
	if !s.Valid() {
		return 0
	}
	bits := int(s)
	return (bits + bits/32) / 11
}

// ParseStrength returns the strength for a bit size.
func ParseStrength(bits int) (Strength, error) {
	s := Strength(bits)
	if !s.Valid() {
		return 0, crypto.ParsingFailure(fmt.Sprintf("unsupported strength %d bits (want one of %v)", bits, strengths), nil)
	}
	return s, nil
}

// StrengthForWordCount returns the strength encoded by a mnemonic of n words.
func StrengthForWordCount(n int) (Strength, error) {
	for _, s := range strengths {
		if s.WordCount() == n {
			return s, nil
		}
	}
	return 0, crypto.ParsingFailure(fmt.Sprintf("invalid mnemonic word count %d (want 12, 15, 18, 21 or 24)", n), nil)
}
