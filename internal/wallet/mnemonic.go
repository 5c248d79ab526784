// Package wallet derives BIP-32 master keys and BIP-39 mnemonics and seeds.
package wallet

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-keys/internal/log"
	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
)

// Mnemonic is a BIP-39 phrase: words joined by single ASCII spaces.
type Mnemonic struct {
	phrase string
}

// NewMnemonicFromWords builds a mnemonic from an explicit word sequence.
// The count must be 12, 15, 18, 21 or 24. Words are not checked against a
// list and the checksum is not verified; use Validate for that. Unlike a
// purely count-based check, an empty word or one containing whitespace is
// rejected, since the phrase could not be split back into the same words.
func NewMnemonicFromWords(words []string) (Mnemonic, error) {
	if _, err := StrengthForWordCount(len(words)); err != nil {
		return Mnemonic{}, err
	}
	for i, w := range words {
		if w == "" || strings.ContainsAny(w, " \t\r\n") {
			return Mnemonic{}, crypto.ParsingFailure(fmt.Sprintf("word %d is empty or contains whitespace", i+1), nil)
		}
	}
	return Mnemonic{phrase: strings.Join(words, " ")}, nil
}

// ParseMnemonic splits a phrase on any whitespace and builds a mnemonic.
func ParseMnemonic(phrase string) (Mnemonic, error) {
	return NewMnemonicFromWords(strings.Fields(phrase))
}

// NewMnemonic generates fresh entropy of the given strength and encodes it
// with v. A nil v uses English.
func NewMnemonic(s Strength, v Vocabulary) (Mnemonic, error) {
	entropy, err := NewEntropy(s)
	if err != nil {
		return Mnemonic{}, err
	}
	defer zero(entropy)

	m, err := NewMnemonicFromEntropy(entropy, v)
	if err != nil {
		return Mnemonic{}, err
	}
	log.Wallet.Debug().Int("strength", s.Bits()).Int("words", s.WordCount()).Msg("Mnemonic generated")
	return m, nil
}

// NewMnemonicFromEntropy encodes existing entropy with v. A nil v uses English.
func NewMnemonicFromEntropy(entropy []byte, v Vocabulary) (Mnemonic, error) {
	if v == nil {
		v = English
	}
	words, err := v.Words(entropy)
	if err != nil {
		return Mnemonic{}, crypto.Upstream("encode entropy", err)
	}
	m, err := NewMnemonicFromWords(words)
	if err != nil {
		return Mnemonic{}, crypto.Upstream(fmt.Sprintf("%s word list output", v.Name()), err)
	}
	return m, nil
}

// Phrase returns the space-joined phrase.
func (m Mnemonic) Phrase() string { return m.phrase }

// Words splits the phrase into its words. The result is recomputed on
// every call.
func (m Mnemonic) Words() []string {
	if m.phrase == "" {
		return nil
	}
	return strings.Split(m.phrase, " ")
}

// Strength returns the entropy size encoded by the phrase.
func (m Mnemonic) Strength() Strength {
	s, err := StrengthForWordCount(len(m.Words()))
	if err != nil {
		return 0
	}
	return s
}

// Equal reports whether two mnemonics have the same phrase.
func (m Mnemonic) Equal(other Mnemonic) bool {
	return subtle.ConstantTimeCompare([]byte(m.phrase), []byte(other.phrase)) == 1
}

// String hides the phrase so a mnemonic can't leak through logs or %v.
func (m Mnemonic) String() string {
	return fmt.Sprintf("mnemonic(%d words)", len(m.Words()))
}

// Validate checks list membership and the BIP-39 checksum against v.
// A nil v uses English.
func (m Mnemonic) Validate(v Vocabulary) error {
	entropy, err := m.Entropy(v)
	if err != nil {
		return err
	}
	zero(entropy)
	return nil
}

// Entropy recovers the entropy encoded by the phrase. A nil v uses English.
func (m Mnemonic) Entropy(v Vocabulary) ([]byte, error) {
	if v == nil {
		v = English
	}
	entropy, err := v.Entropy(m.phrase)
	if err != nil {
		return nil, crypto.Upstream("invalid mnemonic", err)
	}
	return entropy, nil
}

// Seed derives the BIP-39 seed with password = phrase and
// salt = "mnemonic" + passphrase. A nil d uses PBKDF2Derivator.
func (m Mnemonic) Seed(passphrase string, d SeedDerivator) ([]byte, error) {
	if d == nil {
		d = PBKDF2Derivator{}
	}
	seed, err := d.DeriveSeed(m.phrase, seedSaltPrefix+passphrase)
	if err != nil {
		return nil, crypto.Upstream("derive seed", err)
	}
	return seed, nil
}

// GenerateMnemonic creates a new 24-word English BIP-39 mnemonic.
func GenerateMnemonic() (string, error) {
	m, err := NewMnemonic(DefaultStrength, English)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return m.Phrase(), nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	m, err := ParseMnemonic(mnemonic)
	if err != nil {
		return false
	}
	return m.Validate(English) == nil
}
