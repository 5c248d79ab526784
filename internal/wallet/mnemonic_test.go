package wallet

import (
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
)

const (
	abandonAbout = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	abandonArt   = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"
)

func TestGenerateMnemonic(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	words := strings.Fields(mnemonic)
	if len(words) != 24 {
		t.Errorf("word count = %d, want 24", len(words))
	}
}

func TestGenerateMnemonic_Unique(t *testing.T) {
	m1, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}
	m2, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	if m1 == m2 {
		t.Error("two generated mnemonics should not be identical")
	}
}

func TestGenerateMnemonic_Valid(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	if !ValidateMnemonic(mnemonic) {
		t.Error("generated mnemonic should validate")
	}
}

func TestNewMnemonic_WordCounts(t *testing.T) {
	for _, s := range Strengths() {
		m, err := NewMnemonic(s, English)
		if err != nil {
			t.Fatalf("NewMnemonic(%d) error: %v", s, err)
		}
		if got := len(strings.Split(m.Phrase(), " ")); got != s.WordCount() {
			t.Errorf("NewMnemonic(%d) phrase has %d words, want %d", s, got, s.WordCount())
		}
		if len(m.Words()) != s.WordCount() {
			t.Errorf("NewMnemonic(%d).Words() = %d words, want %d", s, len(m.Words()), s.WordCount())
		}
		if m.Strength() != s {
			t.Errorf("Strength() = %d, want %d", m.Strength(), s)
		}
		if err := m.Validate(English); err != nil {
			t.Errorf("generated mnemonic should validate: %v", err)
		}
	}
}

func TestNewMnemonic_128And256(t *testing.T) {
	m, err := NewMnemonic(Strength128, nil)
	if err != nil {
		t.Fatalf("NewMnemonic(128) error: %v", err)
	}
	if len(m.Words()) != 12 {
		t.Errorf("128-bit mnemonic has %d words, want 12", len(m.Words()))
	}

	m, err = NewMnemonic(Strength256, nil)
	if err != nil {
		t.Fatalf("NewMnemonic(256) error: %v", err)
	}
	if len(m.Words()) != 24 {
		t.Errorf("256-bit mnemonic has %d words, want 24", len(m.Words()))
	}
}

func TestNewMnemonic_InvalidStrength(t *testing.T) {
	_, err := NewMnemonic(Strength(100), English)
	if crypto.KindOf(err) != crypto.KindParsingFailure {
		t.Errorf("NewMnemonic(100) error = %v, want parsing failure", err)
	}
}

func TestNewMnemonicFromWords_Count(t *testing.T) {
	for n := 0; n <= 30; n++ {
		words := make([]string, n)
		for i := range words {
			words[i] = "notaword"
		}
		_, err := NewMnemonicFromWords(words)
		valid := n == 12 || n == 15 || n == 18 || n == 21 || n == 24
		if valid && err != nil {
			t.Errorf("%d words: unexpected error: %v", n, err)
		}
		if !valid && err == nil {
			t.Errorf("%d words: expected error", n)
		}
	}
}

func TestNewMnemonicFromWords_NoVocabularyCheck(t *testing.T) {
	words := strings.Fields("one two three four five six seven eight nine ten eleven twelve")
	m, err := NewMnemonicFromWords(words)
	if err != nil {
		t.Fatalf("NewMnemonicFromWords() error: %v", err)
	}
	if m.Validate(English) == nil {
		t.Error("non-list words should fail explicit validation")
	}
}

func TestNewMnemonicFromWords_RejectsWhitespace(t *testing.T) {
	words := strings.Fields(abandonAbout)
	words[3] = "aban don"
	if _, err := NewMnemonicFromWords(words); err == nil {
		t.Error("word containing a space should be rejected")
	}
	words[3] = ""
	if _, err := NewMnemonicFromWords(words); err == nil {
		t.Error("empty word should be rejected")
	}
}

func TestMnemonic_WordsRoundTrip(t *testing.T) {
	words := strings.Fields(abandonArt)
	m, err := NewMnemonicFromWords(words)
	if err != nil {
		t.Fatalf("NewMnemonicFromWords() error: %v", err)
	}
	if m.Phrase() != abandonArt {
		t.Errorf("Phrase() = %q", m.Phrase())
	}
	got := m.Words()
	if strings.Join(got, " ") != abandonArt || len(got) != 24 {
		t.Errorf("Words() = %v", got)
	}

	// Words is recomputed, callers can't mutate the mnemonic.
	got[0] = "zoo"
	if m.Words()[0] != "abandon" {
		t.Error("Words() should return a fresh slice")
	}
}

func TestParseMnemonic(t *testing.T) {
	m, err := ParseMnemonic("  abandon abandon\tabandon abandon abandon abandon abandon abandon abandon abandon abandon\nabout ")
	if err != nil {
		t.Fatalf("ParseMnemonic() error: %v", err)
	}
	if m.Phrase() != abandonAbout {
		t.Errorf("Phrase() = %q, want %q", m.Phrase(), abandonAbout)
	}

	other, _ := NewMnemonicFromWords(strings.Fields(abandonAbout))
	if !m.Equal(other) {
		t.Error("mnemonics with the same phrase should be equal")
	}
}

func TestMnemonic_StringHidesPhrase(t *testing.T) {
	m, _ := ParseMnemonic(abandonAbout)
	if strings.Contains(m.String(), "abandon") {
		t.Errorf("String() leaks the phrase: %q", m.String())
	}
}

func TestMnemonic_Entropy(t *testing.T) {
	tests := []struct {
		phrase  string
		entropy string
	}{
		{abandonAbout, "00000000000000000000000000000000"},
		{"legal winner thank year wave sausage worth useful legal winner thank yellow", "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f"},
		{"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong", "ffffffffffffffffffffffffffffffff"},
		{abandonArt, "0000000000000000000000000000000000000000000000000000000000000000"},
	}

	for _, tt := range tests {
		m, err := ParseMnemonic(tt.phrase)
		if err != nil {
			t.Fatalf("ParseMnemonic() error: %v", err)
		}
		entropy, err := m.Entropy(nil)
		if err != nil {
			t.Fatalf("Entropy() error: %v", err)
		}
		if got := hex.EncodeToString(entropy); got != tt.entropy {
			t.Errorf("Entropy() = %s, want %s", got, tt.entropy)
		}

		// Reconstruct the phrase from its entropy.
		back, err := NewMnemonicFromEntropy(entropy, English)
		if err != nil {
			t.Fatalf("NewMnemonicFromEntropy() error: %v", err)
		}
		if !back.Equal(m) {
			t.Errorf("NewMnemonicFromEntropy() = %q, want %q", back.Phrase(), tt.phrase)
		}
	}
}

func TestNewMnemonicFromEntropy_BadLength(t *testing.T) {
	_, err := NewMnemonicFromEntropy(make([]byte, 15), English)
	if crypto.KindOf(err) != crypto.KindUpstream {
		t.Errorf("NewMnemonicFromEntropy(15 bytes) error = %v, want upstream error", err)
	}
}

func TestValidateMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		valid    bool
	}{
		{
			name:     "valid 24-word BIP-39",
			mnemonic: abandonArt,
			valid:    true,
		},
		{
			name:     "valid 12-word BIP-39",
			mnemonic: abandonAbout,
			valid:    true,
		},
		{
			name:     "empty string",
			mnemonic: "",
			valid:    false,
		},
		{
			name:     "random words",
			mnemonic: "not a valid mnemonic phrase at all",
			valid:    false,
		},
		{
			name:     "wrong checksum",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			valid:    false,
		},
		{
			name:     "single word",
			mnemonic: "abandon",
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMnemonic(tt.mnemonic); got != tt.valid {
				t.Errorf("ValidateMnemonic() = %v, want %v", got, tt.valid)
			}
		})
	}
}

// recordingDerivator captures the password and salt it is called with.
type recordingDerivator struct {
	password, salt string
	err            error
}

func (r *recordingDerivator) DeriveSeed(password, salt string) ([]byte, error) {
	r.password, r.salt = password, salt
	if r.err != nil {
		return nil, r.err
	}
	return make([]byte, SeedSize), nil
}

func TestMnemonic_SeedSalt(t *testing.T) {
	m, err := ParseMnemonic(abandonAbout)
	if err != nil {
		t.Fatalf("ParseMnemonic() error: %v", err)
	}

	tests := []struct {
		passphrase string
		salt       string
	}{
		{"", "mnemonic"},
		{"x", "mnemonicx"},
		{"TREZOR", "mnemonicTREZOR"},
		{" spaced ", "mnemonic spaced "},
	}
	for _, tt := range tests {
		d := &recordingDerivator{}
		if _, err := m.Seed(tt.passphrase, d); err != nil {
			t.Fatalf("Seed() error: %v", err)
		}
		if d.password != abandonAbout {
			t.Errorf("password = %q, want the phrase", d.password)
		}
		if d.salt != tt.salt {
			t.Errorf("Seed(%q) salt = %q, want %q", tt.passphrase, d.salt, tt.salt)
		}
	}
}

func TestMnemonic_SeedError(t *testing.T) {
	m, _ := ParseMnemonic(abandonAbout)
	cause := errors.New("derivator offline")
	_, err := m.Seed("", &recordingDerivator{err: cause})
	if !errors.Is(err, cause) {
		t.Errorf("Seed() error = %v, want wrapped cause", err)
	}
	if crypto.KindOf(err) != crypto.KindUpstream {
		t.Errorf("Seed() error kind = %v, want upstream", crypto.KindOf(err))
	}
}

func TestVocabulary_Concurrent(t *testing.T) {
	japanese, err := LookupVocabulary("japanese")
	if err != nil {
		t.Fatalf("LookupVocabulary() error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m, err := NewMnemonic(Strength128, japanese)
			if err != nil {
				errs <- err.Error()
				return
			}
			if !japanese.Valid(m.Phrase()) {
				errs <- "japanese mnemonic failed validation"
			}
		}()
		go func() {
			defer wg.Done()
			if !ValidateMnemonic(abandonAbout) {
				errs <- "english mnemonic failed validation"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
