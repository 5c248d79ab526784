package wallet

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tyler-smith/go-bip39"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Vocabulary encodes entropy as BIP-39 words and checks phrases against
// its word list and checksum.
type Vocabulary interface {
	Name() string
	// Words returns the checksummed word sequence for entropy.
	Words(entropy []byte) ([]string, error)
	// Valid reports whether phrase uses only list words and has a valid checksum.
	Valid(phrase string) bool
	// Entropy recovers the entropy encoded by phrase.
	Entropy(phrase string) ([]byte, error)
}

// WordList is a Vocabulary over one of the go-bip39 2048-word lists.
type WordList struct {
	name  string
	words []string
}

// English is the default vocabulary.
var English = &WordList{name: "english", words: wordlists.English}

var vocabularies = map[string]*WordList{
	"english":             English,
	"japanese":            {name: "japanese", words: wordlists.Japanese},
	"spanish":             {name: "spanish", words: wordlists.Spanish},
	"french":              {name: "french", words: wordlists.French},
	"italian":             {name: "italian", words: wordlists.Italian},
	"korean":              {name: "korean", words: wordlists.Korean},
	"chinese_simplified":  {name: "chinese_simplified", words: wordlists.ChineseSimplified},
	"chinese_traditional": {name: "chinese_traditional", words: wordlists.ChineseTraditional},
}

// LookupVocabulary returns a word list by name. An empty name is English.
func LookupVocabulary(name string) (Vocabulary, error) {
	if name == "" {
		return English, nil
	}
	v, ok := vocabularies[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown word list %q (available: %s)", name, strings.Join(VocabularyNames(), ", "))
	}
	return v, nil
}

// VocabularyNames returns the available word list names, sorted.
func VocabularyNames() []string {
	names := make([]string, 0, len(vocabularies))
	for name := range vocabularies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the list identifier.
func (w *WordList) Name() string { return w.name }

// Words implements Vocabulary.
func (w *WordList) Words(entropy []byte) ([]string, error) {
	var phrase string
	err := w.with(func() (err error) {
		phrase, err = bip39.NewMnemonic(entropy)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.name, err)
	}
	return strings.Split(phrase, " "), nil
}

// Valid implements Vocabulary.
func (w *WordList) Valid(phrase string) bool {
	var ok bool
	w.with(func() error {
		ok = bip39.IsMnemonicValid(phrase)
		return nil
	})
	return ok
}

// Entropy implements Vocabulary.
func (w *WordList) Entropy(phrase string) ([]byte, error) {
	var entropy []byte
	err := w.with(func() (err error) {
		entropy, err = bip39.EntropyFromMnemonic(phrase)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.name, err)
	}
	return entropy, nil
}

// bip39Mu guards go-bip39's package-level word list.
var bip39Mu sync.Mutex

// with runs fn with w installed as the go-bip39 word list and restores
// English afterwards.
func (w *WordList) with(fn func() error) error {
	bip39Mu.Lock()
	defer bip39Mu.Unlock()

	if w != English {
		bip39.SetWordList(w.words)
		defer bip39.SetWordList(wordlists.English)
	}
	return fn()
}
