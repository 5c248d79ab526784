// klingnet-keys derives Klingnet wallet root keys from BIP-39 mnemonics and seeds.
//
// Usage:
//
//	klingnet-keys [global flags] <command> [flags]
//	klingnet-keys --help
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/Klingon-tech/klingnet-keys/config"
	"github.com/Klingon-tech/klingnet-keys/internal/log"
	"github.com/Klingon-tech/klingnet-keys/internal/wallet"
	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
	"golang.org/x/term"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

// errUsage marks an error whose message is already a usage line.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fatal("%v", err)
	}
}

func run(argv []string, out io.Writer) error {
	flags, err := config.ParseFlags(argv)
	if err != nil {
		usage(os.Stderr)
		return err
	}
	if flags.Help {
		usage(out)
		return nil
	}
	if flags.Version {
		fmt.Fprintf(out, "klingnet-keys %s\n", version)
		return nil
	}
	if len(flags.Args) == 0 {
		usage(os.Stderr)
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	if err := crypto.Init(cfg.Crypto.Backend); err != nil {
		return err
	}
	netLog := log.WithNetwork(string(cfg.Network))
	netLog.Debug().
		Str("backend", crypto.Default().Name()).
		Str("datadir", cfg.DataDir).
		Msg("Configuration loaded")

	cmd := flags.Args[0]
	cmdArgs := flags.Args[1:]

	switch cmd {
	case "mnemonic":
		return cmdMnemonic(cfg, cmdArgs, out)
	case "seed":
		return cmdSeed(cmdArgs, out)
	case "master":
		return cmdMaster(cfg, cmdArgs, out)
	case "pubkey":
		return cmdPubKey(cmdArgs, out)
	case "hash160":
		return cmdHash160(cmdArgs, out)
	case "backends":
		return cmdBackends(out)
	case "init-config":
		return cmdInitConfig(cfg, out)
	case "help":
		usage(out)
		return nil
	default:
		usage(os.Stderr)
		log.CLI.Debug().Str("command", cmd).Msg("Unknown command")
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: klingnet-keys [global flags] <command> [flags]

Commands:
  mnemonic new [--strength <bits>] [--wordlist <name>]
                                  Generate a new mnemonic
  mnemonic check [--wordlist <name>] [words...]
                                  Validate words and checksum
  mnemonic entropy [--wordlist <name>] [words...]
                                  Print the entropy encoded by a mnemonic
  mnemonic from-entropy --hex <entropy>
                                  Encode entropy as a mnemonic
  seed [--passphrase] [words...]  Derive the 64-byte BIP-39 seed
  master (--seed <hex> | --mnemonic "..." [--passphrase])
         [--constructor bip32|hdkeychain] [--show-private]
                                  Derive the BIP-32 master key
  pubkey --key <hex> [--uncompressed]
                                  Derive a secp256k1 public key
  hash160 <hex>                   RIPEMD160(SHA256(data))
  backends                        List compiled-in crypto backends
  init-config                     Write a default config file to the data directory
  help                            Show this help

Mnemonics not given on the command line are read from the terminal.

`)
	config.PrintUsage(w)
}

// ── mnemonic ────────────────────────────────────────────────────────────

func cmdMnemonic(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: klingnet-keys mnemonic <new|check|entropy|from-entropy> [flags]", errUsage)
	}

	switch args[0] {
	case "new":
		return cmdMnemonicNew(cfg, args[1:], out)
	case "check":
		return cmdMnemonicCheck(cfg, args[1:], out)
	case "entropy":
		return cmdMnemonicEntropy(cfg, args[1:], out)
	case "from-entropy":
		return cmdMnemonicFromEntropy(cfg, args[1:], out)
	default:
		return fmt.Errorf("unknown mnemonic command: %s", args[0])
	}
}

func cmdMnemonicNew(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mnemonic new", flag.ContinueOnError)
	bits := fs.Int("strength", cfg.Mnemonic.Strength, "Entropy bits (128, 160, 192, 224, 256)")
	words := fs.Int("words", 0, "Word count (12, 15, 18, 21, 24); overrides --strength")
	list := fs.String("wordlist", cfg.Mnemonic.WordList, "Word list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		strength wallet.Strength
		err      error
	)
	if *words != 0 {
		strength, err = wallet.StrengthForWordCount(*words)
	} else {
		strength, err = wallet.ParseStrength(*bits)
	}
	if err != nil {
		return err
	}
	vocab, err := wallet.LookupVocabulary(*list)
	if err != nil {
		return err
	}

	m, err := wallet.NewMnemonic(strength, vocab)
	if err != nil {
		return fmt.Errorf("generate mnemonic: %w", err)
	}
	fmt.Fprintln(out, m.Phrase())
	return nil
}

func cmdMnemonicCheck(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mnemonic check", flag.ContinueOnError)
	list := fs.String("wordlist", cfg.Mnemonic.WordList, "Word list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, vocab, err := mnemonicArgs(fs.Args(), *list)
	if err != nil {
		return err
	}
	if err := m.Validate(vocab); err != nil {
		return err
	}
	s := m.Strength()
	fmt.Fprintf(out, "valid: %d words, %d bits, %s\n", s.WordCount(), s.Bits(), vocab.Name())
	return nil
}

func cmdMnemonicEntropy(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mnemonic entropy", flag.ContinueOnError)
	list := fs.String("wordlist", cfg.Mnemonic.WordList, "Word list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, vocab, err := mnemonicArgs(fs.Args(), *list)
	if err != nil {
		return err
	}
	entropy, err := m.Entropy(vocab)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hex.EncodeToString(entropy))
	return nil
}

func cmdMnemonicFromEntropy(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mnemonic from-entropy", flag.ContinueOnError)
	entropyHex := fs.String("hex", "", "Entropy as hex (16 to 32 bytes)")
	list := fs.String("wordlist", cfg.Mnemonic.WordList, "Word list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *entropyHex == "" {
		return fmt.Errorf("%w: klingnet-keys mnemonic from-entropy --hex <entropy>", errUsage)
	}

	entropy, err := hex.DecodeString(*entropyHex)
	if err != nil {
		return crypto.ParsingFailure("entropy is not valid hex", err)
	}
	vocab, err := wallet.LookupVocabulary(*list)
	if err != nil {
		return err
	}
	m, err := wallet.NewMnemonicFromEntropy(entropy, vocab)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, m.Phrase())
	return nil
}

// mnemonicArgs builds a mnemonic from positional words, or from the
// terminal when none are given.
func mnemonicArgs(words []string, list string) (wallet.Mnemonic, wallet.Vocabulary, error) {
	vocab, err := wallet.LookupVocabulary(list)
	if err != nil {
		return wallet.Mnemonic{}, nil, err
	}
	phrase := strings.Join(words, " ")
	if phrase == "" {
		b, err := readPassword("Enter mnemonic: ")
		if err != nil {
			return wallet.Mnemonic{}, nil, fmt.Errorf("read mnemonic: %w", err)
		}
		phrase = string(b)
	}
	m, err := wallet.ParseMnemonic(phrase)
	if err != nil {
		return wallet.Mnemonic{}, nil, err
	}
	return m, vocab, nil
}

// ── seed ────────────────────────────────────────────────────────────────

func cmdSeed(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	askPass := fs.Bool("passphrase", false, "Prompt for a BIP-39 passphrase")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seed, err := seedFromMnemonic(strings.Join(fs.Args(), " "), *askPass)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hex.EncodeToString(seed))
	return nil
}

// seedFromMnemonic derives the BIP-39 seed for phrase. The phrase is not
// checked against a word list, matching BIP-39 seed derivation.
func seedFromMnemonic(phrase string, askPass bool) ([]byte, error) {
	m, _, err := mnemonicArgs(strings.Fields(phrase), "english")
	if err != nil {
		return nil, err
	}
	var passphrase string
	if askPass {
		p, err := readPassword("Enter passphrase: ")
		if err != nil {
			return nil, fmt.Errorf("read passphrase: %w", err)
		}
		confirm, err := readPassword("Confirm passphrase: ")
		if err != nil {
			return nil, fmt.Errorf("read passphrase: %w", err)
		}
		if string(p) != string(confirm) {
			return nil, fmt.Errorf("passphrases do not match")
		}
		passphrase = string(p)
	}
	return m.Seed(passphrase, nil)
}

// ── master ──────────────────────────────────────────────────────────────

func cmdMaster(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("master", flag.ContinueOnError)
	seedHex := fs.String("seed", "", "Seed as hex (16 to 64 bytes)")
	phrase := fs.String("mnemonic", "", "BIP-39 mnemonic")
	askPass := fs.Bool("passphrase", false, "Prompt for a BIP-39 passphrase (with --mnemonic)")
	ctor := fs.String("constructor", "bip32", "Root key constructor (bip32, hdkeychain)")
	showPriv := fs.Bool("show-private", false, "Print private key material")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		mk  wallet.MasterKey
		err error
	)
	switch {
	case *seedHex != "" && *phrase != "":
		return fmt.Errorf("--seed and --mnemonic are mutually exclusive")
	case *seedHex != "":
		mk, err = wallet.MasterKeyDataFromHex(*seedHex)
	case *phrase != "":
		var seed []byte
		seed, err = seedFromMnemonic(*phrase, *askPass)
		if err == nil {
			mk, err = wallet.MasterKeyData(seed)
		}
	default:
		return fmt.Errorf("%w: klingnet-keys master (--seed <hex> | --mnemonic \"...\")", errUsage)
	}
	if err != nil {
		return err
	}

	constructor, err := keyConstructor(*ctor)
	if err != nil {
		return err
	}
	root, err := mk.RootKey(cfg.ChainParams(), constructor)
	if err != nil {
		return err
	}
	pub, err := root.Neuter()
	if err != nil {
		return err
	}
	fp, err := wallet.Fingerprint(root)
	if err != nil {
		return err
	}
	addr, err := wallet.AddressFromPubKey(root.PublicKeyBytes())
	if err != nil {
		return err
	}
	addrStr, err := addr.Encode(wallet.HRPForNet(cfg.ChainParams()))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "network:     %s\n", cfg.Network)
	fmt.Fprintf(out, "fingerprint: %s\n", hex.EncodeToString(fp[:]))
	fmt.Fprintf(out, "chain code:  %s\n", hex.EncodeToString(mk.ChainCode()))
	fmt.Fprintf(out, "public key:  %s\n", hex.EncodeToString(root.PublicKeyBytes()))
	fmt.Fprintf(out, "xpub:        %s\n", pub.String())
	fmt.Fprintf(out, "address:     %s\n", addrStr)
	if *showPriv {
		fmt.Fprintf(out, "private key: %s\n", hex.EncodeToString(mk.Key()))
		fmt.Fprintf(out, "xprv:        %s\n", root.String())
	}
	return nil
}

func keyConstructor(name string) (wallet.KeyConstructor, error) {
	switch strings.ToLower(name) {
	case "bip32", "":
		return wallet.BIP32Constructor{}, nil
	case "hdkeychain":
		return wallet.HDKeychainConstructor{}, nil
	default:
		return nil, fmt.Errorf("unknown constructor %q (expected bip32 or hdkeychain)", name)
	}
}

// ── primitives ──────────────────────────────────────────────────────────

func cmdPubKey(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pubkey", flag.ContinueOnError)
	keyHex := fs.String("key", "", "Private key as 32-byte hex")
	uncompressed := fs.Bool("uncompressed", false, "Print the 65-byte uncompressed form")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *keyHex == "" {
		return fmt.Errorf("%w: klingnet-keys pubkey --key <hex> [--uncompressed]", errUsage)
	}

	priv, err := hex.DecodeString(*keyHex)
	if err != nil {
		return crypto.ParsingFailure("private key is not valid hex", err)
	}
	defer clear(priv)

	pub, err := crypto.Secp256k1PublicKey(priv, !*uncompressed)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hex.EncodeToString(pub))
	return nil
}

func cmdHash160(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: klingnet-keys hash160 <hex>", errUsage)
	}
	data, err := hex.DecodeString(args[0])
	if err != nil {
		return crypto.ParsingFailure("data is not valid hex", err)
	}
	h, err := crypto.Hash160(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hex.EncodeToString(h))
	return nil
}

func cmdBackends(out io.Writer) error {
	def := crypto.Default().Name()
	for _, name := range crypto.Available() {
		marker := " "
		if name == def {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, name)
	}
	if def == crypto.BackendMissing {
		fmt.Fprintf(out, "* %s\n", crypto.BackendMissing)
	}
	return nil
}

func cmdInitConfig(cfg *config.Config, out io.Writer) error {
	path := cfg.ConfigFile()
	if err := config.WriteDefaultConfig(path, cfg.Network); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintln(out, path)
	return nil
}

// ── Terminal helpers ────────────────────────────────────────────────────

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
