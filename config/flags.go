package config

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Flags holds parsed global command-line flags.
type Flags struct {
	Help    bool
	Version bool

	// Core
	Network string
	DataDir string
	Config  string

	// Crypto
	Backend string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args: the subcommand and its own flags.
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetLogJSON bool
}

// ParseFlags parses the global flags in args (without the program name).
// Parsing stops at the first positional argument, which starts the subcommand.
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("klingnet-keys", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")

	// Core
	fs.StringVar(&f.Network, "network", "", "Network type (mainnet, testnet, regtest, signet)")
	fs.BoolFunc("testnet", "Use testnet (shorthand for --network=testnet)", func(string) error {
		f.Network = string(Testnet)
		return nil
	})
	fs.StringVar(&f.DataDir, "datadir", "", "Data directory path")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// Crypto
	fs.StringVar(&f.Backend, "backend", "", "Crypto backend (dcrd, btcec, missing)")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error, disabled)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			f.Help = true
			return f, nil
		}
		return nil, err
	}

	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()
	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	// Core
	if f.Network != "" {
		cfg.Network = NetworkType(f.Network)
	}
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}

	// Crypto
	if f.Backend != "" {
		cfg.Crypto.Backend = f.Backend
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Load builds the effective configuration: network defaults, then the config
// file, then flags. The result is validated.
func Load(f *Flags) (*Config, error) {
	cfg := Default(NetworkType(f.Network))
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}

	path := f.Config
	if path == "" {
		path = cfg.ConfigFile()
	}
	values, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := ApplyFileConfig(cfg, values); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ApplyFlags(cfg, f)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PrintUsage writes global flag help to w.
func PrintUsage(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, `Global options:
  --network <net>     Network: mainnet, testnet, regtest, signet (default: mainnet)
  --testnet           Shorthand for --network=testnet
  --datadir <path>    Data directory (default: %s)
  --config, -c <path> Config file (default: <datadir>/klingnet-keys.conf)
  --backend <name>    Crypto backend: dcrd, btcec, missing
  --log-level <lvl>   Log level: debug, info, warn, error, disabled
  --log-file <path>   Log file path
  --log-json          Output logs as JSON
  --help, -h          Show help
  --version           Show version
`, DefaultDataDir())
}
