package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadFile loads configuration from a .conf file.
// Format: key = value (one per line, # for comments)
// A missing file yields an empty map.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNum)
		}

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Core
	case "network":
		cfg.Network = NetworkType(strings.ToLower(value))
	case "datadir":
		cfg.DataDir = value

	// Crypto
	case "crypto.backend":
		cfg.Crypto.Backend = value

	// Mnemonic
	case "mnemonic.strength":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer: %s", value)
		}
		cfg.Mnemonic.Strength = n
	case "mnemonic.wordlist", "mnemonic.language":
		cfg.Mnemonic.WordList = value

	// Logging
	case "log.level":
		cfg.Log.Level = strings.ToLower(value)
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		cfg.Log.JSON = b

	default:
		return fmt.Errorf("unknown key")
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean: %s", s)
	}
}

// WriteDefaultConfig writes a commented default config file to path.
// An existing file is left untouched.
func WriteDefaultConfig(path string, network NetworkType) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	cfg := Default(network)
	content := fmt.Sprintf(`# Klingnet key tools configuration
# Command-line flags override these settings.

# Network whose extended key versions are used (mainnet, testnet, regtest, signet)
network = %s

# Crypto backend (dcrd, btcec, missing). Empty picks the preferred compiled-in one.
crypto.backend = %s

# Defaults for "mnemonic new"
mnemonic.strength = %d
mnemonic.wordlist = %s

# Logging (debug, info, warn, error, disabled)
log.level = %s
log.json = %t
# log.file = 
`, cfg.Network, cfg.Crypto.Backend, cfg.Mnemonic.Strength, cfg.Mnemonic.WordList, cfg.Log.Level, cfg.Log.JSON)

	return os.WriteFile(path, []byte(content), 0600)
}
