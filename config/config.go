// Package config handles application configuration.
//
// Settings come from three layers, later ones winning: built-in defaults
// for the network, the key = value config file, and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/btcsuite/btcd/chaincfg"
)

// NetworkType identifies the network whose extended key version bytes are used.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
	Regtest NetworkType = "regtest"
	Signet  NetworkType = "signet"
)

// Config holds runtime configuration for the key tools.
type Config struct {
	// Core
	Network NetworkType `conf:"network"`
	DataDir string      `conf:"datadir"`

	// Crypto backend
	Crypto CryptoConfig

	// Mnemonic generation
	Mnemonic MnemonicConfig

	// Logging
	Log LogConfig
}

// CryptoConfig selects the primitive backend.
type CryptoConfig struct {
	// Backend is a compiled-in backend name ("dcrd", "btcec", "missing").
	// Empty picks the most preferred available one.
	Backend string `conf:"crypto.backend"`
}

// MnemonicConfig holds defaults for new mnemonics.
type MnemonicConfig struct {
	Strength int    `conf:"mnemonic.strength"` // entropy bits: 128, 160, 192, 224 or 256
	WordList string `conf:"mnemonic.wordlist"` // e.g. english, japanese
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// ChainParams returns the btcd network parameters for the configured
// network. Unknown networks map to mainnet; Validate rejects them first.
func (c *Config) ChainParams() *chaincfg.Params {
	switch c.Network {
	case Testnet:
		return &chaincfg.TestNet3Params
	case Regtest:
		return &chaincfg.RegressionNetParams
	case Signet:
		return &chaincfg.SigNetParams
	default:
		return &chaincfg.MainNetParams
	}
}

// =============================================================================
// Directory helpers
// =============================================================================

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet
//	macOS:   ~/Library/Application Support/Klingnet
//	Windows: %APPDATA%\Klingnet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Klingnet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Klingnet")
		}
		return filepath.Join(home, "AppData", "Roaming", "Klingnet")
	default:
		return filepath.Join(home, ".klingnet")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "klingnet-keys.conf")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}
