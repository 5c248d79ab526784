package config

// DefaultMainnet returns the default configuration for mainnet.
func DefaultMainnet() *Config {
	return &Config{
		Network: Mainnet,
		DataDir: DefaultDataDir(),
		Crypto: CryptoConfig{
			Backend: "",
		},
		Mnemonic: MnemonicConfig{
			Strength: 256,
			WordList: "english",
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// DefaultTestnet returns the default configuration for testnet.
func DefaultTestnet() *Config {
	cfg := DefaultMainnet()
	cfg.Network = Testnet
	return cfg
}

// Default returns the default configuration for the given network.
func Default(network NetworkType) *Config {
	cfg := DefaultMainnet()
	switch network {
	case Testnet:
		return DefaultTestnet()
	case Regtest, Signet:
		cfg.Network = network
	}
	return cfg
}
