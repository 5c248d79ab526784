// derive_key.go prints the public keys and HASH160 for a hex-encoded private key file.
// Usage: go run scripts/derive_key.go [--backend name] <keyfile>
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
)

func main() {
	args := os.Args[1:]
	if len(args) == 3 && args[0] == "--backend" {
		if err := crypto.Init(args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		args = args[2:]
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: derive_key [--backend name] <keyfile>")
		os.Exit(1)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	keyHex := strings.TrimSpace(string(data))
	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pub, err := crypto.Secp256k1PublicKey(keyBytes, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	full, err := crypto.Secp256k1PublicKey(keyBytes, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	h, err := crypto.Hash160(pub)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("backend=%s\n", crypto.Default().Name())
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(pub))
	fmt.Printf("pubkey_uncompressed=%s\n", hex.EncodeToString(full))
	fmt.Printf("hash160=%s\n", hex.EncodeToString(h))
}
