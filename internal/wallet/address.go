package wallet

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/klingnet-keys/pkg/crypto"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg"
)

// AddressSize is the length of an address in bytes.
const AddressSize = 20

// Address HRP (human-readable part) constants for bech32 encoding.
const (
	MainnetHRP = "kgx"
	TestnetHRP = "tkgx"
)

// Address is a Klingnet account address: the first 20 bytes of BLAKE3 over
// a compressed public key.
type Address [AddressSize]byte

// HRPForNet returns the address HRP for a network. Every non-mainnet
// network uses the testnet HRP.
func HRPForNet(net *chaincfg.Params) string {
	if net == nil || net.Net == chaincfg.MainNetParams.Net {
		return MainnetHRP
	}
	return TestnetHRP
}

// AddressFromPubKey derives the address for a 33-byte compressed public key.
func AddressFromPubKey(pub []byte, opts ...crypto.Option) (Address, error) {
	var a Address
	h, err := crypto.BackendFrom(opts...).Hasher(crypto.BLAKE3)
	if err != nil {
		return a, fmt.Errorf("address hash: %w", err)
	}
	if len(pub) != crypto.CompressedPubKeySize {
		return a, crypto.PrimitiveFailure(fmt.Sprintf("public key must be %d bytes, got %d", crypto.CompressedPubKeySize, len(pub)))
	}
	d := h()
	d.Write(pub)
	copy(a[:], d.Sum(nil))
	return a, nil
}

// Encode returns the bech32 form of the address under hrp.
func (a Address) Encode(hrp string) (string, error) {
	conv, err := bech32.ConvertBits(a[:], 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("bech32: convert bits: %w", err)
	}
	return bech32.Encode(hrp, conv)
}

// ParseAddress decodes a bech32 address and returns it with its HRP.
func ParseAddress(s string) (Address, string, error) {
	var a Address
	hrp, data, err := bech32.Decode(strings.TrimSpace(s))
	if err != nil {
		return a, "", crypto.ParsingFailure("invalid bech32 address", err)
	}
	if hrp != MainnetHRP && hrp != TestnetHRP {
		return a, "", crypto.ParsingFailure(fmt.Sprintf("unknown address prefix %q", hrp), nil)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return a, "", crypto.ParsingFailure("invalid address payload", err)
	}
	if len(raw) != AddressSize {
		return a, "", crypto.ParsingFailure(fmt.Sprintf("address must be %d bytes, got %d", AddressSize, len(raw)), nil)
	}
	copy(a[:], raw)
	return a, hrp, nil
}
