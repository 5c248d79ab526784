package crypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/ripemd160"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	return b
}

// realBackends returns every compiled-in backend.
func realBackends(t *testing.T) []Backend {
	t.Helper()
	var out []Backend
	for _, name := range Available() {
		b, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) error: %v", name, err)
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		t.Skip("no crypto backend compiled in")
	}
	return out
}

func TestHMAC_RFC4231(t *testing.T) {
	key := []byte("Jefe")
	data := []byte("what do ya want for nothing?")

	tests := []struct {
		alg  HashAlgorithm
		want string
	}{
		{SHA256, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"},
		{SHA512, "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea2505549758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737"},
	}

	for _, b := range realBackends(t) {
		for _, tt := range tests {
			t.Run(b.Name()+"/"+tt.alg.String(), func(t *testing.T) {
				got, err := HMAC(tt.alg, key, data, WithBackend(b))
				if err != nil {
					t.Fatalf("HMAC() error: %v", err)
				}
				if hex.EncodeToString(got) != tt.want {
					t.Errorf("HMAC() = %x, want %s", got, tt.want)
				}
			})
		}
	}
}

func TestHMAC_OutputSize(t *testing.T) {
	for _, b := range realBackends(t) {
		for _, alg := range []HashAlgorithm{SHA256, SHA512, RIPEMD160, BLAKE3} {
			got, err := HMAC(alg, []byte("key"), []byte("data"), WithBackend(b))
			if err != nil {
				t.Fatalf("%s HMAC(%s) error: %v", b.Name(), alg, err)
			}
			if len(got) != alg.Size() {
				t.Errorf("%s HMAC(%s) length = %d, want %d", b.Name(), alg, len(got), alg.Size())
			}
		}
	}
}

func TestHMAC_UnknownAlgorithm(t *testing.T) {
	for _, b := range realBackends(t) {
		_, err := HMAC(HashAlgorithm(99), []byte("key"), nil, WithBackend(b))
		if KindOf(err) != KindPrimitiveFailure {
			t.Errorf("%s: HMAC(unknown) error = %v, want primitive failure", b.Name(), err)
		}
	}
}

func TestHash160(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb",
		},
		{
			name:  "generator point",
			input: "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
			want:  "751e76e8199196d454941c45d1b3a323f1433bd6",
		},
	}

	for _, b := range realBackends(t) {
		for _, tt := range tests {
			t.Run(b.Name()+"/"+tt.name, func(t *testing.T) {
				got, err := Hash160(mustHex(t, tt.input), WithBackend(b))
				if err != nil {
					t.Fatalf("Hash160() error: %v", err)
				}
				if hex.EncodeToString(got) != tt.want {
					t.Errorf("Hash160() = %x, want %s", got, tt.want)
				}
			})
		}
	}
}

func TestHash160_IsRipemdOfSha256(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		[]byte("klingnet"),
		bytes.Repeat([]byte{0xab}, 1000),
	}

	for _, b := range realBackends(t) {
		for _, in := range inputs {
			got, err := Hash160(in, WithBackend(b))
			if err != nil {
				t.Fatalf("Hash160() error: %v", err)
			}
			if len(got) != Hash160Size {
				t.Errorf("Hash160() length = %d, want %d", len(got), Hash160Size)
			}

			sum := sha256.Sum256(in)
			r := ripemd160.New()
			r.Write(sum[:])
			if want := r.Sum(nil); !bytes.Equal(got, want) {
				t.Errorf("%s: Hash160(%x) = %x, want %x", b.Name(), in, got, want)
			}
		}
	}
}

func TestHashAlgorithm_String(t *testing.T) {
	if SHA512.String() != "sha512" {
		t.Errorf("SHA512.String() = %q", SHA512.String())
	}
	if HashAlgorithm(0).Size() != 0 {
		t.Error("unknown algorithm should have size 0")
	}
}
