package crypto

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Klingon-tech/klingnet-keys/internal/log"
)

type registered struct {
	backend Backend
	rank    int
}

// backends is written only from package init functions.
var backends = map[string]registered{}

var (
	defaultOnce    sync.Once
	defaultBackend Backend
)

// register adds a backend. Lower rank is preferred as the default.
func register(b Backend, rank int) {
	backends[b.Name()] = registered{backend: b, rank: rank}
}

// Available returns the names of the compiled-in backends, most preferred first.
func Available() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return backends[names[i]].rank < backends[names[j]].rank
	})
	return names
}

// Lookup returns a compiled-in backend by name. The name "missing" always
// resolves to the fail-closed backend.
func Lookup(name string) (Backend, error) {
	if name == BackendMissing {
		return Missing, nil
	}
	r, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown crypto backend %q (available: %v)", name, Available())
	}
	return r.backend, nil
}

// Init binds the process default backend. An empty name selects the most
// preferred compiled-in backend. Only the first binding takes effect; a
// later call naming a different backend returns an error.
func Init(name string) error {
	var chosen Backend
	if name != "" {
		b, err := Lookup(name)
		if err != nil {
			return err
		}
		chosen = b
	}

	bound := false
	defaultOnce.Do(func() {
		if chosen == nil {
			chosen = preferred()
		}
		bind(chosen)
		bound = true
	})
	if !bound && name != "" && defaultBackend.Name() != name {
		return fmt.Errorf("crypto backend already bound to %q", defaultBackend.Name())
	}
	return nil
}

// Default returns the process default backend, binding the most preferred
// one on first use if Init was never called.
func Default() Backend {
	defaultOnce.Do(func() {
		bind(preferred())
	})
	return defaultBackend
}

func preferred() Backend {
	names := Available()
	if len(names) == 0 {
		return Missing
	}
	return backends[names[0]].backend
}

func bind(b Backend) {
	defaultBackend = b
	if b.Name() == BackendMissing {
		log.Crypto.Warn().Msg("No crypto backend available, key derivation will fail")
		return
	}
	log.Crypto.Debug().
		Str("backend", b.Name()).
		Strs("available", Available()).
		Msg("Crypto backend bound")
}
