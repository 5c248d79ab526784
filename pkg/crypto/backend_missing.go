package crypto

import "hash"

// BackendMissing is the name of the fail-closed backend.
const BackendMissing = "missing"

// Missing is the backend bound when no real backend is compiled in.
// Every operation fails with ErrBackendMissing.
var Missing Backend = missingBackend{}

type missingBackend struct{}

func (missingBackend) Name() string { return BackendMissing }

func (missingBackend) Hasher(HashAlgorithm) (func() hash.Hash, error) {
	return nil, ErrBackendMissing
}

func (missingBackend) NewCurveContext() (CurveContext, error) {
	return nil, ErrBackendMissing
}
