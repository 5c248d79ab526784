package crypto

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a key derivation failure.
type ErrorKind uint8

const (
	// KindBackendMissing means no crypto backend is configured.
	KindBackendMissing ErrorKind = iota + 1
	// KindPrimitiveFailure means the underlying library rejected an input.
	KindPrimitiveFailure
	// KindParsingFailure means an input string could not be decoded.
	KindParsingFailure
	// KindUpstream wraps an error returned by a collaborator.
	KindUpstream
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindBackendMissing:
		return "backend missing"
	case KindPrimitiveFailure:
		return "primitive failure"
	case KindParsingFailure:
		return "parsing failure"
	case KindUpstream:
		return "upstream error"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Error is the error type returned by every key derivation operation.
// It carries a human-readable description, a wrapped cause, or both.
type Error struct {
	Kind        ErrorKind
	Description string
	Err         error
}

// ErrBackendMissing is returned by every primitive when no backend is available.
// Callers must treat it as read-only; match it with errors.Is, which compares
// only the Kind.
var ErrBackendMissing = &Error{Kind: KindBackendMissing, Description: "no crypto backend configured"}

// PrimitiveFailure reports an input rejected by the crypto library.
func PrimitiveFailure(description string) error {
	return &Error{Kind: KindPrimitiveFailure, Description: description}
}

// ParsingFailure reports malformed input that could not be decoded.
func ParsingFailure(description string, cause error) error {
	return &Error{Kind: KindParsingFailure, Description: description, Err: cause}
}

// Upstream wraps an error from a collaborator without discarding it.
func Upstream(description string, cause error) error {
	return &Error{Kind: KindUpstream, Description: description, Err: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Description != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Description, e.Err)
	case e.Description != "":
		return e.Description
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the outermost *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
