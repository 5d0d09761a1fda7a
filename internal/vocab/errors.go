package vocab

import "errors"

// ErrorKind classifies why a question could not be supplied.
type ErrorKind int

const (
	// KindNotConfigured means no provider credential is available.
	KindNotConfigured ErrorKind = iota + 1

	// KindTransportFailure means the provider call itself failed.
	KindTransportFailure

	// KindMalformedResponse means the response was not parseable JSON.
	KindMalformedResponse

	// KindInvalidSchema means the JSON parsed but failed validation.
	KindInvalidSchema
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotConfigured:
		return "not-configured"
	case KindTransportFailure:
		return "transport-failure"
	case KindMalformedResponse:
		return "malformed-response"
	case KindInvalidSchema:
		return "invalid-schema"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks against a *SupplyError.
var (
	ErrNotConfigured     = &SupplyError{Kind: KindNotConfigured}
	ErrTransportFailure  = &SupplyError{Kind: KindTransportFailure}
	ErrMalformedResponse = &SupplyError{Kind: KindMalformedResponse}
	ErrInvalidSchema     = &SupplyError{Kind: KindInvalidSchema}
)

// SupplyError is returned by a Supplier. Message is fit for display to the
// player; Err keeps the underlying cause.
type SupplyError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *SupplyError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "question supply failed: " + e.Kind.String()
}

func (e *SupplyError) Unwrap() error { return e.Err }

// Is reports whether target is a SupplyError of the same kind.
func (e *SupplyError) Is(target error) bool {
	var t *SupplyError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}
