package linter

import "fmt"

// Kind classifies a lint failure. Exactly one kind applies to any failed
// call; there is no fallthrough between kinds.
type Kind int

const (
	// KindInvalidInput: the script was rejected before any network call.
	KindInvalidInput Kind = iota

	// KindTransport: the request never completed (connect, DNS, timeout).
	KindTransport

	// KindHTTPStatus: the service answered with a 4xx/5xx status.
	KindHTTPStatus

	// KindUnexpectedContentType: a success status whose Content-Type does
	// not declare JSON.
	KindUnexpectedContentType

	// KindMalformedResponse: declared JSON, but the body would not decode.
	KindMalformedResponse

	// KindUnknown: the fallback arm; anything not covered above, including
	// recovered panics.
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindTransport:
		return "transport error"
	case KindHTTPStatus:
		return "http status error"
	case KindUnexpectedContentType:
		return "unexpected content type"
	case KindMalformedResponse:
		return "malformed response"
	default:
		return "unknown error"
	}
}

// Error is the only error type Lint returns. Msg carries the human-readable
// diagnostic; Err, when set, is the underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func errf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Err:  cause,
	}
}
