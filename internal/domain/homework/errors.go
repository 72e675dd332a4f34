package homework

import "errors"

// Kind classifies why a poll cycle failed.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindTransport means the API could not be reached at all.
	KindTransport
	// KindBadStatus means the API answered with a non-200 status.
	KindBadStatus
	// KindType means a value had the wrong JSON shape.
	KindType
	// KindMissingKey means a required key was absent.
	KindMissingKey
	// KindEmpty means the response carried no homeworks.
	KindEmpty
	// KindUnknownStatus means a homework status has no verdict.
	KindUnknownStatus
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindBadStatus:
		return "bad_status"
	case KindType:
		return "type"
	case KindMissingKey:
		return "missing_key"
	case KindEmpty:
		return "empty"
	case KindUnknownStatus:
		return "unknown_status"
	default:
		return "unknown"
	}
}

// Error is returned by the API client, the validator and the formatter.
// Msg is user-facing and goes to the chat; Err is the cause, for logs only.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds an Error of the given kind around a cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of the first *Error in err's chain,
// or KindUnknown if there is none.
func KindOf(err error) Kind {
	var herr *Error
	if errors.As(err, &herr) {
		return herr.Kind
	}
	return KindUnknown
}

// Message returns the user-facing text of the first *Error in err's chain,
// falling back to err.Error() for foreign errors.
func Message(err error) string {
	var herr *Error
	if errors.As(err, &herr) {
		return herr.Msg
	}
	return err.Error()
}
