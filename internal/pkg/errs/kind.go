package errs

import "errors"

// Kind is the caller-facing category of an error.
type Kind string

const (
	KindValidation        Kind = "ValidationError"
	KindNotFound          Kind = "NotFound"
	KindNotAuthorized     Kind = "NotAuthorized"
	KindConflict          Kind = "Conflict"
	KindInvalidTransition Kind = "InvalidTransition"
	KindNotEligible       Kind = "NotEligible"
	KindInternal          Kind = "Internal"
)

// KindOf classifies err. Anything that does not wrap one of the package
// sentinels is KindInternal. When a joined error carries several kinds the
// first match in the order below wins.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotAuthorized):
		return KindNotAuthorized
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrNotEligible):
		return KindNotEligible
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	default:
		return KindInternal
	}
}

// IsRecoverable reports whether a client should re-fetch state and retry
// rather than treat the failure as fatal.
func IsRecoverable(err error) bool {
	k := KindOf(err)
	return k == KindConflict || k == KindNotEligible
}
