package domain

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrSecretNotFound  = errors.New("secret not found")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrPrecondition = errors.New("precondition failed")
	ErrStore        = errors.New("store error")
	ErrProvider     = errors.New("provider error")
	ErrBusy         = errors.New("account busy")
	ErrCancelled    = errors.New("cancelled")
)

type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindPrecondition ErrorKind = "precondition"
	KindStore        ErrorKind = "store"
	KindProvider     ErrorKind = "provider"
	KindBusy         ErrorKind = "busy"
	KindCancelled    ErrorKind = "cancelled"
	KindUnknown      ErrorKind = "unknown"
)

// KindOf reports the taxonomy kind of err, or "" for a nil error.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCancelled):
		return KindCancelled
	case errors.Is(err, ErrBusy):
		return KindBusy
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrPrecondition):
		return KindPrecondition
	case errors.Is(err, ErrProvider):
		return KindProvider
	case errors.Is(err, ErrStore):
		return KindStore
	default:
		return KindUnknown
	}
}
