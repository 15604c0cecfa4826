package errors

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrNotFound            = errors.New("account not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrProvider            = errors.New("content provider failed")
	ErrProviderTimeout     = errors.New("content provider timed out")
)

// Kind is the stable, machine-readable error code returned to clients.
type Kind string

const (
	KindInvalidRequest      Kind = "InvalidRequest"
	KindUnauthenticated     Kind = "Unauthenticated"
	KindInsufficientCredits Kind = "InsufficientCredits"
	KindNotFound            Kind = "NotFound"
	KindProviderError       Kind = "ProviderError"
	KindTimeout             Kind = "Timeout"
	KindInternal            Kind = "Internal"
)

// KindOf maps an error chain to its client-facing kind.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrUsernameTaken):
		return KindInvalidRequest
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return KindUnauthenticated
	case errors.Is(err, ErrInsufficientCredits):
		return KindInsufficientCredits
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrProviderTimeout):
		return KindTimeout
	case errors.Is(err, ErrProvider):
		return KindProviderError
	default:
		return KindInternal
	}
}

// HTTPStatus returns the response status for err.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInsufficientCredits:
		return http.StatusPaymentRequired
	case KindNotFound:
		return http.StatusNotFound
	case KindProviderError:
		return http.StatusBadGateway
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text that is safe to show to a client. Internal errors
// are collapsed so storage details never leak.
func Message(err error) string {
	if KindOf(err) == KindInternal {
		return "internal server error"
	}
	return err.Error()
}
