// Package errors defines typed web failures and their HTTP mapping.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown       Kind = "unknown"
	KindInvalidInput  Kind = "invalid_input"
	KindUnprocessable Kind = "unprocessable"
	KindForbidden     Kind = "forbidden"
	KindNotFound      Kind = "not_found"
	KindRateLimited   Kind = "rate_limited"
	KindUnavailable   Kind = "unavailable"
)

// Error is a typed web failure. Key is an optional localization key for the
// user-facing message.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the cause.
func (e Error) Unwrap() error {
	return e.Err
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap classifies cause under kind.
func Wrap(kind Kind, key string, cause error) error {
	if cause == nil {
		return nil
	}
	return Error{Kind: kind, Key: strings.TrimSpace(key), Err: cause}
}

// KindOf returns the kind of the first typed error in err's chain.
func KindOf(err error) Kind {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	var appErr Error
	if err == nil || !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
