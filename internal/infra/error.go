package infra

import (
	"errors"
	"log/slog"

	"storefront-checkout/internal/pkg/errs"
)

type ErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindUnauthorized    ErrorKind = "UNAUTHORIZED"
	KindConflict        ErrorKind = "CONFLICT"
	KindValidation      ErrorKind = "VALIDATION"
	KindUpstreamFailure ErrorKind = "UPSTREAM_FAILURE"
	KindDBFailure       ErrorKind = "DB_FAILURE"
)

// RepositoryError is a classified failure of the local database.
type RepositoryError struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(kind ErrorKind, msg string, err error) error {
	slog.Error("Repository error: "+msg, slog.String("kind", string(kind)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// UpstreamError is a classified failure of a storefront API call.
type UpstreamError struct {
	Kind       ErrorKind
	StatusCode int
	msg        string
	err        error
}

func (e UpstreamError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func NewUpstreamError(kind ErrorKind, msg string, err error) error {
	return UpstreamError{Kind: kind, msg: msg, err: err}
}

func NewUpstreamStatusError(kind ErrorKind, statusCode int, msg string) error {
	return UpstreamError{Kind: kind, StatusCode: statusCode, msg: msg}
}

func IsKind(err error, kind ErrorKind) bool {
	var u UpstreamError
	if errors.As(err, &u) {
		return u.Kind == kind
	}
	var r RepositoryError
	if errors.As(err, &r) {
		return r.Kind == kind
	}
	return false
}

// UpstreamMessage returns the message reported by the storefront API, if err
// carries one.
func UpstreamMessage(err error) (string, bool) {
	var u UpstreamError
	if errors.As(err, &u) && u.msg != "" {
		return u.msg, true
	}
	return "", false
}
