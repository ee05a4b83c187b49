// Package apperr carries the error taxonomy shared by all usecases so the
// delivery layer can map any failure to a transport status without
// inspecting domain packages.
package apperr

import "errors"

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindIntegrity  Kind = "integrity"
	KindConflict   Kind = "conflict"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation flags a bad field value or an illegal state transition.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// ValidationWrap keeps the underlying domain error reachable via errors.Is.
func ValidationWrap(err error) error {
	return &Error{Kind: KindValidation, Message: err.Error(), Err: err}
}

// NotFound flags a missing referenced entity.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Integrity flags a uniqueness violation.
func Integrity(msg string) error {
	return &Error{Kind: KindIntegrity, Message: msg}
}

// Conflict flags a lost optimistic-concurrency race.
func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

// KindOf extracts the taxonomy kind, or "" for untyped errors.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsIntegrity(err error) bool  { return KindOf(err) == KindIntegrity }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
