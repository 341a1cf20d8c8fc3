package util

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindConflict
	KindUnauthenticated
	KindForbidden
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	}
	return "internal"
}

// AppError carries a user-facing message and the kind the HTTP boundary
// maps to a status code. Err, when set, is logged but never shown.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewConflictError(field string) *AppError {
	return &AppError{Kind: KindConflict, Message: field + " already exists"}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// AsAppError extracts the first *AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an *AppError of kind k.
func IsKind(err error, k ErrorKind) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Kind == k
}

const (
	MsgNotAuthorized      = "Not authorized"
	MsgForbidden          = "Access denied: Admins only"
	MsgInvalidCredentials = "Invalid email or password"
	MsgModuleNotFound     = "Module not found"
	MsgRouteNotFound      = "Route not found"
	MsgInternal           = "Internal Server Error"
	MsgTooManyRequests    = "Too many requests, please try again later."
)

var (
	ErrUnauthenticated    = &AppError{Kind: KindUnauthenticated, Message: MsgNotAuthorized}
	ErrInvalidCredentials = &AppError{Kind: KindUnauthenticated, Message: MsgInvalidCredentials}
	ErrForbidden          = &AppError{Kind: KindForbidden, Message: MsgForbidden}
	ErrModuleNotFound     = &AppError{Kind: KindNotFound, Message: MsgModuleNotFound}
)
