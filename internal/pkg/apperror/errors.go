package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeValidation       ErrorCode = "VALIDATION_FAILED"
	ErrCodeAuthExpired      ErrorCode = "AUTH_EXPIRED"
	ErrCodeNetwork          ErrorCode = "NETWORK_UNAVAILABLE"
	ErrCodeServerRejected   ErrorCode = "SERVER_REJECTED"
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeBadRequest       ErrorCode = "BAD_REQUEST"
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrCodeConflict         ErrorCode = "CONFLICT"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// AppError — единый тип ошибок сервиса. Fields заполняется только
// для VALIDATION_FAILED и несёт карту ошибок по полям формы.
type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Fields     map[string]string
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

// NewValidation собирает ошибку валидации с картой полей.
func NewValidation(message string, fields map[string]string) *AppError {
	return &AppError{
		Code:       ErrCodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidation, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeAuthExpired, ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodePermissionDenied:
		return http.StatusForbidden
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeNetwork, ErrCodeServerRejected:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// As извлекает *AppError из цепочки ошибок.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func hasCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

func IsAuthExpired(err error) bool {
	return hasCode(err, ErrCodeAuthExpired)
}

func IsPermissionDenied(err error) bool {
	return hasCode(err, ErrCodePermissionDenied)
}

func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

func IsNetwork(err error) bool {
	return hasCode(err, ErrCodeNetwork)
}

var (
	ErrAuthExpired      = New(ErrCodeAuthExpired, "Session expired. Please sign in again.")
	ErrPermissionDenied = New(ErrCodePermissionDenied, "You do not have permission to access this proposal")
	ErrProposalNotFound = New(ErrCodeNotFound, "Proposal not found")
	ErrSessionNotFound  = New(ErrCodeNotFound, "Form session not found")
)
