package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRecognition indicates that a currency name could not be mapped to a code.
var ErrRecognition = errors.New("unrecognized currency")

// ErrParse indicates that a currency pair string could not be split or resolved.
var ErrParse = errors.New("invalid currency pair")

// ErrProvider indicates that a single rate provider failed.
var ErrProvider = errors.New("rate provider failed")

// ErrAllProvidersFailed indicates that no provider contributed any rate.
var ErrAllProvidersFailed = errors.New("all rate providers failed")

// ErrRateUnavailable indicates that a symbol is still missing after a forced refresh.
var ErrRateUnavailable = errors.New("rate unavailable")

// ErrRebase indicates that rates could not be re-expressed in the requested base.
var ErrRebase = errors.New("cannot rebase rates")

// ErrClosed indicates use of a converter after Close.
var ErrClosed = errors.New("converter is closed")

// AppError carries a status code alongside a wrapped error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// ProviderError records the failure of one named rate provider.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	return []error{ErrProvider, e.Err}
}

// NewProviderError wraps err as a failure of the named provider.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// RateUnavailableError names the symbols that could not be priced.
type RateUnavailableError struct {
	Symbols []string
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("rate(s) %s unavailable from providers", strings.Join(e.Symbols, ", "))
}

func (e *RateUnavailableError) Unwrap() error {
	return ErrRateUnavailable
}
