package common

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDateRange        = errors.New("from date must be before to date")
	ErrMissingResponseBody   = errors.New("missing response body")
	ErrMissingProductsData   = errors.New("missing products in response data")
	ErrMissingContracts      = errors.New("missing dbo contracts in response data")
	ErrUnknownProductType    = errors.New("unknown product type")
	ErrAccountNotResolved    = errors.New("operation account not resolved")
	ErrMissingCredentials    = errors.New("phone and password are required")
	ErrInvalidStatementDates = errors.New("invalid statement date range")
)

// BankResponsePrefix prepends every raw bank error description before it is
// surfaced to the host.
const BankResponsePrefix = "Ответ банка: "

// InvalidPreferencesError is a permanent failure: the stored credentials are
// wrong and the user must re-enter them. Never retried automatically.
type InvalidPreferencesError struct {
	Message string
}

func (e *InvalidPreferencesError) Error() string {
	return e.Message
}

func NewInvalidPreferencesError(message string) error {
	return &InvalidPreferencesError{Message: message}
}

// TemporaryError is a transient failure: bank-side error text we do not
// recognize, or a malformed response. The caller may retry later.
type TemporaryError struct {
	Message string
}

func (e *TemporaryError) Error() string {
	return e.Message
}

func NewTemporaryError(message string) error {
	return &TemporaryError{Message: message}
}

func IsInvalidPreferences(err error) bool {
	var target *InvalidPreferencesError
	return errors.As(err, &target)
}

func IsTemporary(err error) bool {
	var target *TemporaryError
	return errors.As(err, &target)
}

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
