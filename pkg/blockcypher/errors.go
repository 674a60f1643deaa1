package blockcypher

import (
	"errors"
	"fmt"
)

// Outward error kinds. Transport failures, HTTP error statuses, empty bodies
// and decode failures are all folded into the not-found kind for the entity
// being fetched; the underlying cause and HTTP status stay available on the
// Error value for diagnostics.
var (
	// ErrWalletNotFound is the folded failure kind for wallet fetches.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrTransactionNotFound is the folded failure kind for transaction fetches.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Error is the failure type returned by Client operations. Kind is one of
// ErrURLGeneration, ErrWalletNotFound or ErrTransactionNotFound and is
// matchable with errors.Is. StatusCode is the HTTP status of the response,
// or 0 when the request never completed. Cause holds the underlying
// transport or decode error, when there is one.
type Error struct {
	Kind       error
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (http status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Is matches the error against its outward kind.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Unwrap exposes the underlying transport or decode error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// errEmptyBody marks a completed response that carried no body to decode.
var errEmptyBody = errors.New("empty response body")

// errHTTPStatus marks a completed response with an error status.
func errHTTPStatus(status string) error {
	return fmt.Errorf("http error status %s", status)
}
