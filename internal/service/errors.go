package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers malformed requests; no record is created.
	ErrValidation = errors.New("invalid payment request")
	// ErrFraudRejected is returned by the admission gate; no record is created.
	ErrFraudRejected = errors.New("payment request rejected")
	// ErrNotFound means the transaction id is unknown.
	ErrNotFound = errors.New("transaction not found")
	// ErrUnauthorized means the caller does not own the transaction. Callers
	// must surface it with the same message as ErrNotFound so existence does
	// not leak to non-owners.
	ErrUnauthorized = errors.New("transaction not accessible")
	// ErrChainLookup is a transient chain client failure. It never moves a
	// record out of pending; synchronous callers report "still pending".
	ErrChainLookup = errors.New("chain lookup failed")
	// ErrInvalidSignature rejects a webhook before any record is touched.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrUnknownTracking means the tracking session does not exist, including
	// after a process restart when sessions are not restored.
	ErrUnknownTracking = errors.New("unknown tracking id")
)

// FraudRejectionError carries the gate's rejection details (reason, the
// conflicting pending intents, cooldown hint) alongside the sentinel.
type FraudRejectionError struct {
	Result *ValidationResult
}

func (e *FraudRejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFraudRejected.Error(), e.Result.Message)
}

func (e *FraudRejectionError) Unwrap() error {
	return ErrFraudRejected
}
