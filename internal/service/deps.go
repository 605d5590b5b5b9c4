package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starcoin-app/payment-core/internal/models"
	"github.com/starcoin-app/payment-core/internal/tonchain"
)

// PaymentRepo defines the persistence operations the payment core needs.
// Lookups that miss return (nil, nil); UpdateStatusIfPending is the
// compare-and-set used for every state flip out of pending.
type PaymentRepo interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	GetByUser(ctx context.Context, userID string, limit int) (*[]models.Payment, error)
	GetActivePending(ctx context.Context, userID string, now time.Time) (*[]models.Payment, error)
	GetRecentByUserAndAmount(ctx context.Context, userID string, amount decimal.Decimal, since time.Time) (*[]models.Payment, error)
	Update(ctx context.Context, payment *models.Payment, transactionID string) error
	UpdateStatusIfPending(ctx context.Context, transactionID string, patch map[string]interface{}) (bool, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// ChainClient is the blockchain collaborator: lookup, balance, deeplink and
// address validation. The core never talks to the chain any other way.
type ChainClient interface {
	VerifyTransaction(ctx context.Context, reference string, amount decimal.Decimal, expectedComment string) (*tonchain.Verification, error)
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)
	BuildPaymentLink(address string, amount decimal.Decimal, comment string) string
	IsValidAddress(address string) bool
}

// TransactionVerifier advances one transaction's state machine. Implemented
// by the VerificationEngine; consumed by the tracker and the payment facade.
type TransactionVerifier interface {
	VerifyTransaction(ctx context.Context, transactionID string) (*VerificationResult, error)
}

// PaymentValidator is the admission gate run before a payment record is
// created.
type PaymentValidator interface {
	ValidatePaymentRequest(ctx context.Context, userID string, amount decimal.Decimal, packageRef string) (*ValidationResult, error)
}
