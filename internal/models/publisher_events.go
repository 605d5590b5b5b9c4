package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentCompletedEventTopic = "payments.completed"
	PaymentFlaggedEventTopic   = "payments.flagged"
	PaymentsDLQTopic           = "payments.dlq"
)

// PackageActivationEvent is published exactly once per transition into the
// completed status. Downstream package activation consumes it; redelivered
// webhooks and repeated verification reads never produce a second event.
type PackageActivationEvent struct {
	TransactionID      string          `json:"transaction_id"`
	UserID             string          `json:"user_id"`
	PackageRef         string          `json:"package_ref"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	TonTransactionHash string          `json:"ton_transaction_hash"`
	CompletedAt        time.Time       `json:"completed_at"`
}

// FraudFlaggedEvent is an advisory signal for audit consumers. It never gates
// a payment by itself.
type FraudFlaggedEvent struct {
	UserID    string    `json:"user_id"`
	Reason    string    `json:"reason"`
	RiskLevel string    `json:"risk_level,omitempty"`
	FlaggedAt time.Time `json:"flagged_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
