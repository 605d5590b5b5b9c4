package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string
type Currency string

const (
	StatusPending   PaymentStatus = "pending"
	StatusCompleted PaymentStatus = "completed"
	StatusFailed    PaymentStatus = "failed"
	StatusExpired   PaymentStatus = "expired"

	CurrencyTON  Currency = "TON"
	CurrencyUSDT Currency = "USDT"
)

// MemoPrefix starts the on-chain transfer comment so the transfer itself
// binds a chain transaction to a local payment and its owner, independent of
// the lookup channel.
const MemoPrefix = "SC"

// Payment is the durable record of a requested payment and its lifecycle.
// Records are never deleted; they are retained for audit and fraud history.
type Payment struct {
	ID                   string          `json:"id" gorm:"primaryKey"`
	TransactionID        string          `json:"transaction_id" gorm:"uniqueIndex;not null"`
	UserID               string          `json:"user_id" gorm:"index;not null"`
	Amount               decimal.Decimal `json:"amount" gorm:"type:numeric(20,9);not null"`
	Currency             Currency        `json:"currency"`
	Status               PaymentStatus   `json:"status" gorm:"index"`
	PackageRef           string          `json:"package_ref"`
	Description          string          `json:"description,omitempty"`
	PaymentURL           string          `json:"payment_url,omitempty"`
	VerificationAttempts int             `json:"verification_attempts"`
	LastVerificationTime *time.Time      `json:"last_verification_time,omitempty"`
	CompletedAt          *time.Time      `json:"completed_at,omitempty"`
	TonTransactionHash   string          `json:"ton_transaction_hash,omitempty"`
	FraudScore           int             `json:"fraud_score"`
	ExpiresAt            time.Time       `json:"expires_at"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.TransactionID == "" {
		p.TransactionID = NewTransactionID()
	}

	return
}

// NewTransactionID generates an opaque unique transaction reference.
func NewTransactionID() string {
	return fmt.Sprintf("tx_%s", uuid.New().String())
}

func (p *Payment) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("user ID is required")
	}
	if !p.Currency.IsValid() {
		return fmt.Errorf("invalid currency: %s", p.Currency)
	}
	if p.Amount.Sign() <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}

	return nil
}

// Memo returns the transfer comment expected on-chain for this payment.
func (p *Payment) Memo() string {
	return fmt.Sprintf("%s_%s_%s", MemoPrefix, p.TransactionID, p.UserID)
}

func (p *Payment) IsExpired(at time.Time) bool {
	return at.After(p.ExpiresAt)
}

// EffectiveStatus applies lazy expiry on read: a record stored as pending but
// past its deadline is observed as expired even before any write corrects it.
func (p *Payment) EffectiveStatus(at time.Time) PaymentStatus {
	if p.Status == StatusPending && p.IsExpired(at) {
		return StatusExpired
	}
	return p.Status
}

// CalculateFraudScore recomputes the advisory fraud score. The score never
// gates a transition by itself.
func (p *Payment) CalculateFraudScore(ceiling decimal.Decimal) int {
	score := 0

	if p.VerificationAttempts > 5 {
		score += 10
	}
	if p.Amount.GreaterThan(ceiling) {
		score += 5
	}

	p.FraudScore = score
	return score
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status can never change again.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusExpired:
		return true
	default:
		return false
	}
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyTON, CurrencyUSDT:
		return true
	default:
		return false
	}
}
