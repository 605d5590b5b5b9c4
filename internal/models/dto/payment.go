package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/starcoin-app/payment-core/internal/models"
)

type CreatePaymentRequest struct {
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PackageRef  string          `json:"package_ref"`
	Description string          `json:"description"`
}

func (r *CreatePaymentRequest) Sanitize() {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Currency = strings.TrimSpace(r.Currency)
	r.PackageRef = strings.TrimSpace(r.PackageRef)
	r.Description = strings.TrimSpace(r.Description)

	r.Currency = strings.ToUpper(r.Currency)
	if r.Currency == "" {
		r.Currency = string(models.CurrencyTON)
	}
}

func (r *CreatePaymentRequest) ToEntity() *models.Payment {
	return &models.Payment{
		UserID:      r.UserID,
		Amount:      r.Amount,
		Currency:    models.Currency(r.Currency),
		PackageRef:  r.PackageRef,
		Description: r.Description,
		Status:      models.StatusPending,
	}
}

type CreatePaymentResponse struct {
	TransactionID string    `json:"transaction_id"`
	PaymentURL    string    `json:"payment_url"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type PaymentStatusResponse struct {
	Status           models.PaymentStatus `json:"status"`
	PackageActivated bool                 `json:"package_activated"`
	Message          string               `json:"message,omitempty"`
}

// PaymentSummary is the history view of one payment, newest first.
type PaymentSummary struct {
	TransactionID string               `json:"transaction_id"`
	Amount        decimal.Decimal      `json:"amount"`
	Currency      models.Currency      `json:"currency"`
	Status        models.PaymentStatus `json:"status"`
	PackageRef    string               `json:"package_ref,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	CompletedAt   *time.Time           `json:"completed_at,omitempty"`
}
