package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/starcoin-app/payment-core/internal/models"
)

func TestNewTransactionID(t *testing.T) {
	id := models.NewTransactionID()

	assert.True(t, strings.HasPrefix(id, "tx_"))
	assert.NotEqual(t, id, models.NewTransactionID())
}

func TestPayment_Memo(t *testing.T) {
	payment := models.Payment{TransactionID: "tx-1", UserID: "user-1"}

	assert.Equal(t, "SC_tx-1_user-1", payment.Memo())
}

func TestPayment_Validate(t *testing.T) {
	valid := models.Payment{
		UserID:   "user-1",
		Amount:   decimal.NewFromInt(1),
		Currency: models.CurrencyTON,
	}
	assert.NoError(t, valid.Validate())

	noUser := valid
	noUser.UserID = ""
	assert.Error(t, noUser.Validate())

	badCurrency := valid
	badCurrency.Currency = "BTC"
	assert.Error(t, badCurrency.Validate())

	zeroAmount := valid
	zeroAmount.Amount = decimal.Zero
	assert.Error(t, zeroAmount.Validate())
}

func TestPayment_EffectiveStatus(t *testing.T) {
	now := time.Now()

	pending := models.Payment{Status: models.StatusPending, ExpiresAt: now.Add(time.Minute)}
	assert.Equal(t, models.StatusPending, pending.EffectiveStatus(now))

	overdue := models.Payment{Status: models.StatusPending, ExpiresAt: now.Add(-time.Minute)}
	assert.Equal(t, models.StatusExpired, overdue.EffectiveStatus(now))

	// Terminal statuses never change, even past the deadline.
	completed := models.Payment{Status: models.StatusCompleted, ExpiresAt: now.Add(-time.Minute)}
	assert.Equal(t, models.StatusCompleted, completed.EffectiveStatus(now))
}

func TestPayment_CalculateFraudScore(t *testing.T) {
	ceiling := decimal.NewFromInt(100)

	clean := models.Payment{Amount: decimal.NewFromInt(10), VerificationAttempts: 2}
	assert.Equal(t, 0, clean.CalculateFraudScore(ceiling))

	manyAttempts := models.Payment{Amount: decimal.NewFromInt(10), VerificationAttempts: 6}
	assert.Equal(t, 10, manyAttempts.CalculateFraudScore(ceiling))

	bigAmount := models.Payment{Amount: decimal.NewFromInt(200), VerificationAttempts: 6}
	assert.Equal(t, 15, bigAmount.CalculateFraudScore(ceiling))
	assert.Equal(t, 15, bigAmount.FraudScore)
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	assert.False(t, models.StatusPending.IsTerminal())
	assert.True(t, models.StatusCompleted.IsTerminal())
	assert.True(t, models.StatusFailed.IsTerminal())
	assert.True(t, models.StatusExpired.IsTerminal())
}
