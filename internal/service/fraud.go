package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/starcoin-app/payment-core/internal/models"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FraudConfig holds the gate and pattern thresholds. The defaults in the
// config package are the tested baseline.
type FraudConfig struct {
	MaxPendingIntents int
	DuplicateWindow   time.Duration
	MaxDuplicates     int
	AmountCeiling     decimal.Decimal
	PatternSampleSize int
	MaxFailedIntents  int
	MaxExpiredIntents int
	MinCreationGap    time.Duration
	TokenSecret       string
	TokenTTL          time.Duration
}

// FraudGuard is the admission control in front of payment creation, plus the
// out-of-band pattern detector and the step-up token codec. The gate is a
// best-effort replay/mistake heuristic, not a cryptographic defense.
type FraudGuard struct {
	Repo      PaymentRepo
	Publisher Publisher
	Config    FraudConfig
	Now       func() time.Time
}

func NewFraudGuard(repo PaymentRepo, publisher Publisher, cfg FraudConfig) *FraudGuard {
	return &FraudGuard{
		Repo:      repo,
		Publisher: publisher,
		Config:    cfg,
		Now:       time.Now,
	}
}

// PendingSummary identifies a conflicting pending intent in a rejection.
type PendingSummary struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
	ExpiresAt     time.Time       `json:"expires_at"`
}

// ValidationResult is the gate's verdict. A rejection carries a reason and,
// where applicable, the conflicting pending intents or a cooldown hint.
type ValidationResult struct {
	OK              bool             `json:"ok"`
	Message         string           `json:"message"`
	PendingPayments []PendingSummary `json:"pending_payments,omitempty"`
	CooldownSeconds int              `json:"cooldown_seconds,omitempty"`
}

// ValidatePaymentRequest gates a new payment intent before any record is
// created. On success it has no side effect; the caller creates the record.
func (g *FraudGuard) ValidatePaymentRequest(ctx context.Context, userID string, amount decimal.Decimal, packageRef string) (*ValidationResult, error) {
	now := g.Now()

	pending, err := g.Repo.GetActivePending(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("loading pending payments: %w", err)
	}
	if len(*pending) >= g.Config.MaxPendingIntents {
		summaries := make([]PendingSummary, 0, len(*pending))
		for _, p := range *pending {
			summaries = append(summaries, PendingSummary{
				TransactionID: p.TransactionID,
				Amount:        p.Amount,
				CreatedAt:     p.CreatedAt,
				ExpiresAt:     p.ExpiresAt,
			})
		}
		g.LogFraudAttempt(ctx, userID, "too many pending payment requests", "")
		return &ValidationResult{
			OK:              false,
			Message:         "you have several pending payment requests; complete them or wait for them to expire",
			PendingPayments: summaries,
		}, nil
	}

	recent, err := g.Repo.GetRecentByUserAndAmount(ctx, userID, amount, now.Add(-g.Config.DuplicateWindow))
	if err != nil {
		return nil, fmt.Errorf("loading recent payments: %w", err)
	}
	if len(*recent) >= g.Config.MaxDuplicates {
		g.LogFraudAttempt(ctx, userID, "duplicate payment burst", "")
		return &ValidationResult{
			OK:              false,
			Message:         "repeated requests with the same amount detected; wait before creating a new one",
			CooldownSeconds: int(g.Config.DuplicateWindow.Seconds()),
		}, nil
	}

	if amount.Sign() <= 0 || amount.GreaterThan(g.Config.AmountCeiling) {
		return &ValidationResult{
			OK:      false,
			Message: fmt.Sprintf("invalid amount: must be positive and at most %s", g.Config.AmountCeiling),
		}, nil
	}

	return &ValidationResult{
		OK:      true,
		Message: "payment request accepted",
	}, nil
}

// FraudReport is the advisory outcome of pattern detection. It never blocks
// a payment by itself.
type FraudReport struct {
	FraudDetected bool      `json:"fraud_detected"`
	Reason        string    `json:"reason,omitempty"`
	RiskLevel     RiskLevel `json:"risk_level"`
}

// DetectFraudPattern inspects the user's most recent payments for abusive
// patterns. It runs out of band, not on the creation path.
func (g *FraudGuard) DetectFraudPattern(ctx context.Context, userID string) (*FraudReport, error) {
	payments, err := g.Repo.GetByUser(ctx, userID, g.Config.PatternSampleSize)
	if err != nil {
		return nil, fmt.Errorf("loading payment history: %w", err)
	}

	failed, expired := 0, 0
	for _, p := range *payments {
		switch p.Status {
		case models.StatusFailed:
			failed++
		case models.StatusExpired:
			expired++
		}
	}

	if failed >= g.Config.MaxFailedIntents {
		return g.flagged(ctx, userID, "too many failed payments", RiskHigh), nil
	}
	if expired >= g.Config.MaxExpiredIntents {
		return g.flagged(ctx, userID, "too many expired payments", RiskMedium), nil
	}

	// Mean gap between consecutive creations; history is newest first.
	if len(*payments) >= 5 {
		var total time.Duration
		for i := 0; i < len(*payments)-1; i++ {
			total += (*payments)[i].CreatedAt.Sub((*payments)[i+1].CreatedAt)
		}
		avg := total / time.Duration(len(*payments)-1)
		if avg < g.Config.MinCreationGap {
			return g.flagged(ctx, userID, "suspicious creation rate", RiskMedium), nil
		}
	}

	return &FraudReport{FraudDetected: false, RiskLevel: RiskLow}, nil
}

func (g *FraudGuard) flagged(ctx context.Context, userID, reason string, level RiskLevel) *FraudReport {
	g.LogFraudAttempt(ctx, userID, reason, level)
	return &FraudReport{
		FraudDetected: true,
		Reason:        reason,
		RiskLevel:     level,
	}
}

// LogFraudAttempt records a suspected abuse for audit: a warning log plus a
// best-effort advisory event. Publish failures are logged, never propagated.
func (g *FraudGuard) LogFraudAttempt(ctx context.Context, userID, reason string, level RiskLevel) {
	logrus.Warnf("possible fraud attempt: user=%s reason=%s risk=%s", userID, reason, level)

	if g.Publisher == nil {
		return
	}
	event := models.FraudFlaggedEvent{
		UserID:    userID,
		Reason:    reason,
		RiskLevel: string(level),
		FlaggedAt: g.Now(),
	}
	if err := g.Publisher.Publish(ctx, models.PaymentFlaggedEventTopic, event); err != nil {
		logrus.Errorf("publishing fraud flag for user %s: %s", userID, err.Error())
	}
}

// VerificationToken is a short-lived one-time code for step-up confirmation
// of sensitive actions.
type VerificationToken struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// GenerateVerificationToken issues a 6-digit code tied to the user, the
// transaction and the current time window.
func (g *FraudGuard) GenerateVerificationToken(userID, transactionID string) *VerificationToken {
	window := g.Now().Unix() / int64(g.Config.TokenTTL.Seconds())
	return &VerificationToken{
		Token:     g.computeToken(userID, transactionID, window),
		ExpiresIn: int(g.Config.TokenTTL.Seconds()),
	}
}

// VerifyToken recomputes the code for the current and previous window and
// compares in constant time. The issuer never needs to transport the
// original token server-side.
func (g *FraudGuard) VerifyToken(userID, transactionID, token string) bool {
	window := g.Now().Unix() / int64(g.Config.TokenTTL.Seconds())
	for _, w := range []int64{window, window - 1} {
		expected := g.computeToken(userID, transactionID, w)
		if subtle.ConstantTimeCompare([]byte(expected), []byte(token)) == 1 {
			return true
		}
	}
	return false
}

// computeToken HMACs userId|transactionId|window and truncates the digest to
// six decimal digits.
func (g *FraudGuard) computeToken(userID, transactionID string, window int64) string {
	mac := hmac.New(sha256.New, []byte(g.Config.TokenSecret))
	fmt.Fprintf(mac, "%s|%s|%d", userID, transactionID, window)
	sum := mac.Sum(nil)
	code := binary.BigEndian.Uint32(sum[:4]) % 1000000
	return fmt.Sprintf("%06d", code)
}
