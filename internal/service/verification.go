package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/starcoin-app/payment-core/internal/models"
)

// VerificationEngine owns the payment state machine. pending is the only
// non-terminal status; completed, failed and expired are terminal and never
// revisited. Every flip out of pending goes through the per-transaction lock
// and the store's conditional update, so racing writers settle a record at
// most once.
type VerificationEngine struct {
	Repo          PaymentRepo
	Chain         ChainClient
	Publisher     Publisher
	Locks         *txLocks
	ChainTimeout  time.Duration
	AmountCeiling decimal.Decimal
	Now           func() time.Time
}

func NewVerificationEngine(repo PaymentRepo, chain ChainClient, publisher Publisher, locks *txLocks, chainTimeout time.Duration, amountCeiling decimal.Decimal) *VerificationEngine {
	return &VerificationEngine{
		Repo:          repo,
		Chain:         chain,
		Publisher:     publisher,
		Locks:         locks,
		ChainTimeout:  chainTimeout,
		AmountCeiling: amountCeiling,
		Now:           time.Now,
	}
}

// VerificationResult reports one settlement check. VerificationLayer is set
// by MultiLayerVerification for diagnostics only.
type VerificationResult struct {
	Success           bool                 `json:"success"`
	Status            models.PaymentStatus `json:"status"`
	Message           string               `json:"message,omitempty"`
	PackageActivated  bool                 `json:"package_activated"`
	TransactionHash   string               `json:"transaction_hash,omitempty"`
	VerificationLayer int                  `json:"-"`
}

// VerifyTransaction determines the current settlement status of a
// transaction: terminal records are pure reads, pending records past their
// deadline expire lazily, and live pending records are checked against the
// chain. A transient chain failure persists the attempt counters, leaves the
// status pending and surfaces ErrChainLookup; only explicit confirmation or
// expiry move a record out of pending.
func (e *VerificationEngine) VerifyTransaction(ctx context.Context, transactionID string) (*VerificationResult, error) {
	lock := e.Locks.get(transactionID)
	lock.Lock()
	defer lock.Unlock()

	payment, err := e.Repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("loading payment %s: %w", transactionID, err)
	}
	if payment == nil {
		return nil, ErrNotFound
	}

	if payment.Status.IsTerminal() {
		return terminalResult(payment), nil
	}

	now := e.Now()
	if payment.IsExpired(now) {
		if _, err := e.Repo.UpdateStatusIfPending(ctx, transactionID, map[string]interface{}{
			"status": models.StatusExpired,
		}); err != nil {
			return nil, fmt.Errorf("expiring payment %s: %w", transactionID, err)
		}
		return &VerificationResult{
			Success: false,
			Status:  models.StatusExpired,
			Message: "payment request expired",
		}, nil
	}

	payment.VerificationAttempts++
	payment.LastVerificationTime = &now
	payment.CalculateFraudScore(e.AmountCeiling)
	counters := map[string]interface{}{
		"verification_attempts":  payment.VerificationAttempts,
		"last_verification_time": now,
		"fraud_score":            payment.FraudScore,
	}

	reference := payment.TonTransactionHash
	if reference == "" {
		reference = payment.TransactionID
	}

	chainCtx, cancel := context.WithTimeout(ctx, e.ChainTimeout)
	defer cancel()
	verification, err := e.Chain.VerifyTransaction(chainCtx, reference, payment.Amount, payment.Memo())
	if err != nil {
		if _, uerr := e.Repo.UpdateStatusIfPending(ctx, transactionID, counters); uerr != nil {
			logrus.Errorf("persisting attempt counters for %s: %s", transactionID, uerr.Error())
		}
		return nil, fmt.Errorf("%w: %v", ErrChainLookup, err)
	}

	if !verification.Matched {
		if _, err := e.Repo.UpdateStatusIfPending(ctx, transactionID, counters); err != nil {
			return nil, fmt.Errorf("persisting attempt counters for %s: %w", transactionID, err)
		}
		message := verification.Message
		if message == "" {
			message = "payment not confirmed yet"
		}
		return &VerificationResult{
			Success: false,
			Status:  models.StatusPending,
			Message: message,
		}, nil
	}

	patch := map[string]interface{}{
		"status":               models.StatusCompleted,
		"completed_at":         now,
		"ton_transaction_hash": verification.Hash,
	}
	for k, v := range counters {
		patch[k] = v
	}
	applied, err := e.Repo.UpdateStatusIfPending(ctx, transactionID, patch)
	if err != nil {
		return nil, fmt.Errorf("completing payment %s: %w", transactionID, err)
	}
	if !applied {
		// Another writer settled the record first; report stored state and
		// do not fire activation again.
		current, err := e.Repo.GetByTransactionID(ctx, transactionID)
		if err != nil {
			return nil, fmt.Errorf("reloading payment %s: %w", transactionID, err)
		}
		if current == nil {
			return nil, ErrNotFound
		}
		return terminalResult(current), nil
	}

	publishActivation(ctx, e.Publisher, payment, verification.Hash, now)

	return &VerificationResult{
		Success:          true,
		Status:           models.StatusCompleted,
		Message:          "payment verified successfully",
		PackageActivated: true,
		TransactionHash:  verification.Hash,
	}, nil
}

// MultiLayerVerification is the stricter entry point for callers whose
// identity must be proven. Layers: existence, ownership, terminal
// short-circuit, then the chain check for pending records. The rejecting
// layer is logged for diagnostics; callers surface ErrNotFound and
// ErrUnauthorized identically so record existence does not leak.
func (e *VerificationEngine) MultiLayerVerification(ctx context.Context, transactionID, userID string) (*VerificationResult, error) {
	payment, err := e.Repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("loading payment %s: %w", transactionID, err)
	}
	if payment == nil {
		logrus.Infof("verification rejected at layer 1: unknown transaction %s", transactionID)
		return nil, ErrNotFound
	}

	if payment.UserID != userID {
		logrus.Warnf("verification rejected at layer 2: transaction %s not owned by caller", transactionID)
		return nil, ErrUnauthorized
	}

	switch payment.Status {
	case models.StatusExpired:
		return &VerificationResult{
			Success:           false,
			Status:            models.StatusExpired,
			Message:           "payment request expired",
			VerificationLayer: 3,
		}, nil
	case models.StatusFailed:
		return &VerificationResult{
			Success:           false,
			Status:            models.StatusFailed,
			Message:           "payment failed",
			VerificationLayer: 3,
		}, nil
	case models.StatusCompleted:
		result := terminalResult(payment)
		result.VerificationLayer = 4
		return result, nil
	}

	result, err := e.VerifyTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	result.VerificationLayer = 4
	return result, nil
}

func terminalResult(payment *models.Payment) *VerificationResult {
	switch payment.Status {
	case models.StatusCompleted:
		return &VerificationResult{
			Success:          true,
			Status:           models.StatusCompleted,
			Message:          "payment verified successfully",
			PackageActivated: true,
			TransactionHash:  payment.TonTransactionHash,
		}
	case models.StatusFailed:
		return &VerificationResult{
			Success: false,
			Status:  models.StatusFailed,
			Message: "payment failed",
		}
	default:
		return &VerificationResult{
			Success: false,
			Status:  models.StatusExpired,
			Message: "payment request expired",
		}
	}
}

// publishActivation fires the package-activation event. It runs only after a
// successful pending → completed compare-and-set, which is what guarantees
// exactly one event per settlement. Fire-and-forget: a publish failure is
// logged, never propagated.
func publishActivation(ctx context.Context, publisher Publisher, payment *models.Payment, hash string, completedAt time.Time) {
	event := models.PackageActivationEvent{
		TransactionID:      payment.TransactionID,
		UserID:             payment.UserID,
		PackageRef:         payment.PackageRef,
		Amount:             payment.Amount,
		Currency:           string(payment.Currency),
		TonTransactionHash: hash,
		CompletedAt:        completedAt,
	}
	if err := publisher.Publish(ctx, models.PaymentCompletedEventTopic, event); err != nil {
		logrus.Errorf("publishing activation for %s: %s", payment.TransactionID, err.Error())
	}
}
