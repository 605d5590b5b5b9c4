package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/starcoin-app/payment-core/internal/models"
)

// WebhookReconciler applies gateway-pushed status updates outside the poll
// loop. The gateway is authenticated by HMAC; once authenticated, its
// reported status is trusted over local polling. Writes share the engine's
// per-transaction locks and the store's conditional update, so a redelivered
// webhook or a concurrent poll can never double-fire activation.
type WebhookReconciler struct {
	Repo      PaymentRepo
	Publisher Publisher
	Locks     *txLocks
	Secret    string
	Now       func() time.Time
}

func NewWebhookReconciler(repo PaymentRepo, publisher Publisher, locks *txLocks, secret string) *WebhookReconciler {
	return &WebhookReconciler{
		Repo:      repo,
		Publisher: publisher,
		Locks:     locks,
		Secret:    secret,
		Now:       time.Now,
	}
}

type WebhookResult struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message,omitempty"`
}

// SignWebhookPayload computes the hex HMAC-SHA256 of the payload's canonical
// JSON form. The gateway signs with the shared secret; tests and the Kafka
// delivery channel reuse it.
func SignWebhookPayload(secret string, payload models.WebhookPayload) string {
	canonical, _ := json.Marshal(payload)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil))
}

// HandlePaymentWebhook authenticates a gateway notification and applies the
// reported status idempotently. No record is touched on a bad signature.
func (r *WebhookReconciler) HandlePaymentWebhook(ctx context.Context, payload models.WebhookPayload, signature string) (*WebhookResult, error) {
	expected := SignWebhookPayload(r.Secret, payload)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		logrus.Warnf("webhook signature mismatch for transaction %s", payload.TransactionID)
		return nil, ErrInvalidSignature
	}

	if !payload.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, payload.Status)
	}

	lock := r.Locks.get(payload.TransactionID)
	lock.Lock()
	defer lock.Unlock()

	payment, err := r.Repo.GetByTransactionID(ctx, payload.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("loading payment %s: %w", payload.TransactionID, err)
	}
	if payment == nil {
		return nil, ErrNotFound
	}

	if payment.Status.IsTerminal() {
		return &WebhookResult{Accepted: true, Message: "payment already settled"}, nil
	}
	if payload.Status == models.StatusPending {
		return &WebhookResult{Accepted: true, Message: "no status change"}, nil
	}

	now := r.Now()
	patch := map[string]interface{}{
		"status": payload.Status,
	}
	if payload.Status == models.StatusCompleted {
		patch["completed_at"] = now
		patch["ton_transaction_hash"] = payload.TonTransactionHash
	}

	applied, err := r.Repo.UpdateStatusIfPending(ctx, payload.TransactionID, patch)
	if err != nil {
		return nil, fmt.Errorf("applying webhook status for %s: %w", payload.TransactionID, err)
	}
	if !applied {
		// Another writer settled the record between our read and write.
		return &WebhookResult{Accepted: true, Message: "payment already settled"}, nil
	}

	if payload.Status == models.StatusCompleted {
		publishActivation(ctx, r.Publisher, payment, payload.TonTransactionHash, now)
	}

	return &WebhookResult{Accepted: true, Message: "payment notification processed"}, nil
}
