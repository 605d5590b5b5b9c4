// Package registry holds tracking sessions, the ephemeral supervisory state
// that drives repeated verification checks for one transaction. The default
// implementation is an in-process map; a Redis-backed one shares sessions
// across instances. Scheduling stays local either way.
package registry

import (
	"context"
	"time"

	"github.com/starcoin-app/payment-core/internal/models"
)

// Session mirrors the tracked payment's status between checks. It is never a
// source of truth: the payment record always wins on disagreement.
type Session struct {
	TrackingID    string               `json:"tracking_id"`
	TransactionID string               `json:"transaction_id"`
	UserID        string               `json:"user_id"`
	Status        models.PaymentStatus `json:"status"`
	CheckCount    int                  `json:"check_count"`
	StartTime     time.Time            `json:"start_time"`
	LastCheckTime time.Time            `json:"last_check_time"`
	IsActive      bool                 `json:"is_active"`
}

// SessionRegistry stores tracking sessions keyed by tracking id. Get returns
// (nil, nil) for an unknown id, including after a process restart when the
// backing store does not survive one.
type SessionRegistry interface {
	Put(ctx context.Context, session *Session) error
	Get(ctx context.Context, trackingID string) (*Session, error)
	Delete(ctx context.Context, trackingID string) error
}
