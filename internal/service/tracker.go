package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/starcoin-app/payment-core/internal/models"
	"github.com/starcoin-app/payment-core/internal/registry"
)

type TrackerEventType string

const (
	EventStatusChanged     TrackerEventType = "status_changed"
	EventTrackingCompleted TrackerEventType = "tracking_completed"
	EventTrackingStopped   TrackerEventType = "tracking_stopped"
	EventPaymentError      TrackerEventType = "payment_error"
)

// TrackerEvent is delivered to subscribers on every session transition.
// OldStatus/NewStatus are set for status_changed, FinalStatus for
// tracking_completed, Error for payment_error.
type TrackerEvent struct {
	Type          TrackerEventType     `json:"type"`
	TrackingID    string               `json:"tracking_id"`
	TransactionID string               `json:"transaction_id"`
	OldStatus     models.PaymentStatus `json:"old_status,omitempty"`
	NewStatus     models.PaymentStatus `json:"new_status,omitempty"`
	FinalStatus   models.PaymentStatus `json:"final_status,omitempty"`
	Error         string               `json:"error,omitempty"`
	Duration      time.Duration        `json:"duration,omitempty"`
	Timestamp     time.Time            `json:"timestamp"`
}

// eventBus is a typed observer registry. Callbacks run synchronously on the
// emitting goroutine; subscribers must not block.
type eventBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[TrackerEventType]map[int]func(TrackerEvent)
}

func newEventBus() *eventBus {
	return &eventBus{
		subs: make(map[TrackerEventType]map[int]func(TrackerEvent)),
	}
}

func (b *eventBus) subscribe(eventType TrackerEventType, fn func(TrackerEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[eventType] == nil {
		b.subs[eventType] = make(map[int]func(TrackerEvent))
	}
	id := b.nextID
	b.nextID++
	b.subs[eventType][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[eventType], id)
	}
}

func (b *eventBus) emit(event TrackerEvent) {
	b.mu.RLock()
	callbacks := make([]func(TrackerEvent), 0, len(b.subs[event.Type]))
	for _, fn := range b.subs[event.Type] {
		callbacks = append(callbacks, fn)
	}
	b.mu.RUnlock()

	for _, fn := range callbacks {
		fn(event)
	}
}

type TrackerConfig struct {
	InitialDelay time.Duration
	BackoffStep  time.Duration
	MaxInterval  time.Duration
}

// Tracker drives repeated verification for a transaction without requiring
// the caller to poll synchronously, and fans out status changes to
// subscribers. Session state lives in the injected registry; timers are
// process-local.
type Tracker struct {
	Repo     PaymentRepo
	Verifier TransactionVerifier
	Sessions registry.SessionRegistry
	Config   TrackerConfig
	Now      func() time.Time

	bus    *eventBus
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewTracker(repo PaymentRepo, verifier TransactionVerifier, sessions registry.SessionRegistry, cfg TrackerConfig) *Tracker {
	if cfg.InitialDelay == 0 {
		cfg.InitialDelay = 5 * time.Second
	}
	if cfg.BackoffStep == 0 {
		cfg.BackoffStep = time.Second
	}
	if cfg.MaxInterval == 0 {
		cfg.MaxInterval = 30 * time.Second
	}
	return &Tracker{
		Repo:     repo,
		Verifier: verifier,
		Sessions: sessions,
		Config:   cfg,
		Now:      time.Now,
		bus:      newEventBus(),
		timers:   make(map[string]*time.Timer),
	}
}

type TrackingInfo struct {
	TrackingID    string               `json:"tracking_id"`
	InitialStatus models.PaymentStatus `json:"initial_status"`
}

// TrackingStatus is a point-in-time snapshot of one session.
type TrackingStatus struct {
	TransactionID string               `json:"transaction_id"`
	Status        models.PaymentStatus `json:"status"`
	IsActive      bool                 `json:"is_active"`
	StartTime     time.Time            `json:"start_time"`
	LastCheckTime time.Time            `json:"last_check_time"`
	CheckCount    int                  `json:"check_count"`
	Duration      time.Duration        `json:"duration"`
}

// StartTracking authorizes the caller against the transaction, registers a
// session and schedules the first check after the initial delay.
func (t *Tracker) StartTracking(ctx context.Context, transactionID, userID string) (*TrackingInfo, error) {
	payment, err := t.Repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("loading payment %s: %w", transactionID, err)
	}
	if payment == nil {
		return nil, ErrNotFound
	}
	if payment.UserID != userID {
		return nil, ErrUnauthorized
	}

	now := t.Now()
	trackingID := fmt.Sprintf("track_%s_%d", transactionID, now.UnixMilli())
	session := &registry.Session{
		TrackingID:    trackingID,
		TransactionID: transactionID,
		UserID:        userID,
		Status:        payment.Status,
		StartTime:     now,
		LastCheckTime: now,
		IsActive:      true,
	}
	if err := t.Sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("registering tracking session: %w", err)
	}

	t.schedule(trackingID, t.Config.InitialDelay)

	return &TrackingInfo{
		TrackingID:    trackingID,
		InitialStatus: payment.Status,
	}, nil
}

// checkPaymentStatus is the timer-driven poll step. A session deactivated
// concurrently is a no-op. Transient chain failures keep the session alive
// and are retried on the next scheduled check.
func (t *Tracker) checkPaymentStatus(trackingID string) {
	ctx := context.Background()

	session, err := t.Sessions.Get(ctx, trackingID)
	if err != nil {
		logrus.Errorf("loading tracking session %s: %s", trackingID, err.Error())
		return
	}
	if session == nil || !session.IsActive {
		return
	}

	session.CheckCount++
	session.LastCheckTime = t.Now()

	payment, err := t.Repo.GetByTransactionID(ctx, session.TransactionID)
	if err != nil {
		t.failSession(ctx, session, err.Error())
		return
	}
	if payment == nil {
		t.failSession(ctx, session, "transaction not found")
		return
	}

	if payment.Status != session.Status {
		old := session.Status
		session.Status = payment.Status
		t.bus.emit(TrackerEvent{
			Type:          EventStatusChanged,
			TrackingID:    trackingID,
			TransactionID: session.TransactionID,
			OldStatus:     old,
			NewStatus:     payment.Status,
			Timestamp:     t.Now(),
		})
		if payment.Status.IsTerminal() {
			t.completeSession(ctx, session)
			return
		}
	}

	if payment.Status == models.StatusPending {
		result, err := t.Verifier.VerifyTransaction(ctx, session.TransactionID)
		switch {
		case errors.Is(err, ErrChainLookup):
			logrus.Warnf("chain lookup failed for %s, retrying on next check: %s", session.TransactionID, err.Error())
		case err != nil:
			t.failSession(ctx, session, err.Error())
			return
		case result.Status.IsTerminal():
			old := session.Status
			session.Status = result.Status
			t.bus.emit(TrackerEvent{
				Type:          EventStatusChanged,
				TrackingID:    trackingID,
				TransactionID: session.TransactionID,
				OldStatus:     old,
				NewStatus:     result.Status,
				Timestamp:     t.Now(),
			})
			t.completeSession(ctx, session)
			return
		}
	}

	if err := t.Sessions.Put(ctx, session); err != nil {
		logrus.Errorf("persisting tracking session %s: %s", trackingID, err.Error())
	}
	t.schedule(trackingID, t.NextInterval(session.CheckCount))
}

// StopTracking deactivates a session. Repeating the call is safe; scheduled
// checks are cancelled but an in-flight chain call is not, and its result
// only lands through the store's conditional update.
func (t *Tracker) StopTracking(ctx context.Context, trackingID string) error {
	session, err := t.Sessions.Get(ctx, trackingID)
	if err != nil {
		return fmt.Errorf("loading tracking session %s: %w", trackingID, err)
	}
	if session == nil {
		return ErrUnknownTracking
	}

	t.cancelTimer(trackingID)
	session.IsActive = false
	if err := t.Sessions.Put(ctx, session); err != nil {
		return fmt.Errorf("persisting tracking session %s: %w", trackingID, err)
	}

	t.bus.emit(TrackerEvent{
		Type:          EventTrackingStopped,
		TrackingID:    trackingID,
		TransactionID: session.TransactionID,
		Duration:      t.Now().Sub(session.StartTime),
		Timestamp:     t.Now(),
	})
	return nil
}

// GetTrackingStatus is a pure read of session state.
func (t *Tracker) GetTrackingStatus(ctx context.Context, trackingID string) (*TrackingStatus, error) {
	session, err := t.Sessions.Get(ctx, trackingID)
	if err != nil {
		return nil, fmt.Errorf("loading tracking session %s: %w", trackingID, err)
	}
	if session == nil {
		return nil, ErrUnknownTracking
	}

	return &TrackingStatus{
		TransactionID: session.TransactionID,
		Status:        session.Status,
		IsActive:      session.IsActive,
		StartTime:     session.StartTime,
		LastCheckTime: session.LastCheckTime,
		CheckCount:    session.CheckCount,
		Duration:      t.Now().Sub(session.StartTime),
	}, nil
}

// Subscribe registers a callback for one event type and returns its
// unsubscribe handle.
func (t *Tracker) Subscribe(eventType TrackerEventType, fn func(TrackerEvent)) func() {
	return t.bus.subscribe(eventType, fn)
}

// NextInterval returns the poll delay after n checks:
// min(MaxInterval, InitialDelay + n×BackoffStep). Bounded linear backoff
// limits chain client load while keeping latency low early on.
func (t *Tracker) NextInterval(checkCount int) time.Duration {
	interval := t.Config.InitialDelay + time.Duration(checkCount)*t.Config.BackoffStep
	if interval > t.Config.MaxInterval {
		interval = t.Config.MaxInterval
	}
	return interval
}

// Shutdown cancels all scheduled checks. Sessions stay in the registry.
func (t *Tracker) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}

func (t *Tracker) schedule(trackingID string, delay time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.timers[trackingID] = time.AfterFunc(delay, func() {
		t.checkPaymentStatus(trackingID)
	})
}

func (t *Tracker) cancelTimer(trackingID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if timer, ok := t.timers[trackingID]; ok {
		timer.Stop()
		delete(t.timers, trackingID)
	}
}

func (t *Tracker) completeSession(ctx context.Context, session *registry.Session) {
	session.IsActive = false
	if err := t.Sessions.Put(ctx, session); err != nil {
		logrus.Errorf("persisting tracking session %s: %s", session.TrackingID, err.Error())
	}
	t.cancelTimer(session.TrackingID)

	t.bus.emit(TrackerEvent{
		Type:          EventTrackingCompleted,
		TrackingID:    session.TrackingID,
		TransactionID: session.TransactionID,
		FinalStatus:   session.Status,
		Duration:      t.Now().Sub(session.StartTime),
		Timestamp:     t.Now(),
	})
}

func (t *Tracker) failSession(ctx context.Context, session *registry.Session, reason string) {
	session.IsActive = false
	if err := t.Sessions.Put(ctx, session); err != nil {
		logrus.Errorf("persisting tracking session %s: %s", session.TrackingID, err.Error())
	}
	t.cancelTimer(session.TrackingID)

	t.bus.emit(TrackerEvent{
		Type:          EventPaymentError,
		TrackingID:    session.TrackingID,
		TransactionID: session.TransactionID,
		Error:         reason,
		Timestamp:     t.Now(),
	})
}
