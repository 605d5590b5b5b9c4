package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/starcoin-app/payment-core/internal/models"
	"github.com/starcoin-app/payment-core/internal/service"
	"github.com/starcoin-app/payment-core/internal/service/mocks"
	"github.com/starcoin-app/payment-core/internal/tonchain"
)

func newEngine(t *testing.T) (*service.VerificationEngine, *mocks.MockPaymentRepo, *mocks.MockChainClient, *mocks.MockPublisher) {
	mockRepo := mocks.NewMockPaymentRepo(t)
	mockChain := mocks.NewMockChainClient(t)
	mockPublisher := mocks.NewMockPublisher(t)
	engine := service.NewVerificationEngine(mockRepo, mockChain, mockPublisher, service.NewTxLocks(), 10*time.Second, decimal.NewFromInt(100))
	engine.Now = func() time.Time { return frozenNow }
	return engine, mockRepo, mockChain, mockPublisher
}

func pendingPayment() *models.Payment {
	return &models.Payment{
		ID:            "id-1",
		TransactionID: "tx-1",
		UserID:        "user-1",
		Amount:        decimal.NewFromFloat(0.339),
		Currency:      models.CurrencyTON,
		Status:        models.StatusPending,
		PackageRef:    "starter",
		ExpiresAt:     frozenNow.Add(30 * time.Minute),
	}
}

func TestVerifyTransaction_UnknownTransaction(t *testing.T) {
	engine, mockRepo, _, _ := newEngine(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-missing").
		Return(nil, nil).
		Once()

	result, err := engine.VerifyTransaction(ctx, "tx-missing")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestVerifyTransaction_CompletedIsPureRead(t *testing.T) {
	engine, mockRepo, mockChain, _ := newEngine(t)
	ctx := context.Background()

	completedAt := frozenNow.Add(-time.Hour)
	payment := pendingPayment()
	payment.Status = models.StatusCompleted
	payment.CompletedAt = &completedAt
	payment.TonTransactionHash = "0xabc"
	payment.ExpiresAt = frozenNow.Add(-30 * time.Minute)

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(payment, nil).
		Once()

	result, err := engine.VerifyTransaction(ctx, "tx-1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.True(t, result.PackageActivated)
	assert.Equal(t, "0xabc", result.TransactionHash)
	mockChain.AssertNotCalled(t, "VerifyTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyTransaction_ExpiresLazily(t *testing.T) {
	engine, mockRepo, mockChain, _ := newEngine(t)
	ctx := context.Background()

	payment := pendingPayment()
	payment.ExpiresAt = frozenNow.Add(-time.Minute)

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(payment, nil).
		Once()

	mockRepo.EXPECT().
		UpdateStatusIfPending(ctx, "tx-1", map[string]interface{}{
			"status": models.StatusExpired,
		}).
		Return(true, nil).
		Once()

	result, err := engine.VerifyTransaction(ctx, "tx-1")

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, models.StatusExpired, result.Status)
	mockChain.AssertNotCalled(t, "VerifyTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyTransaction_ChainLookupFailureStaysPending(t *testing.T) {
	engine, mockRepo, mockChain, mockPublisher := newEngine(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(pendingPayment(), nil).
		Once()

	mockChain.EXPECT().
		VerifyTransaction(mock.Anything, "tx-1", decimal.NewFromFloat(0.339), "SC_tx-1_user-1").
		Return(nil, errors.New("toncenter timeout")).
		Once()

	mockRepo.EXPECT().
		UpdateStatusIfPending(ctx, "tx-1", mock.MatchedBy(func(patch map[string]interface{}) bool {
			_, flips := patch["status"]
			return !flips && patch["verification_attempts"] == 1
		})).
		Return(true, nil).
		Once()

	result, err := engine.VerifyTransaction(ctx, "tx-1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrChainLookup)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

// applyPatch mirrors what the store's conditional update does to a pending row.
func applyPatch(payment *models.Payment, patch map[string]interface{}) {
	if v, ok := patch["status"]; ok {
		payment.Status = v.(models.PaymentStatus)
	}
	if v, ok := patch["verification_attempts"]; ok {
		payment.VerificationAttempts = v.(int)
	}
	if v, ok := patch["last_verification_time"]; ok {
		at := v.(time.Time)
		payment.LastVerificationTime = &at
	}
	if v, ok := patch["fraud_score"]; ok {
		payment.FraudScore = v.(int)
	}
	if v, ok := patch["completed_at"]; ok {
		at := v.(time.Time)
		payment.CompletedAt = &at
	}
	if v, ok := patch["ton_transaction_hash"]; ok {
		payment.TonTransactionHash = v.(string)
	}
}

func TestVerifyTransaction_ConfirmsOnThirdCheck(t *testing.T) {
	engine, mockRepo, mockChain, mockPublisher := newEngine(t)
	ctx := context.Background()

	stored := pendingPayment()
	checks := 0

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		RunAndReturn(func(ctx context.Context, transactionID string) (*models.Payment, error) {
			copied := *stored
			return &copied, nil
		})

	mockChain.EXPECT().
		VerifyTransaction(mock.Anything, "tx-1", decimal.NewFromFloat(0.339), "SC_tx-1_user-1").
		RunAndReturn(func(ctx context.Context, reference string, amount decimal.Decimal, expectedComment string) (*tonchain.Verification, error) {
			checks++
			if checks < 3 {
				return &tonchain.Verification{Matched: false, Message: "no matching transfer found"}, nil
			}
			return &tonchain.Verification{Matched: true, Hash: "0xabc"}, nil
		})

	mockRepo.EXPECT().
		UpdateStatusIfPending(ctx, "tx-1", mock.Anything).
		RunAndReturn(func(ctx context.Context, transactionID string, patch map[string]interface{}) (bool, error) {
			if stored.Status != models.StatusPending {
				return false, nil
			}
			applyPatch(stored, patch)
			return true, nil
		})

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentCompletedEventTopic, mock.AnythingOfType("models.PackageActivationEvent")).
		Return(nil).
		Once()

	for i := 1; i <= 2; i++ {
		result, err := engine.VerifyTransaction(ctx, "tx-1")
		assert.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, models.StatusPending, result.Status)
	}

	result, err := engine.VerifyTransaction(ctx, "tx-1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.StatusCompleted, result.Status)
	assert.True(t, result.PackageActivated)
	assert.Equal(t, "0xabc", result.TransactionHash)
	assert.Equal(t, 3, stored.VerificationAttempts)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}

func TestVerifyTransaction_LostRaceDoesNotRepublish(t *testing.T) {
	engine, mockRepo, mockChain, mockPublisher := newEngine(t)
	ctx := context.Background()

	completedAt := frozenNow
	settled := pendingPayment()
	settled.Status = models.StatusCompleted
	settled.CompletedAt = &completedAt
	settled.TonTransactionHash = "0xother"

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(pendingPayment(), nil).
		Once()

	mockChain.EXPECT().
		VerifyTransaction(mock.Anything, "tx-1", decimal.NewFromFloat(0.339), "SC_tx-1_user-1").
		Return(&tonchain.Verification{Matched: true, Hash: "0xabc"}, nil).
		Once()

	mockRepo.EXPECT().
		UpdateStatusIfPending(ctx, "tx-1", mock.Anything).
		Return(false, nil).
		Once()

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(settled, nil).
		Once()

	result, err := engine.VerifyTransaction(ctx, "tx-1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "0xother", result.TransactionHash)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestMultiLayerVerification_UnknownTransaction(t *testing.T) {
	engine, mockRepo, _, _ := newEngine(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-missing").
		Return(nil, nil).
		Once()

	result, err := engine.MultiLayerVerification(ctx, "tx-missing", "user-1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestMultiLayerVerification_WrongOwner(t *testing.T) {
	engine, mockRepo, mockChain, _ := newEngine(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(pendingPayment(), nil).
		Once()

	result, err := engine.MultiLayerVerification(ctx, "tx-1", "user-2")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
	mockChain.AssertNotCalled(t, "VerifyTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMultiLayerVerification_ExpiredShortCircuits(t *testing.T) {
	engine, mockRepo, mockChain, _ := newEngine(t)
	ctx := context.Background()

	payment := pendingPayment()
	payment.Status = models.StatusExpired

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(payment, nil).
		Once()

	result, err := engine.MultiLayerVerification(ctx, "tx-1", "user-1")

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, models.StatusExpired, result.Status)
	assert.Equal(t, 3, result.VerificationLayer)
	mockChain.AssertNotCalled(t, "VerifyTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMultiLayerVerification_CompletedReportsLayer4(t *testing.T) {
	engine, mockRepo, _, _ := newEngine(t)
	ctx := context.Background()

	payment := pendingPayment()
	payment.Status = models.StatusCompleted
	payment.TonTransactionHash = "0xabc"

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(payment, nil).
		Once()

	result, err := engine.MultiLayerVerification(ctx, "tx-1", "user-1")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 4, result.VerificationLayer)
	assert.Equal(t, "0xabc", result.TransactionHash)
}

// racingStore is a minimal in-memory store shared by two engine instances to
// exercise the conditional update under real concurrency.
type racingStore struct {
	mu      sync.Mutex
	payment models.Payment
}

func (s *racingStore) Create(ctx context.Context, payment *models.Payment) error { return nil }

func (s *racingStore) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	s.mu.Lock()
	copied := s.payment
	s.mu.Unlock()
	// Widen the read-check-write window.
	time.Sleep(time.Millisecond)
	return &copied, nil
}

func (s *racingStore) GetByUser(ctx context.Context, userID string, limit int) (*[]models.Payment, error) {
	return &[]models.Payment{}, nil
}

func (s *racingStore) GetActivePending(ctx context.Context, userID string, now time.Time) (*[]models.Payment, error) {
	return &[]models.Payment{}, nil
}

func (s *racingStore) GetRecentByUserAndAmount(ctx context.Context, userID string, amount decimal.Decimal, since time.Time) (*[]models.Payment, error) {
	return &[]models.Payment{}, nil
}

func (s *racingStore) Update(ctx context.Context, payment *models.Payment, transactionID string) error {
	return nil
}

func (s *racingStore) UpdateStatusIfPending(ctx context.Context, transactionID string, patch map[string]interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payment.Status != models.StatusPending {
		return false, nil
	}
	applyPatch(&s.payment, patch)
	return true, nil
}

type countingPublisher struct {
	mu    sync.Mutex
	count int
}

func (p *countingPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count++
	return nil
}

func TestVerifyTransaction_ConcurrentInstancesActivateOnce(t *testing.T) {
	store := &racingStore{payment: *pendingPayment()}
	published := &countingPublisher{}

	mockChain := mocks.NewMockChainClient(t)
	mockChain.EXPECT().
		VerifyTransaction(mock.Anything, "tx-1", decimal.NewFromFloat(0.339), "SC_tx-1_user-1").
		Return(&tonchain.Verification{Matched: true, Hash: "0xabc"}, nil)

	// Separate lock tables simulate separate processes; only the store's
	// conditional update stands between them.
	engines := []*service.VerificationEngine{
		service.NewVerificationEngine(store, mockChain, published, service.NewTxLocks(), 10*time.Second, decimal.NewFromInt(100)),
		service.NewVerificationEngine(store, mockChain, published, service.NewTxLocks(), 10*time.Second, decimal.NewFromInt(100)),
	}
	for _, engine := range engines {
		engine.Now = func() time.Time { return frozenNow }
	}

	var wg sync.WaitGroup
	results := make([]*service.VerificationResult, len(engines))
	for i, engine := range engines {
		wg.Add(1)
		go func(i int, e *service.VerificationEngine) {
			defer wg.Done()
			result, err := e.VerifyTransaction(context.Background(), "tx-1")
			assert.NoError(t, err)
			results[i] = result
		}(i, engine)
	}
	wg.Wait()

	assert.Equal(t, 1, published.count)
	assert.Equal(t, models.StatusCompleted, store.payment.Status)
	for _, result := range results {
		assert.Equal(t, models.StatusCompleted, result.Status)
		assert.True(t, result.Success)
	}
}
