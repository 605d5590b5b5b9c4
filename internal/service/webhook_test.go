package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/starcoin-app/payment-core/internal/models"
	"github.com/starcoin-app/payment-core/internal/service"
	"github.com/starcoin-app/payment-core/internal/service/mocks"
)

const webhookSecret = "webhook-secret"

func newReconciler(t *testing.T) (*service.WebhookReconciler, *mocks.MockPaymentRepo, *mocks.MockPublisher) {
	mockRepo := mocks.NewMockPaymentRepo(t)
	mockPublisher := mocks.NewMockPublisher(t)
	reconciler := service.NewWebhookReconciler(mockRepo, mockPublisher, service.NewTxLocks(), webhookSecret)
	reconciler.Now = func() time.Time { return frozenNow }
	return reconciler, mockRepo, mockPublisher
}

func TestHandlePaymentWebhook_BadSignatureTouchesNothing(t *testing.T) {
	reconciler, mockRepo, mockPublisher := newReconciler(t)

	payload := models.WebhookPayload{
		TransactionID:      "tx-1",
		Status:             models.StatusCompleted,
		TonTransactionHash: "0xabc",
	}

	result, err := reconciler.HandlePaymentWebhook(context.Background(), payload, "deadbeef")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrInvalidSignature)
	mockRepo.AssertNotCalled(t, "GetByTransactionID", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePaymentWebhook_UnknownStatus(t *testing.T) {
	reconciler, _, _ := newReconciler(t)

	payload := models.WebhookPayload{TransactionID: "tx-1", Status: "settled"}
	signature := service.SignWebhookPayload(webhookSecret, payload)

	result, err := reconciler.HandlePaymentWebhook(context.Background(), payload, signature)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestHandlePaymentWebhook_UnknownTransaction(t *testing.T) {
	reconciler, mockRepo, _ := newReconciler(t)
	ctx := context.Background()

	payload := models.WebhookPayload{TransactionID: "tx-missing", Status: models.StatusCompleted}
	signature := service.SignWebhookPayload(webhookSecret, payload)

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-missing").
		Return(nil, nil).
		Once()

	result, err := reconciler.HandlePaymentWebhook(ctx, payload, signature)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestHandlePaymentWebhook_CompletedActivatesOnce(t *testing.T) {
	reconciler, mockRepo, mockPublisher := newReconciler(t)
	ctx := context.Background()

	payload := models.WebhookPayload{
		TransactionID:      "tx-1",
		Status:             models.StatusCompleted,
		TonTransactionHash: "0xabc",
	}
	signature := service.SignWebhookPayload(webhookSecret, payload)

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(pendingPayment(), nil).
		Once()

	mockRepo.EXPECT().
		UpdateStatusIfPending(ctx, "tx-1", map[string]interface{}{
			"status":               models.StatusCompleted,
			"completed_at":         frozenNow,
			"ton_transaction_hash": "0xabc",
		}).
		Return(true, nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentCompletedEventTopic, mock.AnythingOfType("models.PackageActivationEvent")).
		Return(nil).
		Once()

	result, err := reconciler.HandlePaymentWebhook(ctx, payload, signature)

	assert.NoError(t, err)
	assert.True(t, result.Accepted)
}

func TestHandlePaymentWebhook_RedeliveryIsIdempotent(t *testing.T) {
	reconciler, mockRepo, mockPublisher := newReconciler(t)
	ctx := context.Background()

	payload := models.WebhookPayload{
		TransactionID:      "tx-1",
		Status:             models.StatusCompleted,
		TonTransactionHash: "0xabc",
	}
	signature := service.SignWebhookPayload(webhookSecret, payload)

	settled := pendingPayment()
	settled.Status = models.StatusCompleted
	settled.TonTransactionHash = "0xabc"

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(settled, nil).
		Once()

	result, err := reconciler.HandlePaymentWebhook(ctx, payload, signature)

	assert.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, "payment already settled", result.Message)
	mockRepo.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePaymentWebhook_PendingReportIsNoOp(t *testing.T) {
	reconciler, mockRepo, _ := newReconciler(t)
	ctx := context.Background()

	payload := models.WebhookPayload{TransactionID: "tx-1", Status: models.StatusPending}
	signature := service.SignWebhookPayload(webhookSecret, payload)

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(pendingPayment(), nil).
		Once()

	result, err := reconciler.HandlePaymentWebhook(ctx, payload, signature)

	assert.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, "no status change", result.Message)
	mockRepo.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePaymentWebhook_LostRaceDoesNotPublish(t *testing.T) {
	reconciler, mockRepo, mockPublisher := newReconciler(t)
	ctx := context.Background()

	payload := models.WebhookPayload{
		TransactionID:      "tx-1",
		Status:             models.StatusFailed,
		TonTransactionHash: "",
	}
	signature := service.SignWebhookPayload(webhookSecret, payload)

	mockRepo.EXPECT().
		GetByTransactionID(ctx, "tx-1").
		Return(pendingPayment(), nil).
		Once()

	mockRepo.EXPECT().
		UpdateStatusIfPending(ctx, "tx-1", map[string]interface{}{
			"status": models.StatusFailed,
		}).
		Return(false, nil).
		Once()

	result, err := reconciler.HandlePaymentWebhook(ctx, payload, signature)

	assert.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, "payment already settled", result.Message)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
