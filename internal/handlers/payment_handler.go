package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/starcoin-app/payment-core/internal/models"
	"github.com/starcoin-app/payment-core/internal/models/dto"
	"github.com/starcoin-app/payment-core/internal/service"
)

// SignatureHeader carries the gateway's webhook HMAC.
const SignatureHeader = "X-Signature"

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error)
	GetPaymentStatus(ctx context.Context, transactionID string) (*dto.PaymentStatusResponse, error)
	GetPaymentHistory(ctx context.Context, userID string) ([]dto.PaymentSummary, error)
	GetWalletBalance(ctx context.Context, address string) (decimal.Decimal, error)
	ValidateAddress(address string) bool
}

type PaymentTracker interface {
	StartTracking(ctx context.Context, transactionID, userID string) (*service.TrackingInfo, error)
	GetTrackingStatus(ctx context.Context, trackingID string) (*service.TrackingStatus, error)
	StopTracking(ctx context.Context, trackingID string) error
}

type WebhookService interface {
	HandlePaymentWebhook(ctx context.Context, payload models.WebhookPayload, signature string) (*service.WebhookResult, error)
}

type FraudService interface {
	DetectFraudPattern(ctx context.Context, userID string) (*service.FraudReport, error)
	GenerateVerificationToken(userID, transactionID string) *service.VerificationToken
	VerifyToken(userID, transactionID, token string) bool
}

type PaymentHandler struct {
	Service PaymentService
	Tracker PaymentTracker
	Webhook WebhookService
	Fraud   FraudService
}

func NewPaymentHandler(s PaymentService, t PaymentTracker, w WebhookService, f FraudService) *PaymentHandler {
	return &PaymentHandler{
		Service: s,
		Tracker: t,
		Webhook: w,
		Fraud:   f,
	}
}

// POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Service.CreatePaymentIntent(c.Request.Context(), &req)
	if err != nil {
		var rejection *service.FraudRejectionError
		if errors.As(err, &rejection) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":            rejection.Result.Message,
				"pending_payments": rejection.Result.PendingPayments,
				"cooldown_seconds": rejection.Result.CooldownSeconds,
			})
			return
		}
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GET /payments/:transactionId
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	resp, err := h.Service.GetPaymentStatus(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /payments/history/:userId
func (h *PaymentHandler) GetPaymentHistory(c *gin.Context) {
	payments, err := h.Service.GetPaymentHistory(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// POST /payments/webhook
func (h *PaymentHandler) ReceiveWebhook(c *gin.Context) {
	var payload models.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.Webhook.HandlePaymentWebhook(c.Request.Context(), payload, c.GetHeader(SignatureHeader))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /payments/:transactionId/track
func (h *PaymentHandler) StartTracking(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	info, err := h.Tracker.StartTracking(c.Request.Context(), c.Param("transactionId"), req.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, info)
}

// GET /payments/track/:trackingId
func (h *PaymentHandler) GetTrackingStatus(c *gin.Context) {
	status, err := h.Tracker.GetTrackingStatus(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// DELETE /payments/track/:trackingId
func (h *PaymentHandler) StopTracking(c *gin.Context) {
	if err := h.Tracker.StopTracking(c.Request.Context(), c.Param("trackingId")); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stopped": true})
}

// GET /payments/fraud-check/:userId
func (h *PaymentHandler) FraudCheck(c *gin.Context) {
	report, err := h.Fraud.DetectFraudPattern(c.Request.Context(), c.Param("userId"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// POST /payments/generate-token
func (h *PaymentHandler) GenerateToken(c *gin.Context) {
	var req struct {
		UserID        string `json:"user_id"`
		TransactionID string `json:"transaction_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusCreated, h.Fraud.GenerateVerificationToken(req.UserID, req.TransactionID))
}

// POST /payments/verify-token
func (h *PaymentHandler) VerifyToken(c *gin.Context) {
	var req struct {
		UserID        string `json:"user_id"`
		TransactionID string `json:"transaction_id"`
		Token         string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": h.Fraud.VerifyToken(req.UserID, req.TransactionID, req.Token)})
}

// GET /wallet/balance/:address
func (h *PaymentHandler) GetWalletBalance(c *gin.Context) {
	balance, err := h.Service.GetWalletBalance(c.Request.Context(), c.Param("address"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// GET /wallet/validate/:address
func (h *PaymentHandler) ValidateAddress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"valid": h.Service.ValidateAddress(c.Param("address"))})
}

// HandleGatewayNotification processes a gateway push delivered over Kafka.
// Same reconciler as the HTTP webhook, same signature check.
func (h *PaymentHandler) HandleGatewayNotification(ctx context.Context, topic string, value []byte) error {
	if topic != models.GatewayNotificationsTopic {
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}

	var notification models.GatewayNotification
	if err := json.Unmarshal(value, &notification); err != nil {
		logrus.Errorf("error parsing gateway notification %s", err.Error())
		return fmt.Errorf("error parsing gateway notification %w", err)
	}

	if _, err := h.Webhook.HandlePaymentWebhook(ctx, notification.Payload, notification.Signature); err != nil {
		return fmt.Errorf("error reconciling gateway notification %w", err)
	}
	return nil
}

// abortWithError maps service errors to HTTP statuses. Ownership mismatches
// answer exactly like missing records so existence does not leak.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
	case errors.Is(err, service.ErrUnknownTracking):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tracking id"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidSignature):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
	case errors.Is(err, service.ErrFraudRejected):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("internal error: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
