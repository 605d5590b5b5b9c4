package app

import "github.com/starcoin-app/payment-core/internal/handlers"

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	payments := a.Router.Group("/payments")
	payments.POST("", h.CreatePayment)
	payments.GET("/history/:userId", h.GetPaymentHistory)
	payments.POST("/webhook", h.ReceiveWebhook)
	payments.GET("/track/:trackingId", h.GetTrackingStatus)
	payments.DELETE("/track/:trackingId", h.StopTracking)
	payments.GET("/fraud-check/:userId", h.FraudCheck)
	payments.POST("/generate-token", h.GenerateToken)
	payments.POST("/verify-token", h.VerifyToken)
	payments.GET("/:transactionId", h.GetPaymentStatus)
	payments.POST("/:transactionId/track", h.StartTracking)

	wallet := a.Router.Group("/wallet")
	wallet.GET("/balance/:address", h.GetWalletBalance)
	wallet.GET("/validate/:address", h.ValidateAddress)
}
