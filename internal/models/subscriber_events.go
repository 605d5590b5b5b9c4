package models

const (
	// GatewayNotificationsTopic carries gateway status pushes delivered over
	// Kafka instead of HTTP. Both channels feed the same reconciler and share
	// its signature check and idempotency guarantees.
	GatewayNotificationsTopic = "payments.gateway.notifications"
)

// WebhookPayload is the gateway-reported status for one transaction. Its
// canonical JSON form (struct field order as declared) is the input to the
// webhook signature.
type WebhookPayload struct {
	TransactionID      string        `json:"transaction_id"`
	Status             PaymentStatus `json:"status"`
	TonTransactionHash string        `json:"ton_transaction_hash,omitempty"`
}

// GatewayNotification wraps a webhook payload with its signature for
// delivery over the Kafka channel.
type GatewayNotification struct {
	Payload   WebhookPayload `json:"payload"`
	Signature string         `json:"signature"`
}
