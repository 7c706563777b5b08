package dto

// PaymentEvent is the payment provider webhook payload.
type PaymentEvent struct {
	Type            string `json:"type"`
	OrderReference  string `json:"order_reference"`
	PaymentIntentID string `json:"payment_intent_id"`
}
