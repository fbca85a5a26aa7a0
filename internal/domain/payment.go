package domain

import "time"

// PaymentStatus tracks a checkout through its lifecycle. The confirmation
// step happens on the gateway side; the server only ever records settled
// payments, so "pending" exists for records written before confirmation
// callbacks (not used by the current flow, kept for gateway webhooks).
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSettled PaymentStatus = "settled"
)

// Payment is an immutable settlement record: one completed checkout,
// including the cart item ids it paid for.
type Payment struct {
	ID            string        `json:"_id"`
	Email         string        `json:"email"`
	Amount        string        `json:"price"`
	Currency      string        `json:"currency"`
	TransactionID string        `json:"transactionId"`
	CartItemIDs   []string      `json:"cartIds"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"date"`
}
