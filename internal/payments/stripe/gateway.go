// Package stripe implements the payments.Gateway interface with the
// Stripe API.
package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Config contains Stripe settings.
type Config struct {
	SecretKey string
}

// Gateway creates PaymentIntents through a dedicated Stripe client.
type Gateway struct {
	api *client.API
}

// NewGateway creates a Stripe gateway.
func NewGateway(cfg Config) *Gateway {
	return &Gateway{api: client.New(cfg.SecretKey, nil)}
}

// CreateIntent requests a card PaymentIntent and returns its client secret.
func (g *Gateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
