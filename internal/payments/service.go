// Package payments implements charge intent creation and settlement
// recording for completed checkouts.
package payments

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bistroboss/bistro-api/internal/domain"
	"github.com/bistroboss/bistro-api/internal/pkg/ctxlog"
	"github.com/bistroboss/bistro-api/internal/pkg/metrics"
	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

// Service implements payment business logic.
type Service struct {
	repo     Repository
	gateway  Gateway
	currency string
}

// NewService creates a payment service. code must be a valid ISO 4217
// currency ("usd"); it is fixed per deployment.
func NewService(repo Repository, gateway Gateway, code string) (*Service, error) {
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}

	return &Service{
		repo:     repo,
		gateway:  gateway,
		currency: strings.ToLower(unit.String()),
	}, nil
}

// MinorUnits converts a decimal price to gateway minor units, truncating
// fractional cents.
func MinorUnits(price float64) int64 {
	return int64(math.Trunc(price * 100))
}

// CreateIntent requests a charge intent for the price and returns the
// client-side confirmation secret. Nothing is persisted here; the record
// is written only when the client calls back after confirming.
func (s *Service) CreateIntent(ctx context.Context, price float64) (string, error) {
	secret, err := s.gateway.CreateIntent(ctx, MinorUnits(price), s.currency)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	metrics.PaymentIntentsTotal.WithLabelValues("ok").Inc()
	return secret, nil
}

// SettleInput is a confirmed checkout to record.
type SettleInput struct {
	Email         string
	Price         float64
	TransactionID string
	CartItemIDs   []string
}

// SettleResult carries both store outcomes of a settlement.
type SettleResult struct {
	PaymentResult domain.InsertResult `json:"paymentResult"`
	DeleteResult  domain.DeleteResult `json:"deleteResult"`
}

// Settle records a completed payment and purges the cart items it paid
// for. The two writes share one transaction, so a failure leaves no
// half-settled checkout behind.
func (s *Service) Settle(ctx context.Context, input SettleInput) (*SettleResult, error) {
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		Email:         input.Email,
		Amount:        strconv.FormatFloat(input.Price, 'f', 2, 64),
		Currency:      s.currency,
		TransactionID: input.TransactionID,
		CartItemIDs:   input.CartItemIDs,
		Status:        domain.PaymentStatusSettled,
	}

	deleted, err := s.repo.SettlePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("settle payment: %w", err)
	}

	metrics.PaymentsSettledTotal.Inc()
	metrics.CartItemsPurgedTotal.Add(float64(deleted))

	ctxlog.With(ctx, "payment_id", payment.ID, "email", payment.Email).
		Info("payment settled", "cart_items_deleted", deleted)

	return &SettleResult{
		PaymentResult: domain.InsertResult{Acknowledged: true, InsertedID: &payment.ID},
		DeleteResult:  domain.DeleteResult{DeletedCount: deleted},
	}, nil
}

// ListPayments returns the owner's settlement records.
func (s *Service) ListPayments(ctx context.Context, email string) ([]domain.Payment, error) {
	records, err := s.repo.ListPaymentsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return records, nil
}
