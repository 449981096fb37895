package service

import (
	"context"
	"fmt"
	"math"

	"github.com/Maaz9703/maazweb-api/internal/payments"
	"github.com/Maaz9703/maazweb-api/internal/repo"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type PaymentService struct {
	Repo   *repo.GormRepo
	Stripe *payments.Client
}

// CreateIntent opens a payment intent for an online payment. Amounts are in
// currency units and sent to the provider in cents.
func (s *PaymentService) CreateIntent(ctx context.Context, req transport.PaymentIntentRequest) (*transport.PaymentIntentResult, error) {
	// provider minimum is 50 cents
	amountCents := int64(math.Round(req.Amount * 100))
	if amountCents < 50 {
		return nil, fmt.Errorf("%w: invalid amount", ErrValidation)
	}
	if !s.Stripe.Configured() {
		return nil, fmt.Errorf("%w: payment provider not configured, set STRIPE_SECRET_KEY", ErrUnavailable)
	}

	orderRef := ""
	if req.OrderID != 0 {
		orderRef = fmt.Sprint(req.OrderID)
	}
	clientSecret, intentID, err := s.Stripe.CreatePaymentIntent(ctx, amountCents, orderRef)
	if err != nil {
		return nil, err
	}

	if req.OrderID != 0 {
		if err := s.Repo.SetPaymentIntent(ctx, req.OrderID, intentID); err != nil {
			return nil, err
		}
	}

	return &transport.PaymentIntentResult{
		ClientSecret:    clientSecret,
		PaymentIntentID: intentID,
	}, nil
}
