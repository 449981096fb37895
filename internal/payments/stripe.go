package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Client wraps the Stripe SDK. A Client built without a secret key reports
// Configured() == false and the API answers 503 for payment intents.
type Client struct {
	api *client.API
}

func NewClient(secretKey string) *Client {
	if secretKey == "" {
		return &Client{}
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

func (c *Client) Configured() bool {
	return c != nil && c.api != nil
}

// CreatePaymentIntent opens an intent for the given amount in cents and
// returns its client secret and id.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountCents int64, orderID string) (clientSecret, intentID string, err error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.AddMetadata("orderId", orderID)

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", "", fmt.Errorf("stripe: create payment intent: %w", err)
	}
	return intent.ClientSecret, intent.ID, nil
}
