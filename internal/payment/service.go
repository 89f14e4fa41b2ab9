package payment

import (
	"fmt"
	"math"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// IntentCreator is the slice of the Stripe client the service needs.
// The v82 paymentintent client satisfies it.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type Service struct {
	intents IntentCreator
}

func NewService(intents IntentCreator) *Service {
	return &Service{intents: intents}
}

// NewStripeService builds a Service backed by the real Stripe API.
func NewStripeService(secretKey string) *Service {
	api := &client.API{}
	api.Init(secretKey, nil)
	return NewService(api.PaymentIntents)
}

// Intent is what the frontend needs to confirm a payment.
type Intent struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// CreateIntent creates a payment intent for amount in major currency
// units. Stripe wants minor units, so rands become cents.
func (s *Service) CreateIntent(userID int, amount float64, currency, orderID string) (Intent, error) {
	if currency == "" {
		currency = "zar"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("userId", strconv.Itoa(userID))
	params.AddMetadata("orderId", orderID)

	pi, err := s.intents.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("create payment intent: %w", err)
	}
	return Intent{ClientSecret: pi.ClientSecret, PaymentIntentID: pi.ID}, nil
}
