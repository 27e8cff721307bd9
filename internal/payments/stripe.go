package payments

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

// StripeIssuer creates hosted checkout pages for invoice totals.
type StripeIssuer struct {
	successURL string
}

type StripeIssuerDependencies struct {
	SecretKey  string
	SuccessURL string
}

func NewStripeIssuer(deps StripeIssuerDependencies) *StripeIssuer {
	stripe.Key = deps.SecretKey

	return &StripeIssuer{
		successURL: deps.SuccessURL,
	}
}

func (s *StripeIssuer) CreatePaymentLink(ctx context.Context, invoice domain.Invoice) (string, error) {
	amountCents := int64(math.Round(invoice.Total() * 100))
	if amountCents <= 0 {
		return "", domain.NewValidationError("total", "must be positive")
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(invoice.Currency)),
					UnitAmount: stripe.Int64(amountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Invoice %s", invoice.Number)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.successURL),
	}
	params.Context = ctx

	checkoutSession, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return checkoutSession.URL, nil
}
