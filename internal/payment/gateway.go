package payment

import (
	"context"

	"github.com/sportspot/sportspot-api/internal/models"
)

// Checkout is the hosted-payment handle returned to the client. Capture and
// webhooks stay with the gateway; the core only creates the checkout.
type Checkout struct {
	PreferenceID string `json:"preference_id"`
	CheckoutURL  string `json:"checkout_url"`
}

type Gateway interface {
	CreateCheckout(
		ctx context.Context,
		b *models.Booking,
		venueName string,
		sportName string,
	) (*Checkout, error)
}
