package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/sportspot/sportspot-api/internal/models"
)

type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPago{prefs: preference.NewClient(cfg)}, nil
}

func (g *MercadoPago) CreateCheckout(
	ctx context.Context,
	b *models.Booking,
	venueName string,
	sportName string,
) (*Checkout, error) {

	req := preference.Request{
		ExternalReference: b.InvoiceNumber,
		Items: []preference.ItemRequest{
			{
				Title:       fmt.Sprintf("%s at %s", sportName, venueName),
				Description: "Court booking " + b.SlotTime,
				Quantity:    1,
				UnitPrice:   float64(b.Amount),
			},
		},
	}

	resp, err := g.prefs.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &Checkout{
		PreferenceID: resp.ID,
		CheckoutURL:  resp.InitPoint,
	}, nil
}

var _ Gateway = (*MercadoPago)(nil)
