package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/sportspot/sportspot-api/internal/domain/booking"
	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/httpresp"
	"github.com/sportspot/sportspot-api/internal/middleware"
	"github.com/sportspot/sportspot-api/internal/payment"
	ucVenue "github.com/sportspot/sportspot-api/internal/usecase/venue"
)

type CheckoutHandler struct {
	bookings domain.Repository
	catalog  *ucVenue.Catalog
	gateway  payment.Gateway
}

func NewCheckoutHandler(
	bookings domain.Repository,
	catalog *ucVenue.Catalog,
	gateway payment.Gateway,
) *CheckoutHandler {
	return &CheckoutHandler{
		bookings: bookings,
		catalog:  catalog,
		gateway:  gateway,
	}
}

// Create opens a hosted checkout for one of the caller's bookings. Capture
// and settlement stay with the gateway.
func (h *CheckoutHandler) Create(c *gin.Context) {
	if h.gateway == nil {
		httperr.Internal(c, "payments_disabled", "Payments are not configured")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "booking id must be numeric")
		return
	}

	b, err := h.bookings.GetForUser(c.Request.Context(), id, c.GetUint(middleware.ContextUserID))
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found")
		return
	}

	venueName := ""
	if v, err := h.catalog.GetVenue(c.Request.Context(), b.VenueID); err == nil {
		venueName = v.Name
	}
	sportName := ""
	if s, err := h.catalog.GetSport(c.Request.Context(), b.SportID); err == nil {
		sportName = s.Name
	}

	checkout, err := h.gateway.CreateCheckout(c.Request.Context(), b, venueName, sportName)
	if err != nil {
		httperr.Internal(c, "checkout_failed", "Failed to create checkout")
		return
	}

	httpresp.Created(c, checkout)
}
