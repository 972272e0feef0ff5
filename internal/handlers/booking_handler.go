package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/sportspot/sportspot-api/internal/domain/schedule"
	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/httpresp"
	"github.com/sportspot/sportspot-api/internal/middleware"
	ucBooking "github.com/sportspot/sportspot-api/internal/usecase/booking"
)

type BookingHandler struct {
	creator   *ucBooking.Creator
	canceller *ucBooking.Canceller
	lister    *ucBooking.Lister
}

func NewBookingHandler(
	creator *ucBooking.Creator,
	canceller *ucBooking.Canceller,
	lister *ucBooking.Lister,
) *BookingHandler {
	return &BookingHandler{
		creator:   creator,
		canceller: canceller,
		lister:    lister,
	}
}

type CreateBookingRequest struct {
	SlotRef string `json:"slot_ref" binding:"required"`

	// Needed only when booking a preview slot.
	VenueID uint `json:"venue_id"`
	SportID uint `json:"sport_id"`
	Price   int  `json:"price"`

	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ref, err := domain.ParseSlotRef(req.SlotRef)
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_ref", "Unrecognized slot reference")
		return
	}

	b, err := h.creator.Execute(c.Request.Context(), ucBooking.CreateInput{
		UserID:   c.GetUint(middleware.ContextUserID),
		Ref:      ref,
		VenueID:  req.VenueID,
		SportID:  req.SportID,
		Price:    req.Price,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.lister.Execute(c.Request.Context(), c.GetUint(middleware.ContextUserID))
	if err != nil {
		httperr.Internal(c, "bookings_unavailable", "Failed to load bookings")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "booking id must be numeric")
		return
	}

	b, err := h.canceller.Execute(c.Request.Context(), id, c.GetUint(middleware.ContextUserID))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func writeBookingError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		status := http.StatusBadRequest
		switch be.Code {
		case "auth_required":
			status = http.StatusUnauthorized
		case "slot_already_booked":
			status = http.StatusConflict
		case "slot_not_found":
			status = http.StatusNotFound
		}
		httperr.Write(c, status, be.Code, httperr.FriendlyMessage(be.Code))
		return
	}

	httperr.Internal(c, "booking_failed", err.Error())
}
