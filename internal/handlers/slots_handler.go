package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	domain "github.com/sportspot/sportspot-api/internal/domain/schedule"
	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/httpresp"
	"github.com/sportspot/sportspot-api/internal/models"
	ucSlots "github.com/sportspot/sportspot-api/internal/usecase/slots"
)

type SlotsHandler struct {
	generator *ucSlots.Generator
}

func NewSlotsHandler(generator *ucSlots.Generator) *SlotsHandler {
	return &SlotsHandler{generator: generator}
}

// SlotResponse carries the slot plus the ref token the booking flow needs.
type SlotResponse struct {
	models.Slot
	Ref string `json:"ref"`
}

func (h *SlotsHandler) List(c *gin.Context) {
	venueID, sportID, date, ok := slotQuery(c)
	if !ok {
		return
	}

	slots, err := h.generator.GetSlots(c.Request.Context(), venueID, sportID, date)
	if err != nil {
		writeSlotError(c, err)
		return
	}

	httpresp.List(c, withRefs(slots))
}

// Preview serves the ephemeral grid without persisting anything.
func (h *SlotsHandler) Preview(c *gin.Context) {
	venueID, sportID, date, ok := slotQuery(c)
	if !ok {
		return
	}

	slots, err := h.generator.Preview(c.Request.Context(), venueID, sportID, date)
	if err != nil {
		writeSlotError(c, err)
		return
	}

	httpresp.List(c, withRefs(slots))
}

func withRefs(slots []models.Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			Slot: s,
			Ref:  ucSlots.Ref(s).Token(),
		})
	}
	return out
}

func slotQuery(c *gin.Context) (venueID, sportID uint, date string, ok bool) {
	venueID, err := parseID(c.Query("venue_id"))
	if err != nil || venueID == 0 {
		httperr.BadRequest(c, "invalid_venue_id", "venue_id is required and must be numeric")
		return 0, 0, "", false
	}

	sportID, err = parseID(c.Query("sport_id"))
	if err != nil || sportID == 0 {
		httperr.BadRequest(c, "invalid_sport_id", "sport_id is required and must be numeric")
		return 0, 0, "", false
	}

	date = c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "invalid_date", "date is required (YYYY-MM-DD)")
		return 0, 0, "", false
	}

	return venueID, sportID, date, true
}

func writeSlotError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.BadRequest(c, be.Code, httperr.FriendlyMessage(be.Code))
		return
	}
	httperr.Internal(c, "slots_unavailable", "Failed to load slots")
}

func slotRefParam(c *gin.Context) (domain.SlotRef, bool) {
	ref, err := domain.ParseSlotRef(c.Param("ref"))
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_ref", "Unrecognized slot reference")
		return domain.SlotRef{}, false
	}
	return ref, true
}
