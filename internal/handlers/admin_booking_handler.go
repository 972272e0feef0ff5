package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/httpresp"
	"github.com/sportspot/sportspot-api/internal/models"
)

type AdminBookingHandler struct {
	db *gorm.DB
}

func NewAdminBookingHandler(db *gorm.DB) *AdminBookingHandler {
	return &AdminBookingHandler{db: db}
}

// List shows recent bookings, optionally narrowed to a venue or status.
func (h *AdminBookingHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Booking{}).Order("created_at DESC").Limit(200)

	if venueParam := c.Query("venue_id"); venueParam != "" {
		venueID, err := parseID(venueParam)
		if err != nil {
			httperr.BadRequest(c, "invalid_venue_id", "venue_id must be numeric")
			return
		}
		q = q.Where("venue_id = ?", venueID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		httperr.Internal(c, "bookings_unavailable", "Failed to load bookings")
		return
	}

	httpresp.List(c, bookings)
}
