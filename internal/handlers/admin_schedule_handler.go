package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/sportspot/sportspot-api/internal/domain/schedule"
	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/httpresp"
	"github.com/sportspot/sportspot-api/internal/models"
)

// AdminScheduleHandler manages a venue's operating hours and pricing rules.
// Changed rules only affect days whose slots have not been generated yet;
// persisted slots keep their price.
type AdminScheduleHandler struct {
	db *gorm.DB
}

func NewAdminScheduleHandler(db *gorm.DB) *AdminScheduleHandler {
	return &AdminScheduleHandler{db: db}
}

// --------------------------------------------------
// Operating hours
// --------------------------------------------------

func (h *AdminScheduleHandler) ListHours(c *gin.Context) {
	venueID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}

	var rows []models.OperatingHours
	if err := h.db.
		Where("venue_id = ?", venueID).
		Order("day_of_week ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "hours_unavailable", "Failed to load operating hours")
		return
	}

	httpresp.List(c, rows)
}

type OperatingHoursRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	IsMorning bool   `json:"is_morning"`
}

type PutHoursRequest struct {
	Windows []OperatingHoursRequest `json:"windows" binding:"required"`
}

// PutHours replaces the venue's whole week in one write.
func (h *AdminScheduleHandler) PutHours(c *gin.Context) {
	venueID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}

	var req PutHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rows := make([]models.OperatingHours, 0, len(req.Windows))
	for _, w := range req.Windows {
		rows = append(rows, models.OperatingHours{
			VenueID:   venueID,
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			IsMorning: w.IsMorning,
		})
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", venueID).Delete(&models.OperatingHours{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_hours", "Failed to update operating hours")
		return
	}

	httpresp.List(c, rows)
}

// --------------------------------------------------
// Pricing rules
// --------------------------------------------------

func (h *AdminScheduleHandler) ListPricing(c *gin.Context) {
	venueID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}

	var rules []models.PricingRule
	if err := h.db.
		Where("venue_id = ?", venueID).
		Order("day_group ASC").
		Find(&rules).Error; err != nil {
		httperr.Internal(c, "pricing_unavailable", "Failed to load pricing rules")
		return
	}

	httpresp.List(c, rules)
}

type PricingRuleRequest struct {
	DayGroup  string `json:"day_group" binding:"required"`
	TimeRange string `json:"time_range"`
	IsMorning bool   `json:"is_morning"`
	Price     int    `json:"price" binding:"required,gt=0"`
}

type PutPricingRequest struct {
	Rules []PricingRuleRequest `json:"rules" binding:"required"`
}

func (h *AdminScheduleHandler) PutPricing(c *gin.Context) {
	venueID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}

	var req PutPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rules := make([]models.PricingRule, 0, len(req.Rules))
	for _, r := range req.Rules {
		rules = append(rules, models.PricingRule{
			VenueID:        venueID,
			DayGroup:       r.DayGroup,
			TimeRange:      r.TimeRange,
			IsMorning:      r.IsMorning,
			Price:          r.Price,
			PerDurationMin: domain.SlotMinutes,
		})
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", venueID).Delete(&models.PricingRule{}).Error; err != nil {
			return err
		}
		if len(rules) == 0 {
			return nil
		}
		return tx.Create(&rules).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_pricing", "Failed to update pricing rules")
		return
	}

	httpresp.List(c, rules)
}
