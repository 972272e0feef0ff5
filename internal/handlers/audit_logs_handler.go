package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/httpresp"
	"github.com/sportspot/sportspot-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	q := h.db.Model(&models.AuditLog{}).Order("created_at DESC").Limit(100)

	if venueParam := c.Query("venue_id"); venueParam != "" {
		venueID, err := parseID(venueParam)
		if err != nil {
			httperr.BadRequest(c, "invalid_venue_id", "venue_id must be numeric")
			return
		}
		q = q.Where("venue_id = ?", venueID)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		httperr.Internal(c, "audit_unavailable", "Failed to load audit logs")
		return
	}

	httpresp.List(c, logs)
}
