package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/httpresp"
	"github.com/sportspot/sportspot-api/internal/models"
	ucVenue "github.com/sportspot/sportspot-api/internal/usecase/venue"
)

type AdminSportHandler struct {
	db      *gorm.DB
	catalog *ucVenue.Catalog
}

func NewAdminSportHandler(db *gorm.DB, catalog *ucVenue.Catalog) *AdminSportHandler {
	return &AdminSportHandler{db: db, catalog: catalog}
}

type SportRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *AdminSportHandler) Create(c *gin.Context) {
	var req SportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	sport := models.Sport{Name: req.Name, Description: req.Description}
	if err := h.db.Create(&sport).Error; err != nil {
		httperr.Internal(c, "failed_to_create_sport", "Failed to create sport")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.Created(c, sport)
}

func (h *AdminSportHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "sport id must be numeric")
		return
	}

	var req SportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var sport models.Sport
	if err := h.db.First(&sport, id).Error; err != nil {
		httperr.NotFound(c, "sport_not_found", "Sport not found")
		return
	}

	sport.Name = req.Name
	sport.Description = req.Description

	if err := h.db.Save(&sport).Error; err != nil {
		httperr.Internal(c, "failed_to_update_sport", "Failed to update sport")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.OK(c, sport)
}

func (h *AdminSportHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "sport id must be numeric")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sport_id = ?", id).Delete(&models.VenueSport{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Sport{}, id).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_sport", "Failed to delete sport")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}
