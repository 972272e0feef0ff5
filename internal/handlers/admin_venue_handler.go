package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/httpresp"
	"github.com/sportspot/sportspot-api/internal/images"
	"github.com/sportspot/sportspot-api/internal/models"
	ucVenue "github.com/sportspot/sportspot-api/internal/usecase/venue"
)

type AdminVenueHandler struct {
	db       *gorm.DB
	catalog  *ucVenue.Catalog
	uploader *images.S3Uploader
}

func NewAdminVenueHandler(db *gorm.DB, catalog *ucVenue.Catalog, uploader *images.S3Uploader) *AdminVenueHandler {
	return &AdminVenueHandler{db: db, catalog: catalog, uploader: uploader}
}

type VenueRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Address  string `json:"address"`
}

func (h *AdminVenueHandler) Create(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	venue := models.Venue{
		Name:     req.Name,
		Location: req.Location,
		Address:  req.Address,
	}

	if err := h.db.Create(&venue).Error; err != nil {
		httperr.Internal(c, "failed_to_create_venue", "Failed to create venue")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.Created(c, venue)
}

func (h *AdminVenueHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var venue models.Venue
	if err := h.db.First(&venue, id).Error; err != nil {
		httperr.NotFound(c, "venue_not_found", "Venue not found")
		return
	}

	venue.Name = req.Name
	venue.Location = req.Location
	venue.Address = req.Address

	if err := h.db.Save(&venue).Error; err != nil {
		httperr.Internal(c, "failed_to_update_venue", "Failed to update venue")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.OK(c, venue)
}

// Delete removes a venue and its dependent rows, the cleanup used when admins
// weed out duplicate venues.
func (h *AdminVenueHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&models.VenueSport{}).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&models.OperatingHours{}).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&models.PricingRule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("venue_id = ?", id).Delete(&models.Slot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Venue{}, id).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_venue", "Failed to delete venue")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// UploadImage accepts a multipart image, converts it to webp and stores it.
func (h *AdminVenueHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "uploads_disabled", "Image uploads are not configured")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}

	var venue models.Venue
	if err := h.db.First(&venue, id).Error; err != nil {
		httperr.NotFound(c, "venue_not_found", "Venue not found")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "image file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Failed to read image")
		return
	}
	defer src.Close()

	processed, err := images.ProcessVenueImage(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not process image")
		return
	}

	key := fmt.Sprintf("venues/%d.webp", venue.ID)
	url, err := h.uploader.Upload(c.Request.Context(), key, processed)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store image")
		return
	}

	venue.ImageURL = url
	if err := h.db.Save(&venue).Error; err != nil {
		httperr.Internal(c, "failed_to_update_venue", "Failed to save image URL")
		return
	}

	h.catalog.Invalidate(c.Request.Context())
	httpresp.OK(c, venue)
}

// --------------------------------------------------
// Venue-sport links
// --------------------------------------------------

type VenueSportRequest struct {
	SportID uint `json:"sport_id" binding:"required"`
}

func (h *AdminVenueHandler) LinkSport(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}

	var req VenueSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	link := models.VenueSport{VenueID: id, SportID: req.SportID}
	if err := h.db.Create(&link).Error; err != nil {
		httperr.Conflict(c, "link_exists", "Venue already offers this sport")
		return
	}

	httpresp.Created(c, link)
}

func (h *AdminVenueHandler) UnlinkSport(c *gin.Context) {
	venueID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}
	sportID, err := parseID(c.Param("sportId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "sport id must be numeric")
		return
	}

	if err := h.db.
		Where("venue_id = ? AND sport_id = ?", venueID, sportID).
		Delete(&models.VenueSport{}).Error; err != nil {
		httperr.Internal(c, "failed_to_unlink", "Failed to unlink sport")
		return
	}

	c.Status(http.StatusNoContent)
}
