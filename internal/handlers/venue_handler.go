package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/httpresp"
	"github.com/sportspot/sportspot-api/internal/models"
	ucVenue "github.com/sportspot/sportspot-api/internal/usecase/venue"
)

type VenueHandler struct {
	catalog *ucVenue.Catalog
}

func NewVenueHandler(catalog *ucVenue.Catalog) *VenueHandler {
	return &VenueHandler{catalog: catalog}
}

// List supports the browse filters: sport, location and free-text search.
func (h *VenueHandler) List(c *gin.Context) {
	venues, err := h.catalog.ListVenues(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "venues_unavailable", "Failed to load venues")
		return
	}

	if sportParam := c.Query("sport_id"); sportParam != "" {
		sportID, err := strconv.ParseUint(sportParam, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_sport_id", "sport_id must be numeric")
			return
		}

		ids, err := h.catalog.VenueIDsForSport(c.Request.Context(), uint(sportID))
		if err != nil {
			httperr.Internal(c, "venues_unavailable", "Failed to load venues")
			return
		}

		allowed := make(map[uint]bool, len(ids))
		for _, id := range ids {
			allowed[id] = true
		}

		filtered := venues[:0]
		for _, v := range venues {
			if allowed[v.ID] {
				filtered = append(filtered, v)
			}
		}
		venues = filtered
	}

	if location := c.Query("location"); location != "" {
		filtered := venues[:0]
		for _, v := range venues {
			if strings.EqualFold(v.Location, location) {
				filtered = append(filtered, v)
			}
		}
		venues = filtered
	}

	if term := strings.ToLower(c.Query("q")); term != "" {
		filtered := venues[:0]
		for _, v := range venues {
			if strings.Contains(strings.ToLower(v.Name), term) ||
				strings.Contains(strings.ToLower(v.Location), term) ||
				strings.Contains(strings.ToLower(v.Address), term) {
				filtered = append(filtered, v)
			}
		}
		venues = filtered
	}

	httpresp.List(c, venues)
}

func (h *VenueHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}

	v, err := h.catalog.GetVenue(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "venue_not_found", "Venue not found")
		return
	}

	httpresp.OK(c, v)
}

func (h *VenueHandler) SportsForVenue(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "venue id must be numeric")
		return
	}

	sports, err := h.catalog.SportsForVenue(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "sports_unavailable", "Failed to load sports")
		return
	}
	if sports == nil {
		sports = []models.Sport{}
	}

	httpresp.List(c, sports)
}

func (h *VenueHandler) ListSports(c *gin.Context) {
	sports, err := h.catalog.ListSports(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "sports_unavailable", "Failed to load sports")
		return
	}

	httpresp.List(c, sports)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
