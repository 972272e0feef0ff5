package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/sportspot/sportspot-api/internal/availability"
	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/httpresp"
)

type AvailabilityHandler struct {
	reconciler *availability.Reconciler
}

func NewAvailabilityHandler(reconciler *availability.Reconciler) *AvailabilityHandler {
	return &AvailabilityHandler{reconciler: reconciler}
}

// Get answers the booked state once.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	ref, ok := slotRefParam(c)
	if !ok {
		return
	}

	watch, err := h.reconciler.Watch(c.Request.Context(), ref)
	if err != nil {
		httperr.NotFound(c, "slot_not_found", "Slot not found")
		return
	}
	defer watch.Close()

	httpresp.OK(c, gin.H{"is_booked": watch.Booked()})
}

// Stream pushes booked-state changes over SSE until the client goes away.
// The watch and its subscriptions are released when the stream ends.
func (h *AvailabilityHandler) Stream(c *gin.Context) {
	ref, ok := slotRefParam(c)
	if !ok {
		return
	}

	watch, err := h.reconciler.Watch(c.Request.Context(), ref)
	if err != nil {
		httperr.NotFound(c, "slot_not_found", "Slot not found")
		return
	}
	defer watch.Close()

	c.SSEvent("availability", gin.H{"is_booked": watch.Booked()})
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case booked, open := <-watch.Updates():
			if !open {
				return false
			}
			c.SSEvent("availability", gin.H{"is_booked": booked})
			return true
		case <-clientGone:
			return false
		}
	})
}
