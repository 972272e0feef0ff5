package slots

import (
	"context"
	"log"

	domain "github.com/sportspot/sportspot-api/internal/domain/schedule"
	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/models"
	"github.com/sportspot/sportspot-api/internal/walltime"
)

// insertBatchSize bounds a single slot write.
const insertBatchSize = 10

// Generator owns the load-or-generate pass for a (venue, sport, date) day.
type Generator struct {
	repo domain.Repository
	prov *Provisioner
}

func NewGenerator(repo domain.Repository, prov *Provisioner) *Generator {
	return &Generator{repo: repo, prov: prov}
}

// GetSlots returns the persisted slots for the day, generating and persisting
// the full grid first if none exist yet. A day is generated exactly once;
// slots already stored are returned as they are, never re-priced.
func (g *Generator) GetSlots(
	ctx context.Context,
	venueID uint,
	sportID uint,
	date string,
) ([]models.Slot, error) {

	if !walltime.ValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	existing, err := g.repo.ListSlots(ctx, venueID, sportID, date)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	if err := g.prov.EnsureOperatingHours(ctx, venueID); err != nil {
		return nil, err
	}
	if err := g.prov.EnsurePricing(ctx, venueID); err != nil {
		return nil, err
	}

	generated, err := g.buildDay(ctx, venueID, sportID, date)
	if err != nil {
		return nil, err
	}

	// Batched persist. A failed batch is logged and its slots dropped from
	// the result; the remaining batches still go through.
	stored := make([]models.Slot, 0, len(generated))
	for from := 0; from < len(generated); from += insertBatchSize {
		to := from + insertBatchSize
		if to > len(generated) {
			to = len(generated)
		}

		batch, err := g.repo.InsertSlots(ctx, generated[from:to])
		if err != nil {
			log.Printf("slots: insert batch %d-%d for venue %d sport %d %s: %v",
				from, to, venueID, sportID, date, err)
			continue
		}
		stored = append(stored, batch...)
	}

	return stored, nil
}

// Preview synthesizes the day's grid without writing anything. Slots come
// back with zero IDs; their identity is the synthesized slot ref. Venues with
// no stored hours or pricing preview against the defaults.
func (g *Generator) Preview(
	ctx context.Context,
	venueID uint,
	sportID uint,
	date string,
) ([]models.Slot, error) {

	if !walltime.ValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return g.buildDay(ctx, venueID, sportID, date)
}

func (g *Generator) buildDay(
	ctx context.Context,
	venueID uint,
	sportID uint,
	date string,
) ([]models.Slot, error) {

	day, err := walltime.Weekday(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	windows, err := g.repo.ListOperatingHours(ctx, venueID, domain.DayName(day))
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		windows = windowsForDay(DefaultOperatingHours(venueID), domain.DayName(day))
	}

	rules, err := g.repo.ListPricingRules(ctx, venueID)
	if err != nil {
		return nil, err
	}

	return domain.BuildDaySlots(venueID, sportID, date, day, windows, rules), nil
}

func windowsForDay(rows []models.OperatingHours, day string) []models.OperatingHours {
	var out []models.OperatingHours
	for _, w := range rows {
		if w.DayOfWeek == day {
			out = append(out, w)
		}
	}
	return out
}

// Ref builds the slot ref for a slot returned by GetSlots or Preview.
func Ref(s models.Slot) domain.SlotRef {
	if s.ID != 0 {
		return domain.SlotRef{ID: s.ID}
	}
	return domain.SlotRef{
		VenueID:   s.VenueID,
		SportID:   s.SportID,
		Date:      s.Date,
		StartTime: s.StartTime,
	}
}
