package slots

import (
	"context"
	"time"

	domain "github.com/sportspot/sportspot-api/internal/domain/schedule"
	"github.com/sportspot/sportspot-api/internal/models"
)

// Provisioner gives a venue a usable baseline on first use: a morning and an
// evening window for every day, and a flat all-days price. Both calls are
// idempotent; they insert only when the venue has no rows at all.
type Provisioner struct {
	repo domain.Repository
}

func NewProvisioner(repo domain.Repository) *Provisioner {
	return &Provisioner{repo: repo}
}

func (p *Provisioner) EnsureOperatingHours(ctx context.Context, venueID uint) error {
	count, err := p.repo.CountOperatingHours(ctx, venueID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return p.repo.InsertOperatingHours(ctx, DefaultOperatingHours(venueID))
}

func (p *Provisioner) EnsurePricing(ctx context.Context, venueID uint) error {
	count, err := p.repo.CountPricingRules(ctx, venueID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return p.repo.InsertPricingRules(ctx, DefaultPricingRules(venueID))
}

// DefaultOperatingHours is the 06:00-12:00 morning plus 12:00-23:00 evening
// window for every day of the week.
func DefaultOperatingHours(venueID uint) []models.OperatingHours {
	rows := make([]models.OperatingHours, 0, 14)
	for d := time.Sunday; d <= time.Saturday; d++ {
		day := domain.DayName(d)
		rows = append(rows,
			models.OperatingHours{
				VenueID:   venueID,
				DayOfWeek: day,
				StartTime: "06:00:00",
				EndTime:   "12:00:00",
				IsMorning: true,
			},
			models.OperatingHours{
				VenueID:   venueID,
				DayOfWeek: day,
				StartTime: "12:00:00",
				EndTime:   "23:00:00",
				IsMorning: false,
			},
		)
	}
	return rows
}

// DefaultPricingRules is the flat baseline: the fallback price for every day,
// one rule per morning flag so resolution finds it either way.
func DefaultPricingRules(venueID uint) []models.PricingRule {
	return []models.PricingRule{
		{
			VenueID:        venueID,
			DayGroup:       domain.DayGroupAll,
			TimeRange:      "6-12",
			IsMorning:      true,
			Price:          domain.DefaultPrice,
			PerDurationMin: domain.SlotMinutes,
		},
		{
			VenueID:        venueID,
			DayGroup:       domain.DayGroupAll,
			TimeRange:      "12-23",
			IsMorning:      false,
			Price:          domain.DefaultPrice,
			PerDurationMin: domain.SlotMinutes,
		},
	}
}
