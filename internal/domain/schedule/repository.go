package schedule

import (
	"context"

	"github.com/sportspot/sportspot-api/internal/models"
)

// Repository is the data-store collaborator the slot engine works against.
// Implementations must echo store-assigned identities back from InsertSlots.
type Repository interface {
	// -------- Slots --------
	ListSlots(
		ctx context.Context,
		venueID uint,
		sportID uint,
		date string,
	) ([]models.Slot, error)

	InsertSlots(
		ctx context.Context,
		batch []models.Slot,
	) ([]models.Slot, error)

	// -------- Operating hours --------
	CountOperatingHours(
		ctx context.Context,
		venueID uint,
	) (int64, error)

	ListOperatingHours(
		ctx context.Context,
		venueID uint,
		dayOfWeek string,
	) ([]models.OperatingHours, error)

	InsertOperatingHours(
		ctx context.Context,
		rows []models.OperatingHours,
	) error

	// -------- Pricing --------
	CountPricingRules(
		ctx context.Context,
		venueID uint,
	) (int64, error)

	ListPricingRules(
		ctx context.Context,
		venueID uint,
	) ([]models.PricingRule, error)

	InsertPricingRules(
		ctx context.Context,
		rows []models.PricingRule,
	) error
}
