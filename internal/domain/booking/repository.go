package booking

import (
	"context"

	"github.com/sportspot/sportspot-api/internal/models"
)

type Repository interface {
	// -------- Slot lookups --------
	GetSlotByID(
		ctx context.Context,
		id uint,
	) (*models.Slot, error)

	// -------- Booking (create) --------

	// CreateConfirmed inserts the booking and, when it references a persisted
	// slot, flips that slot's availability in the same transaction.
	CreateConfirmed(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (availability inference) --------
	CountConfirmedAt(
		ctx context.Context,
		venueID uint,
		sportID uint,
		slotTime string,
	) (int64, error)

	// -------- Booking (user views / state change) --------
	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	GetForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	ReleaseSlot(
		ctx context.Context,
		slotID uint,
	) error
}
