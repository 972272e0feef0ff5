package booking

import (
	"context"

	"github.com/sportspot/sportspot-api/internal/audit"
	domain "github.com/sportspot/sportspot-api/internal/domain/booking"
	"github.com/sportspot/sportspot-api/internal/models"
	"github.com/sportspot/sportspot-api/internal/realtime"
)

type Canceller struct {
	repo  domain.Repository
	feed  Feed
	audit *audit.Dispatcher
}

func NewCanceller(repo domain.Repository, feed Feed, auditor *audit.Dispatcher) *Canceller {
	return &Canceller{
		repo:  repo,
		feed:  feed,
		audit: auditor,
	}
}

// Execute cancels a user's booking and, when it held a persisted slot,
// releases that slot back to available.
func (uc *Canceller) Execute(ctx context.Context, bookingID, userID uint) (*models.Booking, error) {

	b, err := uc.repo.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(b); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	if b.SlotID != nil {
		if err := uc.repo.ReleaseSlot(ctx, *b.SlotID); err != nil {
			return nil, err
		}
	}

	if uc.feed != nil {
		uc.feed.Publish(ctx, realtime.TableBookings, realtime.EventUpdate, b)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			VenueID:  b.VenueID,
			UserID:   &userID,
			Action:   "booking_cancelled",
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return b, nil
}
