package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sportspot/sportspot-api/internal/audit"
	domain "github.com/sportspot/sportspot-api/internal/domain/booking"
	"github.com/sportspot/sportspot-api/internal/domain/schedule"
	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/models"
	"github.com/sportspot/sportspot-api/internal/realtime"
	"github.com/sportspot/sportspot-api/internal/validators"
	"github.com/sportspot/sportspot-api/internal/walltime"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	UserID uint

	Ref schedule.SlotRef

	// VenueID/SportID/Price matter only for synthesized refs; persisted slots
	// carry their own.
	VenueID uint
	SportID uint
	Price   int

	FullName string
	Phone    string
}

// Feed is the change-feed publisher the writer notifies after a write.
type Feed interface {
	Publish(ctx context.Context, table string, typ realtime.EventType, row any)
}

// ======================================================
// USE CASE
// ======================================================

type Creator struct {
	repo  domain.Repository
	feed  Feed
	audit *audit.Dispatcher
}

func NewCreator(repo domain.Repository, feed Feed, auditor *audit.Dispatcher) *Creator {
	return &Creator{
		repo:  repo,
		feed:  feed,
		audit: auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Creator) Execute(ctx context.Context, in CreateInput) (*models.Booking, error) {

	// --------------------------------------------------
	// Caller must be signed in
	// --------------------------------------------------
	if in.UserID == 0 {
		return nil, httperr.ErrBusiness("auth_required")
	}

	// --------------------------------------------------
	// Contact details
	// --------------------------------------------------
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, httperr.ErrBusiness("name_required")
	}

	phone := validators.NormalizePhone(in.Phone)
	if !validators.IsValidPhone(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	// --------------------------------------------------
	// Resolve the slot behind the ref
	// --------------------------------------------------
	var (
		slotID   *uint
		venueID  = in.VenueID
		sportID  = in.SportID
		amount   = in.Price
		slotTime string
		slot     *models.Slot
	)

	if in.Ref.Persisted() {
		var err error
		slot, err = uc.repo.GetSlotByID(ctx, in.Ref.ID)
		if err != nil {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		if !slot.Available {
			return nil, httperr.ErrBusiness("slot_unavailable")
		}

		id := slot.ID
		slotID = &id
		venueID = slot.VenueID
		sportID = slot.SportID
		amount = slot.Price
		// Venue-local wall clock; current time is the documented fallback for
		// a slot row with a malformed date/time.
		slotTime = walltime.CombineOrNow(slot.Date, slot.StartTime)
	} else {
		if venueID == 0 || sportID == 0 {
			return nil, httperr.ErrBusiness("invalid_slot_ref")
		}
		slotTime = walltime.CombineOrNow(in.Ref.Date, in.Ref.StartTime)
	}

	// --------------------------------------------------
	// Write booking + slot flip in one transaction
	// --------------------------------------------------
	b := &models.Booking{
		UserID:        in.UserID,
		VenueID:       venueID,
		SportID:       sportID,
		SlotID:        slotID,
		SlotTime:      slotTime,
		Status:        string(domain.InitialStatus()),
		FullName:      fullName,
		Phone:         phone,
		Amount:        amount,
		InvoiceNumber: newInvoiceNumber(),
	}

	if err := uc.repo.CreateConfirmed(ctx, b); err != nil {
		return nil, translateStoreError(err)
	}

	// --------------------------------------------------
	// Notify live viewers
	// --------------------------------------------------
	if uc.feed != nil {
		uc.feed.Publish(ctx, realtime.TableBookings, realtime.EventInsert, b)
		if slot != nil {
			slot.Available = false
			uc.feed.Publish(ctx, realtime.TableSlots, realtime.EventUpdate, slot)
		}
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			VenueID:  venueID,
			UserID:   &in.UserID,
			Action:   "booking_created",
			Entity:   "booking",
			EntityID: &b.ID,
		})
	}

	return b, nil
}

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

// translateStoreError maps low-level write failures onto the booking-flow
// business codes users can act on.
func translateStoreError(err error) error {
	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "idx_bookings_confirmed_window") ||
		strings.Contains(msg, "duplicate key") {
		return httperr.ErrBusiness("slot_already_booked")
	}

	if strings.Contains(msg, "date/time") ||
		strings.Contains(msg, "out of range") ||
		strings.Contains(msg, "invalid input syntax") {
		return httperr.ErrBusiness("invalid_slot_time")
	}

	return err
}
