package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "github.com/sportspot/sportspot-api/internal/domain/booking"
	"github.com/sportspot/sportspot-api/internal/domain/schedule"
	"github.com/sportspot/sportspot-api/internal/httperr"
	"github.com/sportspot/sportspot-api/internal/models"
	"github.com/sportspot/sportspot-api/internal/realtime"
)

// fakeBookingRepo is an in-memory booking repository.
type fakeBookingRepo struct {
	slots    map[uint]*models.Slot
	bookings []models.Booking

	nextID    uint
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{slots: make(map[uint]*models.Slot), nextID: 1}
}

func (f *fakeBookingRepo) GetSlotByID(_ context.Context, id uint) (*models.Slot, error) {
	slot, ok := f.slots[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *slot
	return &copied, nil
}

func (f *fakeBookingRepo) CreateConfirmed(_ context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}

	// Mirrors the transactional store: booking insert plus slot flip.
	b.ID = f.nextID
	f.nextID++
	f.bookings = append(f.bookings, *b)
	if b.SlotID != nil {
		if slot, ok := f.slots[*b.SlotID]; ok {
			slot.Available = false
		}
	}
	return nil
}

func (f *fakeBookingRepo) CountConfirmedAt(_ context.Context, venueID, sportID uint, slotTime string) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.VenueID == venueID && b.SportID == sportID &&
			b.SlotTime == slotTime && b.Status == string(domain.StatusConfirmed) {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) ListForUser(_ context.Context, userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetForUser(_ context.Context, bookingID, userID uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID && f.bookings[i].UserID == userID {
			copied := f.bookings[i]
			return &copied, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeBookingRepo) Update(_ context.Context, b *models.Booking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeBookingRepo) ReleaseSlot(_ context.Context, slotID uint) error {
	if slot, ok := f.slots[slotID]; ok {
		slot.Available = true
	}
	return nil
}

var _ domain.Repository = (*fakeBookingRepo)(nil)

type publishedEvent struct {
	table string
	typ   realtime.EventType
	row   any
}

type fakeFeed struct {
	events []publishedEvent
}

func (f *fakeFeed) Publish(_ context.Context, table string, typ realtime.EventType, row any) {
	f.events = append(f.events, publishedEvent{table: table, typ: typ, row: row})
}

func storedSlot() *models.Slot {
	return &models.Slot{
		ID: 10, VenueID: 1, SportID: 2,
		Date: "2025-06-14", StartTime: "18:00:00", EndTime: "18:30:00",
		Price: 800, Available: true,
	}
}

func validInput(ref schedule.SlotRef) CreateInput {
	return CreateInput{
		UserID:   5,
		Ref:      ref,
		FullName: "Asha Rao",
		Phone:    "9876543210",
	}
}

func TestCreatePersistedSlot(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.slots[10] = storedSlot()
	feed := &fakeFeed{}
	uc := NewCreator(repo, feed, nil)

	b, err := uc.Execute(context.Background(), validInput(schedule.SlotRef{ID: 10}))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if b.SlotID == nil || *b.SlotID != 10 {
		t.Fatalf("booking slot id = %v, want 10", b.SlotID)
	}
	if b.VenueID != 1 || b.SportID != 2 || b.Amount != 800 {
		t.Errorf("booking did not take identity and price from the slot: %+v", b)
	}
	if b.SlotTime != "2025-06-14 18:00:00" {
		t.Errorf("slot time %q, want the slot's wall clock", b.SlotTime)
	}
	if b.Status != string(domain.StatusConfirmed) {
		t.Errorf("status %q, want confirmed", b.Status)
	}
	if !strings.HasPrefix(b.InvoiceNumber, "INV-") || len(b.InvoiceNumber) != 12 {
		t.Errorf("invoice number %q, want INV- plus eight characters", b.InvoiceNumber)
	}

	if repo.slots[10].Available {
		t.Error("booked slot still available")
	}

	if len(feed.events) != 2 {
		t.Fatalf("published %d events, want booking insert plus slot update", len(feed.events))
	}
	if feed.events[0].table != realtime.TableBookings || feed.events[0].typ != realtime.EventInsert {
		t.Errorf("first event = %+v, want bookings insert", feed.events[0])
	}
	if feed.events[1].table != realtime.TableSlots || feed.events[1].typ != realtime.EventUpdate {
		t.Errorf("second event = %+v, want slots update", feed.events[1])
	}
	if slot, ok := feed.events[1].row.(*models.Slot); !ok || slot.Available {
		t.Errorf("slot event row = %+v, want the slot marked unavailable", feed.events[1].row)
	}
}

func TestCreateSynthesizedSlot(t *testing.T) {
	repo := newFakeBookingRepo()
	feed := &fakeFeed{}
	uc := NewCreator(repo, feed, nil)

	in := validInput(schedule.SlotRef{
		VenueID: 1, SportID: 2, Date: "2025-06-14", StartTime: "18:00:00",
	})
	in.VenueID = 1
	in.SportID = 2
	in.Price = 500

	b, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if b.SlotID != nil {
		t.Errorf("synthesized booking carries slot id %d", *b.SlotID)
	}
	if b.SlotTime != "2025-06-14 18:00:00" {
		t.Errorf("slot time %q, want reconstructed from the ref", b.SlotTime)
	}
	if b.Amount != 500 {
		t.Errorf("amount %d, want the caller's price", b.Amount)
	}

	// No slot row, so only the booking event goes out.
	if len(feed.events) != 1 || feed.events[0].table != realtime.TableBookings {
		t.Fatalf("events = %+v, want a single bookings insert", feed.events)
	}
}

func TestCreateValidation(t *testing.T) {
	ref := schedule.SlotRef{VenueID: 1, SportID: 2, Date: "2025-06-14", StartTime: "18:00:00"}

	tests := []struct {
		name     string
		mutate   func(*CreateInput)
		wantCode string
	}{
		{
			name:     "signed out",
			mutate:   func(in *CreateInput) { in.UserID = 0 },
			wantCode: "auth_required",
		},
		{
			name:     "blank name",
			mutate:   func(in *CreateInput) { in.FullName = "   " },
			wantCode: "name_required",
		},
		{
			name:     "short phone",
			mutate:   func(in *CreateInput) { in.Phone = "12345" },
			wantCode: "invalid_phone",
		},
		{
			name:     "synthesized ref without venue",
			mutate:   func(in *CreateInput) { in.VenueID = 0 },
			wantCode: "invalid_slot_ref",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo()
			uc := NewCreator(repo, nil, nil)

			in := validInput(ref)
			in.VenueID = 1
			in.SportID = 2
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if httperr.BusinessCode(err) != tt.wantCode {
				t.Fatalf("got %v, want %s", err, tt.wantCode)
			}
			if len(repo.bookings) != 0 {
				t.Fatal("rejected input still wrote a booking")
			}
		})
	}
}

func TestCreatePhoneNormalizedBeforeStore(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.slots[10] = storedSlot()
	uc := NewCreator(repo, nil, nil)

	in := validInput(schedule.SlotRef{ID: 10})
	in.Phone = "+91 98765-43210"

	b, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if b.Phone != "9198765432" {
		t.Fatalf("stored phone %q, want the ten normalized digits", b.Phone)
	}
}

func TestCreateSlotStates(t *testing.T) {
	t.Run("missing slot", func(t *testing.T) {
		uc := NewCreator(newFakeBookingRepo(), nil, nil)
		_, err := uc.Execute(context.Background(), validInput(schedule.SlotRef{ID: 99}))
		if httperr.BusinessCode(err) != "slot_not_found" {
			t.Fatalf("got %v, want slot_not_found", err)
		}
	})

	t.Run("already booked", func(t *testing.T) {
		repo := newFakeBookingRepo()
		slot := storedSlot()
		slot.Available = false
		repo.slots[10] = slot

		uc := NewCreator(repo, nil, nil)
		_, err := uc.Execute(context.Background(), validInput(schedule.SlotRef{ID: 10}))
		if httperr.BusinessCode(err) != "slot_unavailable" {
			t.Fatalf("got %v, want slot_unavailable", err)
		}
	})
}

func TestCreateTranslatesStoreErrors(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantCode string
	}{
		{
			name:     "unique index race",
			storeErr: errors.New(`duplicate key value violates unique constraint "idx_bookings_confirmed_window"`),
			wantCode: "slot_already_booked",
		},
		{
			name:     "bad timestamp",
			storeErr: errors.New("invalid input syntax for type timestamp"),
			wantCode: "invalid_slot_time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo()
			repo.slots[10] = storedSlot()
			repo.createErr = tt.storeErr

			uc := NewCreator(repo, nil, nil)
			_, err := uc.Execute(context.Background(), validInput(schedule.SlotRef{ID: 10}))
			if httperr.BusinessCode(err) != tt.wantCode {
				t.Fatalf("got %v, want %s", err, tt.wantCode)
			}
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		repo := newFakeBookingRepo()
		repo.slots[10] = storedSlot()
		repo.createErr = errors.New("connection refused")

		uc := NewCreator(repo, nil, nil)
		_, err := uc.Execute(context.Background(), validInput(schedule.SlotRef{ID: 10}))
		if httperr.BusinessCode(err) != "" {
			t.Fatalf("infrastructure error translated to business code: %v", err)
		}
		if err == nil {
			t.Fatal("store error swallowed")
		}
	})
}

func TestCancelReleasesSlot(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.slots[10] = storedSlot()
	feed := &fakeFeed{}

	creator := NewCreator(repo, nil, nil)
	b, err := creator.Execute(context.Background(), validInput(schedule.SlotRef{ID: 10}))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if repo.slots[10].Available {
		t.Fatal("slot should be held after booking")
	}

	canceller := NewCanceller(repo, feed, nil)
	cancelled, err := canceller.Execute(context.Background(), b.ID, b.UserID)
	if err != nil {
		t.Fatalf("cancel error: %v", err)
	}

	if cancelled.Status != string(domain.StatusCancelled) {
		t.Errorf("status %q, want cancelled", cancelled.Status)
	}
	if !repo.slots[10].Available {
		t.Error("cancelling must release the slot")
	}
	if len(feed.events) != 1 || feed.events[0].typ != realtime.EventUpdate {
		t.Errorf("events = %+v, want a single bookings update", feed.events)
	}
}

func TestCancelRejectsWrongUser(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.slots[10] = storedSlot()

	creator := NewCreator(repo, nil, nil)
	b, err := creator.Execute(context.Background(), validInput(schedule.SlotRef{ID: 10}))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	canceller := NewCanceller(repo, nil, nil)
	if _, err := canceller.Execute(context.Background(), b.ID, b.UserID+1); err == nil {
		t.Fatal("another user cancelled the booking")
	}
}

func TestCancelTwiceFails(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.slots[10] = storedSlot()

	creator := NewCreator(repo, nil, nil)
	b, err := creator.Execute(context.Background(), validInput(schedule.SlotRef{ID: 10}))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	canceller := NewCanceller(repo, nil, nil)
	if _, err := canceller.Execute(context.Background(), b.ID, b.UserID); err != nil {
		t.Fatalf("first cancel error: %v", err)
	}

	_, err = canceller.Execute(context.Background(), b.ID, b.UserID)
	if httperr.BusinessCode(err) != "invalid_state" {
		t.Fatalf("got %v, want invalid_state", err)
	}
}

func TestListMine(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.slots[10] = storedSlot()

	creator := NewCreator(repo, nil, nil)
	if _, err := creator.Execute(context.Background(), validInput(schedule.SlotRef{ID: 10})); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	lister := NewLister(repo)

	mine, err := lister.Execute(context.Background(), 5)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("got %d bookings, want 1", len(mine))
	}

	other, err := lister.Execute(context.Background(), 6)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("another user sees %d bookings, want 0", len(other))
	}
}
