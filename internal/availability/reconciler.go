package availability

import (
	"context"
	"log"
	"sync"

	domain "github.com/sportspot/sportspot-api/internal/domain/booking"
	"github.com/sportspot/sportspot-api/internal/domain/schedule"
	"github.com/sportspot/sportspot-api/internal/models"
	"github.com/sportspot/sportspot-api/internal/realtime"
	"github.com/sportspot/sportspot-api/internal/walltime"
)

// Store is the slice of the data store the reconciler reads.
type Store interface {
	GetSlotByID(ctx context.Context, id uint) (*models.Slot, error)
	CountConfirmedAt(ctx context.Context, venueID, sportID uint, slotTime string) (int64, error)
}

// Reconciler answers "is this slot booked" for a displayed slot and keeps the
// answer current against concurrent bookings. Persisted slots are judged by
// their own availability flag; synthesized slots have no row, so their state
// is inferred from confirmed bookings at the same wall-clock window.
type Reconciler struct {
	store Store
	feed  realtime.Subscriber
}

func New(store Store, feed realtime.Subscriber) *Reconciler {
	return &Reconciler{store: store, feed: feed}
}

// Watch resolves the initial booked state and subscribes to slot and booking
// changes. Callers must Close the watch when the displaying view goes away.
func (r *Reconciler) Watch(ctx context.Context, ref schedule.SlotRef) (*Watch, error) {
	w := &Watch{updates: make(chan bool, 1)}

	venueID := ref.VenueID
	sportID := ref.SportID
	slotTime := ""

	if ref.Persisted() {
		slot, err := r.store.GetSlotByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		venueID = slot.VenueID
		sportID = slot.SportID
		slotTime = walltime.CombineOrNow(slot.Date, slot.StartTime)
		if !slot.Available {
			w.booked = true
		}
	} else {
		slotTime = walltime.CombineOrNow(ref.Date, ref.StartTime)
		count, err := r.store.CountConfirmedAt(ctx, venueID, sportID, slotTime)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			w.booked = true
		}
	}

	if ref.Persisted() {
		unsub := r.feed.Subscribe(realtime.TableSlots, nil, func(ev realtime.Event) {
			var slot models.Slot
			if err := ev.Decode(&slot); err != nil {
				log.Printf("availability: bad slot event: %v", err)
				return
			}
			if slot.ID == ref.ID && !slot.Available {
				w.markBooked()
			}
		})
		w.unsubs = append(w.unsubs, unsub)
	}

	unsub := r.feed.Subscribe(realtime.TableBookings, nil, func(ev realtime.Event) {
		if ev.Type == realtime.EventDelete {
			return
		}
		var b models.Booking
		if err := ev.Decode(&b); err != nil {
			log.Printf("availability: bad booking event: %v", err)
			return
		}
		if b.VenueID != venueID || b.SportID != sportID {
			return
		}
		if b.Status != string(domain.StatusConfirmed) {
			return
		}
		if (b.SlotID != nil && ref.Persisted() && *b.SlotID == ref.ID) || b.SlotTime == slotTime {
			w.markBooked()
		}
	})
	w.unsubs = append(w.unsubs, unsub)

	return w, nil
}

// Watch is one live view of a slot's booked state.
type Watch struct {
	mu      sync.Mutex
	booked  bool
	closed  bool
	updates chan bool
	unsubs  []func()
}

func (w *Watch) Booked() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.booked
}

// Updates delivers a value when the slot becomes booked. The channel is
// buffered; a slow consumer never blocks the feed.
func (w *Watch) Updates() <-chan bool {
	return w.updates
}

func (w *Watch) markBooked() {
	w.mu.Lock()
	if w.booked || w.closed {
		w.mu.Unlock()
		return
	}
	w.booked = true
	w.mu.Unlock()

	select {
	case w.updates <- true:
	default:
	}
}

// Close releases every live subscription held by the watch.
func (w *Watch) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	for _, unsub := range w.unsubs {
		unsub()
	}
}
