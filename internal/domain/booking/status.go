package booking

import "github.com/sportspot/sportspot-api/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// The engine only ever writes confirmed bookings; pending and cancelled come
// from admin tooling.
func InitialStatus() Status {
	return StatusConfirmed
}

func CanCancel(current Status) error {
	if current != StatusConfirmed && current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
