package booking

import (
	"github.com/sportspot/sportspot-api/internal/models"
)

func Cancel(b *models.Booking) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}
