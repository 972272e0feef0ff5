package booking

import (
	"context"

	domain "github.com/sportspot/sportspot-api/internal/domain/booking"
	"github.com/sportspot/sportspot-api/internal/models"
)

type Lister struct {
	repo domain.Repository
}

func NewLister(repo domain.Repository) *Lister {
	return &Lister{repo: repo}
}

func (uc *Lister) Execute(ctx context.Context, userID uint) ([]models.Booking, error) {
	return uc.repo.ListForUser(ctx, userID)
}
