package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/sportspot/sportspot-api/internal/domain/booking"
	"github.com/sportspot/sportspot-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Slot lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetSlotByID(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var slot models.Slot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// --------------------------------------------------
// Booking (create)
// --------------------------------------------------

// CreateConfirmed runs the insert and the slot flip as one transaction so a
// crash cannot leave a booked slot still marked available.
func (r *BookingGormRepository) CreateConfirmed(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return pgError(err)
		}

		if b.SlotID != nil {
			if err := tx.Model(&models.Slot{}).
				Where("id = ?", *b.SlotID).
				Update("available", false).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// pgError surfaces the constraint name on unique violations so callers can
// tell a booking race from any other insert failure.
func pgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("duplicate key on %s: %w", pgErr.ConstraintName, err)
	}
	return err
}

// --------------------------------------------------
// Booking (availability inference)
// --------------------------------------------------

func (r *BookingGormRepository) CountConfirmedAt(
	ctx context.Context,
	venueID uint,
	sportID uint,
	slotTime string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"venue_id = ? AND sport_id = ? AND slot_time = ? AND status = ?",
			venueID, sportID, slotTime, string(domain.StatusConfirmed),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Booking (user views / state change)
// --------------------------------------------------

func (r *BookingGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("slot_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) GetForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ReleaseSlot(
	ctx context.Context,
	slotID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("id = ?", slotID).
		Update("available", true).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
