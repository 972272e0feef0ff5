package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/sportspot/sportspot-api/internal/domain/schedule"
	"github.com/sportspot/sportspot-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *ScheduleGormRepository) ListSlots(
	ctx context.Context,
	venueID uint,
	sportID uint,
	date string,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where("venue_id = ? AND sport_id = ? AND date = ?", venueID, sportID, date).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *ScheduleGormRepository) InsertSlots(
	ctx context.Context,
	batch []models.Slot,
) ([]models.Slot, error) {

	if len(batch) == 0 {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Create(&batch).Error; err != nil {
		return nil, err
	}

	return batch, nil
}

// --------------------------------------------------
// Operating hours
// --------------------------------------------------

func (r *ScheduleGormRepository) CountOperatingHours(
	ctx context.Context,
	venueID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OperatingHours{}).
		Where("venue_id = ?", venueID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *ScheduleGormRepository) ListOperatingHours(
	ctx context.Context,
	venueID uint,
	dayOfWeek string,
) ([]models.OperatingHours, error) {

	var rows []models.OperatingHours
	if err := r.db.WithContext(ctx).
		Where("venue_id = ? AND day_of_week = ?", venueID, dayOfWeek).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *ScheduleGormRepository) InsertOperatingHours(
	ctx context.Context,
	rows []models.OperatingHours,
) error {

	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// --------------------------------------------------
// Pricing
// --------------------------------------------------

func (r *ScheduleGormRepository) CountPricingRules(
	ctx context.Context,
	venueID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PricingRule{}).
		Where("venue_id = ?", venueID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *ScheduleGormRepository) ListPricingRules(
	ctx context.Context,
	venueID uint,
) ([]models.PricingRule, error) {

	var rules []models.PricingRule
	if err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Find(&rules).Error; err != nil {
		return nil, err
	}

	return rules, nil
}

func (r *ScheduleGormRepository) InsertPricingRules(
	ctx context.Context,
	rows []models.PricingRule,
) error {

	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
