package models

import "time"

// Slot is a persisted 30-minute bookable window. Date and the clock times are
// venue-local wall clock, stored as strings and never converted through UTC.
// Price is resolved at generation time and immutable afterwards.
type Slot struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"index:idx_slot_day" json:"venue_id"`
	SportID uint `gorm:"index:idx_slot_day" json:"sport_id"`

	Date      string `gorm:"size:10;index:idx_slot_day;not null" json:"date"`
	StartTime string `gorm:"size:8;not null" json:"start_time"`
	EndTime   string `gorm:"size:8;not null" json:"end_time"`

	Price     int  `gorm:"not null" json:"price"`
	Available bool `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
