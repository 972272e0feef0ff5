package models

import "time"

// OperatingHours is one bookable window of a venue's day. A venue may carry
// several windows per day (morning and evening). EndTime earlier than
// StartTime means the window runs past midnight.
type OperatingHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"index" json:"venue_id"`

	DayOfWeek string `gorm:"size:10;not null" json:"day_of_week"`

	StartTime string `gorm:"size:8;not null" json:"start_time"`
	EndTime   string `gorm:"size:8;not null" json:"end_time"`
	IsMorning bool   `json:"is_morning"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
