package models

import "time"

// PricingRule prices a 30-minute slot. DayGroup is either a lowercase day
// name ("monday") or one of the aggregates "weekday", "weekend", "all".
// TimeRange is hour-bounded, e.g. "16-19".
type PricingRule struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"index" json:"venue_id"`

	DayGroup  string `gorm:"size:20;not null" json:"day_group"`
	TimeRange string `gorm:"size:10" json:"time_range"`
	IsMorning bool   `json:"is_morning"`

	Price          int `gorm:"not null" json:"price"`
	PerDurationMin int `gorm:"default:30" json:"per_duration_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
