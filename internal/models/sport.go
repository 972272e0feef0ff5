package models

import "time"

type Sport struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VenueSport links a venue to a sport it offers.
type VenueSport struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VenueID uint `gorm:"index:idx_venue_sport,unique" json:"venue_id"`
	SportID uint `gorm:"index:idx_venue_sport,unique" json:"sport_id"`

	CreatedAt time.Time `json:"created_at"`
}
