package models

import "time"

// Booking references the slot row when the booked slot was persisted; SlotID
// stays null for slots that were synthesized on the fly. SlotTime is the
// venue-local "YYYY-MM-DD HH:MM:SS" wall clock of the booked window.
type Booking struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	UserID  uint  `gorm:"index" json:"user_id"`
	VenueID uint  `gorm:"index" json:"venue_id"`
	SportID uint  `json:"sport_id"`
	SlotID  *uint `json:"slot_id"`

	SlotTime string `gorm:"size:19;not null" json:"slot_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Phone    string `gorm:"size:10;not null" json:"phone"`
	Amount   int    `json:"amount"`

	InvoiceNumber string `gorm:"size:30" json:"invoice_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
