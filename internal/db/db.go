package db

import (
	"log"
	"time"

	"github.com/sportspot/sportspot-api/internal/config"
	"github.com/sportspot/sportspot-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Venue{},
		&models.Sport{},
		&models.VenueSport{},
		&models.OperatingHours{},
		&models.PricingRule{},
		&models.Slot{},
		&models.User{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// One confirmed booking per wall-clock window; rejects double-booking of
	// synthesized slots that have no row to carry an availability flag.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_confirmed_window
        ON bookings (venue_id, sport_id, slot_time)
        WHERE status = 'confirmed'
    `)

	db.Exec(`
        CREATE INDEX IF NOT EXISTS idx_bookings_window_lookup
        ON bookings (venue_id, sport_id, slot_time)
    `)

	return db
}
