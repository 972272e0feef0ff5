package venue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/sportspot/sportspot-api/internal/models"
)

const (
	cacheKeyVenues = "cache:venues"
	cacheKeySports = "cache:sports"
	cacheTTL       = 5 * time.Minute
)

// Catalog serves the read-mostly venue and sport tables through a redis
// read-through cache. Slots and bookings never go through here; those tables
// are mutated by concurrent bookers and must always be re-read.
type Catalog struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewCatalog(db *gorm.DB, rdb *redis.Client) *Catalog {
	return &Catalog{db: db, rdb: rdb}
}

func (c *Catalog) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	if c.fromCache(ctx, cacheKeyVenues, &venues) {
		return venues, nil
	}

	if err := c.db.WithContext(ctx).Order("name ASC").Find(&venues).Error; err != nil {
		return nil, err
	}

	c.toCache(ctx, cacheKeyVenues, venues)
	return venues, nil
}

func (c *Catalog) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	var v models.Venue
	if err := c.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Catalog) ListSports(ctx context.Context) ([]models.Sport, error) {
	var sports []models.Sport
	if c.fromCache(ctx, cacheKeySports, &sports) {
		return sports, nil
	}

	if err := c.db.WithContext(ctx).Order("name ASC").Find(&sports).Error; err != nil {
		return nil, err
	}

	c.toCache(ctx, cacheKeySports, sports)
	return sports, nil
}

func (c *Catalog) GetSport(ctx context.Context, id uint) (*models.Sport, error) {
	var s models.Sport
	if err := c.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// SportsForVenue resolves the venue_sports relation; uncached, the join is
// small and admins edit it live.
func (c *Catalog) SportsForVenue(ctx context.Context, venueID uint) ([]models.Sport, error) {
	var sports []models.Sport
	err := c.db.WithContext(ctx).
		Joins("JOIN venue_sports ON venue_sports.sport_id = sports.id").
		Where("venue_sports.venue_id = ?", venueID).
		Order("sports.name ASC").
		Find(&sports).Error
	if err != nil {
		return nil, err
	}
	return sports, nil
}

// VenueIDsForSport supports the venue list's sport filter.
func (c *Catalog) VenueIDsForSport(ctx context.Context, sportID uint) ([]uint, error) {
	var ids []uint
	err := c.db.WithContext(ctx).
		Model(&models.VenueSport{}).
		Where("sport_id = ?", sportID).
		Pluck("venue_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Invalidate drops the cached lists after an admin write.
func (c *Catalog) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, cacheKeyVenues, cacheKeySports).Err(); err != nil {
		log.Printf("catalog: invalidate cache: %v", err)
	}
}

func (c *Catalog) fromCache(ctx context.Context, key string, out any) bool {
	if c.rdb == nil {
		return false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("catalog: read %s: %v", key, err)
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

func (c *Catalog) toCache(ctx context.Context, key string, v any) {
	if c.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		log.Printf("catalog: write %s: %v", key, err)
	}
}
