package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	HostID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	PricePerNight float64   `gorm:"not null"`
	Location      string    `gorm:"type:varchar(255);not null"`
	Category      string    `gorm:"type:varchar(50);index"`
	// Images and Amenities are stored as JSON arrays
	Images       string  `gorm:"type:text"`
	Amenities    string  `gorm:"type:text"`
	Rating       float64 `gorm:"default:0"`
	ReviewsCount int     `gorm:"default:0"`
	MaxGuests    int     `gorm:"not null;default:1"`
	Status       string  `gorm:"type:varchar(50);not null;index"`
	TaxRate      float64 `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

type WatchlistItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_user_property"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_user_property"`
	CreatedAt  time.Time
}
