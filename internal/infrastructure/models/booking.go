package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	GuestID     uuid.UUID `gorm:"type:uuid;not null;index"`
	HostID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckIn     time.Time `gorm:"not null"`
	CheckOut    time.Time `gorm:"not null"`
	GuestsCount int       `gorm:"not null;default:1"`
	TotalPrice  float64   `gorm:"not null"`
	TaxAmount   float64   `gorm:"not null"`
	Commission  float64   `gorm:"not null"`
	Status      string    `gorm:"type:varchar(50);not null;index"`
	PaymentRef  *string   `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
