package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_verification_pair"`
	HostID      uuid.UUID `gorm:"type:uuid;not null;index:idx_verification_pair"`
	Status      string    `gorm:"type:varchar(50);not null;index"`
	DocumentRef string    `gorm:"type:text"`
	SubmittedAt time.Time `gorm:"not null"`
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
