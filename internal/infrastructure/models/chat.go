package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatThread struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParticipantAID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_thread_pair"`
	ParticipantBID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_thread_pair"`
	LastMessage    string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ThreadID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text"`
	Kind      string    `gorm:"type:varchar(50);not null;default:'text'"`
	FileRef   *string   `gorm:"type:text"`
	CreatedAt time.Time
}
