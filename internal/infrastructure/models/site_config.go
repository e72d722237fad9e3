package models

import (
	"time"
)

// SiteConfig is a single-row table; the row ID is always 1.
type SiteConfig struct {
	ID                uint   `gorm:"primaryKey"`
	SiteName          string `gorm:"type:varchar(100);not null"`
	HeroTitle         string `gorm:"type:varchar(255)"`
	HeroSubtitle      string `gorm:"type:varchar(255)"`
	HeroBgImage       string `gorm:"type:varchar(512)"`
	Currency          string `gorm:"type:varchar(10);not null;default:'USD'"`
	Language          string `gorm:"type:varchar(10);not null;default:'en'"`
	EnableSocialLogin bool   `gorm:"not null;default:false"`
	MaintenanceMode   bool   `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (SiteConfig) TableName() string {
	return "site_config"
}
