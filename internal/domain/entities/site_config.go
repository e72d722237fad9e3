package entities

import "time"

// SiteConfig is the admin-editable singleton for platform-wide settings.
type SiteConfig struct {
	ID                uint      `json:"-"`
	SiteName          string    `json:"siteName"`
	HeroTitle         string    `json:"heroTitle"`
	HeroSubtitle      string    `json:"heroSubtitle"`
	HeroBgImage       string    `json:"heroBgImage"`
	Currency          string    `json:"currency"`
	Language          string    `json:"language"`
	EnableSocialLogin bool      `json:"enableSocialLogin"`
	MaintenanceMode   bool      `json:"maintenanceMode"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// UpdateSiteConfigInput represents admin input for platform settings
type UpdateSiteConfigInput struct {
	SiteName          string `json:"siteName" binding:"required"`
	HeroTitle         string `json:"heroTitle"`
	HeroSubtitle      string `json:"heroSubtitle"`
	HeroBgImage       string `json:"heroBgImage"`
	Currency          string `json:"currency" binding:"omitempty,oneof=USD EUR"`
	Language          string `json:"language" binding:"omitempty,oneof=en es"`
	EnableSocialLogin bool   `json:"enableSocialLogin"`
	MaintenanceMode   bool   `json:"maintenanceMode"`
}
