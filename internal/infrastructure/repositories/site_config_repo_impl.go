package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/infrastructure/models"
)

// SiteConfigRepository implements access to the singleton settings row
type SiteConfigRepository struct {
	db *gorm.DB
}

// NewSiteConfigRepository creates a new site config repository
func NewSiteConfigRepository(db *gorm.DB) *SiteConfigRepository {
	return &SiteConfigRepository{db: db}
}

// Get returns the settings row
func (r *SiteConfigRepository) Get(ctx context.Context) (*entities.SiteConfig, error) {
	var m models.SiteConfig
	if err := r.db.WithContext(ctx).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.SiteConfig{
		ID:                m.ID,
		SiteName:          m.SiteName,
		HeroTitle:         m.HeroTitle,
		HeroSubtitle:      m.HeroSubtitle,
		HeroBgImage:       m.HeroBgImage,
		Currency:          m.Currency,
		Language:          m.Language,
		EnableSocialLogin: m.EnableSocialLogin,
		MaintenanceMode:   m.MaintenanceMode,
		UpdatedAt:         m.UpdatedAt,
	}, nil
}

// Update replaces the settings row fields
func (r *SiteConfigRepository) Update(ctx context.Context, config *entities.SiteConfig) error {
	result := r.db.WithContext(ctx).
		Model(&models.SiteConfig{}).
		Where("id = ?", config.ID).
		Updates(map[string]interface{}{
			"site_name":           config.SiteName,
			"hero_title":          config.HeroTitle,
			"hero_subtitle":       config.HeroSubtitle,
			"hero_bg_image":       config.HeroBgImage,
			"currency":            config.Currency,
			"language":            config.Language,
			"enable_social_login": config.EnableSocialLogin,
			"maintenance_mode":    config.MaintenanceMode,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
