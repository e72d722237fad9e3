package usecases

import (
	"context"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/domain/repositories"
)

// SiteConfigUsecase handles the admin-editable platform settings
type SiteConfigUsecase struct {
	configRepo repositories.SiteConfigRepository
}

// NewSiteConfigUsecase creates a new site config usecase
func NewSiteConfigUsecase(configRepo repositories.SiteConfigRepository) *SiteConfigUsecase {
	return &SiteConfigUsecase{configRepo: configRepo}
}

// Get returns the platform settings. Public.
func (u *SiteConfigUsecase) Get(ctx context.Context) (*entities.SiteConfig, error) {
	return u.configRepo.Get(ctx)
}

// Update replaces the platform settings. Admin only.
func (u *SiteConfigUsecase) Update(ctx context.Context, actor *entities.User, input *entities.UpdateSiteConfigInput) (*entities.SiteConfig, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.Authorization("only admins may edit platform settings")
	}

	config, err := u.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	config.SiteName = input.SiteName
	config.HeroTitle = input.HeroTitle
	config.HeroSubtitle = input.HeroSubtitle
	config.HeroBgImage = input.HeroBgImage
	if input.Currency != "" {
		config.Currency = input.Currency
	}
	if input.Language != "" {
		config.Language = input.Language
	}
	config.EnableSocialLogin = input.EnableSocialLogin
	config.MaintenanceMode = input.MaintenanceMode

	if err := u.configRepo.Update(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}
