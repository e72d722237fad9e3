package repositories

import (
	"context"

	"havenly.backend/internal/domain/entities"
)

// SiteConfigRepository defines access to the singleton platform settings
type SiteConfigRepository interface {
	Get(ctx context.Context) (*entities.SiteConfig, error)
	Update(ctx context.Context, config *entities.SiteConfig) error
}
