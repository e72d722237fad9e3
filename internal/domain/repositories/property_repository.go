package repositories

import (
	"context"

	"github.com/google/uuid"
	"havenly.backend/internal/domain/entities"
)

// PropertyRepository defines catalog data operations
type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Property, error)
	Update(ctx context.Context, property *entities.Property) error
	// Delete removes the listing immediately and irreversibly. Bookings
	// referencing it are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter entities.PropertyFilter) ([]*entities.Property, error)
}

// WatchlistRepository defines per-user favorite operations
type WatchlistRepository interface {
	Toggle(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Property, error)
}
