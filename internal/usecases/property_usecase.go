package usecases

import (
	"context"

	"github.com/google/uuid"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/domain/repositories"
	"havenly.backend/pkg/utils"
)

// PropertyUsecase handles catalog and watchlist business logic
type PropertyUsecase struct {
	propertyRepo  repositories.PropertyRepository
	watchlistRepo repositories.WatchlistRepository
}

// NewPropertyUsecase creates a new property usecase
func NewPropertyUsecase(propertyRepo repositories.PropertyRepository, watchlistRepo repositories.WatchlistRepository) *PropertyUsecase {
	return &PropertyUsecase{
		propertyRepo:  propertyRepo,
		watchlistRepo: watchlistRepo,
	}
}

// Create creates a listing owned by the actor. Hosts and admins only.
func (u *PropertyUsecase) Create(ctx context.Context, actor *entities.User, input *entities.CreatePropertyInput) (*entities.Property, error) {
	if actor.Role != entities.UserRoleHost && !actor.IsAdmin() {
		return nil, domainerrors.Authorization("only hosts may create listings")
	}

	property := &entities.Property{
		ID:            utils.GenerateUUIDv7(),
		HostID:        actor.ID,
		Title:         input.Title,
		Description:   input.Description,
		PricePerNight: input.PricePerNight,
		Location:      input.Location,
		Category:      input.Category,
		Images:        input.Images,
		Amenities:     input.Amenities,
		MaxGuests:     input.MaxGuests,
		Status:        entities.PropertyStatusAvailable,
		TaxRate:       input.TaxRate,
	}
	if err := u.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// GetByID gets a listing by ID
func (u *PropertyUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	return u.propertyRepo.GetByID(ctx, id)
}

// List lists catalog entries matching the filter
func (u *PropertyUsecase) List(ctx context.Context, filter entities.PropertyFilter) ([]*entities.Property, error) {
	return u.propertyRepo.List(ctx, filter)
}

// Update edits a listing. Owning host or admin only.
func (u *PropertyUsecase) Update(ctx context.Context, actor *entities.User, id uuid.UUID, input *entities.CreatePropertyInput) (*entities.Property, error) {
	property, err := u.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageProperty(actor, property) {
		return nil, domainerrors.Authorization("not the listing owner")
	}

	property.Title = input.Title
	property.Description = input.Description
	property.PricePerNight = input.PricePerNight
	property.Location = input.Location
	property.Category = input.Category
	property.Images = input.Images
	property.Amenities = input.Amenities
	property.MaxGuests = input.MaxGuests
	property.TaxRate = input.TaxRate

	if err := u.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// SetStatus toggles listing availability. Owning host or admin only.
func (u *PropertyUsecase) SetStatus(ctx context.Context, actor *entities.User, id uuid.UUID, status entities.PropertyStatus) (*entities.Property, error) {
	if status != entities.PropertyStatusAvailable && status != entities.PropertyStatusMaintenance {
		return nil, domainerrors.Validation("unknown property status")
	}

	property, err := u.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageProperty(actor, property) {
		return nil, domainerrors.Authorization("not the listing owner")
	}

	property.Status = status
	if err := u.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete removes a listing immediately. Existing bookings keep their
// denormalized host reference and survive.
func (u *PropertyUsecase) Delete(ctx context.Context, actor *entities.User, id uuid.UUID) error {
	property, err := u.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManageProperty(actor, property) {
		return domainerrors.Authorization("not the listing owner")
	}
	return u.propertyRepo.Delete(ctx, id)
}

// ToggleWatchlist flips the actor's favorite mark on a listing
func (u *PropertyUsecase) ToggleWatchlist(ctx context.Context, actorID, propertyID uuid.UUID) (bool, error) {
	if _, err := u.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return false, err
	}
	return u.watchlistRepo.Toggle(ctx, actorID, propertyID)
}

// Watchlist lists the actor's favorite listings
func (u *PropertyUsecase) Watchlist(ctx context.Context, actorID uuid.UUID) ([]*entities.Property, error) {
	return u.watchlistRepo.ListByUser(ctx, actorID)
}
