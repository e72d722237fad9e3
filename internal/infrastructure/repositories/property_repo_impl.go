package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/infrastructure/models"
	"havenly.backend/pkg/utils"
)

// PropertyRepository implements catalog data operations
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new listing
func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	m := propertyToModel(property)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a listing by ID
func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	var m models.Property
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return propertyToEntity(&m), nil
}

// Update replaces the editable listing fields
func (r *PropertyRepository) Update(ctx context.Context, property *entities.Property) error {
	updates := map[string]interface{}{
		"title":           property.Title,
		"description":     property.Description,
		"price_per_night": property.PricePerNight,
		"location":        property.Location,
		"category":        property.Category,
		"images":          encodeStrings(property.Images),
		"amenities":       encodeStrings(property.Amenities),
		"max_guests":      property.MaxGuests,
		"status":          string(property.Status),
		"tax_rate":        property.TaxRate,
		"updated_at":      time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Property{}).Where("id = ?", property.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a listing
func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists catalog entries matching the filter
func (r *PropertyRepository) List(ctx context.Context, filter entities.PropertyFilter) ([]*entities.Property, error) {
	var propertyModels []models.Property
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if filter.Search != "" {
		searchTerm := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ?", searchTerm, searchTerm)
	}
	if filter.Category != "" && filter.Category != "Todos" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.HostID != "" {
		query = query.Where("host_id = ?", filter.HostID)
	}

	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, err
	}

	var properties []*entities.Property
	for _, m := range propertyModels {
		model := m
		properties = append(properties, propertyToEntity(&model))
	}
	return properties, nil
}

// WatchlistRepository implements per-user favorite operations
type WatchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Toggle adds the property to the user's watchlist, or removes it when
// already present. Returns true when the property ends up watched.
func (r *WatchlistRepository) Toggle(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.WatchlistItem{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return false, nil
	}

	item := &models.WatchlistItem{
		ID:         utils.GenerateUUIDv7(),
		UserID:     userID,
		PropertyID: propertyID,
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ListByUser lists the watched properties for a user
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Property, error) {
	var propertyModels []models.Property
	err := r.db.WithContext(ctx).
		Joins("JOIN watchlist_items w ON w.property_id = properties.id").
		Where("w.user_id = ?", userID).
		Order("w.created_at DESC").
		Find(&propertyModels).Error
	if err != nil {
		return nil, err
	}

	var properties []*entities.Property
	for _, m := range propertyModels {
		model := m
		properties = append(properties, propertyToEntity(&model))
	}
	return properties, nil
}

func propertyToModel(p *entities.Property) *models.Property {
	return &models.Property{
		ID:            p.ID,
		HostID:        p.HostID,
		Title:         p.Title,
		Description:   p.Description,
		PricePerNight: p.PricePerNight,
		Location:      p.Location,
		Category:      p.Category,
		Images:        encodeStrings(p.Images),
		Amenities:     encodeStrings(p.Amenities),
		Rating:        p.Rating,
		ReviewsCount:  p.ReviewsCount,
		MaxGuests:     p.MaxGuests,
		Status:        string(p.Status),
		TaxRate:       p.TaxRate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func propertyToEntity(m *models.Property) *entities.Property {
	return &entities.Property{
		ID:            m.ID,
		HostID:        m.HostID,
		Title:         m.Title,
		Description:   m.Description,
		PricePerNight: m.PricePerNight,
		Location:      m.Location,
		Category:      m.Category,
		Images:        decodeStrings(m.Images),
		Amenities:     decodeStrings(m.Amenities),
		Rating:        m.Rating,
		ReviewsCount:  m.ReviewsCount,
		MaxGuests:     m.MaxGuests,
		Status:        entities.PropertyStatus(m.Status),
		TaxRate:       m.TaxRate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
