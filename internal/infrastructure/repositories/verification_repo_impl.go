package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/infrastructure/models"
)

// VerificationRepository implements identity-verification data operations
type VerificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create creates a new verification request
func (r *VerificationRepository) Create(ctx context.Context, request *entities.VerificationRequest) error {
	m := &models.VerificationRequest{
		ID:          request.ID,
		UserID:      request.UserID,
		HostID:      request.HostID,
		Status:      string(request.Status),
		DocumentRef: request.DocumentRef,
		SubmittedAt: request.SubmittedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a verification request by ID
func (r *VerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error) {
	var m models.VerificationRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return verificationToEntity(&m), nil
}

// GetActiveByPair returns the pending or approved request for the pair.
// Rejected requests do not count; the guest may submit again.
func (r *VerificationRepository) GetActiveByPair(ctx context.Context, userID, hostID uuid.UUID) (*entities.VerificationRequest, error) {
	var m models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND host_id = ? AND status IN ?", userID, hostID, []string{"pending", "approved"}).
		Order("submitted_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return verificationToEntity(&m), nil
}

// ListByPair lists every request for a (guest, host) pair
func (r *VerificationRepository) ListByPair(ctx context.Context, userID, hostID uuid.UUID) ([]*entities.VerificationRequest, error) {
	var requestModels []models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND host_id = ?", userID, hostID).
		Order("submitted_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, err
	}
	return verificationsToEntities(requestModels), nil
}

// ListByUser lists every request a guest has submitted
func (r *VerificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.VerificationRequest, error) {
	var requestModels []models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, err
	}
	return verificationsToEntities(requestModels), nil
}

// ListByHost lists every request addressed to a host
func (r *VerificationRepository) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*entities.VerificationRequest, error) {
	var requestModels []models.VerificationRequest
	err := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("submitted_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, err
	}
	return verificationsToEntities(requestModels), nil
}

// ListAll lists every request on the platform
func (r *VerificationRepository) ListAll(ctx context.Context) ([]*entities.VerificationRequest, error) {
	var requestModels []models.VerificationRequest
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&requestModels).Error; err != nil {
		return nil, err
	}
	return verificationsToEntities(requestModels), nil
}

// UpdateStatus records the decision and its timestamp
func (r *VerificationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.VerificationRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"decided_at": time.Now(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func verificationToEntity(m *models.VerificationRequest) *entities.VerificationRequest {
	return &entities.VerificationRequest{
		ID:          m.ID,
		UserID:      m.UserID,
		HostID:      m.HostID,
		Status:      entities.VerificationStatus(m.Status),
		DocumentRef: m.DocumentRef,
		SubmittedAt: m.SubmittedAt,
		DecidedAt:   null.TimeFromPtr(m.DecidedAt),
	}
}

func verificationsToEntities(requestModels []models.VerificationRequest) []*entities.VerificationRequest {
	var requests []*entities.VerificationRequest
	for _, m := range requestModels {
		model := m
		requests = append(requests, verificationToEntity(&model))
	}
	return requests
}
