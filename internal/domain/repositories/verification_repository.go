package repositories

import (
	"context"

	"github.com/google/uuid"
	"havenly.backend/internal/domain/entities"
)

// VerificationRepository defines identity-verification data operations.
// Requests are scoped per (userID, hostID) pair and never deleted.
type VerificationRepository interface {
	Create(ctx context.Context, request *entities.VerificationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error)
	// GetActiveByPair returns the pending or approved request for the pair,
	// or ErrNotFound when only rejected (or no) requests exist.
	GetActiveByPair(ctx context.Context, userID, hostID uuid.UUID) (*entities.VerificationRequest, error)
	ListByPair(ctx context.Context, userID, hostID uuid.UUID) ([]*entities.VerificationRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.VerificationRequest, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*entities.VerificationRequest, error)
	ListAll(ctx context.Context) ([]*entities.VerificationRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus) error
}
