package repositories

import (
	"context"

	"github.com/google/uuid"
	"havenly.backend/internal/domain/entities"
)

// BookingRepository defines booking data operations. Bookings are never
// deleted; status changes go through UpdateStatus.
type BookingRepository interface {
	Create(ctx context.Context, booking *entities.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Booking, int64, error)
	Stats(ctx context.Context, hostID *uuid.UUID) (*entities.BookingStats, error)
}
