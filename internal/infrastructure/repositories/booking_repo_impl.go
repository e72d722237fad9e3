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

// BookingRepository implements booking data operations
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	m := &models.Booking{
		ID:          booking.ID,
		PropertyID:  booking.PropertyID,
		GuestID:     booking.GuestID,
		HostID:      booking.HostID,
		CheckIn:     booking.CheckIn,
		CheckOut:    booking.CheckOut,
		GuestsCount: booking.GuestsCount,
		TotalPrice:  booking.TotalPrice,
		TaxAmount:   booking.TaxAmount,
		Commission:  booking.CommissionAmount,
		Status:      string(booking.Status),
		PaymentRef:  booking.PaymentRef.Ptr(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a booking by ID with its property attached when the
// listing still exists.
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	var m models.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	booking := bookingToEntity(&m)
	r.attachProperties(ctx, []*entities.Booking{booking})
	return booking, nil
}

// UpdateStatus records a status transition
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
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

// ListByGuest lists a guest's bookings, newest first
func (r *BookingRepository) ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("guest_id = ?", guestID), limit, offset)
}

// ListByHost lists the bookings on a host's properties, newest first
func (r *BookingRepository) ListByHost(ctx context.Context, hostID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("host_id = ?", hostID), limit, offset)
}

// List lists every booking, newest first
func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]*entities.Booking, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx), limit, offset)
}

func (r *BookingRepository) list(ctx context.Context, query *gorm.DB, limit, offset int) ([]*entities.Booking, int64, error) {
	var total int64
	if err := query.Model(&models.Booking{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var bookingModels []models.Booking
	if err := query.Find(&bookingModels).Error; err != nil {
		return nil, 0, err
	}

	var bookings []*entities.Booking
	for _, m := range bookingModels {
		model := m
		bookings = append(bookings, bookingToEntity(&model))
	}
	r.attachProperties(ctx, bookings)
	return bookings, total, nil
}

// Stats aggregates revenue and status counts. Revenue counts paid
// bookings only. A nil hostID aggregates the whole platform.
func (r *BookingRepository) Stats(ctx context.Context, hostID *uuid.UUID) (*entities.BookingStats, error) {
	base := r.db.WithContext(ctx).Model(&models.Booking{})
	if hostID != nil {
		base = base.Where("host_id = ?", *hostID)
	}

	var revenue struct {
		Total float64
	}
	err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(total_price), 0) AS total").
		Where("status = ?", "paid").
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	err = base.Session(&gorm.Session{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	stats := &entities.BookingStats{
		TotalRevenue: revenue.Total,
		ByStatus:     make(map[entities.BookingStatus]int64, len(counts)),
	}
	for _, c := range counts {
		status := entities.BookingStatus(c.Status)
		stats.ByStatus[status] = c.Count
		if status == entities.BookingStatusPending || status == entities.BookingStatusApproved {
			stats.ActiveBookings += int(c.Count)
		}
	}
	return stats, nil
}

// attachProperties loads the referenced listings in one query. Bookings
// whose listing was deleted keep a nil Property.
func (r *BookingRepository) attachProperties(ctx context.Context, bookings []*entities.Booking) {
	if len(bookings) == 0 {
		return
	}
	ids := make([]uuid.UUID, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.PropertyID)
	}

	var propertyModels []models.Property
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&propertyModels).Error; err != nil {
		return
	}
	byID := make(map[uuid.UUID]*entities.Property, len(propertyModels))
	for _, m := range propertyModels {
		model := m
		byID[m.ID] = propertyToEntity(&model)
	}
	for _, b := range bookings {
		b.Property = byID[b.PropertyID]
	}
}

func bookingToEntity(m *models.Booking) *entities.Booking {
	return &entities.Booking{
		ID:               m.ID,
		PropertyID:       m.PropertyID,
		GuestID:          m.GuestID,
		HostID:           m.HostID,
		CheckIn:          m.CheckIn,
		CheckOut:         m.CheckOut,
		GuestsCount:      m.GuestsCount,
		TotalPrice:       m.TotalPrice,
		TaxAmount:        m.TaxAmount,
		CommissionAmount: m.Commission,
		Status:           entities.BookingStatus(m.Status),
		PaymentRef:       null.StringFromPtr(m.PaymentRef),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
