package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"havenly.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string) ([]*entities.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *entities.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *entities.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPropertyRepository) List(ctx context.Context, filter entities.PropertyFilter) ([]*entities.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Property), args.Error(1)
}

// Mock WatchlistRepository
type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) Toggle(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, propertyID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Property, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Property), args.Error(1)
}

// Mock VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, request *entities.VerificationRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockVerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) GetActiveByPair(ctx context.Context, userID, hostID uuid.UUID) (*entities.VerificationRequest, error) {
	args := m.Called(ctx, userID, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) ListByPair(ctx context.Context, userID, hostID uuid.UUID) ([]*entities.VerificationRequest, error) {
	args := m.Called(ctx, userID, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.VerificationRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*entities.VerificationRequest, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) ListAll(ctx context.Context) ([]*entities.VerificationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// Mock BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockBookingRepository) ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error) {
	args := m.Called(ctx, guestID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) ListByHost(ctx context.Context, hostID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error) {
	args := m.Called(ctx, hostID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) List(ctx context.Context, limit, offset int) ([]*entities.Booking, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) Stats(ctx context.Context, hostID *uuid.UUID) (*entities.BookingStats, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BookingStats), args.Error(1)
}

// Mock ChatRepository
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) GetThread(ctx context.Context, id uuid.UUID) (*entities.ChatThread, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ChatThread), args.Error(1)
}

func (m *MockChatRepository) GetOrCreateThread(ctx context.Context, a, b uuid.UUID) (*entities.ChatThread, error) {
	args := m.Called(ctx, a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ChatThread), args.Error(1)
}

func (m *MockChatRepository) ListThreadsByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ChatThread, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ChatThread), args.Error(1)
}

func (m *MockChatRepository) ListAllThreads(ctx context.Context) ([]*entities.ChatThread, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ChatThread), args.Error(1)
}

func (m *MockChatRepository) AppendMessage(ctx context.Context, message *entities.ChatMessage) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockChatRepository) ListMessages(ctx context.Context, threadID uuid.UUID) ([]*entities.ChatMessage, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ChatMessage), args.Error(1)
}

// Mock SiteConfigRepository
type MockSiteConfigRepository struct {
	mock.Mock
}

func (m *MockSiteConfigRepository) Get(ctx context.Context) (*entities.SiteConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SiteConfig), args.Error(1)
}

func (m *MockSiteConfigRepository) Update(ctx context.Context, config *entities.SiteConfig) error {
	return m.Called(ctx, config).Error(0)
}

// Mock PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) Charge(ctx context.Context, amount float64, card entities.CardDetails) (string, error) {
	args := m.Called(ctx, amount, card)
	return args.String(0), args.Error(1)
}

// Mock advice.Client
type MockAdviceClient struct {
	mock.Mock
}

func (m *MockAdviceClient) PropertyAdvice(ctx context.Context, propertyTitle, userNeeds string) (string, error) {
	args := m.Called(ctx, propertyTitle, userNeeds)
	return args.String(0), args.Error(1)
}

func (m *MockAdviceClient) SmartDescription(ctx context.Context, details string) (string, error) {
	args := m.Called(ctx, details)
	return args.String(0), args.Error(1)
}

func (m *MockAdviceClient) Close() error {
	return m.Called().Error(0)
}
