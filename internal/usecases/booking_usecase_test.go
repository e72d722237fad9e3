package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/usecases"
	"havenly.backend/pkg/utils"
)

type bookingFixture struct {
	bookingRepo      *MockBookingRepository
	propertyRepo     *MockPropertyRepository
	verificationRepo *MockVerificationRepository
	userRepo         *MockUserRepository
	gateway          *MockPaymentGateway
	uc               *usecases.BookingUsecase
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookingRepo:      new(MockBookingRepository),
		propertyRepo:     new(MockPropertyRepository),
		verificationRepo: new(MockVerificationRepository),
		userRepo:         new(MockUserRepository),
		gateway:          new(MockPaymentGateway),
	}
	verification := usecases.NewVerificationUsecase(f.verificationRepo, f.propertyRepo, f.userRepo)
	f.uc = usecases.NewBookingUsecase(f.bookingRepo, f.propertyRepo, verification, f.gateway, nil)
	return f
}

func (f *bookingFixture) expectVerified(ctx context.Context, guest *entities.User, property *entities.Property) {
	f.userRepo.On("GetByID", ctx, guest.ID).Return(guest, nil)
	f.verificationRepo.On("GetActiveByPair", ctx, guest.ID, property.HostID).
		Return(&entities.VerificationRequest{Status: entities.VerificationStatusApproved}, nil)
}

func TestBookingUsecase_Quote(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	property := &entities.Property{ID: uuid.New(), HostID: uuid.New(), PricePerNight: 250}
	f.propertyRepo.On("GetByID", ctx, property.ID).Return(property, nil)

	quote, err := f.uc.Quote(ctx, property.ID, "2024-06-01", "2024-06-05")
	require.NoError(t, err)
	assert.Equal(t, 4, quote.Nights)
	assert.EqualValues(t, 1000, quote.Total)

	// checkOut <= checkIn yields the zero quote, not an error
	quote, err = f.uc.Quote(ctx, property.ID, "2024-06-05", "2024-06-05")
	require.NoError(t, err)
	assert.Zero(t, quote.Nights)
	assert.Zero(t, quote.Total)

	quote, err = f.uc.Quote(ctx, property.ID, "2024-06-05", "2024-06-01")
	require.NoError(t, err)
	assert.Zero(t, quote.Total)

	_, err = f.uc.Quote(ctx, property.ID, "yesterday", "2024-06-01")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestBookingUsecase_RequestBooking_Success(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	guest := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}
	property := &entities.Property{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		PricePerNight: 250,
		MaxGuests:     4,
		Status:        entities.PropertyStatusAvailable,
	}

	f.propertyRepo.On("GetByID", ctx, property.ID).Return(property, nil)
	f.expectVerified(ctx, guest, property)
	// the charge runs under a derived timeout context
	f.gateway.On("Charge", mock.Anything, float64(1000), mock.Anything).Return("pay_abc123", nil).Once()
	f.bookingRepo.On("Create", ctx, mock.MatchedBy(func(b *entities.Booking) bool {
		return b.GuestID == guest.ID &&
			b.HostID == property.HostID &&
			b.Status == entities.BookingStatusPending &&
			b.TotalPrice == 1000 &&
			b.TaxAmount == 100 &&
			b.CommissionAmount == 50 &&
			b.PaymentRef.String == "pay_abc123"
	})).Return(nil).Once()

	booking, err := f.uc.RequestBooking(ctx, guest, &entities.RequestBookingInput{
		PropertyID:  property.ID.String(),
		CheckIn:     "2024-06-01",
		CheckOut:    "2024-06-05",
		GuestsCount: 2,
		Card:        entities.CardDetails{Number: "4242424242424242"},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.BookingStatusPending, booking.Status)
	f.bookingRepo.AssertExpectations(t)
}

func TestBookingUsecase_RequestBooking_Unverified(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	guest := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}
	property := &entities.Property{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		PricePerNight: 250,
		MaxGuests:     4,
		Status:        entities.PropertyStatusAvailable,
	}

	f.propertyRepo.On("GetByID", ctx, property.ID).Return(property, nil)
	f.userRepo.On("GetByID", ctx, guest.ID).Return(guest, nil)
	f.verificationRepo.On("GetActiveByPair", ctx, guest.ID, property.HostID).
		Return(nil, domainerrors.ErrNotFound)

	_, err := f.uc.RequestBooking(ctx, guest, &entities.RequestBookingInput{
		PropertyID:  property.ID.String(),
		CheckIn:     "2024-06-01",
		CheckOut:    "2024-06-05",
		GuestsCount: 2,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotVerified)
	f.gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingUsecase_RequestBooking_PendingVerificationStillBlocked(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	guest := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}
	property := &entities.Property{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		PricePerNight: 100,
		MaxGuests:     2,
		Status:        entities.PropertyStatusAvailable,
	}

	f.propertyRepo.On("GetByID", ctx, property.ID).Return(property, nil)
	f.userRepo.On("GetByID", ctx, guest.ID).Return(guest, nil)
	f.verificationRepo.On("GetActiveByPair", ctx, guest.ID, property.HostID).
		Return(&entities.VerificationRequest{Status: entities.VerificationStatusPending}, nil)

	_, err := f.uc.RequestBooking(ctx, guest, &entities.RequestBookingInput{
		PropertyID:  property.ID.String(),
		CheckIn:     "2024-06-01",
		CheckOut:    "2024-06-02",
		GuestsCount: 1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotVerified)
}

func TestBookingUsecase_RequestBooking_ValidationFailures(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	guest := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}
	property := &entities.Property{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		PricePerNight: 250,
		MaxGuests:     2,
		Status:        entities.PropertyStatusAvailable,
	}
	f.propertyRepo.On("GetByID", ctx, property.ID).Return(property, nil)

	// guest count above capacity
	_, err := f.uc.RequestBooking(ctx, guest, &entities.RequestBookingInput{
		PropertyID:  property.ID.String(),
		CheckIn:     "2024-06-01",
		CheckOut:    "2024-06-05",
		GuestsCount: 3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	// zero-night stay
	_, err = f.uc.RequestBooking(ctx, guest, &entities.RequestBookingInput{
		PropertyID:  property.ID.String(),
		CheckIn:     "2024-06-05",
		CheckOut:    "2024-06-05",
		GuestsCount: 1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	// host booking own listing
	host := &entities.User{ID: property.HostID, Role: entities.UserRoleHost}
	_, err = f.uc.RequestBooking(ctx, host, &entities.RequestBookingInput{
		PropertyID:  property.ID.String(),
		CheckIn:     "2024-06-01",
		CheckOut:    "2024-06-05",
		GuestsCount: 1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	f.gateway.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingUsecase_RequestBooking_DeclinedCharge(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	guest := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}
	property := &entities.Property{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		PricePerNight: 250,
		MaxGuests:     4,
		Status:        entities.PropertyStatusAvailable,
	}

	f.propertyRepo.On("GetByID", ctx, property.ID).Return(property, nil)
	f.expectVerified(ctx, guest, property)
	f.gateway.On("Charge", mock.Anything, float64(1000), mock.Anything).Return("", domainerrors.ErrPaymentFailed).Once()

	_, err := f.uc.RequestBooking(ctx, guest, &entities.RequestBookingInput{
		PropertyID:  property.ID.String(),
		CheckIn:     "2024-06-01",
		CheckOut:    "2024-06-05",
		GuestsCount: 2,
		Card:        entities.CardDetails{Number: "4000000000000002"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)
	// all-or-nothing: no booking row after a failed charge
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingUsecase_DecideBooking(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	host := &entities.User{ID: uuid.New(), Role: entities.UserRoleHost}
	booking := &entities.Booking{
		ID:     uuid.New(),
		HostID: host.ID,
		Status: entities.BookingStatusPending,
	}

	f.bookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil).Once()
	f.bookingRepo.On("UpdateStatus", ctx, booking.ID, entities.BookingStatusPaid).Return(nil).Once()

	updated, err := f.uc.DecideBooking(ctx, host, booking.ID, entities.BookingDecisionApprovePayment)
	require.NoError(t, err)
	assert.Equal(t, entities.BookingStatusPaid, updated.Status)
}

func TestBookingUsecase_DecideBooking_TerminalGuard(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	host := &entities.User{ID: uuid.New(), Role: entities.UserRoleHost}
	paid := &entities.Booking{ID: uuid.New(), HostID: host.ID, Status: entities.BookingStatusPaid}

	f.bookingRepo.On("GetByID", ctx, paid.ID).Return(paid, nil).Once()

	_, err := f.uc.DecideBooking(ctx, host, paid.ID, entities.BookingDecisionCancel)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	f.bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingUsecase_DecideBooking_WrongHost(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	booking := &entities.Booking{ID: uuid.New(), HostID: uuid.New(), Status: entities.BookingStatusPending}
	stranger := &entities.User{ID: uuid.New(), Role: entities.UserRoleHost}

	f.bookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil).Once()

	_, err := f.uc.DecideBooking(ctx, stranger, booking.ID, entities.BookingDecisionApprovePayment)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBookingUsecase_List_ByRole(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()
	params := utils.GetPaginationParams(1, 0)

	admin := &entities.User{ID: uuid.New(), Role: entities.UserRoleSuperAdmin}
	host := &entities.User{ID: uuid.New(), Role: entities.UserRoleHost}
	guest := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}

	f.bookingRepo.On("List", ctx, 0, 0).Return([]*entities.Booking{}, int64(0), nil).Once()
	f.bookingRepo.On("ListByHost", ctx, host.ID, 0, 0).Return([]*entities.Booking{}, int64(0), nil).Once()
	f.bookingRepo.On("ListByGuest", ctx, guest.ID, 0, 0).Return([]*entities.Booking{}, int64(0), nil).Once()

	_, _, err := f.uc.List(ctx, admin, params)
	require.NoError(t, err)
	_, _, err = f.uc.List(ctx, host, params)
	require.NoError(t, err)
	_, _, err = f.uc.List(ctx, guest, params)
	require.NoError(t, err)
	f.bookingRepo.AssertExpectations(t)
}

func TestBookingUsecase_Stats_GuestForbidden(t *testing.T) {
	f := newBookingFixture()

	guest := &entities.User{ID: uuid.New(), Role: entities.UserRoleGuest}
	_, err := f.uc.Stats(context.Background(), guest)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
