package usecases

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/domain/repositories"
	"havenly.backend/internal/observability/metrics"
	"havenly.backend/pkg/utils"
)

const dateLayout = "2006-01-02"

// chargeTimeout caps how long a booking waits on the gateway.
const chargeTimeout = 10 * time.Second

// PaymentGateway is the charge contract the booking flow depends on.
// Implemented by the simulated card gateway.
type PaymentGateway interface {
	Charge(ctx context.Context, amount float64, card entities.CardDetails) (string, error)
}

// BookingUsecase prices stays, gates creation on verification and
// payment, and drives status transitions.
type BookingUsecase struct {
	bookingRepo  repositories.BookingRepository
	propertyRepo repositories.PropertyRepository
	verification *VerificationUsecase
	gateway      PaymentGateway
	metrics      *metrics.BookingMetrics
}

// NewBookingUsecase creates a new booking usecase. metrics may be nil.
func NewBookingUsecase(
	bookingRepo repositories.BookingRepository,
	propertyRepo repositories.PropertyRepository,
	verification *VerificationUsecase,
	gateway PaymentGateway,
	bookingMetrics *metrics.BookingMetrics,
) *BookingUsecase {
	return &BookingUsecase{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		verification: verification,
		gateway:      gateway,
		metrics:      bookingMetrics,
	}
}

// Quote prices a candidate stay. A zero total marks an invalid date
// selection, never a free stay. Pure query.
func (u *BookingUsecase) Quote(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut string) (*entities.QuoteResponse, error) {
	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	in, out, err := parseStayDates(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	nights := stayNights(in, out)
	if nights <= 0 {
		return &entities.QuoteResponse{}, nil
	}
	return &entities.QuoteResponse{
		Nights: nights,
		Total:  float64(nights) * property.PricePerNight,
	}, nil
}

// RequestBooking charges the quoted total and creates the booking in
// pending status. All-or-nothing: a failed charge leaves no booking.
func (u *BookingUsecase) RequestBooking(ctx context.Context, actor *entities.User, input *entities.RequestBookingInput) (*entities.Booking, error) {
	propertyID, err := uuid.Parse(input.PropertyID)
	if err != nil {
		return nil, domainerrors.Validation("invalid property id")
	}
	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if property.HostID == actor.ID {
		return nil, domainerrors.Validation("hosts cannot book their own listing")
	}
	if property.Status != entities.PropertyStatusAvailable {
		return nil, domainerrors.Validation("listing is not available")
	}
	if input.GuestsCount < 1 || input.GuestsCount > property.MaxGuests {
		u.metrics.ObserveBooking("rejected")
		return nil, domainerrors.Validation("guest count out of range")
	}

	in, out, err := parseStayDates(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	nights := stayNights(in, out)
	if nights <= 0 {
		u.metrics.ObserveBooking("rejected")
		return nil, domainerrors.Validation("check-out must be after check-in")
	}
	total := float64(nights) * property.PricePerNight

	eligibility, err := u.verification.CheckEligibility(ctx, actor.ID, propertyID)
	if err != nil {
		return nil, err
	}
	if eligibility.Eligibility != entities.EligibilityVerified {
		u.metrics.ObserveBooking("unverified")
		return nil, domainerrors.NewError("identity not verified for this host", domainerrors.ErrNotVerified)
	}

	chargeCtx, cancel := context.WithTimeout(ctx, chargeTimeout)
	defer cancel()

	chargeStart := time.Now()
	paymentRef, err := u.gateway.Charge(chargeCtx, total, input.Card)
	if err != nil {
		u.metrics.ObserveCharge("declined", time.Since(chargeStart).Seconds())
		u.metrics.ObserveBooking("declined")
		if errors.Is(err, domainerrors.ErrPaymentFailed) {
			return nil, domainerrors.Payment("card was declined")
		}
		return nil, err
	}
	u.metrics.ObserveCharge("approved", time.Since(chargeStart).Seconds())

	booking := &entities.Booking{
		ID:               utils.GenerateUUIDv7(),
		PropertyID:       property.ID,
		GuestID:          actor.ID,
		HostID:           property.HostID,
		CheckIn:          in,
		CheckOut:         out,
		GuestsCount:      input.GuestsCount,
		TotalPrice:       total,
		TaxAmount:        round2(total * entities.TaxRate),
		CommissionAmount: round2(total * entities.CommissionRate),
		Status:           entities.BookingStatusPending,
		PaymentRef:       null.StringFrom(paymentRef),
	}
	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	u.metrics.ObserveBooking("created")

	booking.Property = property
	return booking, nil
}

// DecideBooking applies a host/admin ruling. Terminal states reject any
// further decision.
func (u *BookingUsecase) DecideBooking(ctx context.Context, actor *entities.User, bookingID uuid.UUID, decision entities.BookingDecision) (*entities.Booking, error) {
	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !canDecideBooking(actor, booking) {
		u.metrics.ObserveDecision(string(decision), "forbidden")
		return nil, domainerrors.Authorization("not the host of this booking")
	}

	next, ok := entities.CanTransition(booking.Status, decision)
	if !ok {
		u.metrics.ObserveDecision(string(decision), "invalid")
		return nil, domainerrors.NewAppError(409, "no such transition from "+string(booking.Status), domainerrors.ErrInvalidTransition)
	}

	if err := u.bookingRepo.UpdateStatus(ctx, bookingID, next); err != nil {
		return nil, err
	}
	u.metrics.ObserveDecision(string(decision), "ok")

	booking.Status = next
	return booking, nil
}

// GetByID returns a booking the actor may see
func (u *BookingUsecase) GetByID(ctx context.Context, actor *entities.User, bookingID uuid.UUID) (*entities.Booking, error) {
	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !canViewBooking(actor, booking) {
		return nil, domainerrors.Authorization("not a party to this booking")
	}
	return booking, nil
}

// List returns the bookings visible to the actor: admins see all, hosts
// the bookings on their listings, guests their own stays.
func (u *BookingUsecase) List(ctx context.Context, actor *entities.User, params utils.PaginationParams) ([]*entities.Booking, utils.PaginationMeta, error) {
	limit := params.Limit
	offset := params.CalculateOffset()

	var (
		bookings []*entities.Booking
		total    int64
		err      error
	)
	switch {
	case actor.IsAdmin():
		bookings, total, err = u.bookingRepo.List(ctx, limit, offset)
	case actor.Role == entities.UserRoleHost:
		bookings, total, err = u.bookingRepo.ListByHost(ctx, actor.ID, limit, offset)
	default:
		bookings, total, err = u.bookingRepo.ListByGuest(ctx, actor.ID, limit, offset)
	}
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return bookings, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// Stats aggregates the dashboard numbers. Hosts get their own slice,
// admins the whole platform.
func (u *BookingUsecase) Stats(ctx context.Context, actor *entities.User) (*entities.BookingStats, error) {
	switch {
	case actor.IsAdmin():
		return u.bookingRepo.Stats(ctx, nil)
	case actor.Role == entities.UserRoleHost:
		hostID := actor.ID
		return u.bookingRepo.Stats(ctx, &hostID)
	default:
		return nil, domainerrors.Authorization("stats are host or admin only")
	}
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, domainerrors.Validation("invalid check-in date")
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, domainerrors.Validation("invalid check-out date")
	}
	return in, out, nil
}

func stayNights(in, out time.Time) int {
	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
