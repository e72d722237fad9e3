package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BookingStatus represents booking status
type BookingStatus string

const (
	BookingStatusPending BookingStatus = "pending"
	// BookingStatusApproved exists in the status taxonomy but no operation
	// transitions into it. It is reserved for a future approval-then-payment
	// flow; seeded or imported rows holding it can still be cancelled.
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Terminal reports whether no further transition is defined out of s.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusPaid || s == BookingStatusCancelled
}

// Fixed platform rates applied at booking creation. The per-property
// TaxRate field is intentionally not consulted here.
const (
	TaxRate        = 0.10
	CommissionRate = 0.05
)

// Booking represents a stay reservation. Created in pending status right
// after the gateway confirms the charge; never deleted.
type Booking struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	GuestID    uuid.UUID `json:"guestId"`
	// HostID is copied from the property at creation so host views keep
	// working after the listing is deleted.
	HostID           uuid.UUID     `json:"hostId"`
	CheckIn          time.Time     `json:"checkIn"`
	CheckOut         time.Time     `json:"checkOut"`
	GuestsCount      int           `json:"guestsCount"`
	TotalPrice       float64       `json:"totalPrice"`
	TaxAmount        float64       `json:"taxAmount"`
	CommissionAmount float64       `json:"commissionAmount"`
	Status           BookingStatus `json:"status"`
	PaymentRef       null.String   `json:"paymentRef,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`

	Property *Property `json:"property,omitempty"`
}

// BookingDecision is a host/admin action on a booking
type BookingDecision string

const (
	BookingDecisionApprovePayment BookingDecision = "approve_payment"
	BookingDecisionCancel         BookingDecision = "cancel"
)

// CanTransition reports whether the decision is defined for the current
// status. paid and cancelled are terminal; paid never becomes cancelled
// (no refund handling in this system).
func CanTransition(from BookingStatus, decision BookingDecision) (BookingStatus, bool) {
	switch decision {
	case BookingDecisionApprovePayment:
		if from == BookingStatusPending {
			return BookingStatusPaid, true
		}
	case BookingDecisionCancel:
		if from == BookingStatusPending || from == BookingStatusApproved {
			return BookingStatusCancelled, true
		}
	}
	return from, false
}

// RequestBookingInput represents input for requesting a stay.
// Dates use the 2006-01-02 layout.
type RequestBookingInput struct {
	PropertyID  string      `json:"propertyId" binding:"required"`
	CheckIn     string      `json:"checkIn" binding:"required"`
	CheckOut    string      `json:"checkOut" binding:"required"`
	GuestsCount int         `json:"guestsCount" binding:"required,min=1"`
	Card        CardDetails `json:"card"`
}

// CardDetails is passed through to the simulated gateway. Nothing is
// validated for real.
type CardDetails struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

// DecideBookingInput carries the host/admin ruling on a booking
type DecideBookingInput struct {
	Decision BookingDecision `json:"decision" binding:"required"`
}

// QuoteResponse is the deterministic price for a candidate stay.
// A zero total means the selection is invalid, not a free stay.
type QuoteResponse struct {
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

// BookingStats summarizes bookings for the dashboard
type BookingStats struct {
	TotalRevenue   float64                 `json:"totalRevenue"`
	ActiveBookings int                     `json:"activeBookings"`
	ByStatus       map[BookingStatus]int64 `json:"byStatus"`
}
