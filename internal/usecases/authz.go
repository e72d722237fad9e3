package usecases

import (
	"havenly.backend/internal/domain/entities"
)

// Authorization predicates. Every mutating operation runs the matching
// predicate before touching state, so the role rules live in one place.

// canManageProperty reports whether the actor may edit or delete the
// listing. Only the owning host and platform admins may.
func canManageProperty(actor *entities.User, property *entities.Property) bool {
	return actor.IsAdmin() || property.HostID == actor.ID
}

// canDecideVerification reports whether the actor may approve/reject the
// request: the host it is scoped to, or an admin.
func canDecideVerification(actor *entities.User, request *entities.VerificationRequest) bool {
	return actor.IsAdmin() || request.HostID == actor.ID
}

// canViewVerification covers reads: the submitting guest also sees their
// own requests.
func canViewVerification(actor *entities.User, request *entities.VerificationRequest) bool {
	return canDecideVerification(actor, request) || request.UserID == actor.ID
}

// canDecideBooking reports whether the actor may drive booking status:
// the host of the booked property, or an admin.
func canDecideBooking(actor *entities.User, booking *entities.Booking) bool {
	return actor.IsAdmin() || booking.HostID == actor.ID
}

// canViewBooking covers reads: the guest who made the booking also sees it.
func canViewBooking(actor *entities.User, booking *entities.Booking) bool {
	return canDecideBooking(actor, booking) || booking.GuestID == actor.ID
}

// canViewThread reports whether the actor may read or post to the thread.
func canViewThread(actor *entities.User, thread *entities.ChatThread) bool {
	return actor.IsAdmin() || thread.Involves(actor.ID)
}
