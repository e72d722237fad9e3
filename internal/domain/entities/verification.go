package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus represents the lifecycle of an identity check
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// Eligibility is the booking-eligibility answer for a (guest, host) pair.
type Eligibility string

const (
	EligibilityVerified   Eligibility = "verified"
	EligibilityPending    Eligibility = "pending"
	EligibilityUnverified Eligibility = "unverified"
)

// VerificationRequest is an identity-approval record scoped to a
// (guest, host) pair. Approval by one host does not carry over to another.
type VerificationRequest struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"userId"`
	HostID      uuid.UUID          `json:"hostId"`
	Status      VerificationStatus `json:"status"`
	DocumentRef string             `json:"documentRef"`
	SubmittedAt time.Time          `json:"submittedAt"`
	DecidedAt   null.Time          `json:"decidedAt,omitempty"`
}

// Active reports whether the request still gates the pair: a pending or
// approved record blocks a new submission.
func (v *VerificationRequest) Active() bool {
	return v.Status == VerificationStatusPending || v.Status == VerificationStatusApproved
}

// VerificationDecision is a host/admin ruling on a request
type VerificationDecision string

const (
	VerificationDecisionApprove VerificationDecision = "approve"
	VerificationDecisionReject  VerificationDecision = "reject"
)

// SubmitVerificationInput carries the uploaded identity document.
// Document is the base64 payload, ContentType its MIME type.
type SubmitVerificationInput struct {
	PropertyID  string `json:"propertyId" binding:"required"`
	Document    string `json:"document" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// DecideVerificationInput carries the host/admin ruling
type DecideVerificationInput struct {
	Decision VerificationDecision `json:"decision" binding:"required"`
}

// EligibilityResponse is the gate answer for a guest viewing a property
type EligibilityResponse struct {
	Eligibility Eligibility `json:"eligibility"`
	HostID      uuid.UUID   `json:"hostId"`
}
