package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/domain/repositories"
	"havenly.backend/pkg/utils"
)

// VerificationUsecase handles the per-(guest, host) identity gate
type VerificationUsecase struct {
	verificationRepo repositories.VerificationRepository
	propertyRepo     repositories.PropertyRepository
	userRepo         repositories.UserRepository
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	verificationRepo repositories.VerificationRepository,
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
) *VerificationUsecase {
	return &VerificationUsecase{
		verificationRepo: verificationRepo,
		propertyRepo:     propertyRepo,
		userRepo:         userRepo,
	}
}

// CheckEligibility answers the gate for a guest viewing a property. The
// global idVerified flag short-circuits; otherwise the answer follows the
// active request for the exact (guest, host) pair. Pure query.
func (u *VerificationUsecase) CheckEligibility(ctx context.Context, actorID, propertyID uuid.UUID) (*entities.EligibilityResponse, error) {
	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	actor, err := u.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	resp := &entities.EligibilityResponse{HostID: property.HostID}
	if actor.IDVerified {
		resp.Eligibility = entities.EligibilityVerified
		return resp, nil
	}

	active, err := u.verificationRepo.GetActiveByPair(ctx, actorID, property.HostID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			resp.Eligibility = entities.EligibilityUnverified
			return resp, nil
		}
		return nil, err
	}

	switch active.Status {
	case entities.VerificationStatusApproved:
		resp.Eligibility = entities.EligibilityVerified
	default:
		resp.Eligibility = entities.EligibilityPending
	}
	return resp, nil
}

// Submit creates a pending request scoped to the property's host. At most
// one active (pending or approved) request may exist per pair, so a
// resubmission while one is open is rejected.
func (u *VerificationUsecase) Submit(ctx context.Context, actor *entities.User, input *entities.SubmitVerificationInput) (*entities.VerificationRequest, error) {
	if input.Document == "" {
		return nil, domainerrors.Validation("a document is required")
	}

	propertyID, err := uuid.Parse(input.PropertyID)
	if err != nil {
		return nil, domainerrors.Validation("invalid property id")
	}
	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if actor.IDVerified {
		return nil, domainerrors.Conflict("identity already verified globally")
	}
	if property.HostID == actor.ID {
		return nil, domainerrors.Validation("hosts do not verify against themselves")
	}

	_, err = u.verificationRepo.GetActiveByPair(ctx, actor.ID, property.HostID)
	if err == nil {
		return nil, domainerrors.Conflict("an active verification request already exists for this host")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	request := &entities.VerificationRequest{
		ID:          utils.GenerateUUIDv7(),
		UserID:      actor.ID,
		HostID:      property.HostID,
		Status:      entities.VerificationStatusPending,
		DocumentRef: encodeDocumentRef(input.Document, input.ContentType),
		SubmittedAt: time.Now().UTC(),
	}
	if err := u.verificationRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// Decide approves or rejects a request. The scoped host or an admin
// only. Re-deciding overwrites the previous decision and eligibility
// follows immediately.
func (u *VerificationUsecase) Decide(ctx context.Context, actor *entities.User, requestID uuid.UUID, decision entities.VerificationDecision) (*entities.VerificationRequest, error) {
	var status entities.VerificationStatus
	switch decision {
	case entities.VerificationDecisionApprove:
		status = entities.VerificationStatusApproved
	case entities.VerificationDecisionReject:
		status = entities.VerificationStatusRejected
	default:
		return nil, domainerrors.Validation("unknown decision")
	}

	request, err := u.verificationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !canDecideVerification(actor, request) {
		return nil, domainerrors.Authorization("not the host this request is addressed to")
	}

	if err := u.verificationRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}
	return u.verificationRepo.GetByID(ctx, requestID)
}

// List returns the requests visible to the actor: admins see all, hosts
// the ones addressed to them, guests their own submissions.
func (u *VerificationUsecase) List(ctx context.Context, actor *entities.User) ([]*entities.VerificationRequest, error) {
	switch {
	case actor.IsAdmin():
		return u.verificationRepo.ListAll(ctx)
	case actor.Role == entities.UserRoleHost:
		return u.verificationRepo.ListByHost(ctx, actor.ID)
	default:
		return u.verificationRepo.ListByUser(ctx, actor.ID)
	}
}

// encodeDocumentRef wraps the uploaded base64 payload as a data URI so it
// can be stored and later embedded without a file store.
func encodeDocumentRef(document, contentType string) string {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, document)
}
