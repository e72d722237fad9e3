package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/domain/repositories"
	"havenly.backend/internal/infrastructure/advice"
	"havenly.backend/pkg/logger"
)

// adviceFallback is returned whenever the model is unreachable; the
// feature degrades instead of erroring.
const adviceFallback = "I'm having trouble connecting to my AI brain right now, but this property looks lovely!"

// AdviceUsecase handles concierge text generation for listings
type AdviceUsecase struct {
	propertyRepo repositories.PropertyRepository
	client       advice.Client
}

// NewAdviceUsecase creates a new advice usecase
func NewAdviceUsecase(propertyRepo repositories.PropertyRepository, client advice.Client) *AdviceUsecase {
	return &AdviceUsecase{
		propertyRepo: propertyRepo,
		client:       client,
	}
}

// PropertyAdvice explains why the listing fits the stated needs. Model
// failures fall back to a canned line.
func (u *AdviceUsecase) PropertyAdvice(ctx context.Context, propertyID uuid.UUID, userNeeds string) (string, error) {
	if userNeeds == "" {
		return "", domainerrors.Validation("tell us what you are looking for")
	}

	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return "", err
	}

	text, err := u.client.PropertyAdvice(ctx, property.Title, userNeeds)
	if err != nil {
		logger.Warn(ctx, "advice model failed, using fallback", zap.Error(err))
		return adviceFallback, nil
	}
	return text, nil
}

// SmartDescription turns raw listing details into marketing copy. Model
// failures fall back to the details untouched.
func (u *AdviceUsecase) SmartDescription(ctx context.Context, details string) (string, error) {
	if details == "" {
		return "", domainerrors.Validation("listing details are required")
	}

	text, err := u.client.SmartDescription(ctx, details)
	if err != nil {
		logger.Warn(ctx, "description model failed, using fallback", zap.Error(err))
		return details, nil
	}
	return text, nil
}
