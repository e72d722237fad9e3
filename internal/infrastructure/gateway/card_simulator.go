package gateway

import (
	"context"
	"strings"
	"time"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/pkg/crypto"
)

// CardSimulator stands in for a real card processor. It waits a
// configurable latency, declines one well-known test card number and
// approves everything else with a fresh payment reference.
type CardSimulator struct {
	latency      time.Duration
	declinedCard string
}

// NewCardSimulator creates a new simulated card gateway
func NewCardSimulator(latency time.Duration, declinedCard string) *CardSimulator {
	return &CardSimulator{
		latency:      latency,
		declinedCard: declinedCard,
	}
}

// Charge simulates charging the card for the given amount. The context
// deadline is honored while waiting out the processing latency.
func (g *CardSimulator) Charge(ctx context.Context, amount float64, card entities.CardDetails) (string, error) {
	if amount <= 0 {
		return "", domainerrors.Validation("charge amount must be positive")
	}

	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	if normalizeCardNumber(card.Number) == g.declinedCard {
		return "", domainerrors.ErrPaymentFailed
	}

	token, err := crypto.GenerateRandomToken(12)
	if err != nil {
		return "", err
	}
	return "pay_" + token, nil
}

func normalizeCardNumber(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	return strings.ReplaceAll(number, "-", "")
}
