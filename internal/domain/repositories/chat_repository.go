package repositories

import (
	"context"

	"github.com/google/uuid"
	"havenly.backend/internal/domain/entities"
)

// ChatRepository defines the append-only message log operations
type ChatRepository interface {
	GetThread(ctx context.Context, id uuid.UUID) (*entities.ChatThread, error)
	// GetOrCreateThread returns the thread for the unordered participant
	// pair, creating it on first contact.
	GetOrCreateThread(ctx context.Context, a, b uuid.UUID) (*entities.ChatThread, error)
	ListThreadsByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ChatThread, error)
	ListAllThreads(ctx context.Context) ([]*entities.ChatThread, error)
	AppendMessage(ctx context.Context, message *entities.ChatMessage) error
	ListMessages(ctx context.Context, threadID uuid.UUID) ([]*entities.ChatMessage, error)
}
