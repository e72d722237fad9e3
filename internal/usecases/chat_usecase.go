package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/domain/repositories"
	"havenly.backend/pkg/utils"
)

// ChatUsecase handles the append-only messaging between guests and hosts
type ChatUsecase struct {
	chatRepo repositories.ChatRepository
	userRepo repositories.UserRepository
}

// NewChatUsecase creates a new chat usecase
func NewChatUsecase(chatRepo repositories.ChatRepository, userRepo repositories.UserRepository) *ChatUsecase {
	return &ChatUsecase{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

// OpenThread returns the actor's thread with another user, creating it on
// first contact.
func (u *ChatUsecase) OpenThread(ctx context.Context, actor *entities.User, input *entities.OpenThreadInput) (*entities.ChatThread, error) {
	participantID, err := uuid.Parse(input.ParticipantID)
	if err != nil {
		return nil, domainerrors.Validation("invalid participant id")
	}
	if participantID == actor.ID {
		return nil, domainerrors.Validation("cannot open a thread with yourself")
	}
	if _, err := u.userRepo.GetByID(ctx, participantID); err != nil {
		return nil, err
	}
	return u.chatRepo.GetOrCreateThread(ctx, actor.ID, participantID)
}

// ListThreads lists the threads visible to the actor. Admins see all.
func (u *ChatUsecase) ListThreads(ctx context.Context, actor *entities.User) ([]*entities.ChatThread, error) {
	if actor.IsAdmin() {
		return u.chatRepo.ListAllThreads(ctx)
	}
	return u.chatRepo.ListThreadsByUser(ctx, actor.ID)
}

// SendMessage appends a message to a thread the actor participates in
func (u *ChatUsecase) SendMessage(ctx context.Context, actor *entities.User, threadID uuid.UUID, input *entities.SendMessageInput) (*entities.ChatMessage, error) {
	thread, err := u.chatRepo.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !thread.Involves(actor.ID) {
		return nil, domainerrors.Authorization("not a participant of this thread")
	}

	kind := input.Kind
	if kind == "" {
		kind = entities.MessageKindText
	}

	message := &entities.ChatMessage{
		ID:       utils.GenerateUUIDv7(),
		ThreadID: threadID,
		SenderID: actor.ID,
		Text:     input.Text,
		Kind:     kind,
	}
	if input.FileRef != "" {
		message.FileRef = null.StringFrom(input.FileRef)
	}
	if err := u.chatRepo.AppendMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages lists a thread's messages for a participant or admin
func (u *ChatUsecase) ListMessages(ctx context.Context, actor *entities.User, threadID uuid.UUID) ([]*entities.ChatMessage, error) {
	thread, err := u.chatRepo.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !canViewThread(actor, thread) {
		return nil, domainerrors.Authorization("not a participant of this thread")
	}
	return u.chatRepo.ListMessages(ctx, threadID)
}
