package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/infrastructure/models"
	"havenly.backend/pkg/utils"
)

// ChatRepository implements the append-only message log
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// GetThread gets a thread by ID
func (r *ChatRepository) GetThread(ctx context.Context, id uuid.UUID) (*entities.ChatThread, error) {
	var m models.ChatThread
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return threadToEntity(&m), nil
}

// GetOrCreateThread returns the thread for the participant pair in either
// order, creating it on first contact.
func (r *ChatRepository) GetOrCreateThread(ctx context.Context, a, b uuid.UUID) (*entities.ChatThread, error) {
	var m models.ChatThread
	err := r.db.WithContext(ctx).
		Where("(participant_a_id = ? AND participant_b_id = ?) OR (participant_a_id = ? AND participant_b_id = ?)", a, b, b, a).
		First(&m).Error
	if err == nil {
		return threadToEntity(&m), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m = models.ChatThread{
		ID:             utils.GenerateUUIDv7(),
		ParticipantAID: a,
		ParticipantBID: b,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return threadToEntity(&m), nil
}

// ListThreadsByUser lists the threads a user participates in
func (r *ChatRepository) ListThreadsByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ChatThread, error) {
	var threadModels []models.ChatThread
	err := r.db.WithContext(ctx).
		Where("participant_a_id = ? OR participant_b_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&threadModels).Error
	if err != nil {
		return nil, err
	}
	return threadsToEntities(threadModels), nil
}

// ListAllThreads lists every thread on the platform
func (r *ChatRepository) ListAllThreads(ctx context.Context) ([]*entities.ChatThread, error) {
	var threadModels []models.ChatThread
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&threadModels).Error; err != nil {
		return nil, err
	}
	return threadsToEntities(threadModels), nil
}

// AppendMessage appends a message and refreshes the thread preview
func (r *ChatRepository) AppendMessage(ctx context.Context, message *entities.ChatMessage) error {
	m := &models.ChatMessage{
		ID:       message.ID,
		ThreadID: message.ThreadID,
		SenderID: message.SenderID,
		Text:     message.Text,
		Kind:     string(message.Kind),
		FileRef:  message.FileRef.Ptr(),
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&models.ChatThread{}).
			Where("id = ?", message.ThreadID).
			Updates(map[string]interface{}{
				"last_message": message.Text,
				"updated_at":   time.Now(),
			}).Error
	})
}

// ListMessages lists a thread's messages, oldest first
func (r *ChatRepository) ListMessages(ctx context.Context, threadID uuid.UUID) ([]*entities.ChatMessage, error) {
	var messageModels []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&messageModels).Error
	if err != nil {
		return nil, err
	}

	var messages []*entities.ChatMessage
	for _, m := range messageModels {
		model := m
		messages = append(messages, &entities.ChatMessage{
			ID:        model.ID,
			ThreadID:  model.ThreadID,
			SenderID:  model.SenderID,
			Text:      model.Text,
			Kind:      entities.MessageKind(model.Kind),
			FileRef:   null.StringFromPtr(model.FileRef),
			CreatedAt: model.CreatedAt,
		})
	}
	return messages, nil
}

func threadToEntity(m *models.ChatThread) *entities.ChatThread {
	return &entities.ChatThread{
		ID:             m.ID,
		ParticipantAID: m.ParticipantAID,
		ParticipantBID: m.ParticipantBID,
		LastMessage:    m.LastMessage,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func threadsToEntities(threadModels []models.ChatThread) []*entities.ChatThread {
	var threads []*entities.ChatThread
	for _, m := range threadModels {
		model := m
		threads = append(threads, threadToEntity(&model))
	}
	return threads
}
