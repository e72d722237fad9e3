package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MessageKind represents the payload type of a chat message
type MessageKind string

const (
	MessageKindText  MessageKind = "text"
	MessageKindImage MessageKind = "image"
	MessageKindDoc   MessageKind = "doc"
)

// ChatThread pairs two participants. Threads and messages are append-only.
type ChatThread struct {
	ID             uuid.UUID `json:"id"`
	ParticipantAID uuid.UUID `json:"participantAId"`
	ParticipantBID uuid.UUID `json:"participantBId"`
	LastMessage    string    `json:"lastMessage"`
	UpdatedAt      time.Time `json:"updatedAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Involves reports whether the user participates in the thread.
func (t *ChatThread) Involves(userID uuid.UUID) bool {
	return t.ParticipantAID == userID || t.ParticipantBID == userID
}

// ChatMessage is one entry of the append-only log of a thread.
type ChatMessage struct {
	ID        uuid.UUID   `json:"id"`
	ThreadID  uuid.UUID   `json:"threadId"`
	SenderID  uuid.UUID   `json:"senderId"`
	Text      string      `json:"text"`
	Kind      MessageKind `json:"kind"`
	FileRef   null.String `json:"fileRef,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// SendMessageInput represents input for appending a message
type SendMessageInput struct {
	Text    string      `json:"text" binding:"required"`
	Kind    MessageKind `json:"kind"`
	FileRef string      `json:"fileRef"`
}

// OpenThreadInput starts (or returns) the thread with another participant
type OpenThreadInput struct {
	ParticipantID string `json:"participantId" binding:"required"`
}
