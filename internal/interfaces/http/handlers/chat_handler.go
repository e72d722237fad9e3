package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"havenly.backend/internal/domain/entities"
	domainerrors "havenly.backend/internal/domain/errors"
	"havenly.backend/internal/interfaces/http/response"
	"havenly.backend/internal/usecases"
)

// ChatHandler handles the guest-host messaging endpoints
type ChatHandler struct {
	chatUsecase *usecases.ChatUsecase
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUsecase *usecases.ChatUsecase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

// OpenThread returns the thread with another user, creating it on first
// contact
// POST /api/v1/chat/threads
func (h *ChatHandler) OpenThread(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	var input entities.OpenThreadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	thread, err := h.chatUsecase.OpenThread(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"thread": thread})
}

// ListThreads lists the threads visible to the actor
// GET /api/v1/chat/threads
func (h *ChatHandler) ListThreads(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	threads, err := h.chatUsecase.ListThreads(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"threads": threads})
}

// SendMessage appends a message to a thread
// POST /api/v1/chat/threads/:id/messages
func (h *ChatHandler) SendMessage(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	threadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	message, err := h.chatUsecase.SendMessage(c.Request.Context(), actor, threadID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": message})
}

// ListMessages lists a thread's messages
// GET /api/v1/chat/threads/:id/messages
func (h *ChatHandler) ListMessages(c *gin.Context) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}
	threadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	messages, err := h.chatUsecase.ListMessages(c.Request.Context(), actor, threadID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}
