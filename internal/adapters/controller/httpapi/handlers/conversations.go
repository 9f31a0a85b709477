package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type conversationService interface {
	GetOrCreate(ctx context.Context, userID, otherID string) (*entity.Conversation, error)
	SendMessage(ctx context.Context, message *entity.Message) (*entity.Message, error)
	Messages(ctx context.Context, conversationID string) ([]entity.Message, error)
}

type sendMessageRequest struct {
	Content   string `json:"content" validate:"required_without=ImagePath"`
	ImagePath string `json:"image_path"`
}

type ConversationHandler struct {
	logger        *logger.Logger
	conversations conversationService
}

func NewConversationHandler(logger *logger.Logger, conversations conversationService) *ConversationHandler {
	return &ConversationHandler{
		logger:        logger,
		conversations: conversations,
	}
}

// Open returns the conversation between the caller and another user, creating
// it on first contact.
func (h *ConversationHandler) Open(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())
	otherID := chi.URLParam(r, "userID")

	if otherID == userID {
		respondError(w, http.StatusBadRequest, "cannot message yourself")
		return
	}

	conversation, err := h.conversations.GetOrCreate(r.Context(), userID, otherID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, conversation)
}

func (h *ConversationHandler) Messages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.conversations.Messages(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

func (h *ConversationHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())

	var body sendMessageRequest
	if err := decodeValid(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.conversations.SendMessage(r.Context(), &entity.Message{
		ConversationID: chi.URLParam(r, "id"),
		SenderID:       userID,
		Content:        body.Content,
		ImagePath:      body.ImagePath,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, message)
}
