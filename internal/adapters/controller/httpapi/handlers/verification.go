package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/dto"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
	"github.com/stayvia/stayvia-server/internal/domain/utils"
)

type verificationService interface {
	History(ctx context.Context, userID string) ([]dto.VerificationMessage, error)
	Approve(ctx context.Context, userID string) (*entity.User, error)
	Reject(ctx context.Context, userID string, rejectMsg string) (*entity.VerificationEvent, error)
}

type rejectVerificationRequest struct {
	RejectMsg string `json:"reject_msg" validate:"required"`
}

type VerificationHandler struct {
	logger       *logger.Logger
	verification verificationService
}

func NewVerificationHandler(logger *logger.Logger, verification verificationService) *VerificationHandler {
	return &VerificationHandler{
		logger:       logger,
		verification: verification,
	}
}

// History lists the authenticated user's rejection messages, newest first.
func (h *VerificationHandler) History(w http.ResponseWriter, r *http.Request) {
	messages, err := h.verification.History(r.Context(), httpapi.UserID(r.Context()))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

// Approve is the admin review decision that verifies a landlord account.
func (h *VerificationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if !utils.IsAdmin(httpapi.UserID(r.Context())) {
		respondError(w, http.StatusForbidden, "admin only")
		return
	}

	user, err := h.verification.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Reject is the admin review decision that records a rejection message.
func (h *VerificationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	if !utils.IsAdmin(httpapi.UserID(r.Context())) {
		respondError(w, http.StatusForbidden, "admin only")
		return
	}

	var body rejectVerificationRequest
	if err := decodeValid(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.verification.Reject(r.Context(), chi.URLParam(r, "id"), body.RejectMsg)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}
