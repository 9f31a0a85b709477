package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/common/errorz"
	"github.com/stayvia/stayvia-server/internal/domain/dto"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
	"github.com/stayvia/stayvia-server/internal/domain/service"
)

type requestService interface {
	Create(ctx context.Context, userID, postID string) (*entity.RentalRequest, error)
	Approve(ctx context.Context, requestID string) (*entity.RentalRequest, error)
	Disapprove(ctx context.Context, requestID string) error
	Get(ctx context.Context, requestID string) (*entity.RentalRequest, error)
	GetByPostID(ctx context.Context, postID string) ([]entity.RentalRequest, error)
	Approved(ctx context.Context, userID string) ([]dto.RequestNotification, error)
}

type requestPostService interface {
	Get(ctx context.Context, id string) (*entity.Post, error)
}

type RequestHandler struct {
	logger   *logger.Logger
	requests requestService
	posts    requestPostService
}

func NewRequestHandler(logger *logger.Logger, requests requestService, posts requestPostService) *RequestHandler {
	return &RequestHandler{
		logger:   logger,
		requests: requests,
		posts:    posts,
	}
}

// Create submits a rental request for the authenticated user on a post.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())
	postID := chi.URLParam(r, "id")

	request, err := h.requests.Create(r.Context(), userID, postID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, request)
}

// Status derives the request-button state a viewer sees on a post.
func (h *RequestHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())
	postID := chi.URLParam(r, "id")

	post, err := h.posts.Get(r.Context(), postID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	requests, err := h.requests.GetByPostID(r.Context(), postID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, service.StatusForUser(requests, userID, post.Availability))
}

// Approve advances a request one stage. Only the post owner may call it.
func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())
	requestID := chi.URLParam(r, "id")

	request, err := h.requests.Get(r.Context(), requestID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if request.Post.UserID != userID {
		respondDomainError(w, errorz.Forbidden)
		return
	}

	updated, err := h.requests.Approve(r.Context(), requestID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Disapprove deletes a request. Only the post owner may call it.
func (h *RequestHandler) Disapprove(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())
	requestID := chi.URLParam(r, "id")

	request, err := h.requests.Get(r.Context(), requestID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if request.Post.UserID != userID {
		respondDomainError(w, errorz.Forbidden)
		return
	}

	if err = h.requests.Disapprove(r.Context(), requestID); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Approved lists the authenticated user's confirmed stays.
func (h *RequestHandler) Approved(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())

	stays, err := h.requests.Approved(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stays)
}
