package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type postService interface {
	Create(ctx context.Context, post *entity.Post) (*entity.Post, error)
	Get(ctx context.Context, id string) (*entity.Post, error)
	GetAll(ctx context.Context) ([]entity.Post, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Post, error)
	Update(ctx context.Context, post *entity.Post) (*entity.Post, error)
	Delete(ctx context.Context, id string, userID string) error
	ShareQR(ctx context.Context, id string) ([]byte, error)
}

type createPostRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Location      string   `json:"location" validate:"required"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	PricePerNight float64  `json:"price_per_night" validate:"gte=0"`
	Beds          string   `json:"beds"`
	Image         string   `json:"image"`
	Filters       []string `json:"filters"`
}

type updatePostRequest struct {
	createPostRequest
	Availability *bool `json:"availability"`
}

type PostHandler struct {
	logger *logger.Logger
	posts  postService
}

func NewPostHandler(logger *logger.Logger, posts postService) *PostHandler {
	return &PostHandler{
		logger: logger,
		posts:  posts,
	}
}

// List returns every listing on the platform.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.GetAll(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

// Mine returns the authenticated user's own listings.
func (h *PostHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())

	posts, err := h.posts.GetByUserID(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())

	var body createPostRequest
	if err := decodeValid(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.posts.Create(r.Context(), &entity.Post{
		UserID:        userID,
		Title:         body.Title,
		Description:   body.Description,
		Location:      body.Location,
		Latitude:      body.Latitude,
		Longitude:     body.Longitude,
		PricePerNight: body.PricePerNight,
		Beds:          body.Beds,
		Image:         body.Image,
		Availability:  true,
		Filters:       body.Filters,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, post)
}

// Update rewrites a listing. Only the owner may change their post.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())
	postID := chi.URLParam(r, "id")

	post, err := h.posts.Get(r.Context(), postID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if post.UserID != userID {
		respondError(w, http.StatusForbidden, "not your post")
		return
	}

	var body updatePostRequest
	if err = decodeValid(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	post.Title = body.Title
	post.Description = body.Description
	post.Location = body.Location
	post.Latitude = body.Latitude
	post.Longitude = body.Longitude
	post.PricePerNight = body.PricePerNight
	post.Beds = body.Beds
	post.Image = body.Image
	post.Filters = body.Filters
	if body.Availability != nil {
		post.Availability = *body.Availability
	}

	updated, err := h.posts.Update(r.Context(), post)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())

	if err := h.posts.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ShareQR streams a PNG deep-link code for the post.
func (h *PostHandler) ShareQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.posts.ShareQR(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
