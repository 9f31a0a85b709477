package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
	"github.com/stayvia/stayvia-server/internal/domain/utils"
	"github.com/stayvia/stayvia-server/pkg/imaging"
)

type userService interface {
	Create(ctx context.Context, user entity.User) (*entity.User, error)
	Get(ctx context.Context, userID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}

type createUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	Contact     string `json:"contact"`
	School      string `json:"school"`
	AccountType string `json:"account_type" validate:"omitempty,oneof=student landlord_unverified"`
}

type updateUserRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Avatar    *string `json:"avatar"`
	Contact   *string `json:"contact"`
	School    *string `json:"school"`
}

type UserHandler struct {
	logger *logger.Logger
	users  userService
}

func NewUserHandler(logger *logger.Logger, users userService) *UserHandler {
	return &UserHandler{
		logger: logger,
		users:  users,
	}
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), httpapi.UserID(r.Context()))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Create registers the profile row for a freshly signed-up identity. The row
// id is the token subject, never client supplied.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())

	var body createUserRequest
	if err := decodeValid(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Create(r.Context(), entity.User{
		ID:          userID,
		Email:       body.Email,
		Username:    body.Username,
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Contact:     body.Contact,
		School:      body.School,
		AccountType: entity.AccountType(body.AccountType),
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

// Update patches the authenticated user's profile fields.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	var body updateUserRequest
	if err = decodeValid(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if body.Username != nil {
		user.Username = *body.Username
	}
	if body.FirstName != nil {
		user.FirstName = *body.FirstName
	}
	if body.LastName != nil {
		user.LastName = *body.LastName
	}
	if body.Avatar != nil {
		user.Avatar = *body.Avatar
	}
	if body.Contact != nil {
		user.Contact = *body.Contact
	}
	if body.School != nil {
		user.School = *body.School
	}

	updated, err := h.users.Update(r.Context(), user)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Stats reports platform totals to administrators.
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !utils.IsAdmin(httpapi.UserID(r.Context())) {
		respondError(w, http.StatusForbidden, "admin only")
		return
	}

	count, err := h.users.Count(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"users": count})
}

// InitialAvatar renders a letter avatar for users without an uploaded photo.
func (h *UserHandler) InitialAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	png, err := imaging.InitialAvatar(user.FirstName, 150)
	if err != nil {
		h.logger.Errorf("failed to render avatar for %s: %v", user.ID, err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
