package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
	"github.com/stayvia/stayvia-server/pkg/imaging"
)

const (
	maxUploadSize   = 10 << 20
	avatarThumbSize = 512
)

type uploadStore interface {
	Upload(ctx context.Context, data []byte, ext string) (string, error)
}

type uploadUserService interface {
	Get(ctx context.Context, userID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type UploadHandler struct {
	logger *logger.Logger
	store  uploadStore
	users  uploadUserService
}

func NewUploadHandler(logger *logger.Logger, store uploadStore, users uploadUserService) *UploadHandler {
	return &UploadHandler{
		logger: logger,
		store:  store,
		users:  users,
	}
}

// Image accepts a multipart image and stores it, returning the object path.
func (h *UploadHandler) Image(w http.ResponseWriter, r *http.Request) {
	data, ext, ok := h.readImage(w, r)
	if !ok {
		return
	}

	path, err := h.store.Upload(r.Context(), data, ext)
	if err != nil {
		h.logger.Errorf("failed to upload image: %v", err)
		respondError(w, http.StatusBadGateway, "storage unavailable")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"path": path})
}

// Avatar stores a profile photo, downscaled to a thumbnail, and points the
// user's avatar field at it.
func (h *UploadHandler) Avatar(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())

	data, _, ok := h.readImage(w, r)
	if !ok {
		return
	}

	thumb, err := imaging.Thumbnail(data, avatarThumbSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, "unreadable image")
		return
	}

	path, err := h.store.Upload(r.Context(), thumb, "jpg")
	if err != nil {
		h.logger.Errorf("failed to upload avatar for %s: %v", userID, err)
		respondError(w, http.StatusBadGateway, "storage unavailable")
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	user.Avatar = path
	if _, err = h.users.Update(r.Context(), user); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"path": path})
}

func (h *UploadHandler) readImage(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart body")
		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		respondError(w, http.StatusBadRequest, "unreadable file")
		return nil, "", false
	}

	ext := "jpg"
	if i := strings.LastIndexByte(header.Filename, '.'); i >= 0 && i < len(header.Filename)-1 {
		ext = strings.ToLower(header.Filename[i+1:])
	}
	return data, ext, true
}
