package handlers

import (
	"context"
	"net/http"

	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/dto"
)

type notificationService interface {
	Feed(ctx context.Context, userID string) ([]dto.Notification, error)
	Refresh(ctx context.Context, userID string) ([]dto.Notification, error)
}

type FeedHandler struct {
	logger        *logger.Logger
	notifications notificationService
}

func NewFeedHandler(logger *logger.Logger, notifications notificationService) *FeedHandler {
	return &FeedHandler{
		logger:        logger,
		notifications: notifications,
	}
}

// Get serves the merged notification feed. `?refresh=true` drops the cached
// source queries first (the pull-to-refresh path).
func (h *FeedHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := httpapi.UserID(r.Context())

	var (
		feed []dto.Notification
		err  error
	)
	if r.URL.Query().Get("refresh") == "true" {
		feed, err = h.notifications.Refresh(r.Context(), userID)
	} else {
		feed, err = h.notifications.Feed(r.Context(), userID)
	}
	if err != nil {
		h.logger.Errorf("failed to build feed for %s: %v", userID, err)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, feed)
}
