package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/dto"
)

type fakeNotificationService struct {
	feedCalls    int
	refreshCalls int
	feed         []dto.Notification
}

func (s *fakeNotificationService) Feed(_ context.Context, _ string) ([]dto.Notification, error) {
	s.feedCalls++
	return s.feed, nil
}

func (s *fakeNotificationService) Refresh(_ context.Context, _ string) ([]dto.Notification, error) {
	s.refreshCalls++
	return s.feed, nil
}

func testHandlerLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(httpapi.WithUserID(req.Context(), "user-1"))
}

func TestFeedHandler_Get(t *testing.T) {
	t.Parallel()

	svc := &fakeNotificationService{feed: []dto.Notification{
		dto.VerificationPending{
			Type:   dto.NotificationKindVerificationPending,
			ID:     "pending-verification-2025-06-01T12:00:00Z",
			Title:  "Verification Pending",
			Avatar: dto.SystemAvatar,
		},
	}}
	h := NewFeedHandler(testHandlerLogger(), svc)

	rec := httptest.NewRecorder()
	h.Get(rec, authedRequest(http.MethodGet, "/api/feed"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.feedCalls)
	assert.Zero(t, svc.refreshCalls)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "pending_verification", body[0]["type"])
	assert.Equal(t, "pending-verification-2025-06-01T12:00:00Z", body[0]["id"])
}

func TestFeedHandler_GetRefresh(t *testing.T) {
	t.Parallel()

	svc := &fakeNotificationService{}
	h := NewFeedHandler(testHandlerLogger(), svc)

	rec := httptest.NewRecorder()
	h.Get(rec, authedRequest(http.MethodGet, "/api/feed?refresh=true"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, svc.feedCalls)
	assert.Equal(t, 1, svc.refreshCalls)
}
