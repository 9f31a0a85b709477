package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayvia/stayvia-server/internal/adapters/controller/httpapi"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type fakeUserService struct {
	users map[string]*entity.User
	count int64
}

func (s *fakeUserService) Create(_ context.Context, user entity.User) (*entity.User, error) {
	return &user, nil
}

func (s *fakeUserService) Get(_ context.Context, userID string) (*entity.User, error) {
	return s.users[userID], nil
}

func (s *fakeUserService) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	return user, nil
}

func (s *fakeUserService) Count(_ context.Context) (int64, error) {
	return s.count, nil
}

func TestUserHandler_Stats(t *testing.T) {
	viper.Set("settings.admin-ids", []string{"admin-1"})
	t.Cleanup(func() { viper.Set("settings.admin-ids", nil) })

	h := NewUserHandler(testHandlerLogger(), &fakeUserService{count: 42})

	t.Run("admin gets the totals", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/stats", nil)
		req = req.WithContext(httpapi.WithUserID(req.Context(), "admin-1"))
		rec := httptest.NewRecorder()

		h.Stats(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]int64
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(42), body["users"])
	})

	t.Run("non-admin is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/stats", nil)
		req = req.WithContext(httpapi.WithUserID(req.Context(), "user-1"))
		rec := httptest.NewRecorder()

		h.Stats(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
