package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type fakeFullUserStorage struct {
	fakeUserStorage
	count int64
}

func (s *fakeFullUserStorage) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	if s.users == nil {
		s.users = make(map[string]*entity.User)
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeFullUserStorage) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	if s.users == nil {
		s.users = make(map[string]*entity.User)
	}
	copied := *user
	s.users[user.ID] = &copied
	return user, nil
}

func (s *fakeFullUserStorage) Count(_ context.Context) (int64, error) {
	return s.count, nil
}

func TestUserService_CreateDefaultsToStudent(t *testing.T) {
	t.Parallel()

	svc := NewUserService(testLogger(), &fakeFullUserStorage{}, &fakeCache{})

	user, err := svc.Create(context.Background(), entity.User{ID: "u1", Email: "u1@example.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeStudent, user.AccountType)
}

func TestUserService_CreateKeepsExplicitAccountType(t *testing.T) {
	t.Parallel()

	svc := NewUserService(testLogger(), &fakeFullUserStorage{}, &fakeCache{})

	user, err := svc.Create(context.Background(), entity.User{
		ID:          "u1",
		AccountType: entity.AccountTypeLandlordUnverified,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeLandlordUnverified, user.AccountType)
}

func TestUserService_Count(t *testing.T) {
	t.Parallel()

	svc := NewUserService(testLogger(), &fakeFullUserStorage{count: 7}, &fakeCache{})

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestUserService_UpdateInvalidatesCurrentUser(t *testing.T) {
	t.Parallel()

	cache := &fakeCache{}
	svc := NewUserService(testLogger(), &fakeFullUserStorage{}, cache)

	_, err := svc.Update(context.Background(), &entity.User{ID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []string{QueryCurrentUser}, cache.invalidated)
}
