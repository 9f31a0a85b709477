package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type fakeVerificationStorage struct {
	events []entity.VerificationEvent
}

func (s *fakeVerificationStorage) Create(_ context.Context, event *entity.VerificationEvent) (*entity.VerificationEvent, error) {
	s.events = append(s.events, *event)
	return event, nil
}

func (s *fakeVerificationStorage) GetByUserID(_ context.Context, _ string) ([]entity.VerificationEvent, error) {
	return s.events, nil
}

type fakeUserStorage struct {
	users map[string]*entity.User
}

func (s *fakeUserStorage) Get(_ context.Context, id string) (*entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStorage) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	copied := *user
	s.users[user.ID] = &copied
	return user, nil
}

type fakeSMTPClient struct {
	sent []string
}

func (c *fakeSMTPClient) SendVerificationResult(to string, _ string, _ string) {
	c.sent = append(c.sent, to)
}

func TestVerificationService_Approve(t *testing.T) {
	t.Parallel()

	users := &fakeUserStorage{users: map[string]*entity.User{
		"u1": {ID: "u1", Email: "u1@example.com", AccountType: entity.AccountTypeLandlordUnverified},
	}}
	smtp := &fakeSMTPClient{}
	cache := &fakeCache{}
	svc := NewVerificationService(testLogger(), &fakeVerificationStorage{}, users, smtp, cache)

	user, err := svc.Approve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeLandlord, user.AccountType)
	require.NotNil(t, user.VerifiedAt)
	assert.True(t, user.IsVerifiedLandlord())
	assert.Equal(t, []string{"u1@example.com"}, smtp.sent)
	assert.ElementsMatch(t, []string{QueryCurrentUser, QueryVerificationMessages}, cache.invalidated)
}

func TestVerificationService_Reject(t *testing.T) {
	t.Parallel()

	users := &fakeUserStorage{users: map[string]*entity.User{
		"u1": {ID: "u1", Email: "u1@example.com", AccountType: entity.AccountTypeLandlordUnverified},
	}}
	storage := &fakeVerificationStorage{}
	smtp := &fakeSMTPClient{}
	svc := NewVerificationService(testLogger(), storage, users, smtp, &fakeCache{})

	event, err := svc.Reject(context.Background(), "u1", "document is unreadable")
	require.NoError(t, err)
	assert.Equal(t, "document is unreadable", event.RejectMsg)
	require.Len(t, storage.events, 1)

	updated, err := users.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeLandlordUnverified, updated.AccountType)
	assert.True(t, updated.IsPendingVerification())
	assert.Equal(t, []string{"u1@example.com"}, smtp.sent)
}

func TestVerificationService_History(t *testing.T) {
	t.Parallel()

	at := ts(0)
	storage := &fakeVerificationStorage{events: []entity.VerificationEvent{
		{RejectMsg: "too blurry", CreatedAt: at},
	}}
	svc := NewVerificationService(testLogger(), storage, &fakeUserStorage{}, &fakeSMTPClient{}, &fakeCache{})

	messages, err := svc.History(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "too blurry", messages[0].RejectMsg)
	assert.Equal(t, at, messages[0].CreatedAt)
	assert.NotEmpty(t, messages[0].Time)
}

func TestVerificationService_HistoryEmpty(t *testing.T) {
	t.Parallel()

	svc := NewVerificationService(testLogger(), &fakeVerificationStorage{}, &fakeUserStorage{}, &fakeSMTPClient{}, &fakeCache{})

	messages, err := svc.History(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}
