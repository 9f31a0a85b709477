package service

import (
	"context"

	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}

type userQueryCache interface {
	Invalidate(ctx context.Context, name string) error
}

type UserService struct {
	logger *logger.Logger

	userStorage UserStorage
	cache       userQueryCache
}

func NewUserService(logger *logger.Logger, userStorage UserStorage, cache userQueryCache) *UserService {
	return &UserService{
		logger: logger,

		userStorage: userStorage,
		cache:       cache,
	}
}

func (s *UserService) Create(ctx context.Context, user entity.User) (*entity.User, error) {
	if user.AccountType == "" {
		user.AccountType = entity.AccountTypeStudent
	}
	return s.userStorage.Create(ctx, &user)
}

func (s *UserService) Get(ctx context.Context, userID string) (*entity.User, error) {
	return s.userStorage.Get(ctx, userID)
}

func (s *UserService) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	updated, err := s.userStorage.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	if err = s.cache.Invalidate(ctx, QueryCurrentUser); err != nil {
		s.logger.Warnf("failed to invalidate %s: %v", QueryCurrentUser, err)
	}
	return updated, nil
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.userStorage.Count(ctx)
}
