package service

import (
	"context"

	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
	"github.com/stayvia/stayvia-server/pkg/qrcode"
)

type PostStorage interface {
	Create(ctx context.Context, post *entity.Post) (*entity.Post, error)
	Get(ctx context.Context, id string) (*entity.Post, error)
	GetAll(ctx context.Context) ([]entity.Post, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Post, error)
	Update(ctx context.Context, post *entity.Post) (*entity.Post, error)
	Delete(ctx context.Context, id string, userID string) error
}

type postQueryCache interface {
	Invalidate(ctx context.Context, name string) error
}

type PostService struct {
	logger *logger.Logger

	postStorage PostStorage
	cache       postQueryCache
	linkScheme  string
}

func NewPostService(logger *logger.Logger, postStorage PostStorage, cache postQueryCache, linkScheme string) *PostService {
	return &PostService{
		logger: logger,

		postStorage: postStorage,
		cache:       cache,
		linkScheme:  linkScheme,
	}
}

func (s *PostService) Create(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	created, err := s.postStorage.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, QueryMyPosts)
	return created, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*entity.Post, error) {
	return s.postStorage.Get(ctx, id)
}

func (s *PostService) GetAll(ctx context.Context) ([]entity.Post, error) {
	return s.postStorage.GetAll(ctx)
}

func (s *PostService) GetByUserID(ctx context.Context, userID string) ([]entity.Post, error) {
	return s.postStorage.GetByUserID(ctx, userID)
}

func (s *PostService) Update(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	updated, err := s.postStorage.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, QueryMyPosts)
	return updated, nil
}

// Delete removes a post owned by userID along with its cached views.
func (s *PostService) Delete(ctx context.Context, id string, userID string) error {
	if err := s.postStorage.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.invalidate(ctx, QueryMyPosts, QueryPostRequests, QueryRequestsToMyPosts)
	return nil
}

// ShareQR renders a scannable deep link to the post as a PNG.
func (s *PostService) ShareQR(ctx context.Context, id string) ([]byte, error) {
	post, err := s.postStorage.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg := qrcode.Default
	cfg.Content = post.ShareLink(s.linkScheme)
	cfg.Label = post.Title
	return cfg.Generate()
}

func (s *PostService) invalidate(ctx context.Context, names ...string) {
	for _, name := range names {
		if err := s.cache.Invalidate(ctx, name); err != nil {
			s.logger.Warnf("failed to invalidate %s: %v", name, err)
		}
	}
}
