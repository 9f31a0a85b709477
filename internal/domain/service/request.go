package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/common/errorz"
	"github.com/stayvia/stayvia-server/internal/domain/dto"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type RequestStorage interface {
	Create(ctx context.Context, request *entity.RentalRequest) (*entity.RentalRequest, error)
	Get(ctx context.Context, id string) (*entity.RentalRequest, error)
	GetByPostIDs(ctx context.Context, postIDs []string) ([]entity.RentalRequest, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.RentalRequest, error)
	GetByPostID(ctx context.Context, postID string) ([]entity.RentalRequest, error)
	GetApprovedByUserID(ctx context.Context, userID string) ([]entity.RentalRequest, error)
	GetByUserAndPost(ctx context.Context, userID, postID string) (*entity.RentalRequest, error)
	Update(ctx context.Context, request *entity.RentalRequest) (*entity.RentalRequest, error)
	Delete(ctx context.Context, id string) error
}

type requestPostStorage interface {
	Get(ctx context.Context, id string) (*entity.Post, error)
}

type requestQueryCache interface {
	Invalidate(ctx context.Context, name string) error
}

type RequestService struct {
	logger *logger.Logger

	storage     RequestStorage
	postStorage requestPostStorage
	cache       requestQueryCache
}

func NewRequestService(logger *logger.Logger, storage RequestStorage, postStorage requestPostStorage, cache requestQueryCache) *RequestService {
	return &RequestService{
		logger: logger,

		storage:     storage,
		postStorage: postStorage,
		cache:       cache,
	}
}

// Create submits a rental request against a post. Self-requests, requests on
// unavailable posts and duplicate requests per (user, post) are rejected here,
// on top of the unique index the schema declares.
func (s *RequestService) Create(ctx context.Context, userID, postID string) (*entity.RentalRequest, error) {
	post, err := s.postStorage.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID == userID {
		return nil, errorz.SelfRequest
	}
	if !post.Availability {
		return nil, errorz.PostUnavailable
	}

	_, err = s.storage.GetByUserAndPost(ctx, userID, postID)
	if err == nil {
		return nil, errorz.DuplicateRequest
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	request, err := s.storage.Create(ctx, &entity.RentalRequest{
		UserID: userID,
		PostID: postID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, QueryPostRequests, QueryRequestsToMyPosts, QueryMyRequests)
	return request, nil
}

// Approve advances a request one step: an unacknowledged request becomes
// acknowledged, an acknowledged one becomes approved. An already approved
// request is returned unchanged without touching storage, so repeated calls
// are harmless.
func (s *RequestService) Approve(ctx context.Context, requestID string) (*entity.RentalRequest, error) {
	request, err := s.storage.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}

	switch {
	case !request.Requested:
		request.Requested = true
	case !request.Confirmed:
		request.Confirmed = true
	default:
		return request, nil
	}

	updated, err := s.storage.Update(ctx, request)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, QueryRequestsToMyPosts, QueryMyRequests, QueryPostRequests)
	return updated, nil
}

// Disapprove deletes a request row. The requester's state reverts to open on
// their next fetch.
func (s *RequestService) Disapprove(ctx context.Context, requestID string) error {
	if err := s.storage.Delete(ctx, requestID); err != nil {
		return err
	}

	s.invalidate(ctx, QueryRequestsToMyPosts, QueryMyRequests, QueryPostRequests)
	return nil
}

// Get is a function that gets a rental request by id.
func (s *RequestService) Get(ctx context.Context, requestID string) (*entity.RentalRequest, error) {
	return s.storage.Get(ctx, requestID)
}

// GetByPostID gets every request on a post, the input of StatusForUser.
func (s *RequestService) GetByPostID(ctx context.Context, postID string) ([]entity.RentalRequest, error) {
	return s.storage.GetByPostID(ctx, postID)
}

// Approved lists the confirmed stays of a user in presentation shape.
func (s *RequestService) Approved(ctx context.Context, userID string) ([]dto.RequestNotification, error) {
	requests, err := s.storage.GetApprovedByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapRequestNotifications(requests), nil
}

func (s *RequestService) invalidate(ctx context.Context, names ...string) {
	// Stale cache entries are not fatal to the mutation itself.
	for _, name := range names {
		if err := s.cache.Invalidate(ctx, name); err != nil {
			s.logger.Warnf("failed to invalidate %s: %v", name, err)
		}
	}
}

func mapRequestNotifications(requests []entity.RentalRequest) []dto.RequestNotification {
	notifications := make([]dto.RequestNotification, 0, len(requests))
	for _, request := range requests {
		notifications = append(notifications, dto.NewRequestNotificationFromEntity(request))
	}
	return notifications
}
