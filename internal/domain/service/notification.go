package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/adapters/logger"
	"github.com/stayvia/stayvia-server/internal/domain/dto"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

const (
	verificationSuccessTitle  = "Account Verification Successful! 🎉"
	verificationSuccessBody   = "The administrator has reviewed and approved your landlord account."
	verificationPendingTitle  = "Verification Pending"
	verificationPendingBody   = "Your landlord proof is currently under administrator review."
	verificationRejectedTitle = "Admin Notification: Account Verification Update"
)

type notificationUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type notificationPostStorage interface {
	GetByUserID(ctx context.Context, userID string) ([]entity.Post, error)
}

type notificationRequestStorage interface {
	GetByPostIDs(ctx context.Context, postIDs []string) ([]entity.RentalRequest, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.RentalRequest, error)
}

type notificationVerificationStorage interface {
	GetByUserID(ctx context.Context, userID string) ([]entity.VerificationEvent, error)
}

type notificationQueryCache interface {
	Get(ctx context.Context, dest interface{}, name string, params ...string) (bool, error)
	Set(ctx context.Context, value interface{}, name string, params ...string) error
	Invalidate(ctx context.Context, name string) error
}

// NotificationService merges request activity and account-verification events
// into one chronologically ordered feed.
type NotificationService struct {
	logger *logger.Logger

	userStorage         notificationUserStorage
	postStorage         notificationPostStorage
	requestStorage      notificationRequestStorage
	verificationStorage notificationVerificationStorage
	cache               notificationQueryCache
}

func NewNotificationService(
	logger *logger.Logger,
	userStorage notificationUserStorage,
	postStorage notificationPostStorage,
	requestStorage notificationRequestStorage,
	verificationStorage notificationVerificationStorage,
	cache notificationQueryCache,
) *NotificationService {
	return &NotificationService{
		logger: logger,

		userStorage:         userStorage,
		postStorage:         postStorage,
		requestStorage:      requestStorage,
		verificationStorage: verificationStorage,
		cache:               cache,
	}
}

// Feed builds the merged feed for a user.
//
// Source fetches run concurrently; requests-to-my-posts is derived from the
// user's own post ids inside its branch. If any source fails, no partial feed
// is produced. A request where the user is both requester and post owner would
// appear twice; creation forbids self-requests so the case cannot arise.
func (s *NotificationService) Feed(ctx context.Context, userID string) ([]dto.Notification, error) {
	var (
		user          *entity.User
		history       []entity.VerificationEvent
		ownerRequests []entity.RentalRequest
		myRequests    []entity.RentalRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.fetchUser(gctx, userID)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	g.Go(func() error {
		h, err := s.fetchHistory(gctx, userID)
		if err != nil {
			return err
		}
		history = h
		return nil
	})
	g.Go(func() error {
		posts, err := s.fetchMyPosts(gctx, userID)
		if err != nil {
			return err
		}
		postIDs := make([]string, 0, len(posts))
		for _, post := range posts {
			postIDs = append(postIDs, post.ID)
		}
		r, err := s.fetchOwnerRequests(gctx, postIDs)
		if err != nil {
			return err
		}
		ownerRequests = r
		return nil
	})
	g.Go(func() error {
		r, err := s.fetchMyRequests(gctx, userID)
		if err != nil {
			return err
		}
		myRequests = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return aggregate(user, history, ownerRequests, myRequests), nil
}

// Refresh drops every cached source query of the feed and rebuilds it.
func (s *NotificationService) Refresh(ctx context.Context, userID string) ([]dto.Notification, error) {
	for _, name := range []string{
		QueryCurrentUser,
		QueryVerificationMessages,
		QueryMyPosts,
		QueryRequestsToMyPosts,
		QueryMyRequests,
	} {
		if err := s.cache.Invalidate(ctx, name); err != nil {
			s.logger.Warnf("failed to invalidate %s: %v", name, err)
		}
	}
	return s.Feed(ctx, userID)
}

func aggregate(user *entity.User, history []entity.VerificationEvent, ownerRequests, myRequests []entity.RentalRequest) []dto.Notification {
	combined := make([]dto.Notification, 0, len(ownerRequests)+len(myRequests)+len(history)+1)

	for _, request := range ownerRequests {
		combined = append(combined, dto.NewRequestNotificationFromEntity(request))
	}
	for _, request := range myRequests {
		combined = append(combined, dto.NewRequestNotificationFromEntity(request))
	}

	if user != nil && user.IsVerifiedLandlord() {
		verifiedAt := *user.VerifiedAt
		combined = append(combined, dto.VerificationSuccess{
			Type:      dto.NotificationKindVerificationSuccess,
			ID:        fmt.Sprintf("verification-success-%s", verifiedAt.Format(time.RFC3339)),
			Title:     verificationSuccessTitle,
			Message:   verificationSuccessBody,
			Avatar:    dto.SystemAvatar,
			Time:      humanize.Time(verifiedAt),
			CreatedAt: user.VerifiedAt,
		})
	}

	if user != nil && user.IsPendingVerification() {
		createdAt := time.Now()
		if user.CreatedAt != nil {
			createdAt = *user.CreatedAt
		}
		combined = append(combined, dto.VerificationPending{
			Type:      dto.NotificationKindVerificationPending,
			ID:        fmt.Sprintf("pending-verification-%s", createdAt.Format(time.RFC3339)),
			Title:     verificationPendingTitle,
			Message:   verificationPendingBody,
			Avatar:    dto.SystemAvatar,
			Time:      humanize.Time(createdAt),
			CreatedAt: &createdAt,
		})
	}

	for i, event := range history {
		message := dto.NewVerificationMessageFromEntity(event)
		combined = append(combined, dto.VerificationRejected{
			Type:      dto.NotificationKindVerificationRejected,
			ID:        fmt.Sprintf("verification-reject-%s-%d", formatEventTime(event.CreatedAt), i),
			Title:     verificationRejectedTitle,
			RejectMsg: message.RejectMsg,
			Avatar:    dto.SystemAvatar,
			Time:      message.Time,
			CreatedAt: event.CreatedAt,
		})
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].EventTime().After(combined[j].EventTime())
	})

	return combined
}

// formatEventTime keeps rejection ids unique and readable; the index suffix
// already separates same-timestamp rows.
func formatEventTime(t *time.Time) string {
	if t == nil {
		return "unset"
	}
	return t.Format(time.RFC3339)
}

func (s *NotificationService) fetchUser(ctx context.Context, userID string) (*entity.User, error) {
	var cached entity.User
	if hit, err := s.cache.Get(ctx, &cached, QueryCurrentUser, userID); err == nil && hit {
		return &cached, nil
	}

	user, err := s.userStorage.Get(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No profile row yet: the feed simply carries no verification items.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, user, QueryCurrentUser, userID)
	return user, nil
}

func (s *NotificationService) fetchHistory(ctx context.Context, userID string) ([]entity.VerificationEvent, error) {
	var cached []entity.VerificationEvent
	if hit, err := s.cache.Get(ctx, &cached, QueryVerificationMessages, userID); err == nil && hit {
		return cached, nil
	}

	history, err := s.verificationStorage.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, history, QueryVerificationMessages, userID)
	return history, nil
}

func (s *NotificationService) fetchMyPosts(ctx context.Context, userID string) ([]entity.Post, error) {
	var cached []entity.Post
	if hit, err := s.cache.Get(ctx, &cached, QueryMyPosts, userID); err == nil && hit {
		return cached, nil
	}

	posts, err := s.postStorage.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, posts, QueryMyPosts, userID)
	return posts, nil
}

func (s *NotificationService) fetchOwnerRequests(ctx context.Context, postIDs []string) ([]entity.RentalRequest, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}

	var cached []entity.RentalRequest
	if hit, err := s.cache.Get(ctx, &cached, QueryRequestsToMyPosts, postIDs...); err == nil && hit {
		return cached, nil
	}

	requests, err := s.requestStorage.GetByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, requests, QueryRequestsToMyPosts, postIDs...)
	return requests, nil
}

func (s *NotificationService) fetchMyRequests(ctx context.Context, userID string) ([]entity.RentalRequest, error) {
	var cached []entity.RentalRequest
	if hit, err := s.cache.Get(ctx, &cached, QueryMyRequests, userID); err == nil && hit {
		return cached, nil
	}

	requests, err := s.requestStorage.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, requests, QueryMyRequests, userID)
	return requests, nil
}

func (s *NotificationService) cacheSet(ctx context.Context, value interface{}, name string, params ...string) {
	if err := s.cache.Set(ctx, value, name, params...); err != nil {
		s.logger.Warnf("failed to cache %s: %v", name, err)
	}
}
