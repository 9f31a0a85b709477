package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/domain/common/errorz"
	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type fakeRequestStorage struct {
	requests map[string]*entity.RentalRequest
	updates  int
	deleted  []string
}

func newFakeRequestStorage(requests ...*entity.RentalRequest) *fakeRequestStorage {
	s := &fakeRequestStorage{requests: make(map[string]*entity.RentalRequest)}
	for _, r := range requests {
		s.requests[r.ID] = r
	}
	return s
}

func (s *fakeRequestStorage) Create(_ context.Context, request *entity.RentalRequest) (*entity.RentalRequest, error) {
	request.ID = "req-new"
	s.requests[request.ID] = request
	return request, nil
}

func (s *fakeRequestStorage) Get(_ context.Context, id string) (*entity.RentalRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *request
	return &copied, nil
}

func (s *fakeRequestStorage) GetByPostIDs(_ context.Context, _ []string) ([]entity.RentalRequest, error) {
	return nil, nil
}

func (s *fakeRequestStorage) GetByUserID(_ context.Context, _ string) ([]entity.RentalRequest, error) {
	return nil, nil
}

func (s *fakeRequestStorage) GetByPostID(_ context.Context, postID string) ([]entity.RentalRequest, error) {
	var out []entity.RentalRequest
	for _, r := range s.requests {
		if r.PostID == postID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeRequestStorage) GetApprovedByUserID(_ context.Context, userID string) ([]entity.RentalRequest, error) {
	var out []entity.RentalRequest
	for _, r := range s.requests {
		if r.UserID == userID && r.Confirmed {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeRequestStorage) GetByUserAndPost(_ context.Context, userID, postID string) (*entity.RentalRequest, error) {
	for _, r := range s.requests {
		if r.UserID == userID && r.PostID == postID {
			copied := *r
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeRequestStorage) Update(_ context.Context, request *entity.RentalRequest) (*entity.RentalRequest, error) {
	s.updates++
	copied := *request
	s.requests[request.ID] = &copied
	return request, nil
}

func (s *fakeRequestStorage) Delete(_ context.Context, id string) error {
	delete(s.requests, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type fakePostGetter struct {
	posts map[string]*entity.Post
}

func (s *fakePostGetter) Get(_ context.Context, id string) (*entity.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return post, nil
}

func TestRequestService_Create(t *testing.T) {
	t.Parallel()

	posts := &fakePostGetter{posts: map[string]*entity.Post{
		"post-1": {ID: "post-1", UserID: "owner", Availability: true},
		"post-2": {ID: "post-2", UserID: "owner", Availability: false},
	}}

	t.Run("rejects the post owner", func(t *testing.T) {
		t.Parallel()
		svc := NewRequestService(testLogger(), newFakeRequestStorage(), posts, &fakeCache{})

		_, err := svc.Create(context.Background(), "owner", "post-1")
		assert.ErrorIs(t, err, errorz.SelfRequest)
	})

	t.Run("rejects an unavailable post", func(t *testing.T) {
		t.Parallel()
		svc := NewRequestService(testLogger(), newFakeRequestStorage(), posts, &fakeCache{})

		_, err := svc.Create(context.Background(), "student", "post-2")
		assert.ErrorIs(t, err, errorz.PostUnavailable)
	})

	t.Run("rejects a second request on the same post", func(t *testing.T) {
		t.Parallel()
		storage := newFakeRequestStorage(&entity.RentalRequest{ID: "req-1", UserID: "student", PostID: "post-1"})
		svc := NewRequestService(testLogger(), storage, posts, &fakeCache{})

		_, err := svc.Create(context.Background(), "student", "post-1")
		assert.ErrorIs(t, err, errorz.DuplicateRequest)
	})

	t.Run("creates and invalidates cached views", func(t *testing.T) {
		t.Parallel()
		cache := &fakeCache{}
		svc := NewRequestService(testLogger(), newFakeRequestStorage(), posts, cache)

		request, err := svc.Create(context.Background(), "student", "post-1")
		require.NoError(t, err)
		assert.Equal(t, "student", request.UserID)
		assert.False(t, request.Requested)
		assert.False(t, request.Confirmed)
		assert.ElementsMatch(t,
			[]string{QueryPostRequests, QueryRequestsToMyPosts, QueryMyRequests},
			cache.invalidated,
		)
	})
}

func TestRequestService_Approve(t *testing.T) {
	t.Parallel()

	t.Run("first approval acknowledges", func(t *testing.T) {
		t.Parallel()
		storage := newFakeRequestStorage(&entity.RentalRequest{ID: "req-1", UserID: "student", PostID: "post-1"})
		svc := NewRequestService(testLogger(), storage, &fakePostGetter{}, &fakeCache{})

		request, err := svc.Approve(context.Background(), "req-1")
		require.NoError(t, err)
		assert.True(t, request.Requested)
		assert.False(t, request.Confirmed)
		assert.Equal(t, 1, storage.updates)
	})

	t.Run("second approval confirms", func(t *testing.T) {
		t.Parallel()
		storage := newFakeRequestStorage(&entity.RentalRequest{ID: "req-1", Requested: true})
		svc := NewRequestService(testLogger(), storage, &fakePostGetter{}, &fakeCache{})

		request, err := svc.Approve(context.Background(), "req-1")
		require.NoError(t, err)
		assert.True(t, request.Requested)
		assert.True(t, request.Confirmed)
		assert.Equal(t, 1, storage.updates)
	})

	t.Run("approving an approved request writes nothing", func(t *testing.T) {
		t.Parallel()
		storage := newFakeRequestStorage(&entity.RentalRequest{ID: "req-1", Requested: true, Confirmed: true})
		cache := &fakeCache{}
		svc := NewRequestService(testLogger(), storage, &fakePostGetter{}, cache)

		request, err := svc.Approve(context.Background(), "req-1")
		require.NoError(t, err)
		assert.True(t, request.Confirmed)
		assert.Zero(t, storage.updates)
		assert.Empty(t, cache.invalidated)
	})

	t.Run("unknown request", func(t *testing.T) {
		t.Parallel()
		svc := NewRequestService(testLogger(), newFakeRequestStorage(), &fakePostGetter{}, &fakeCache{})

		_, err := svc.Approve(context.Background(), "missing")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestRequestService_Disapprove(t *testing.T) {
	t.Parallel()

	storage := newFakeRequestStorage(&entity.RentalRequest{ID: "req-1", Requested: true})
	cache := &fakeCache{}
	svc := NewRequestService(testLogger(), storage, &fakePostGetter{}, cache)

	require.NoError(t, svc.Disapprove(context.Background(), "req-1"))
	assert.Equal(t, []string{"req-1"}, storage.deleted)
	assert.ElementsMatch(t,
		[]string{QueryRequestsToMyPosts, QueryMyRequests, QueryPostRequests},
		cache.invalidated,
	)

	_, err := svc.Get(context.Background(), "req-1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
