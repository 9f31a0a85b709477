package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type RequestStorage struct {
	db *gorm.DB
}

func NewRequestStorage(db *gorm.DB) *RequestStorage {
	return &RequestStorage{
		db: db,
	}
}

// Create is a function that creates a new rental request in the database.
func (s *RequestStorage) Create(ctx context.Context, request *entity.RentalRequest) (*entity.RentalRequest, error) {
	err := s.db.WithContext(ctx).Create(&request).Error
	return request, err
}

// Get is a function that gets a rental request from the database by id.
func (s *RequestStorage) Get(ctx context.Context, id string) (*entity.RentalRequest, error) {
	var request entity.RentalRequest
	err := s.db.WithContext(ctx).Preload("User").Preload("Post").Preload("Post.User").
		Where("id = ?", id).First(&request).Error
	return &request, err
}

// GetByPostIDs gets the requests against a set of posts with the requester and
// post preloaded, newest first. An empty id set yields an empty result, not an
// error.
func (s *RequestStorage) GetByPostIDs(ctx context.Context, postIDs []string) ([]entity.RentalRequest, error) {
	if len(postIDs) == 0 {
		return []entity.RentalRequest{}, nil
	}

	var requests []entity.RentalRequest
	err := s.db.WithContext(ctx).Preload("User").Preload("Post").Preload("Post.User").
		Where("post_id IN ?", postIDs).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// GetByUserID gets the requests a user has sent, newest first.
func (s *RequestStorage) GetByUserID(ctx context.Context, userID string) ([]entity.RentalRequest, error) {
	var requests []entity.RentalRequest
	err := s.db.WithContext(ctx).Preload("User").Preload("Post").Preload("Post.User").
		Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// GetByPostID gets every request on one post, without preloads. Used to derive
// the request-button state for a viewer.
func (s *RequestStorage) GetByPostID(ctx context.Context, postID string) ([]entity.RentalRequest, error) {
	var requests []entity.RentalRequest
	err := s.db.WithContext(ctx).Where("post_id = ?", postID).Find(&requests).Error
	return requests, err
}

// GetApprovedByUserID gets the confirmed requests a user has sent, newest first.
func (s *RequestStorage) GetApprovedByUserID(ctx context.Context, userID string) ([]entity.RentalRequest, error) {
	var requests []entity.RentalRequest
	err := s.db.WithContext(ctx).Preload("User").Preload("Post").Preload("Post.User").
		Where("user_id = ? AND confirmed = ?", userID, true).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// GetByUserAndPost gets a user's request on a specific post, if any.
func (s *RequestStorage) GetByUserAndPost(ctx context.Context, userID, postID string) (*entity.RentalRequest, error) {
	var request entity.RentalRequest
	err := s.db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).First(&request).Error
	return &request, err
}

// Update is a function that updates a rental request in the database.
func (s *RequestStorage) Update(ctx context.Context, request *entity.RentalRequest) (*entity.RentalRequest, error) {
	err := s.db.WithContext(ctx).Save(&request).Error
	return request, err
}

// Delete is a function that deletes a rental request from the database.
func (s *RequestStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.RentalRequest{}).Error
}
