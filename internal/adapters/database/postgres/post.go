package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/stayvia/stayvia-server/internal/domain/entity"
)

type PostStorage struct {
	db *gorm.DB
}

func NewPostStorage(db *gorm.DB) *PostStorage {
	return &PostStorage{
		db: db,
	}
}

// Create is a function that creates a new post in the database.
func (s *PostStorage) Create(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	err := s.db.WithContext(ctx).Create(&post).Error
	return post, err
}

// Get is a function that gets a post with its owner from the database by id.
func (s *PostStorage) Get(ctx context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	err := s.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&post).Error
	return &post, err
}

// GetAll is a function that gets all posts from the database, newest first.
func (s *PostStorage) GetAll(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	err := s.db.WithContext(ctx).Preload("User").Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// GetByUserID is a function that gets the posts owned by a user, newest first.
func (s *PostStorage) GetByUserID(ctx context.Context, userID string) ([]entity.Post, error) {
	var posts []entity.Post
	err := s.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// Update is a function that updates a post in the database.
func (s *PostStorage) Update(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	err := s.db.WithContext(ctx).Save(&post).Error
	return post, err
}

// Delete removes a post scoped to its owner, so a stranger's id deletes nothing.
func (s *PostStorage) Delete(ctx context.Context, id string, userID string) error {
	return s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Post{}).Error
}
