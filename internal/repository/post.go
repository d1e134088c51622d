package repository

import (
	"context"
	"errors"

	"teasr/internal/cache"
	"teasr/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// List returns all posts with their creators preloaded, newest first.
// The result feeds the feed, the leaderboard fold and the viral selector,
// so it is cached as one unit.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.PostsListTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("User").
			Order("created_at DESC").
			Find(&posts).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePostsList(ctx)
	return nil
}
