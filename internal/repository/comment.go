package repository

import (
	"context"
	"fmt"

	"github.com/Jeff114514/jeff-blog/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id int64) (*models.Comment, error)
	Save(ctx context.Context, comment *models.Comment) error
	FindByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Where("id = ? AND deleted = 0", id).First(&comment).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find comment by id %d: %w", id, err)
	}
	return &comment, nil
}

func (r *commentRepository) Save(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return fmt.Errorf("failed to save comment id %d: %w", comment.ID, err)
	}
	return nil
}

// FindByArticle returns the approved, live comments of an article in
// the order they were posted.
func (r *commentRepository) FindByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("article_id = ? AND deleted = 0 AND status = ?", articleID, models.CommentApproved).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for article %d: %w", articleID, err)
	}
	return comments, nil
}
