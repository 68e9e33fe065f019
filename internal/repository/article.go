package repository

import (
	"context"
	"fmt"

	"github.com/Jeff114514/jeff-blog/internal/models"
	"gorm.io/gorm"
)

// ArticleRepository defines the interface for article data operations.
// FindByID is scoped to live rows; listing methods additionally filter
// to published articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	FindByID(ctx context.Context, id int64) (*models.Article, error)
	Save(ctx context.Context, article *models.Article) error
	IncrementViewCount(ctx context.Context, id int64) error
	FindPage(ctx context.Context, offset, limit int, category, keyword string) ([]models.Article, int64, error)
	FindAllPublished(ctx context.Context) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository instance.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

func (r *articleRepository) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Where("id = ? AND deleted = 0", id).First(&article).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find article by id %d: %w", id, err)
	}
	return &article, nil
}

// Save writes every column of the row, zero values included. Article
// updates are full replaces, so this is the intended write shape.
func (r *articleRepository) Save(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Save(article).Error; err != nil {
		return fmt.Errorf("failed to save article id %d: %w", article.ID, err)
	}
	return nil
}

// IncrementViewCount bumps the counter with a single SQL expression so
// concurrent reads never lose an update.
func (r *articleRepository) IncrementViewCount(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Model(&models.Article{}).
		Where("id = ? AND deleted = 0", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("failed to increment view count for article %d: %w", id, err)
	}
	return nil
}

func (r *articleRepository) FindPage(ctx context.Context, offset, limit int, category, keyword string) ([]models.Article, int64, error) {
	query := r.publishedQuery(ctx)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("(title LIKE ? OR content LIKE ?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	var articles []models.Article
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&articles).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	return articles, total, nil
}

func (r *articleRepository) FindAllPublished(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.publishedQuery(ctx).Order("created_at DESC").Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (r *articleRepository) publishedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Article{}).
		Where("deleted = 0 AND status = ?", models.ArticlePublished)
}
