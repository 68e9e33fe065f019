package service

import (
	"context"
	"errors"

	"github.com/Jeff114514/jeff-blog/internal/models"
	"github.com/Jeff114514/jeff-blog/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrNotAuthor       = errors.New("no permission to operate on this article")
)

// ArticleRequest is the payload for creating or updating an article.
// Updates are full replaces: every mutable field is overwritten from
// the request, zero values included.
type ArticleRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Summary  string `json:"summary"`
	Category string `json:"category"`
	Tags     string `json:"tags"`
	Status   *int   `json:"status"`
}

// PageResult is the paged listing shape: 1-indexed current page,
// total row count and number of pages.
type PageResult struct {
	Records []models.Article `json:"records"`
	Total   int64            `json:"total"`
	Size    int              `json:"size"`
	Current int              `json:"current"`
	Pages   int64            `json:"pages"`
}

// ArticleService orchestrates article CRUD against the article store,
// enforcing author ownership on mutation.
type ArticleService interface {
	Create(ctx context.Context, req *ArticleRequest, authorID int64) (*models.Article, error)
	Update(ctx context.Context, id int64, req *ArticleRequest, authorID int64) (*models.Article, error)
	Delete(ctx context.Context, id, authorID int64) error
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context, page, size int, category, keyword string) (*PageResult, error)
	ListAll(ctx context.Context) ([]models.Article, error)
}

type articleService struct {
	articleRepo repository.ArticleRepository
}

// NewArticleService creates a new ArticleService instance.
func NewArticleService(articleRepo repository.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

func (s *articleService) Create(ctx context.Context, req *ArticleRequest, authorID int64) (*models.Article, error) {
	status := models.ArticlePublished
	if req.Status != nil {
		status = *req.Status
	}

	article := &models.Article{
		Title:     req.Title,
		Content:   req.Content,
		Summary:   req.Summary,
		Category:  req.Category,
		Tags:      req.Tags,
		Status:    status,
		AuthorID:  authorID,
		ViewCount: 0,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) Update(ctx context.Context, id int64, req *ArticleRequest, authorID int64) (*models.Article, error) {
	article, err := s.findOwned(ctx, id, authorID)
	if err != nil {
		return nil, err
	}

	article.Title = req.Title
	article.Content = req.Content
	article.Summary = req.Summary
	article.Category = req.Category
	article.Tags = req.Tags
	if req.Status != nil {
		article.Status = *req.Status
	} else {
		article.Status = models.ArticleDraft
	}

	if err := s.articleRepo.Save(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id, authorID int64) error {
	article, err := s.findOwned(ctx, id, authorID)
	if err != nil {
		return err
	}

	article.Deleted = 1
	return s.articleRepo.Save(ctx, article)
}

// findOwned loads a live article and checks ownership. The not-found
// check runs first so a missing row is never reported as forbidden.
func (s *articleService) findOwned(ctx context.Context, id, authorID int64) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if article.AuthorID != authorID {
		return nil, ErrNotAuthor
	}

	return article, nil
}

func (s *articleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if err := s.articleRepo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	article.ViewCount++

	return article, nil
}

func (s *articleService) List(ctx context.Context, page, size int, category, keyword string) (*PageResult, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	articles, total, err := s.articleRepo.FindPage(ctx, (page-1)*size, size, category, keyword)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []models.Article{}
	}

	pages := (total + int64(size) - 1) / int64(size)

	return &PageResult{
		Records: articles,
		Total:   total,
		Size:    size,
		Current: page,
		Pages:   pages,
	}, nil
}

func (s *articleService) ListAll(ctx context.Context) ([]models.Article, error) {
	return s.articleRepo.FindAllPublished(ctx)
}
