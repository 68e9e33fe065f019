package service

import (
	"context"
	"errors"

	"github.com/Jeff114514/jeff-blog/internal/models"
	"github.com/Jeff114514/jeff-blog/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("no permission to operate on this comment")
)

// CommentRequest is the payload for posting a comment. ParentID links
// a reply to the comment it answers.
type CommentRequest struct {
	ArticleID int64  `json:"articleId" binding:"required"`
	Content   string `json:"content" binding:"required"`
	ParentID  *int64 `json:"parentId"`
}

// CommentService orchestrates comment creation and listing per article.
type CommentService interface {
	Create(ctx context.Context, req *CommentRequest, userID int64) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Delete(ctx context.Context, id, userID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

func (s *commentService) Create(ctx context.Context, req *CommentRequest, userID int64) (*models.Comment, error) {
	if _, err := s.articleRepo.FindByID(ctx, req.ArticleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		ArticleID: req.ArticleID,
		UserID:    userID,
		Content:   req.Content,
		ParentID:  req.ParentID,
		Status:    models.CommentApproved,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	comments, err := s.commentRepo.FindByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

func (s *commentService) Delete(ctx context.Context, id, userID int64) error {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserID != userID {
		return ErrNotCommentAuthor
	}

	comment.Deleted = 1
	return s.commentRepo.Save(ctx, comment)
}
