package handlers

import (
	"errors"
	"strconv"

	"github.com/Jeff114514/jeff-blog/internal/service"
	"github.com/Jeff114514/jeff-blog/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CommentHandler handles comment requests.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler instance.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create godoc
// @Summary Post a comment on an article
// @Tags comments
// @Accept json
// @Produce json
// @Param userId query int true "Commenting user ID"
// @Param request body service.CommentRequest true "Comment payload"
// @Success 200 {object} response.Result
// @Router /api/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, err.Error())
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.Error(c, err.Error())
			return
		}
		log.Error().Err(err).Msg("comment create failed")
		response.Error(c, "failed to post comment")
		return
	}

	response.Success(c, "comment posted", comment)
}

// ListByArticle godoc
// @Summary List the approved comments of an article
// @Tags comments
// @Produce json
// @Param articleId path int true "Article ID"
// @Success 200 {object} response.Result
// @Router /api/comments/article/{articleId} [get]
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("articleId"), 10, 64)
	if err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, "invalid article id")
		return
	}

	comments, err := h.commentService.ListByArticle(c.Request.Context(), articleID)
	if err != nil {
		log.Error().Err(err).Int64("article_id", articleID).Msg("comment list failed")
		response.Error(c, "failed to list comments")
		return
	}

	response.Data(c, comments)
}

// Delete godoc
// @Summary Delete a comment
// @Description Soft delete; only the commenting user may delete
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Param userId query int true "Commenting user ID"
// @Success 200 {object} response.Result
// @Router /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound), errors.Is(err, service.ErrNotCommentAuthor):
			response.Error(c, err.Error())
		default:
			log.Error().Err(err).Msg("comment delete failed")
			response.Error(c, "operation failed")
		}
		return
	}

	response.Message(c, "comment deleted")
}
