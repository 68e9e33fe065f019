package handlers

import (
	"errors"
	"strconv"

	"github.com/Jeff114514/jeff-blog/internal/models"
	"github.com/Jeff114514/jeff-blog/internal/service"
	"github.com/Jeff114514/jeff-blog/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ArticleHandler handles article CRUD and listing requests.
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler instance.
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// Create godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Param userId query int true "Author user ID"
// @Param request body service.ArticleRequest true "Article fields"
// @Success 200 {object} response.Result
// @Router /api/articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req service.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, err.Error())
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		log.Error().Err(err).Msg("article create failed")
		response.Error(c, "failed to create article")
		return
	}

	response.Success(c, "article created", article)
}

// Update godoc
// @Summary Update an article
// @Description Full replace of the mutable fields; only the owning author may update
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param userId query int true "Author user ID"
// @Param request body service.ArticleRequest true "Article fields"
// @Success 200 {object} response.Result
// @Router /api/articles/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req service.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, err.Error())
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), id, &req, userID)
	if err != nil {
		h.respondMutationError(c, err, "article update failed")
		return
	}

	response.Success(c, "article updated", article)
}

// Delete godoc
// @Summary Delete an article
// @Description Soft delete; only the owning author may delete
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Param userId query int true "Author user ID"
// @Success 200 {object} response.Result
// @Router /api/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id, userID); err != nil {
		h.respondMutationError(c, err, "article delete failed")
		return
	}

	response.Message(c, "article deleted")
}

// Get godoc
// @Summary Get an article
// @Description Returns the article and increments its view count
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} response.Result
// @Router /api/articles/{id} [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.Error(c, err.Error())
			return
		}
		log.Error().Err(err).Int64("article_id", id).Msg("article fetch failed")
		response.Error(c, "failed to load article")
		return
	}

	response.Data(c, article)
}

// List godoc
// @Summary List published articles with pagination
// @Tags articles
// @Produce json
// @Param page query int false "Page number (1-indexed)" default(1)
// @Param size query int false "Page size" default(10)
// @Param category query string false "Exact category filter"
// @Param keyword query string false "Title/content keyword filter"
// @Success 200 {object} response.Result
// @Router /api/articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, "invalid page")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, "invalid size")
		return
	}

	result, err := h.articleService.List(c.Request.Context(), page, size, c.Query("category"), c.Query("keyword"))
	if err != nil {
		log.Error().Err(err).Msg("article list failed")
		response.Error(c, "failed to list articles")
		return
	}

	response.Data(c, result)
}

// ListAll godoc
// @Summary List all published articles without pagination
// @Tags articles
// @Produce json
// @Success 200 {object} response.Result
// @Router /api/articles/list [get]
func (h *ArticleHandler) ListAll(c *gin.Context) {
	articles, err := h.articleService.ListAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("article list failed")
		response.Error(c, "failed to list articles")
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}

	response.Data(c, articles)
}

func (h *ArticleHandler) respondMutationError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrArticleNotFound), errors.Is(err, service.ErrNotAuthor):
		response.Error(c, err.Error())
	default:
		log.Error().Err(err).Msg(logMsg)
		response.Error(c, "operation failed")
	}
}

// pathID parses the numeric id path parameter, answering the request
// itself on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, "invalid id")
		return 0, false
	}
	return id, true
}

// queryUserID parses the userId query parameter, answering the request
// itself on failure.
func queryUserID(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		response.ErrorCode(c, response.CodeValidationFailed, "invalid userId")
		return 0, false
	}
	return userID, true
}
