package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Jeff114514/jeff-blog/internal/models"
	"github.com/Jeff114514/jeff-blog/internal/service"
	"github.com/gin-gonic/gin"
)

// =============================================================================
// Mock ArticleService
// =============================================================================

type mockArticleService struct {
	createFunc  func(ctx context.Context, req *service.ArticleRequest, authorID int64) (*models.Article, error)
	updateFunc  func(ctx context.Context, id int64, req *service.ArticleRequest, authorID int64) (*models.Article, error)
	deleteFunc  func(ctx context.Context, id, authorID int64) error
	getByIDFunc func(ctx context.Context, id int64) (*models.Article, error)
	listFunc    func(ctx context.Context, page, size int, category, keyword string) (*service.PageResult, error)
	listAllFunc func(ctx context.Context) ([]models.Article, error)
}

func (m *mockArticleService) Create(ctx context.Context, req *service.ArticleRequest, authorID int64) (*models.Article, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req, authorID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockArticleService) Update(ctx context.Context, id int64, req *service.ArticleRequest, authorID int64) (*models.Article, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req, authorID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockArticleService) Delete(ctx context.Context, id, authorID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, authorID)
	}
	return errors.New("not implemented")
}

func (m *mockArticleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockArticleService) List(ctx context.Context, page, size int, category, keyword string) (*service.PageResult, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page, size, category, keyword)
	}
	return nil, errors.New("not implemented")
}

func (m *mockArticleService) ListAll(ctx context.Context) ([]models.Article, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func setupArticleRouter(svc service.ArticleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewArticleHandler(svc)
	router.POST("/api/articles", h.Create)
	router.GET("/api/articles", h.List)
	router.GET("/api/articles/list", h.ListAll)
	router.GET("/api/articles/:id", h.Get)
	router.PUT("/api/articles/:id", h.Update)
	router.DELETE("/api/articles/:id", h.Delete)
	return router
}

// =============================================================================
// Create
// =============================================================================

func TestArticleCreateHandler(t *testing.T) {
	var gotAuthorID int64
	var gotTitle string
	svc := &mockArticleService{
		createFunc: func(ctx context.Context, req *service.ArticleRequest, authorID int64) (*models.Article, error) {
			gotAuthorID = authorID
			gotTitle = req.Title
			return &models.Article{ID: 1, Title: req.Title, AuthorID: authorID, Status: models.ArticlePublished}, nil
		},
	}
	router := setupArticleRouter(svc)

	_, env := doJSON(t, router, http.MethodPost, "/api/articles?userId=7", gin.H{
		"title":   "First",
		"content": "Body",
	})

	if env.Code != 200 {
		t.Fatalf("Expected envelope code 200, got %d (%s)", env.Code, env.Message)
	}
	if gotAuthorID != 7 {
		t.Errorf("Expected author ID 7 from the userId query, got %d", gotAuthorID)
	}
	if gotTitle != "First" {
		t.Errorf("Expected title to reach the service, got %q", gotTitle)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("Failed to decode article data: %v", err)
	}
	if data["authorId"] != float64(7) {
		t.Errorf("Expected authorId 7 in the payload, got %v", data["authorId"])
	}
}

func TestArticleCreateHandlerMissingUserID(t *testing.T) {
	called := false
	svc := &mockArticleService{
		createFunc: func(ctx context.Context, req *service.ArticleRequest, authorID int64) (*models.Article, error) {
			called = true
			return &models.Article{}, nil
		},
	}
	router := setupArticleRouter(svc)

	_, env := doJSON(t, router, http.MethodPost, "/api/articles", gin.H{
		"title":   "First",
		"content": "Body",
	})

	if env.Code != 400 {
		t.Errorf("Expected envelope code 400, got %d", env.Code)
	}
	if called {
		t.Error("A request without userId must not reach the service")
	}
}

func TestArticleCreateHandlerMissingTitle(t *testing.T) {
	router := setupArticleRouter(&mockArticleService{})

	_, env := doJSON(t, router, http.MethodPost, "/api/articles?userId=7", gin.H{
		"content": "Body",
	})

	if env.Code != 400 {
		t.Errorf("Expected envelope code 400, got %d", env.Code)
	}
}

// =============================================================================
// Update / Delete
// =============================================================================

func TestArticleUpdateHandlerForbidden(t *testing.T) {
	svc := &mockArticleService{
		updateFunc: func(ctx context.Context, id int64, req *service.ArticleRequest, authorID int64) (*models.Article, error) {
			return nil, service.ErrNotAuthor
		},
	}
	router := setupArticleRouter(svc)

	w, env := doJSON(t, router, http.MethodPut, "/api/articles/5?userId=9", gin.H{
		"title":   "Edited",
		"content": "Body",
	})

	if w.Code != http.StatusOK {
		t.Errorf("Envelope failures stay HTTP 200, got %d", w.Code)
	}
	if env.Code != 500 {
		t.Errorf("Expected envelope code 500, got %d", env.Code)
	}
	if env.Message != "no permission to operate on this article" {
		t.Errorf("Unexpected message %q", env.Message)
	}
}

func TestArticleDeleteHandler(t *testing.T) {
	var gotID, gotUserID int64
	svc := &mockArticleService{
		deleteFunc: func(ctx context.Context, id, authorID int64) error {
			gotID, gotUserID = id, authorID
			return nil
		},
	}
	router := setupArticleRouter(svc)

	_, env := doJSON(t, router, http.MethodDelete, "/api/articles/5?userId=7", nil)

	if env.Code != 200 {
		t.Fatalf("Expected envelope code 200, got %d (%s)", env.Code, env.Message)
	}
	if gotID != 5 || gotUserID != 7 {
		t.Errorf("Expected delete(5, 7), got delete(%d, %d)", gotID, gotUserID)
	}
}

func TestArticleDeleteHandlerNotFound(t *testing.T) {
	svc := &mockArticleService{
		deleteFunc: func(ctx context.Context, id, authorID int64) error {
			return service.ErrArticleNotFound
		},
	}
	router := setupArticleRouter(svc)

	_, env := doJSON(t, router, http.MethodDelete, "/api/articles/99?userId=7", nil)

	if env.Code != 500 {
		t.Errorf("Expected envelope code 500, got %d", env.Code)
	}
	if env.Message != "article not found" {
		t.Errorf("Unexpected message %q", env.Message)
	}
}

// =============================================================================
// Get / List
// =============================================================================

func TestArticleGetHandler(t *testing.T) {
	svc := &mockArticleService{
		getByIDFunc: func(ctx context.Context, id int64) (*models.Article, error) {
			return &models.Article{ID: id, Title: "Read me", ViewCount: 6}, nil
		},
	}
	router := setupArticleRouter(svc)

	_, env := doJSON(t, router, http.MethodGet, "/api/articles/10", nil)

	if env.Code != 200 {
		t.Fatalf("Expected envelope code 200, got %d (%s)", env.Code, env.Message)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("Failed to decode article data: %v", err)
	}
	if data["title"] != "Read me" || data["viewCount"] != float64(6) {
		t.Errorf("Unexpected article payload: %v", data)
	}
}

func TestArticleGetHandlerInvalidID(t *testing.T) {
	router := setupArticleRouter(&mockArticleService{})

	_, env := doJSON(t, router, http.MethodGet, "/api/articles/abc", nil)
	if env.Code != 400 {
		t.Errorf("Expected envelope code 400, got %d", env.Code)
	}
}

func TestArticleListHandlerPassesQuery(t *testing.T) {
	var gotPage, gotSize int
	var gotCategory, gotKeyword string
	svc := &mockArticleService{
		listFunc: func(ctx context.Context, page, size int, category, keyword string) (*service.PageResult, error) {
			gotPage, gotSize, gotCategory, gotKeyword = page, size, category, keyword
			return &service.PageResult{Records: []models.Article{}, Total: 0, Size: size, Current: page, Pages: 0}, nil
		},
	}
	router := setupArticleRouter(svc)

	_, env := doJSON(t, router, http.MethodGet, "/api/articles?page=2&size=5&category=go&keyword=gin", nil)

	if env.Code != 200 {
		t.Fatalf("Expected envelope code 200, got %d (%s)", env.Code, env.Message)
	}
	if gotPage != 2 || gotSize != 5 || gotCategory != "go" || gotKeyword != "gin" {
		t.Errorf("Query parameters not forwarded: page=%d size=%d category=%q keyword=%q",
			gotPage, gotSize, gotCategory, gotKeyword)
	}
}

func TestArticleListHandlerDefaults(t *testing.T) {
	var gotPage, gotSize int
	svc := &mockArticleService{
		listFunc: func(ctx context.Context, page, size int, category, keyword string) (*service.PageResult, error) {
			gotPage, gotSize = page, size
			return &service.PageResult{Records: []models.Article{}}, nil
		},
	}
	router := setupArticleRouter(svc)

	_, _ = doJSON(t, router, http.MethodGet, "/api/articles", nil)

	if gotPage != 1 || gotSize != 10 {
		t.Errorf("Expected defaults page=1 size=10, got page=%d size=%d", gotPage, gotSize)
	}
}

func TestArticleListAllHandlerEmpty(t *testing.T) {
	svc := &mockArticleService{
		listAllFunc: func(ctx context.Context) ([]models.Article, error) {
			return nil, nil
		},
	}
	router := setupArticleRouter(svc)

	_, env := doJSON(t, router, http.MethodGet, "/api/articles/list", nil)

	if env.Code != 200 {
		t.Fatalf("Expected envelope code 200, got %d (%s)", env.Code, env.Message)
	}
	if string(env.Data) != "[]" {
		t.Errorf("Expected an empty array payload, got %s", env.Data)
	}
}
