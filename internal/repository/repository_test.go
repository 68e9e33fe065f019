package repository

import (
	"testing"

	"github.com/Jeff114514/jeff-blog/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory sqlite database. The pool is pinned
// to a single connection so every query sees the same memory database
// and concurrent writers queue instead of colliding.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Article{}, &models.Comment{}); err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	return db
}

func seedArticle(t *testing.T, db *gorm.DB, article *models.Article) *models.Article {
	t.Helper()
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("Failed to seed article: %v", err)
	}
	return article
}
