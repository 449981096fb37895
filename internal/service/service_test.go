package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Maaz9703/maazweb-api/internal/db"
	"github.com/Maaz9703/maazweb-api/internal/hash"
	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return &repo.GormRepo{DB: gdb}
}

func createTestUser(t *testing.T, r *repo.GormRepo, email, role string) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword("password")
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: pwHash,
		Role:         role,
	}
	require.NoError(t, r.CreateUserIfNotExists(context.Background(), user))
	return user
}

func createTestProduct(t *testing.T, r *repo.GormRepo, title string, price float64, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		Title:       title,
		Description: "test product",
		Price:       price,
		Stock:       stock,
		Category:    "Test",
		Images:      pq.StringArray{},
	}
	require.NoError(t, r.CreateProduct(context.Background(), product))
	return product
}
