package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"reviewboard/internal/database"
	"reviewboard/internal/domain"
)

// setupDB opens a fresh in-memory SQLite database with foreign keys enabled.
// A single connection keeps the whole test on one memory instance.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		DSN:          "file::memory:?_pragma=foreign_keys(1)",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedReviewer(t *testing.T, db *gorm.DB, n int) *domain.Reviewer {
	t.Helper()

	repo := NewReviewerRepository(db, domain.DeleteRestrict)
	r, err := repo.Create(context.Background(), domain.ReviewerCreate{
		Username: fmt.Sprintf("user%d", n),
		Email:    fmt.Sprintf("user%d@example.com", n),
	})
	require.NoError(t, err)
	return r
}

func seedObject(t *testing.T, db *gorm.DB, n int) *domain.ReviewedObject {
	t.Helper()

	repo := NewReviewedObjectRepository(db, domain.DeleteRestrict)
	o, err := repo.Create(context.Background(), domain.ReviewedObjectCreate{
		ObjectType: "restaurant",
		ObjectKey:  fmt.Sprintf("rest-%d", n),
		ObjectName: fmt.Sprintf("Restaurant %d", n),
	})
	require.NoError(t, err)
	return o
}

func intPtr(v int) *int { return &v }

func thumbsPtr(v domain.ThumbsRating) *domain.ThumbsRating { return &v }
