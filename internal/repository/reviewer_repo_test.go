package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewboard/internal/domain"
)

func TestReviewerCreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewReviewerRepository(db, domain.DeleteRestrict)
	ctx := context.Background()

	full := "Alice Anderson"
	created, err := repo.Create(ctx, domain.ReviewerCreate{
		Username: "alice",
		Email:    "Alice@Example.com",
		FullName: &full,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email, "emails are normalized to lowercase")
	require.NotNil(t, created.FullName)
	assert.Equal(t, full, *created.FullName)
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.UpdatedAt.Equal(created.CreatedAt))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Username, got.Username)
	assert.Equal(t, created.Email, got.Email)
}

func TestReviewerLookups(t *testing.T) {
	db := setupDB(t)
	repo := NewReviewerRepository(db, domain.DeleteRestrict)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.ReviewerCreate{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	byName, err := repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", byName.Username)

	byEmail, err := repo.GetByEmail(ctx, "BOB@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bob", byEmail.Username)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewerDuplicateUsername(t *testing.T) {
	db := setupDB(t)
	repo := NewReviewerRepository(db, domain.DeleteRestrict)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.ReviewerCreate{Username: "carol", Email: "carol1@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.ReviewerCreate{Username: "carol", Email: "carol2@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestReviewerGetMissing(t *testing.T) {
	db := setupDB(t)
	repo := NewReviewerRepository(db, domain.DeleteRestrict)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewerUpdate(t *testing.T) {
	db := setupDB(t)
	repo := NewReviewerRepository(db, domain.DeleteRestrict)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.ReviewerCreate{Username: "dora", Email: "dora@example.com"})
	require.NoError(t, err)

	t.Run("partial patch", func(t *testing.T) {
		full := "Dora D."
		updated, err := repo.Update(ctx, created.ID, domain.ReviewerUpdate{FullName: &full})
		require.NoError(t, err)

		assert.Equal(t, "dora", updated.Username, "untouched field keeps its value")
		require.NotNil(t, updated.FullName)
		assert.Equal(t, full, *updated.FullName)
	})

	t.Run("empty patch still advances updated_at", func(t *testing.T) {
		before, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)
		updated, err := repo.Update(ctx, created.ID, domain.ReviewerUpdate{})
		require.NoError(t, err)

		assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
		assert.Equal(t, before.Username, updated.Username)
		assert.Equal(t, before.Email, updated.Email)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.Update(ctx, uuid.New(), domain.ReviewerUpdate{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReviewerDelete(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	t.Run("plain delete", func(t *testing.T) {
		repo := NewReviewerRepository(db, domain.DeleteRestrict)
		created, err := repo.Create(ctx, domain.ReviewerCreate{Username: "eve", Email: "eve@example.com"})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))

		_, err = repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		repo := NewReviewerRepository(db, domain.DeleteRestrict)
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), domain.ErrNotFound)
	})
}

func TestReviewerDeleteWithReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("restrict blocks the delete", func(t *testing.T) {
		db := setupDB(t)
		repo := NewReviewerRepository(db, domain.DeleteRestrict)
		reviews := NewReviewRepository(db)

		r := seedReviewer(t, db, 1)
		o := seedObject(t, db, 1)
		_, err := reviews.Create(ctx, domain.ReviewCreate{
			ReviewerID:       r.ID,
			ReviewedObjectID: o.ID,
			StarRating:       intPtr(4),
		})
		require.NoError(t, err)

		assert.ErrorIs(t, repo.Delete(ctx, r.ID), domain.ErrDeleteConflict)

		// The reviewer and its review are untouched.
		_, err = repo.GetByID(ctx, r.ID)
		assert.NoError(t, err)
	})

	t.Run("cascade removes dependents atomically", func(t *testing.T) {
		db := setupDB(t)
		repo := NewReviewerRepository(db, domain.DeleteCascade)
		reviews := NewReviewRepository(db)

		r := seedReviewer(t, db, 2)
		o := seedObject(t, db, 2)
		created, err := reviews.Create(ctx, domain.ReviewCreate{
			ReviewerID:       r.ID,
			ReviewedObjectID: o.ID,
			StarRating:       intPtr(5),
		})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, r.ID))

		_, err = repo.GetByID(ctx, r.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = reviews.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		// The reviewed object survives.
		objects := NewReviewedObjectRepository(db, domain.DeleteRestrict)
		_, err = objects.GetByID(ctx, o.ID)
		assert.NoError(t, err)
	})
}
