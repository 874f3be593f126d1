package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewboard/internal/domain"
)

func TestReviewedObjectCreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewReviewedObjectRepository(db, domain.DeleteRestrict)
	ctx := context.Background()

	desc := "A cozy trattoria."
	created, err := repo.Create(ctx, domain.ReviewedObjectCreate{
		ObjectType:        "restaurant",
		ObjectKey:         "trattoria-9",
		ObjectName:        "Bella Napoli",
		ObjectDescription: &desc,
		Metadata: domain.Metadata{
			"cuisine":     "italian",
			"price_range": 2,
			"takeout":     true,
		},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.UpdatedAt.Equal(created.CreatedAt))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bella Napoli", got.ObjectName)
	require.NotNil(t, got.ObjectDescription)
	assert.Equal(t, desc, *got.ObjectDescription)

	// JSON round-trips numbers as float64.
	assert.Equal(t, "italian", got.Metadata["cuisine"])
	assert.Equal(t, float64(2), got.Metadata["price_range"])
	assert.Equal(t, true, got.Metadata["takeout"])
}

func TestReviewedObjectGetByTypeAndKey(t *testing.T) {
	db := setupDB(t)
	repo := NewReviewedObjectRepository(db, domain.DeleteRestrict)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.ReviewedObjectCreate{
		ObjectType: "movie",
		ObjectKey:  "tt0111161",
		ObjectName: "The Shawshank Redemption",
	})
	require.NoError(t, err)

	got, err := repo.GetByTypeAndKey(ctx, "movie", "tt0111161")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByTypeAndKey(ctx, "movie", "tt0000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewedObjectDuplicateTypeAndKey(t *testing.T) {
	db := setupDB(t)
	repo := NewReviewedObjectRepository(db, domain.DeleteRestrict)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.ReviewedObjectCreate{
		ObjectType: "movie", ObjectKey: "tt42", ObjectName: "First",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.ReviewedObjectCreate{
		ObjectType: "movie", ObjectKey: "tt42", ObjectName: "Second",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	// Same key under a different type is a different object.
	_, err = repo.Create(ctx, domain.ReviewedObjectCreate{
		ObjectType: "book", ObjectKey: "tt42", ObjectName: "Third",
	})
	assert.NoError(t, err)
}

func TestReviewedObjectListByType(t *testing.T) {
	db := setupDB(t)
	repo := NewReviewedObjectRepository(db, domain.DeleteRestrict)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedObject(t, db, i)
	}
	_, err := repo.Create(ctx, domain.ReviewedObjectCreate{
		ObjectType: "movie", ObjectKey: "m1", ObjectName: "A Movie",
	})
	require.NoError(t, err)

	items, total, err := repo.List(ctx, ObjectFilter{ObjectType: "restaurant"}, Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, items, 3)

	items, total, err = repo.List(ctx, ObjectFilter{}, Page{Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, items, 4)
}

func TestReviewedObjectUpdateMetadata(t *testing.T) {
	db := setupDB(t)
	repo := NewReviewedObjectRepository(db, domain.DeleteRestrict)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.ReviewedObjectCreate{
		ObjectType: "restaurant",
		ObjectKey:  "r1",
		ObjectName: "Old Name",
		Metadata:   domain.Metadata{"cuisine": "thai"},
	})
	require.NoError(t, err)

	newName := "New Name"
	updated, err := repo.Update(ctx, created.ID, domain.ReviewedObjectUpdate{
		ObjectName: &newName,
		Metadata:   domain.Metadata{"cuisine": "vietnamese", "city": "Hanoi"},
	})
	require.NoError(t, err)

	assert.Equal(t, newName, updated.ObjectName)
	assert.Equal(t, "vietnamese", updated.Metadata["cuisine"])
	assert.Equal(t, "Hanoi", updated.Metadata["city"])
	assert.Equal(t, created.ObjectKey, updated.ObjectKey)
}

func TestReviewedObjectDeleteWithReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("restrict surfaces a conflict", func(t *testing.T) {
		db := setupDB(t)
		repo := NewReviewedObjectRepository(db, domain.DeleteRestrict)
		reviews := NewReviewRepository(db)

		r := seedReviewer(t, db, 1)
		o := seedObject(t, db, 1)
		_, err := reviews.Create(ctx, domain.ReviewCreate{
			ReviewerID:       r.ID,
			ReviewedObjectID: o.ID,
			ThumbsRating:     thumbsPtr(domain.ThumbsUp),
		})
		require.NoError(t, err)

		assert.ErrorIs(t, repo.Delete(ctx, o.ID), domain.ErrDeleteConflict)
	})

	t.Run("cascade removes the object and its reviews", func(t *testing.T) {
		db := setupDB(t)
		repo := NewReviewedObjectRepository(db, domain.DeleteCascade)
		reviews := NewReviewRepository(db)

		o := seedObject(t, db, 2)
		var createdReviews []uuid.UUID
		for i := 0; i < 3; i++ {
			r := seedReviewer(t, db, 10+i)
			rv, err := reviews.Create(ctx, domain.ReviewCreate{
				ReviewerID:       r.ID,
				ReviewedObjectID: o.ID,
				StarRating:       intPtr(i + 3),
			})
			require.NoError(t, err)
			createdReviews = append(createdReviews, rv.ID)
		}

		require.NoError(t, repo.Delete(ctx, o.ID))

		_, err := repo.GetByID(ctx, o.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		for _, id := range createdReviews {
			_, err := reviews.GetByID(ctx, id)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		}
	})
}
