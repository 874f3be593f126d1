package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reviewboard/internal/domain"
)

// ReviewFilter narrows review listings. Nil fields are ignored.
type ReviewFilter struct {
	ReviewerID       *uuid.UUID
	ReviewedObjectID *uuid.UUID
}

// ReviewRepository defines review data access, including the per-object
// statistics aggregate.
type ReviewRepository interface {
	Create(ctx context.Context, in domain.ReviewCreate) (*domain.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	GetByReviewerAndObject(ctx context.Context, reviewerID, objectID uuid.UUID) (*domain.Review, error)
	List(ctx context.Context, filter ReviewFilter, page Page) ([]domain.Review, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ReviewUpdate) (*domain.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Statistics(ctx context.Context, objectID uuid.UUID) (*domain.ReviewStatistics, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create always attempts the insert and translates the constraint violation
// afterwards. A pre-check would race against concurrent writers; the unique
// index on (reviewer_id, reviewed_object_id) is the arbiter.
func (r *reviewRepository) Create(ctx context.Context, in domain.ReviewCreate) (*domain.Review, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := domain.Review{
		ID:               uuid.New(),
		ReviewerID:       in.ReviewerID,
		ReviewedObjectID: in.ReviewedObjectID,
		TextReview:       in.TextReview,
		StarRating:       in.StarRating,
		ThumbsRating:     in.ThumbsRating,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	var m domain.Review
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewRepository) GetByReviewerAndObject(ctx context.Context, reviewerID, objectID uuid.UUID) (*domain.Review, error) {
	var m domain.Review
	err := r.db.WithContext(ctx).
		First(&m, "reviewer_id = ? AND reviewed_object_id = ?", reviewerID, objectID).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewRepository) List(ctx context.Context, filter ReviewFilter, page Page) ([]domain.Review, int64, error) {
	page = page.normalize()

	countQ := applyReviewFilter(r.db.WithContext(ctx).Model(&domain.Review{}), filter)
	listQ := applyReviewFilter(r.db.WithContext(ctx).Model(&domain.Review{}), filter)

	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	items := make([]domain.Review, 0, page.Limit)
	err := listQ.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, translateError(err)
	}
	return items, total, nil
}

func applyReviewFilter(q *gorm.DB, filter ReviewFilter) *gorm.DB {
	if filter.ReviewerID != nil {
		q = q.Where("reviewer_id = ?", *filter.ReviewerID)
	}
	if filter.ReviewedObjectID != nil {
		q = q.Where("reviewed_object_id = ?", *filter.ReviewedObjectID)
	}
	return q
}

func (r *reviewRepository) Update(ctx context.Context, id uuid.UUID, patch domain.ReviewUpdate) (*domain.Review, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var m domain.Review
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}

	changes := patch.Changes()
	changes["updated_at"] = time.Now().UTC()

	if err := r.db.WithContext(ctx).Model(&m).Updates(changes).Error; err != nil {
		return nil, translateError(err)
	}

	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Review{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Statistics aggregates one object's reviews. Recomputed on every call; the
// average is nil when no review carries a star rating.
func (r *reviewRepository) Statistics(ctx context.Context, objectID uuid.UUID) (*domain.ReviewStatistics, error) {
	var obj domain.ReviewedObject
	if err := r.db.WithContext(ctx).First(&obj, "id = ?", objectID).Error; err != nil {
		return nil, translateError(err)
	}

	var agg struct {
		TotalReviews    int64
		AverageRating   *float64
		ThumbsUpCount   int64
		ThumbsDownCount int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select(
			"COUNT(*) AS total_reviews, " +
				"AVG(star_rating) AS average_rating, " +
				"COALESCE(SUM(CASE WHEN thumbs_rating = 'up' THEN 1 ELSE 0 END), 0) AS thumbs_up_count, " +
				"COALESCE(SUM(CASE WHEN thumbs_rating = 'down' THEN 1 ELSE 0 END), 0) AS thumbs_down_count").
		Where("reviewed_object_id = ?", objectID).
		Scan(&agg).Error
	if err != nil {
		return nil, translateError(err)
	}

	stats := &domain.ReviewStatistics{
		ObjectID:        obj.ID,
		ObjectType:      obj.ObjectType,
		ObjectName:      obj.ObjectName,
		TotalReviews:    agg.TotalReviews,
		AverageRating:   agg.AverageRating,
		ThumbsUpCount:   agg.ThumbsUpCount,
		ThumbsDownCount: agg.ThumbsDownCount,
	}

	// MAX(created_at) is not portable across the drivers we support, so the
	// latest timestamp comes from an ordered lookup instead.
	var latest domain.Review
	err = r.db.WithContext(ctx).
		Where("reviewed_object_id = ?", objectID).
		Order("created_at DESC").
		First(&latest).Error
	switch {
	case err == nil:
		t := latest.CreatedAt
		stats.LatestReviewAt = &t
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no reviews yet
	default:
		return nil, translateError(err)
	}

	return stats, nil
}
