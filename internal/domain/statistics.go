package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatistics is a derived per-object aggregate. It is computed on each
// call and never stored.
type ReviewStatistics struct {
	ObjectID        uuid.UUID  `json:"object_id"`
	ObjectType      string     `json:"object_type"`
	ObjectName      string     `json:"object_name"`
	TotalReviews    int64      `json:"total_reviews"`
	AverageRating   *float64   `json:"average_rating"`
	ThumbsUpCount   int64      `json:"thumbs_up_count"`
	ThumbsDownCount int64      `json:"thumbs_down_count"`
	LatestReviewAt  *time.Time `json:"latest_review_at"`
}
