package review

import (
	"github.com/google/uuid"

	"reviewboard/internal/domain"
)

type CreateReviewRequest struct {
	ReviewerID       uuid.UUID `json:"reviewer_id"`
	ReviewedObjectID uuid.UUID `json:"reviewed_object_id"`
	TextReview       *string   `json:"text_review,omitempty"`
	StarRating       *int      `json:"star_rating,omitempty"`
	ThumbsRating     *string   `json:"thumbs_rating,omitempty"`
}

func (r CreateReviewRequest) toDomain() domain.ReviewCreate {
	return domain.ReviewCreate{
		ReviewerID:       r.ReviewerID,
		ReviewedObjectID: r.ReviewedObjectID,
		TextReview:       r.TextReview,
		StarRating:       r.StarRating,
		ThumbsRating:     toThumbs(r.ThumbsRating),
	}
}

type UpdateReviewRequest struct {
	TextReview   *string `json:"text_review,omitempty"`
	StarRating   *int    `json:"star_rating,omitempty"`
	ThumbsRating *string `json:"thumbs_rating,omitempty"`
}

func (r UpdateReviewRequest) toDomain() domain.ReviewUpdate {
	return domain.ReviewUpdate{
		TextReview:   r.TextReview,
		StarRating:   r.StarRating,
		ThumbsRating: toThumbs(r.ThumbsRating),
	}
}

func toThumbs(s *string) *domain.ThumbsRating {
	if s == nil {
		return nil
	}
	t := domain.ThumbsRating(*s)
	return &t
}
