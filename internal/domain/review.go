package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"reviewboard/internal/pkg/validator"
)

// ThumbsRating is a binary verdict.
type ThumbsRating string

const (
	ThumbsUp   ThumbsRating = "up"
	ThumbsDown ThumbsRating = "down"
)

func (t ThumbsRating) Valid() bool {
	return t == ThumbsUp || t == ThumbsDown
}

// Review is one reviewer's evaluation of one object. Each of the three
// content fields is optional but at least one must be present; the check
// constraints mirror the rules Validate applies.
type Review struct {
	ID               uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	ReviewerID       uuid.UUID     `json:"reviewer_id" gorm:"type:uuid;not null;index;uniqueIndex:uq_reviewer_object,priority:1"`
	ReviewedObjectID uuid.UUID     `json:"reviewed_object_id" gorm:"type:uuid;not null;index;uniqueIndex:uq_reviewer_object,priority:2"`
	TextReview       *string       `json:"text_review,omitempty" gorm:"check:chk_review_content,text_review IS NOT NULL OR star_rating IS NOT NULL OR thumbs_rating IS NOT NULL"`
	StarRating       *int          `json:"star_rating,omitempty" gorm:"check:chk_star_rating_range,star_rating >= 0 AND star_rating <= 5"`
	ThumbsRating     *ThumbsRating `json:"thumbs_rating,omitempty" gorm:"size:10;check:chk_thumbs_rating_values,thumbs_rating IN ('up','down') OR thumbs_rating IS NULL"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	Reviewer       *Reviewer       `json:"-" gorm:"foreignKey:ReviewerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ReviewedObject *ReviewedObject `json:"-" gorm:"foreignKey:ReviewedObjectID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Review) TableName() string { return "reviews" }

type ReviewCreate struct {
	ReviewerID       uuid.UUID     `json:"reviewer_id"`
	ReviewedObjectID uuid.UUID     `json:"reviewed_object_id"`
	TextReview       *string       `json:"text_review,omitempty"`
	StarRating       *int          `json:"star_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ThumbsRating     *ThumbsRating `json:"thumbs_rating,omitempty"`
}

func (c ReviewCreate) Validate() error {
	fields := validator.Struct(c)
	if fields == nil {
		fields = make(map[string]string)
	}

	if c.ReviewerID == uuid.Nil {
		fields["reviewer_id"] = "required"
	}
	if c.ReviewedObjectID == uuid.Nil {
		fields["reviewed_object_id"] = "required"
	}
	validateReviewContent(fields, c.TextReview, c.StarRating, c.ThumbsRating, true)

	return newValidationError(fields)
}

type ReviewUpdate struct {
	TextReview   *string       `json:"text_review,omitempty"`
	StarRating   *int          `json:"star_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ThumbsRating *ThumbsRating `json:"thumbs_rating,omitempty"`
}

func (u ReviewUpdate) Validate() error {
	fields := validator.Struct(u)
	if fields == nil {
		fields = make(map[string]string)
	}
	validateReviewContent(fields, u.TextReview, u.StarRating, u.ThumbsRating, false)
	return newValidationError(fields)
}

func (u ReviewUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if u.TextReview != nil {
		changes["text_review"] = *u.TextReview
	}
	if u.StarRating != nil {
		changes["star_rating"] = *u.StarRating
	}
	if u.ThumbsRating != nil {
		changes["thumbs_rating"] = string(*u.ThumbsRating)
	}
	return changes
}

// validateReviewContent applies the cross-field rules shared by create and
// update: thumbs must be a known value, text must not be blank, and on
// create at least one content field must be present.
func validateReviewContent(fields map[string]string, text *string, star *int, thumbs *ThumbsRating, requireContent bool) {
	if thumbs != nil && !thumbs.Valid() {
		fields["thumbs_rating"] = "must be 'up' or 'down'"
	}
	if text != nil && strings.TrimSpace(*text) == "" {
		fields["text_review"] = "must not be blank"
	}
	if requireContent && text == nil && star == nil && thumbs == nil {
		fields["content"] = "at least one of text_review, star_rating, thumbs_rating is required"
	}
}
