package domain

import (
	"time"

	"github.com/google/uuid"

	"reviewboard/internal/pkg/validator"
)

// Reviewer is a user who can submit reviews.
type Reviewer struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username  string    `json:"username" gorm:"size:50;not null;uniqueIndex"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	FullName  *string   `json:"full_name,omitempty" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Reviewer) TableName() string { return "reviewers" }

// ReviewerCreate carries the fields required to insert a reviewer.
// Generated fields (id, timestamps) are excluded.
type ReviewerCreate struct {
	Username string  `json:"username" validate:"required,max=50"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
}

func (c ReviewerCreate) Validate() error {
	return newValidationError(validator.Struct(c))
}

// ReviewerUpdate is a partial patch: nil fields are left untouched.
type ReviewerUpdate struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
}

func (u ReviewerUpdate) Validate() error {
	return newValidationError(validator.Struct(u))
}

// Changes returns the set columns for a partial update.
func (u ReviewerUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if u.Username != nil {
		changes["username"] = *u.Username
	}
	if u.Email != nil {
		changes["email"] = *u.Email
	}
	if u.FullName != nil {
		changes["full_name"] = *u.FullName
	}
	return changes
}
