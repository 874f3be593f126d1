package domain

import (
	"time"

	"github.com/google/uuid"

	"reviewboard/internal/pkg/validator"
)

// ReviewedObject is the generic thing being reviewed: a product, a venue,
// a movie. The (object_type, object_key) pair identifies it in the source
// system that owns it.
type ReviewedObject struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ObjectType        string    `json:"object_type" gorm:"size:50;not null;index;uniqueIndex:uq_object_type_key,priority:1"`
	ObjectKey         string    `json:"object_key" gorm:"size:255;not null;uniqueIndex:uq_object_type_key,priority:2"`
	ObjectName        string    `json:"object_name" gorm:"size:255;not null"`
	ObjectDescription *string   `json:"object_description,omitempty"`
	Metadata          Metadata  `json:"metadata,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (ReviewedObject) TableName() string { return "reviewed_objects" }

type ReviewedObjectCreate struct {
	ObjectType        string   `json:"object_type" validate:"required,max=50"`
	ObjectKey         string   `json:"object_key" validate:"required,max=255"`
	ObjectName        string   `json:"object_name" validate:"required,max=255"`
	ObjectDescription *string  `json:"object_description,omitempty"`
	Metadata          Metadata `json:"metadata,omitempty"`
}

func (c ReviewedObjectCreate) Validate() error {
	return newValidationError(validator.Struct(c))
}

type ReviewedObjectUpdate struct {
	ObjectType        *string  `json:"object_type,omitempty" validate:"omitempty,min=1,max=50"`
	ObjectKey         *string  `json:"object_key,omitempty" validate:"omitempty,min=1,max=255"`
	ObjectName        *string  `json:"object_name,omitempty" validate:"omitempty,min=1,max=255"`
	ObjectDescription *string  `json:"object_description,omitempty"`
	Metadata          Metadata `json:"metadata,omitempty"`
}

func (u ReviewedObjectUpdate) Validate() error {
	return newValidationError(validator.Struct(u))
}

func (u ReviewedObjectUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if u.ObjectType != nil {
		changes["object_type"] = *u.ObjectType
	}
	if u.ObjectKey != nil {
		changes["object_key"] = *u.ObjectKey
	}
	if u.ObjectName != nil {
		changes["object_name"] = *u.ObjectName
	}
	if u.ObjectDescription != nil {
		changes["object_description"] = *u.ObjectDescription
	}
	if u.Metadata != nil {
		changes["metadata"] = u.Metadata
	}
	return changes
}
