package object

import "reviewboard/internal/domain"

type CreateObjectRequest struct {
	ObjectType        string          `json:"object_type"`
	ObjectKey         string          `json:"object_key"`
	ObjectName        string          `json:"object_name"`
	ObjectDescription *string         `json:"object_description,omitempty"`
	Metadata          domain.Metadata `json:"metadata,omitempty"`
}

func (r CreateObjectRequest) toDomain() domain.ReviewedObjectCreate {
	return domain.ReviewedObjectCreate{
		ObjectType:        r.ObjectType,
		ObjectKey:         r.ObjectKey,
		ObjectName:        r.ObjectName,
		ObjectDescription: r.ObjectDescription,
		Metadata:          r.Metadata,
	}
}

type UpdateObjectRequest struct {
	ObjectType        *string         `json:"object_type,omitempty"`
	ObjectKey         *string         `json:"object_key,omitempty"`
	ObjectName        *string         `json:"object_name,omitempty"`
	ObjectDescription *string         `json:"object_description,omitempty"`
	Metadata          domain.Metadata `json:"metadata,omitempty"`
}

func (r UpdateObjectRequest) toDomain() domain.ReviewedObjectUpdate {
	return domain.ReviewedObjectUpdate{
		ObjectType:        r.ObjectType,
		ObjectKey:         r.ObjectKey,
		ObjectName:        r.ObjectName,
		ObjectDescription: r.ObjectDescription,
		Metadata:          r.Metadata,
	}
}
