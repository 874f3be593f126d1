package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reviewboard/internal/domain"
)

// ObjectFilter narrows object listings.
type ObjectFilter struct {
	ObjectType string
}

// ReviewedObjectRepository defines reviewed-object data access.
type ReviewedObjectRepository interface {
	Create(ctx context.Context, in domain.ReviewedObjectCreate) (*domain.ReviewedObject, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewedObject, error)
	GetByTypeAndKey(ctx context.Context, objectType, objectKey string) (*domain.ReviewedObject, error)
	List(ctx context.Context, filter ObjectFilter, page Page) ([]domain.ReviewedObject, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ReviewedObjectUpdate) (*domain.ReviewedObject, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewedObjectRepository struct {
	db     *gorm.DB
	policy domain.DeletePolicy
}

func NewReviewedObjectRepository(db *gorm.DB, policy domain.DeletePolicy) ReviewedObjectRepository {
	return &reviewedObjectRepository{db: db, policy: policy}
}

func (r *reviewedObjectRepository) Create(ctx context.Context, in domain.ReviewedObjectCreate) (*domain.ReviewedObject, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := domain.ReviewedObject{
		ID:                uuid.New(),
		ObjectType:        strings.TrimSpace(in.ObjectType),
		ObjectKey:         strings.TrimSpace(in.ObjectKey),
		ObjectName:        strings.TrimSpace(in.ObjectName),
		ObjectDescription: in.ObjectDescription,
		Metadata:          in.Metadata,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewedObjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewedObject, error) {
	var m domain.ReviewedObject
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewedObjectRepository) GetByTypeAndKey(ctx context.Context, objectType, objectKey string) (*domain.ReviewedObject, error) {
	var m domain.ReviewedObject
	err := r.db.WithContext(ctx).
		First(&m, "object_type = ? AND object_key = ?", objectType, objectKey).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewedObjectRepository) List(ctx context.Context, filter ObjectFilter, page Page) ([]domain.ReviewedObject, int64, error) {
	page = page.normalize()

	countQ := r.db.WithContext(ctx).Model(&domain.ReviewedObject{})
	listQ := r.db.WithContext(ctx).Model(&domain.ReviewedObject{})
	if filter.ObjectType != "" {
		countQ = countQ.Where("object_type = ?", filter.ObjectType)
		listQ = listQ.Where("object_type = ?", filter.ObjectType)
	}

	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	items := make([]domain.ReviewedObject, 0, page.Limit)
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

func (r *reviewedObjectRepository) Update(ctx context.Context, id uuid.UUID, patch domain.ReviewedObjectUpdate) (*domain.ReviewedObject, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var m domain.ReviewedObject
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

func (r *reviewedObjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.policy == domain.DeleteCascade {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("reviewed_object_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
				return translateDeleteError(err)
			}
			res := tx.Where("id = ?", id).Delete(&domain.ReviewedObject{})
			if res.Error != nil {
				return translateDeleteError(res.Error)
			}
			if res.RowsAffected == 0 {
				return domain.ErrNotFound
			}
			return nil
		})
	}

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.ReviewedObject{})
	if res.Error != nil {
		return translateDeleteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
