package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reviewboard/internal/domain"
)

// ReviewerRepository defines reviewer data access. Any store satisfying this
// interface is substitutable without changing callers.
type ReviewerRepository interface {
	Create(ctx context.Context, in domain.ReviewerCreate) (*domain.Reviewer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reviewer, error)
	GetByUsername(ctx context.Context, username string) (*domain.Reviewer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Reviewer, error)
	List(ctx context.Context, page Page) ([]domain.Reviewer, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ReviewerUpdate) (*domain.Reviewer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewerRepository struct {
	db     *gorm.DB
	policy domain.DeletePolicy
}

func NewReviewerRepository(db *gorm.DB, policy domain.DeletePolicy) ReviewerRepository {
	return &reviewerRepository{db: db, policy: policy}
}

// Create inserts and returns the full row. Uniqueness is enforced by the
// database, not by a pre-check, so concurrent writers cannot race past it.
func (r *reviewerRepository) Create(ctx context.Context, in domain.ReviewerCreate) (*domain.Reviewer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := domain.Reviewer{
		ID:        uuid.New(),
		Username:  strings.TrimSpace(in.Username),
		Email:     strings.TrimSpace(strings.ToLower(in.Email)),
		FullName:  in.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reviewer, error) {
	var m domain.Reviewer
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewerRepository) GetByUsername(ctx context.Context, username string) (*domain.Reviewer, error) {
	var m domain.Reviewer
	if err := r.db.WithContext(ctx).First(&m, "username = ?", strings.TrimSpace(username)).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewerRepository) GetByEmail(ctx context.Context, email string) (*domain.Reviewer, error) {
	var m domain.Reviewer
	err := r.db.WithContext(ctx).
		First(&m, "email = ?", strings.TrimSpace(strings.ToLower(email))).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

func (r *reviewerRepository) List(ctx context.Context, page Page) ([]domain.Reviewer, int64, error) {
	page = page.normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Reviewer{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	items := make([]domain.Reviewer, 0, page.Limit)
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, translateError(err)
	}
	return items, total, nil
}

// Update applies only the fields present in the patch. updated_at always
// advances, even for an empty patch.
func (r *reviewerRepository) Update(ctx context.Context, id uuid.UUID, patch domain.ReviewerUpdate) (*domain.Reviewer, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var m domain.Reviewer
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}

	changes := patch.Changes()
	if v, ok := changes["email"]; ok {
		changes["email"] = strings.TrimSpace(strings.ToLower(v.(string)))
	}
	if v, ok := changes["username"]; ok {
		changes["username"] = strings.TrimSpace(v.(string))
	}
	changes["updated_at"] = time.Now().UTC()

	if err := r.db.WithContext(ctx).Model(&m).Updates(changes).Error; err != nil {
		return nil, translateError(err)
	}

	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &m, nil
}

// Delete removes the reviewer. Under restrict, dependent reviews surface as
// ErrDeleteConflict; under cascade they are removed in the same transaction.
func (r *reviewerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.policy == domain.DeleteCascade {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("reviewer_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
				return translateDeleteError(err)
			}
			res := tx.Where("id = ?", id).Delete(&domain.Reviewer{})
			if res.Error != nil {
				return translateDeleteError(res.Error)
			}
			if res.RowsAffected == 0 {
				return domain.ErrNotFound
			}
			return nil
		})
	}

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Reviewer{})
	if res.Error != nil {
		return translateDeleteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
