package repository

import (
	"context"

	"gorm.io/gorm"

	"hizmetpinari/internal/model"
)

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByJobID(ctx context.Context, jobID uint) (*model.Review, error)
	ListByProvider(ctx context.Context, providerID uint) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create creates a new review record.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// FindByJobID finds the review for a job, if any.
func (r *reviewRepository) FindByJobID(ctx context.Context, jobID uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByProvider lists reviews left for a provider, newest first.
func (r *reviewRepository) ListByProvider(ctx context.Context, providerID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
