package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hizmetpinari/internal/access"
	errs "hizmetpinari/internal/errors"
	"hizmetpinari/internal/model"
	"hizmetpinari/internal/repository"
)

// ReviewService admits a review only once its job is completed, at most once
// per job. The reviewed provider is resolved from the job's accepted offer.
type ReviewService interface {
	CreateReview(ctx context.Context, actor access.Actor, jobID uint, rating int, comment string) (*model.Review, error)
	ListProviderReviews(ctx context.Context, providerID uint) ([]model.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	jobRepo    repository.JobRepository
	offerRepo  repository.OfferRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, jobRepo repository.JobRepository, offerRepo repository.OfferRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		jobRepo:    jobRepo,
		offerRepo:  offerRepo,
	}
}

// CreateReview records the owning customer's rating for a completed job.
func (s *reviewService) CreateReview(ctx context.Context, actor access.Actor, jobID uint, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, errs.ErrInvalidRating
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if err := access.CanReviewJob(actor, job); err != nil {
		return nil, err
	}
	if job.Status != model.JobStatusCompleted {
		return nil, errs.ErrJobNotCompleted
	}

	if _, err := s.reviewRepo.FindByJobID(ctx, jobID); err == nil {
		return nil, errs.ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing review: %w", err)
	}

	// The job table carries no provider id; the assigned provider is the one
	// behind the accepted offer.
	accepted, err := s.offerRepo.FindAcceptedByJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNoAcceptedOffer
		}
		return nil, fmt.Errorf("find accepted offer: %w", err)
	}

	review := &model.Review{
		JobID:      jobID,
		ProviderID: accepted.ProviderID,
		CustomerID: actor.ID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		// Unique job_id backstop for reviews racing the pre-check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrDuplicateReview
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}

// ListProviderReviews lists reviews left for a provider, newest first.
func (s *reviewService) ListProviderReviews(ctx context.Context, providerID uint) ([]model.Review, error) {
	reviews, err := s.reviewRepo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
