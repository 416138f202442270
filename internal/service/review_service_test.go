package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hizmetpinari/internal/access"
	errs "hizmetpinari/internal/errors"
	"hizmetpinari/internal/model"
)

func newReviewServiceForTest() (ReviewService, *MockReviewRepository, *MockJobRepository, *MockOfferRepository) {
	reviewRepo := new(MockReviewRepository)
	jobRepo := new(MockJobRepository)
	offerRepo := new(MockOfferRepository)
	svc := NewReviewService(reviewRepo, jobRepo, offerRepo)
	return svc, reviewRepo, jobRepo, offerRepo
}

func completedJob() *model.Job {
	return &model.Job{ID: 10, CustomerID: 1, Status: model.JobStatusCompleted}
}

func TestReviewService_CreateReview(t *testing.T) {
	tests := []struct {
		name          string
		actor         access.Actor
		rating        int
		setupMocks    func(*MockReviewRepository, *MockJobRepository, *MockOfferRepository)
		expectedError error
	}{
		{
			name:   "review resolves provider from the accepted offer",
			actor:  customerActor,
			rating: 5,
			setupMocks: func(r *MockReviewRepository, j *MockJobRepository, o *MockOfferRepository) {
				j.On("FindByID", mock.Anything, uint(10)).Return(completedJob(), nil)
				r.On("FindByJobID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
				o.On("FindAcceptedByJob", mock.Anything, uint(10)).Return(&model.Offer{
					ID: 20, JobID: 10, ProviderID: 5, Status: model.OfferStatusAccepted,
				}, nil)
				r.On("Create", mock.Anything, mock.MatchedBy(func(rv *model.Review) bool {
					return rv.JobID == 10 && rv.ProviderID == 5 && rv.CustomerID == 1 && rv.Rating == 5
				})).Return(nil)
			},
		},
		{
			name:          "rating below range",
			actor:         customerActor,
			rating:        0,
			setupMocks:    func(r *MockReviewRepository, j *MockJobRepository, o *MockOfferRepository) {},
			expectedError: errs.ErrInvalidRating,
		},
		{
			name:          "rating above range",
			actor:         customerActor,
			rating:        6,
			setupMocks:    func(r *MockReviewRepository, j *MockJobRepository, o *MockOfferRepository) {},
			expectedError: errs.ErrInvalidRating,
		},
		{
			name:   "job not completed",
			actor:  customerActor,
			rating: 4,
			setupMocks: func(r *MockReviewRepository, j *MockJobRepository, o *MockOfferRepository) {
				job := completedJob()
				job.Status = model.JobStatusAssigned
				j.On("FindByID", mock.Anything, uint(10)).Return(job, nil)
			},
			expectedError: errs.ErrJobNotCompleted,
		},
		{
			name:   "non-owner denied",
			actor:  access.Actor{ID: 42, Role: model.RoleCustomer},
			rating: 4,
			setupMocks: func(r *MockReviewRepository, j *MockJobRepository, o *MockOfferRepository) {
				j.On("FindByID", mock.Anything, uint(10)).Return(completedJob(), nil)
			},
			expectedError: errs.ErrForbidden,
		},
		{
			name:   "provider cannot review",
			actor:  providerActor,
			rating: 4,
			setupMocks: func(r *MockReviewRepository, j *MockJobRepository, o *MockOfferRepository) {
				j.On("FindByID", mock.Anything, uint(10)).Return(completedJob(), nil)
			},
			expectedError: errs.ErrForbidden,
		},
		{
			name:   "second review for the same job",
			actor:  customerActor,
			rating: 4,
			setupMocks: func(r *MockReviewRepository, j *MockJobRepository, o *MockOfferRepository) {
				j.On("FindByID", mock.Anything, uint(10)).Return(completedJob(), nil)
				r.On("FindByJobID", mock.Anything, uint(10)).Return(&model.Review{ID: 1, JobID: 10}, nil)
			},
			expectedError: errs.ErrDuplicateReview,
		},
		{
			name:   "duplicate key backstop maps to duplicate review",
			actor:  customerActor,
			rating: 4,
			setupMocks: func(r *MockReviewRepository, j *MockJobRepository, o *MockOfferRepository) {
				j.On("FindByID", mock.Anything, uint(10)).Return(completedJob(), nil)
				r.On("FindByJobID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
				o.On("FindAcceptedByJob", mock.Anything, uint(10)).Return(&model.Offer{ID: 20, ProviderID: 5}, nil)
				r.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errs.ErrDuplicateReview,
		},
		{
			name:   "completed job without an accepted offer",
			actor:  customerActor,
			rating: 4,
			setupMocks: func(r *MockReviewRepository, j *MockJobRepository, o *MockOfferRepository) {
				j.On("FindByID", mock.Anything, uint(10)).Return(completedJob(), nil)
				r.On("FindByJobID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
				o.On("FindAcceptedByJob", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errs.ErrNoAcceptedOffer,
		},
		{
			name:   "job not found",
			actor:  customerActor,
			rating: 4,
			setupMocks: func(r *MockReviewRepository, j *MockJobRepository, o *MockOfferRepository) {
				j.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errs.ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reviewRepo, jobRepo, offerRepo := newReviewServiceForTest()
			tt.setupMocks(reviewRepo, jobRepo, offerRepo)

			review, err := svc.CreateReview(context.Background(), tt.actor, 10, tt.rating, "quick and tidy work")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, review)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(5), review.ProviderID)
			}
			reviewRepo.AssertExpectations(t)
			jobRepo.AssertExpectations(t)
			offerRepo.AssertExpectations(t)
		})
	}
}

func TestReviewService_ListProviderReviews(t *testing.T) {
	svc, reviewRepo, _, _ := newReviewServiceForTest()
	reviewRepo.On("ListByProvider", mock.Anything, uint(5)).Return([]model.Review{
		{ID: 2, ProviderID: 5, Rating: 4},
		{ID: 1, ProviderID: 5, Rating: 5},
	}, nil)

	reviews, err := svc.ListProviderReviews(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
	reviewRepo.AssertExpectations(t)
}
