package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hizmetpinari/internal/access"
	"hizmetpinari/internal/cache"
	errs "hizmetpinari/internal/errors"
	"hizmetpinari/internal/model"
	"hizmetpinari/internal/repository"
)

const jobCacheTTL = 30 * time.Second

// jobTransitions is the allowed edge set of the job lifecycle. The
// assigned→open edge is the reversal applied when an accepted offer is
// rejected; completed and cancelled are terminal.
var jobTransitions = map[model.JobStatus][]model.JobStatus{
	model.JobStatusOpen:     {model.JobStatusAssigned, model.JobStatusCancelled},
	model.JobStatusAssigned: {model.JobStatusCompleted, model.JobStatusOpen},
}

// jobTransitionAllowed reports whether from→to is a defined lifecycle edge.
func jobTransitionAllowed(from, to model.JobStatus) bool {
	for _, t := range jobTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// CreateJobInput carries the fields needed to post a job.
type CreateJobInput struct {
	ServiceID   uint
	DistrictID  uint
	Title       string
	Description string
}

// JobService owns the job lifecycle: creation, listing, and the explicit
// complete/cancel transitions. Offer-driven transitions (assign, reversal)
// live in OfferService, which shares the same transition table.
type JobService interface {
	CreateJob(ctx context.Context, actor access.Actor, in CreateJobInput) (*model.Job, error)
	CreateJobForCustomer(ctx context.Context, actor access.Actor, customerID uint, in CreateJobInput) (*model.Job, error)
	ListOpenJobs(ctx context.Context, offset, limit int) ([]model.Job, error)
	ListMyJobs(ctx context.Context, actor access.Actor, offset, limit int) ([]model.Job, error)
	GetJob(ctx context.Context, id uint) (*model.Job, error)
	CompleteJob(ctx context.Context, actor access.Actor, id uint) (*model.Job, error)
	CancelJob(ctx context.Context, actor access.Actor, id uint) (*model.Job, error)
}

type jobService struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository, cache *cache.Client) JobService {
	return &jobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

// CreateJob posts a new job owned by the acting customer. Jobs are always
// created open; callers cannot choose an initial status.
func (s *jobService) CreateJob(ctx context.Context, actor access.Actor, in CreateJobInput) (*model.Job, error) {
	if err := access.CanCreateJobForSelf(actor); err != nil {
		return nil, err
	}
	return s.insertJob(ctx, actor.ID, in)
}

// CreateJobForCustomer posts a new job on behalf of a named customer. The
// target id must resolve to a user with the customer role.
func (s *jobService) CreateJobForCustomer(ctx context.Context, actor access.Actor, customerID uint, in CreateJobInput) (*model.Job, error) {
	if err := access.CanCreateJobForCustomer(actor); err != nil {
		return nil, err
	}

	customer, err := s.userRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer.Role != model.RoleCustomer {
		return nil, errs.ErrCustomerNotFound
	}

	return s.insertJob(ctx, customer.ID, in)
}

func (s *jobService) insertJob(ctx context.Context, customerID uint, in CreateJobInput) (*model.Job, error) {
	job := &model.Job{
		CustomerID:  customerID,
		ServiceID:   in.ServiceID,
		DistrictID:  in.DistrictID,
		Title:       in.Title,
		Description: in.Description,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// ListOpenJobs lists active open jobs publicly, newest first.
func (s *jobService) ListOpenJobs(ctx context.Context, offset, limit int) ([]model.Job, error) {
	jobs, err := s.jobRepo.ListOpen(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list open jobs: %w", err)
	}
	return jobs, nil
}

// ListMyJobs lists the acting customer's own jobs regardless of status.
func (s *jobService) ListMyJobs(ctx context.Context, actor access.Actor, offset, limit int) ([]model.Job, error) {
	jobs, err := s.jobRepo.ListByCustomer(ctx, actor.ID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs for customer: %w", err)
	}
	return jobs, nil
}

// GetJob fetches a job with its customer summary, served from cache when the
// entry is fresh.
func (s *jobService) GetJob(ctx context.Context, id uint) (*model.Job, error) {
	key := cache.JobKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var job model.Job
		if err := json.Unmarshal(data, &job); err == nil {
			return &job, nil
		}
	}

	job, err := s.jobRepo.FindDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if payload, err := json.Marshal(job); err == nil {
		_ = s.cache.Set(ctx, key, payload, jobCacheTTL)
	}
	return job, nil
}

// CompleteJob moves an assigned job to completed. Only the owning customer
// may confirm completion.
func (s *jobService) CompleteJob(ctx context.Context, actor access.Actor, id uint) (*model.Job, error) {
	return s.transition(ctx, actor, id, model.JobStatusCompleted)
}

// CancelJob moves an open job to cancelled.
func (s *jobService) CancelJob(ctx context.Context, actor access.Actor, id uint) (*model.Job, error) {
	return s.transition(ctx, actor, id, model.JobStatusCancelled)
}

func (s *jobService) transition(ctx context.Context, actor access.Actor, id uint, target model.JobStatus) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if err := access.CanManageJob(actor, job); err != nil {
		return nil, err
	}
	if !jobTransitionAllowed(job.Status, target) {
		return nil, errs.ErrInvalidTransition
	}

	ok, err := s.jobRepo.UpdateStatus(ctx, job.ID, job.Status, target)
	if err != nil {
		return nil, fmt.Errorf("update job status: %w", err)
	}
	if !ok {
		// Lost a race: the job left the expected status between read and write.
		return nil, errs.ErrInvalidTransition
	}

	job.Status = target
	_ = s.cache.Delete(ctx, cache.JobKey(job.ID))
	return job, nil
}
