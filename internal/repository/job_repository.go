package repository

import (
	"context"

	"gorm.io/gorm"

	"hizmetpinari/internal/model"
)

// JobRepository defines job persistence operations. Status changes go through
// UpdateStatus, which re-verifies the expected current status at write time so
// racing transitions cannot both apply.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	FindDetail(ctx context.Context, id uint) (*model.Job, error)
	ListOpen(ctx context.Context, offset, limit int) ([]model.Job, error)
	ListByCustomer(ctx context.Context, customerID uint, offset, limit int) ([]model.Job, error)
	UpdateStatus(ctx context.Context, id uint, from, to model.JobStatus) (bool, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create creates a new job. Status is forced to open regardless of input.
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	job.Status = model.JobStatusOpen
	job.IsActive = true
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByID finds a job by ID without relations.
func (r *jobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindDetail finds a job by ID with the customer summary, service and
// district loaded.
func (r *jobRepository) FindDetail(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("District").
		Where("id = ?", id).
		First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// ListOpen lists active open jobs, newest first.
func (r *jobRepository) ListOpen(ctx context.Context, offset, limit int) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("District").
		Where("is_active = ? AND status = ?", true, model.JobStatusOpen).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListByCustomer lists a customer's own jobs regardless of status, newest first.
func (r *jobRepository) ListByCustomer(ctx context.Context, customerID uint, offset, limit int) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("District").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateStatus moves a job from one status to another. The from status is a
// write-time guard: it returns false without error when the job was no longer
// in the expected status, which is how concurrent transitions lose the race.
func (r *jobRepository) UpdateStatus(ctx context.Context, id uint, from, to model.JobStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
