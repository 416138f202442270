package repository

import (
	"context"

	"gorm.io/gorm"

	"hizmetpinari/internal/model"
)

// OfferRepository defines offer persistence operations. WithTransaction hands
// the callback offer and job repositories bound to the same transaction so
// coupled state changes commit or roll back as one unit.
type OfferRepository interface {
	Create(ctx context.Context, offer *model.Offer) error
	FindByID(ctx context.Context, id uint) (*model.Offer, error)
	FindByJobAndProvider(ctx context.Context, jobID, providerID uint) (*model.Offer, error)
	FindAcceptedByJob(ctx context.Context, jobID uint) (*model.Offer, error)
	ListByJob(ctx context.Context, jobID uint) ([]model.Offer, error)
	UpdateStatus(ctx context.Context, id uint, from, to model.OfferStatus) (bool, error)
	RejectSiblings(ctx context.Context, jobID, acceptedID uint) (int64, error)
	RestoreSiblings(ctx context.Context, jobID, rejectedID uint) (int64, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, offers OfferRepository, jobs JobRepository) error) error
}

type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository creates a new offer repository.
func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

// Create creates a new offer record.
func (r *offerRepository) Create(ctx context.Context, offer *model.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

// FindByID finds an offer by ID with its provider loaded.
func (r *offerRepository) FindByID(ctx context.Context, id uint) (*model.Offer, error) {
	var offer model.Offer
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("id = ?", id).
		First(&offer).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

// FindByJobAndProvider finds a provider's offer on a job, if any.
func (r *offerRepository) FindByJobAndProvider(ctx context.Context, jobID, providerID uint) (*model.Offer, error) {
	var offer model.Offer
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND provider_id = ?", jobID, providerID).
		First(&offer).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

// FindAcceptedByJob finds the job's accepted offer. At most one exists at
// any time; it identifies the provider assigned to the job.
func (r *offerRepository) FindAcceptedByJob(ctx context.Context, jobID uint) (*model.Offer, error) {
	var offer model.Offer
	if err := r.db.WithContext(ctx).
		Where("job_id = ? AND status = ?", jobID, model.OfferStatusAccepted).
		First(&offer).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

// ListByJob lists all offers on a job, lowest price first.
func (r *offerRepository) ListByJob(ctx context.Context, jobID uint) ([]model.Offer, error) {
	var offers []model.Offer
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("job_id = ?", jobID).
		Order("price ASC").
		Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// UpdateStatus moves an offer from one status to another with the expected
// current status re-verified at write time. Returns false when the offer was
// no longer in the from status.
func (r *offerRepository) UpdateStatus(ctx context.Context, id uint, from, to model.OfferStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Offer{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// RejectSiblings rejects every pending offer on the job except the accepted
// one in a single bulk update. Returns the number of offers rejected.
func (r *offerRepository) RejectSiblings(ctx context.Context, jobID, acceptedID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Offer{}).
		Where("job_id = ? AND id <> ? AND status = ?", jobID, acceptedID, model.OfferStatusPending).
		Update("status", model.OfferStatusRejected)
	return res.RowsAffected, res.Error
}

// RestoreSiblings returns the job's other rejected offers to pending. It is
// the inverse of RejectSiblings, applied when an accepted offer is rejected
// and the job reopens; withdrawn offers stay withdrawn. Returns the number of
// offers restored.
func (r *offerRepository) RestoreSiblings(ctx context.Context, jobID, rejectedID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Offer{}).
		Where("job_id = ? AND id <> ? AND status = ?", jobID, rejectedID, model.OfferStatusRejected).
		Update("status", model.OfferStatusPending)
	return res.RowsAffected, res.Error
}

// WithTransaction executes a function within a database transaction.
func (r *offerRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, offers OfferRepository, jobs JobRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &offerRepository{db: tx}, &jobRepository{db: tx})
	})
}
