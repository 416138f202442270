package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hizmetpinari/internal/access"
	"hizmetpinari/internal/cache"
	errs "hizmetpinari/internal/errors"
	"hizmetpinari/internal/model"
	"hizmetpinari/internal/repository"
)

// OfferService owns the offer lifecycle and its coupling to the job
// lifecycle. Accepting an offer assigns the job and rejects every competing
// pending offer in the same transaction; rejecting a previously accepted
// offer reverts the job to open.
type OfferService interface {
	SubmitOffer(ctx context.Context, actor access.Actor, jobID uint, price decimal.Decimal, message string) (*model.Offer, error)
	ListOffers(ctx context.Context, actor access.Actor, jobID uint) ([]model.Offer, error)
	AcceptOffer(ctx context.Context, actor access.Actor, offerID uint) (*model.Offer, error)
	RejectOffer(ctx context.Context, actor access.Actor, offerID uint) (*model.Offer, error)
	WithdrawOffer(ctx context.Context, actor access.Actor, offerID uint) (*model.Offer, error)
}

type offerService struct {
	offerRepo    repository.OfferRepository
	jobRepo      repository.JobRepository
	providerRepo repository.ProviderRepository
	userRepo     repository.UserRepository
	cache        *cache.Client
}

// NewOfferService creates a new offer service.
func NewOfferService(
	offerRepo repository.OfferRepository,
	jobRepo repository.JobRepository,
	providerRepo repository.ProviderRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
) OfferService {
	return &offerService{
		offerRepo:    offerRepo,
		jobRepo:      jobRepo,
		providerRepo: providerRepo,
		userRepo:     userRepo,
		cache:        cache,
	}
}

// SubmitOffer creates a pending offer on an open job. A provider-role user
// without a provider profile gets one auto-provisioned, with the business
// name defaulting to the user's full name.
func (s *offerService) SubmitOffer(ctx context.Context, actor access.Actor, jobID uint, price decimal.Decimal, message string) (*model.Offer, error) {
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, errs.ErrInvalidPrice
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if err := access.CanSubmitOffer(actor, job); err != nil {
		return nil, err
	}
	if job.Status != model.JobStatusOpen {
		return nil, errs.ErrJobNotOpen
	}

	provider, err := s.findOrProvisionProvider(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.offerRepo.FindByJobAndProvider(ctx, jobID, provider.ID); err == nil {
		return nil, errs.ErrDuplicateOffer
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing offer: %w", err)
	}

	offer := &model.Offer{
		JobID:      jobID,
		ProviderID: provider.ID,
		Price:      price,
		Message:    message,
		Status:     model.OfferStatusPending,
	}
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		// Unique (job_id, provider_id) backstop for submissions racing the
		// pre-check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrDuplicateOffer
		}
		return nil, fmt.Errorf("create offer: %w", err)
	}

	offer.Provider = *provider
	return offer, nil
}

// findOrProvisionProvider loads the actor's provider profile, creating one on
// first use.
func (s *offerService) findOrProvisionProvider(ctx context.Context, userID uint) (*model.Provider, error) {
	provider, err := s.providerRepo.FindByUserID(ctx, userID)
	if err == nil {
		return provider, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find provider profile: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	provider = &model.Provider{
		UserID:       userID,
		BusinessName: user.FullName(),
	}
	if err := s.providerRepo.Create(ctx, provider); err != nil {
		return nil, fmt.Errorf("provision provider profile: %w", err)
	}
	return provider, nil
}

// ListOffers lists a job's offers for its owning customer, lowest price first.
func (s *offerService) ListOffers(ctx context.Context, actor access.Actor, jobID uint) ([]model.Offer, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if err := access.CanManageJob(actor, job); err != nil {
		return nil, err
	}

	offers, err := s.offerRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}

// AcceptOffer accepts a pending offer on an open job. In one transaction the
// offer becomes accepted, the job becomes assigned, and every other pending
// offer on the job is rejected. Each status write re-verifies the expected
// current status, so two racing accepts cannot both assign the job.
func (s *offerService) AcceptOffer(ctx context.Context, actor access.Actor, offerID uint) (*model.Offer, error) {
	var accepted *model.Offer

	err := s.offerRepo.WithTransaction(ctx, func(ctx context.Context, offers repository.OfferRepository, jobs repository.JobRepository) error {
		offer, err := offers.FindByID(ctx, offerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrOfferNotFound
			}
			return fmt.Errorf("find offer: %w", err)
		}

		job, err := jobs.FindByID(ctx, offer.JobID)
		if err != nil {
			return fmt.Errorf("find job: %w", err)
		}

		if err := access.CanManageJob(actor, job); err != nil {
			return err
		}
		if offer.Status != model.OfferStatusPending {
			return errs.ErrOfferNotPending
		}
		if job.Status != model.JobStatusOpen {
			return errs.ErrJobNotOpen
		}

		ok, err := jobs.UpdateStatus(ctx, job.ID, model.JobStatusOpen, model.JobStatusAssigned)
		if err != nil {
			return fmt.Errorf("assign job: %w", err)
		}
		if !ok {
			return errs.ErrJobNotOpen
		}

		ok, err = offers.UpdateStatus(ctx, offer.ID, model.OfferStatusPending, model.OfferStatusAccepted)
		if err != nil {
			return fmt.Errorf("accept offer: %w", err)
		}
		if !ok {
			return errs.ErrOfferNotPending
		}

		if _, err := offers.RejectSiblings(ctx, job.ID, offer.ID); err != nil {
			return fmt.Errorf("reject competing offers: %w", err)
		}

		offer.Status = model.OfferStatusAccepted
		accepted = offer
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.JobKey(accepted.JobID))
	return accepted, nil
}

// RejectOffer rejects an offer regardless of its current status. Rejecting
// the job's accepted offer reverts the job to open and returns the offers
// that were rejected alongside the accept to pending, so the customer can
// accept one of them instead; rejecting an already-rejected offer is a no-op.
func (s *offerService) RejectOffer(ctx context.Context, actor access.Actor, offerID uint) (*model.Offer, error) {
	var rejected *model.Offer

	err := s.offerRepo.WithTransaction(ctx, func(ctx context.Context, offers repository.OfferRepository, jobs repository.JobRepository) error {
		offer, err := offers.FindByID(ctx, offerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrOfferNotFound
			}
			return fmt.Errorf("find offer: %w", err)
		}

		job, err := jobs.FindByID(ctx, offer.JobID)
		if err != nil {
			return fmt.Errorf("find job: %w", err)
		}

		if err := access.CanManageJob(actor, job); err != nil {
			return err
		}

		if offer.Status == model.OfferStatusRejected {
			rejected = offer
			return nil
		}

		wasAccepted := offer.Status == model.OfferStatusAccepted

		ok, err := offers.UpdateStatus(ctx, offer.ID, offer.Status, model.OfferStatusRejected)
		if err != nil {
			return fmt.Errorf("reject offer: %w", err)
		}
		if !ok {
			return errs.ErrOfferNotFound
		}

		if wasAccepted && job.Status == model.JobStatusAssigned {
			// Undo the assignment: the job goes back on the market and the
			// competing offers become biddable again.
			ok, err = jobs.UpdateStatus(ctx, job.ID, model.JobStatusAssigned, model.JobStatusOpen)
			if err != nil {
				return fmt.Errorf("reopen job: %w", err)
			}
			if !ok {
				return errs.ErrInvalidTransition
			}
			if _, err := offers.RestoreSiblings(ctx, job.ID, offer.ID); err != nil {
				return fmt.Errorf("restore competing offers: %w", err)
			}
		}

		offer.Status = model.OfferStatusRejected
		rejected = offer
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.JobKey(rejected.JobID))
	return rejected, nil
}

// WithdrawOffer lets a provider pull back their own pending offer.
// Withdrawing an already-withdrawn offer is a no-op.
func (s *offerService) WithdrawOffer(ctx context.Context, actor access.Actor, offerID uint) (*model.Offer, error) {
	offer, err := s.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrOfferNotFound
		}
		return nil, fmt.Errorf("find offer: %w", err)
	}

	if err := access.CanWithdrawOffer(actor, &offer.Provider); err != nil {
		return nil, err
	}

	if offer.Status == model.OfferStatusWithdrawn {
		return offer, nil
	}
	if offer.Status != model.OfferStatusPending {
		return nil, errs.ErrOfferNotPending
	}

	ok, err := s.offerRepo.UpdateStatus(ctx, offer.ID, model.OfferStatusPending, model.OfferStatusWithdrawn)
	if err != nil {
		return nil, fmt.Errorf("withdraw offer: %w", err)
	}
	if !ok {
		return nil, errs.ErrOfferNotPending
	}

	offer.Status = model.OfferStatusWithdrawn
	return offer, nil
}
