package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hizmetpinari/internal/access"
	"hizmetpinari/internal/model"
	"hizmetpinari/internal/repository"
)

// lifecycleEnv drives the offer service against real repositories on an
// in-memory database, so the coupled offer/job status writes are exercised
// against actual rows rather than mocks.
type lifecycleEnv struct {
	db        *gorm.DB
	offers    OfferService
	offerRepo repository.OfferRepository
	jobRepo   repository.JobRepository
}

func newLifecycleEnv(t *testing.T) *lifecycleEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Provider{},
		&model.Category{},
		&model.Service{},
		&model.District{},
		&model.Job{},
		&model.Offer{},
		&model.Review{},
	))
	require.NoError(t, db.Create(&model.Category{ID: 1, Name: "Home Repair", Slug: "home-repair", IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Service{ID: 1, CategoryID: 1, Name: "Plumbing", Slug: "plumbing", IsActive: true}).Error)
	require.NoError(t, db.Create(&model.District{ID: 1, Name: "Kadikoy", CityName: "Istanbul"}).Error)

	offerRepo := repository.NewOfferRepository(db)
	jobRepo := repository.NewJobRepository(db)
	return &lifecycleEnv{
		db:        db,
		offers:    NewOfferService(offerRepo, jobRepo, repository.NewProviderRepository(db), repository.NewUserRepository(db), nil),
		offerRepo: offerRepo,
		jobRepo:   jobRepo,
	}
}

func (env *lifecycleEnv) user(t *testing.T, email, first, last string, role model.Role) access.Actor {
	t.Helper()
	user := &model.User{
		Email: email, PasswordHash: "x", FirstName: first, LastName: last,
		Role: role, IsActive: true,
	}
	require.NoError(t, env.db.Create(user).Error)
	return access.Actor{ID: user.ID, Role: role}
}

func (env *lifecycleEnv) job(t *testing.T, customerID uint) *model.Job {
	t.Helper()
	job := &model.Job{
		CustomerID: customerID, ServiceID: 1, DistrictID: 1,
		Title: "Tap repair", Description: "Dripping kitchen tap",
	}
	require.NoError(t, env.jobRepo.Create(context.Background(), job))
	return job
}

func (env *lifecycleEnv) offerStatus(t *testing.T, id uint) model.OfferStatus {
	t.Helper()
	var offer model.Offer
	require.NoError(t, env.db.First(&offer, id).Error)
	return offer.Status
}

func (env *lifecycleEnv) jobStatus(t *testing.T, id uint) model.JobStatus {
	t.Helper()
	var job model.Job
	require.NoError(t, env.db.First(&job, id).Error)
	return job.Status
}

// Accepting an offer, rejecting it, and then accepting a competitor's offer
// must work end to end: rejecting the accepted offer returns the job to open
// and the competitors to pending, so any of them can be accepted next.
func TestOfferService_AcceptAfterReversal(t *testing.T) {
	env := newLifecycleEnv(t)
	ctx := context.Background()

	customer := env.user(t, "ayse@example.com", "Ayse", "Yilmaz", model.RoleCustomer)
	p1 := env.user(t, "usta1@example.com", "Mehmet", "Demir", model.RoleProvider)
	p2 := env.user(t, "usta2@example.com", "Ali", "Kaya", model.RoleProvider)
	job := env.job(t, customer.ID)

	// Both providers bid; neither has a provider profile yet, so submission
	// provisions one with the business name defaulting to the full name.
	offer1, err := env.offers.SubmitOffer(ctx, p1, job.ID, decimal.NewFromInt(100), "can start tomorrow")
	require.NoError(t, err)
	assert.Equal(t, "Mehmet Demir", offer1.Provider.BusinessName)
	offer2, err := env.offers.SubmitOffer(ctx, p2, job.ID, decimal.NewFromInt(80), "available today")
	require.NoError(t, err)

	// Accept the second offer: job assigned, first offer rejected in bulk.
	_, err = env.offers.AcceptOffer(ctx, customer, offer2.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusAssigned, env.jobStatus(t, job.ID))
	assert.Equal(t, model.OfferStatusRejected, env.offerStatus(t, offer1.ID))

	// Reject the accepted offer: job reopens and the first offer is pending
	// again.
	_, err = env.offers.RejectOffer(ctx, customer, offer2.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusOpen, env.jobStatus(t, job.ID))
	assert.Equal(t, model.OfferStatusPending, env.offerStatus(t, offer1.ID))
	assert.Equal(t, model.OfferStatusRejected, env.offerStatus(t, offer2.ID))

	// The first offer is acceptable now.
	accepted, err := env.offers.AcceptOffer(ctx, customer, offer1.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OfferStatusAccepted, accepted.Status)
	assert.Equal(t, model.JobStatusAssigned, env.jobStatus(t, job.ID))
	assert.Equal(t, model.OfferStatusRejected, env.offerStatus(t, offer2.ID))
}

// A withdrawn offer must stay withdrawn across the reversal; only offers the
// accept itself rejected come back.
func TestOfferService_ReversalLeavesWithdrawnOffers(t *testing.T) {
	env := newLifecycleEnv(t)
	ctx := context.Background()

	customer := env.user(t, "ayse@example.com", "Ayse", "Yilmaz", model.RoleCustomer)
	p1 := env.user(t, "usta1@example.com", "Mehmet", "Demir", model.RoleProvider)
	p2 := env.user(t, "usta2@example.com", "Ali", "Kaya", model.RoleProvider)
	job := env.job(t, customer.ID)

	offer1, err := env.offers.SubmitOffer(ctx, p1, job.ID, decimal.NewFromInt(100), "")
	require.NoError(t, err)
	offer2, err := env.offers.SubmitOffer(ctx, p2, job.ID, decimal.NewFromInt(80), "")
	require.NoError(t, err)

	_, err = env.offers.WithdrawOffer(ctx, p1, offer1.ID)
	require.NoError(t, err)

	_, err = env.offers.AcceptOffer(ctx, customer, offer2.ID)
	require.NoError(t, err)
	_, err = env.offers.RejectOffer(ctx, customer, offer2.ID)
	require.NoError(t, err)

	assert.Equal(t, model.JobStatusOpen, env.jobStatus(t, job.ID))
	assert.Equal(t, model.OfferStatusWithdrawn, env.offerStatus(t, offer1.ID))
}
