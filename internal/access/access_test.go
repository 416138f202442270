package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "hizmetpinari/internal/errors"
	"hizmetpinari/internal/model"
)

var (
	customer = Actor{ID: 1, Role: model.RoleCustomer}
	provider = Actor{ID: 2, Role: model.RoleProvider}
	admin    = Actor{ID: 3, Role: model.RoleAdmin}
)

func TestCanCreateJobForSelf(t *testing.T) {
	assert.NoError(t, CanCreateJobForSelf(customer))
	assert.ErrorIs(t, CanCreateJobForSelf(provider), errs.ErrForbidden)
	assert.ErrorIs(t, CanCreateJobForSelf(admin), errs.ErrForbidden)
}

func TestCanCreateJobForCustomer(t *testing.T) {
	assert.NoError(t, CanCreateJobForCustomer(admin))
	assert.NoError(t, CanCreateJobForCustomer(provider))
	assert.ErrorIs(t, CanCreateJobForCustomer(customer), errs.ErrForbidden)
}

func TestCanSubmitOffer(t *testing.T) {
	job := &model.Job{ID: 10, CustomerID: 1}

	assert.NoError(t, CanSubmitOffer(provider, job))
	assert.ErrorIs(t, CanSubmitOffer(customer, job), errs.ErrForbidden)
	assert.ErrorIs(t, CanSubmitOffer(admin, job), errs.ErrForbidden)

	ownJob := &model.Job{ID: 11, CustomerID: provider.ID}
	assert.ErrorIs(t, CanSubmitOffer(provider, ownJob), errs.ErrSelfOffer)
}

func TestCanManageJob(t *testing.T) {
	job := &model.Job{ID: 10, CustomerID: 1}

	assert.NoError(t, CanManageJob(customer, job))
	assert.ErrorIs(t, CanManageJob(Actor{ID: 42, Role: model.RoleCustomer}, job), errs.ErrForbidden)
	assert.ErrorIs(t, CanManageJob(provider, job), errs.ErrForbidden)
	// Admins read everything but do not drive another customer's lifecycle.
	assert.ErrorIs(t, CanManageJob(admin, job), errs.ErrForbidden)
}

func TestCanWithdrawOffer(t *testing.T) {
	owner := &model.Provider{ID: 5, UserID: provider.ID}

	assert.NoError(t, CanWithdrawOffer(provider, owner))
	assert.ErrorIs(t, CanWithdrawOffer(Actor{ID: 77, Role: model.RoleProvider}, owner), errs.ErrForbidden)
	assert.ErrorIs(t, CanWithdrawOffer(customer, owner), errs.ErrForbidden)
}

func TestCanReviewJob(t *testing.T) {
	job := &model.Job{ID: 10, CustomerID: 1}

	assert.NoError(t, CanReviewJob(customer, job))
	assert.ErrorIs(t, CanReviewJob(Actor{ID: 42, Role: model.RoleCustomer}, job), errs.ErrForbidden)
	assert.ErrorIs(t, CanReviewJob(provider, job), errs.ErrForbidden)
}

func TestCanManageUsers(t *testing.T) {
	assert.NoError(t, CanManageUsers(admin))
	assert.ErrorIs(t, CanManageUsers(customer), errs.ErrForbidden)
	assert.ErrorIs(t, CanManageUsers(provider), errs.ErrForbidden)
}
