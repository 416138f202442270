// Package access is the authorization gate applied before every mutating
// operation. Each predicate decides from the actor's role and resource
// ownership alone; a denial always carries errs.ErrForbidden plus a reason.
package access

import (
	"fmt"

	errs "hizmetpinari/internal/errors"
	"hizmetpinari/internal/model"
)

// Actor is the authenticated caller, resolved from the bearer token.
type Actor struct {
	ID   uint
	Role model.Role
}

// CanCreateJobForSelf allows customers to post jobs under their own account.
func CanCreateJobForSelf(actor Actor) error {
	if actor.Role != model.RoleCustomer {
		return fmt.Errorf("%w: only customers may create jobs for themselves", errs.ErrForbidden)
	}
	return nil
}

// CanCreateJobForCustomer allows admins and providers to post a job on
// behalf of a named customer. The target's role is verified separately
// against the users table.
func CanCreateJobForCustomer(actor Actor) error {
	if actor.Role != model.RoleAdmin && actor.Role != model.RoleProvider {
		return fmt.Errorf("%w: only admins and providers may create jobs on behalf of a customer", errs.ErrForbidden)
	}
	return nil
}

// CanSubmitOffer allows providers to bid on jobs they do not own. Bidding on
// one's own job is a distinct violation so the caller can report it as such.
func CanSubmitOffer(actor Actor, job *model.Job) error {
	if actor.Role != model.RoleProvider {
		return fmt.Errorf("%w: only providers may submit offers", errs.ErrForbidden)
	}
	if job.CustomerID == actor.ID {
		return errs.ErrSelfOffer
	}
	return nil
}

// CanManageJob allows the owning customer to drive a job's lifecycle:
// accepting or rejecting offers, viewing offers, completing and cancelling.
func CanManageJob(actor Actor, job *model.Job) error {
	if actor.Role != model.RoleCustomer {
		return fmt.Errorf("%w: only customers may manage jobs", errs.ErrForbidden)
	}
	if job.CustomerID != actor.ID {
		return fmt.Errorf("%w: job belongs to another customer", errs.ErrForbidden)
	}
	return nil
}

// CanWithdrawOffer allows the provider that submitted an offer to withdraw it.
func CanWithdrawOffer(actor Actor, offerOwner *model.Provider) error {
	if actor.Role != model.RoleProvider {
		return fmt.Errorf("%w: only providers may withdraw offers", errs.ErrForbidden)
	}
	if offerOwner.UserID != actor.ID {
		return fmt.Errorf("%w: offer belongs to another provider", errs.ErrForbidden)
	}
	return nil
}

// CanReviewJob allows the owning customer to review a job.
func CanReviewJob(actor Actor, job *model.Job) error {
	if actor.Role != model.RoleCustomer {
		return fmt.Errorf("%w: only customers may leave reviews", errs.ErrForbidden)
	}
	if job.CustomerID != actor.ID {
		return fmt.Errorf("%w: job belongs to another customer", errs.ErrForbidden)
	}
	return nil
}

// CanManageUsers allows admins to use the user management endpoints.
func CanManageUsers(actor Actor) error {
	if actor.Role != model.RoleAdmin {
		return fmt.Errorf("%w: admin role required", errs.ErrForbidden)
	}
	return nil
}
