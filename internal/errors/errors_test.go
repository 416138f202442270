package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_NOT_FOUND"},
		{ErrJobNotFound, http.StatusNotFound, "JOB_NOT_FOUND"},
		{ErrOfferNotFound, http.StatusNotFound, "OFFER_NOT_FOUND"},
		{ErrInvalidTransition, http.StatusBadRequest, "INVALID_TRANSITION"},
		{ErrJobNotOpen, http.StatusBadRequest, "JOB_NOT_OPEN"},
		{ErrJobNotCompleted, http.StatusBadRequest, "JOB_NOT_COMPLETED"},
		{ErrOfferNotPending, http.StatusBadRequest, "OFFER_NOT_PENDING"},
		{ErrDuplicateOffer, http.StatusConflict, "DUPLICATE_OFFER"},
		{ErrDuplicateReview, http.StatusConflict, "DUPLICATE_REVIEW"},
		{ErrSelfOffer, http.StatusBadRequest, "SELF_OFFER_FORBIDDEN"},
		{ErrInvalidRating, http.StatusBadRequest, "INVALID_RATING"},
		{ErrInvalidPrice, http.StatusBadRequest, "INVALID_PRICE"},
		{ErrNoAcceptedOffer, http.StatusBadRequest, "NO_ACCEPTED_OFFER"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.err.Error(), httpErr.Message)
		})
	}
}

func TestMapErrorToHTTP_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("offer belongs to another provider: %w", ErrForbidden)
	httpErr := MapErrorToHTTP(wrapped)
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
}

func TestMapErrorToHTTP_UnknownError(t *testing.T) {
	httpErr := MapErrorToHTTP(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "internal server error", httpErr.Message)
}
