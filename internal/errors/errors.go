package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrForbidden is returned when an authenticated user lacks permission.
	ErrForbidden = errors.New("operation not permitted for this user")
	// ErrUserNotFound is returned when a user id or email does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrCustomerNotFound is returned when a privileged job creation names a
	// customer id that does not resolve to a user with the customer role.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrOfferNotFound is returned when an offer is not found.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrInvalidTransition is returned when a job status change is not in the
	// allowed transition set.
	ErrInvalidTransition = errors.New("invalid job status transition")
	// ErrJobNotOpen is returned when an operation requires an open job.
	ErrJobNotOpen = errors.New("job is not open")
	// ErrJobNotCompleted is returned when a review is attempted before the
	// job reached completed.
	ErrJobNotCompleted = errors.New("job is not completed")
	// ErrOfferNotPending is returned when an operation requires a pending offer.
	ErrOfferNotPending = errors.New("offer is not pending")
	// ErrDuplicateOffer is returned when a provider already has an offer on a job.
	ErrDuplicateOffer = errors.New("provider already has an offer on this job")
	// ErrDuplicateReview is returned when a job already has a review.
	ErrDuplicateReview = errors.New("job already has a review")
	// ErrSelfOffer is returned when a provider bids on their own job.
	ErrSelfOffer = errors.New("cannot submit an offer on your own job")
	// ErrInvalidRating is returned when a review rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrInvalidPrice is returned when an offer price is not positive.
	ErrInvalidPrice = errors.New("offer price must be positive")
	// ErrNoAcceptedOffer is returned when a completed job has no accepted
	// offer to resolve the reviewed provider from.
	ErrNoAcceptedOffer = errors.New("job has no accepted offer")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrCustomerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CUSTOMER_NOT_FOUND")
	case errors.Is(err, ErrJobNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "JOB_NOT_FOUND")
	case errors.Is(err, ErrOfferNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "OFFER_NOT_FOUND")
	case errors.Is(err, ErrInvalidTransition):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_TRANSITION")
	case errors.Is(err, ErrJobNotOpen):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "JOB_NOT_OPEN")
	case errors.Is(err, ErrJobNotCompleted):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "JOB_NOT_COMPLETED")
	case errors.Is(err, ErrOfferNotPending):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "OFFER_NOT_PENDING")
	case errors.Is(err, ErrDuplicateOffer):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_OFFER")
	case errors.Is(err, ErrDuplicateReview):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_REVIEW")
	case errors.Is(err, ErrSelfOffer):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_OFFER_FORBIDDEN")
	case errors.Is(err, ErrInvalidRating):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RATING")
	case errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	case errors.Is(err, ErrNoAcceptedOffer):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_ACCEPTED_OFFER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
