package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hizmetpinari/internal/errors"
	"hizmetpinari/internal/service"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReviewRequest represents a review submission.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// CreateReview godoc
// @Summary Review the provider of a completed job
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body CreateReviewRequest true "Review data"
// @Success 201 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /jobs/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	jobID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
	}

	review, err := h.reviewService.CreateReview(c.Request().Context(), actor, jobID, req.Rating, req.Comment)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, review)
}

// ListProviderReviews godoc
// @Summary List reviews left for a provider
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Provider ID"
// @Success 200 {array} model.Review
// @Router /providers/{id}/reviews [get]
func (h *ReviewHandler) ListProviderReviews(c echo.Context) error {
	providerID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.reviewService.ListProviderReviews(c.Request().Context(), providerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reviews)
}
