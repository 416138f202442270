package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hizmetpinari/internal/errors"
	"hizmetpinari/internal/service"
)

// OfferHandler handles offer endpoints.
type OfferHandler struct {
	offerService service.OfferService
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(offerService service.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

// SubmitOfferRequest represents an offer submission.
type SubmitOfferRequest struct {
	Price   string `json:"price" validate:"required"`
	Message string `json:"message,omitempty"`
}

// SubmitOffer godoc
// @Summary Submit an offer on an open job
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body SubmitOfferRequest true "Offer data"
// @Success 201 {object} model.Offer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /jobs/{id}/offers [post]
func (h *OfferHandler) SubmitOffer(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	jobID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req SubmitOfferRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid price", Code: "INVALID_PRICE"})
	}

	offer, err := h.offerService.SubmitOffer(c.Request().Context(), actor, jobID, price, req.Message)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, offer)
}

// ListOffers godoc
// @Summary List a job's offers for its owner, lowest price first
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {array} model.Offer
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id}/offers [get]
func (h *OfferHandler) ListOffers(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	jobID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	offers, err := h.offerService.ListOffers(c.Request().Context(), actor, jobID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, offers)
}

// AcceptOffer godoc
// @Summary Accept an offer, assigning the job and rejecting competitors
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Success 200 {object} model.Offer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /offers/{id}/accept [post]
func (h *OfferHandler) AcceptOffer(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	offerID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	offer, err := h.offerService.AcceptOffer(c.Request().Context(), actor, offerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, offer)
}

// RejectOffer godoc
// @Summary Reject an offer; rejecting the accepted offer reopens the job
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Success 200 {object} model.Offer
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /offers/{id}/reject [post]
func (h *OfferHandler) RejectOffer(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	offerID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	offer, err := h.offerService.RejectOffer(c.Request().Context(), actor, offerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, offer)
}

// WithdrawOffer godoc
// @Summary Withdraw the authenticated provider's pending offer
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Success 200 {object} model.Offer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /offers/{id} [delete]
func (h *OfferHandler) WithdrawOffer(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	offerID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	offer, err := h.offerService.WithdrawOffer(c.Request().Context(), actor, offerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, offer)
}
