package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hizmetpinari/internal/errors"
	"hizmetpinari/internal/model"
	"hizmetpinari/internal/service"
)

// JobHandler handles job endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJobRequest represents a job creation request.
type CreateJobRequest struct {
	ServiceID   uint   `json:"service_id" validate:"required"`
	DistrictID  uint   `json:"district_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

// PrivilegedCreateJobRequest adds the target customer for admins/providers
// posting on a customer's behalf.
type PrivilegedCreateJobRequest struct {
	CreateJobRequest
	CustomerID uint `json:"customer_id" validate:"required"`
}

// CreateJob godoc
// @Summary Create a job for the authenticated customer
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRequest true "Job data"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
	}

	job, err := h.jobService.CreateJob(c.Request().Context(), actor, service.CreateJobInput{
		ServiceID:   req.ServiceID,
		DistrictID:  req.DistrictID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, job)
}

// CreateJobPrivileged godoc
// @Summary Create a job on behalf of a customer (admin/provider)
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PrivilegedCreateJobRequest true "Job data with target customer"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/privileged-create [post]
func (h *JobHandler) CreateJobPrivileged(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req PrivilegedCreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error(), Code: "VALIDATION_ERROR"})
	}

	job, err := h.jobService.CreateJobForCustomer(c.Request().Context(), actor, req.CustomerID, service.CreateJobInput{
		ServiceID:   req.ServiceID,
		DistrictID:  req.DistrictID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, job)
}

// ListOpenJobs godoc
// @Summary List active open jobs, newest first
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Job
// @Router /jobs [get]
func (h *JobHandler) ListOpenJobs(c echo.Context) error {
	offset, limit := pagination(c)
	jobs, err := h.jobService.ListOpenJobs(c.Request().Context(), offset, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}

// ListMyJobs godoc
// @Summary List the authenticated customer's jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Job
// @Router /jobs/mine [get]
func (h *JobHandler) ListMyJobs(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	offset, limit := pagination(c)
	jobs, err := h.jobService.ListMyJobs(c.Request().Context(), actor, offset, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get job detail with customer summary
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	job, err := h.jobService.GetJob(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// CompleteJob godoc
// @Summary Mark an assigned job completed
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id}/complete [patch]
func (h *JobHandler) CompleteJob(c echo.Context) error {
	return h.transition(c, model.JobStatusCompleted)
}

// CancelJob godoc
// @Summary Cancel an open job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id}/cancel [patch]
func (h *JobHandler) CancelJob(c echo.Context) error {
	return h.transition(c, model.JobStatusCancelled)
}

func (h *JobHandler) transition(c echo.Context, target model.JobStatus) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var job *model.Job
	switch target {
	case model.JobStatusCompleted:
		job, err = h.jobService.CompleteJob(c.Request().Context(), actor, id)
	case model.JobStatusCancelled:
		job, err = h.jobService.CancelJob(c.Request().Context(), actor, id)
	}
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}
