package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"artisanhub/internal/errors"
	"artisanhub/internal/model"
	"artisanhub/internal/service"
)

// JobHandler handles job posting endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJobRequest represents a job creation request. Any owner field in the
// body is ignored; the owner is always the authenticated user.
type CreateJobRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	LGA         string          `json:"lga" validate:"required"`
	Budget      decimal.Decimal `json:"budget" validate:"required"`
}

// UpdateJobRequest represents a job update. Absent fields are left unchanged.
// Artisan is raw JSON so an explicit null can clear the assignment.
type UpdateJobRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	LGA         *string          `json:"lga"`
	Budget      *decimal.Decimal `json:"budget"`
	Status      *string          `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS COMPLETED DISPUTED"`
	Artisan     json.RawMessage  `json:"artisan"`
}

// List godoc
// @Summary List all jobs, newest first
// @Tags jobs
// @Produce json
// @Success 200 {array} model.Job
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.jobService.ListJobs(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get godoc
// @Summary Get a job with its owner, artisan and bids
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid job ID",
			Code:  "INVALID_UUID",
		})
	}

	job, err := h.jobService.GetJob(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// Create godoc
// @Summary Create a job owned by the authenticated user
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRequest true "Job data"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.CreateJob(c.Request().Context(), userID, service.JobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		LGA:         req.LGA,
		Budget:      req.Budget,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, job)
}

// Update godoc
// @Summary Update a job
// @Description Requires authentication but not ownership; any authenticated
// @Description user may update any job, as on the original surface.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body UpdateJobRequest true "Fields to change"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs/{id} [patch]
func (h *JobHandler) Update(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid job ID",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.JobUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		LGA:         req.LGA,
		Budget:      req.Budget,
	}
	if req.Status != nil {
		status := model.JobStatus(*req.Status)
		update.Status = &status
	}
	if len(req.Artisan) > 0 {
		artisan, err := parseArtisanField(req.Artisan)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid artisan ID",
				Code:  "INVALID_UUID",
			})
		}
		update.Artisan = &artisan
	}

	job, err := h.jobService.UpdateJob(c.Request().Context(), id, update)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job and its bids
// @Description Requires authentication but not ownership, as on the
// @Description original surface.
// @Tags jobs
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 204 "deleted"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid job ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.jobService.DeleteJob(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// parseArtisanField decodes the artisan field of an update: JSON null clears
// the assignment, a UUID string assigns an artisan.
func parseArtisanField(raw json.RawMessage) (*uuid.UUID, error) {
	var idStr *string
	if err := json.Unmarshal(raw, &idStr); err != nil {
		return nil, err
	}
	if idStr == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*idStr)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
