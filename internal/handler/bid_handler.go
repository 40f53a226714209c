package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"artisanhub/internal/errors"
	"artisanhub/internal/service"
)

// BidHandler handles bid placement and the read-only bid surface.
type BidHandler struct {
	bidService service.BidService
}

// NewBidHandler creates a new bid handler.
func NewBidHandler(bidService service.BidService) *BidHandler {
	return &BidHandler{bidService: bidService}
}

// PlaceBidRequest represents a bid placement request. Any job or artisan
// field in the body is ignored; both come from the URL and the session.
type PlaceBidRequest struct {
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Proposal string          `json:"proposal" validate:"required"`
}

// PlaceBid godoc
// @Summary Place a bid on a job
// @Description Only users with the ARTISAN role may bid.
// @Tags bids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body PlaceBidRequest true "Bid data"
// @Success 201 {object} model.Bid
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id}/bid [post]
func (h *BidHandler) PlaceBid(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid job ID",
			Code:  "INVALID_UUID",
		})
	}

	var req PlaceBidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bid, err := h.bidService.PlaceBid(c.Request().Context(), jobID, userID, req.Amount, req.Proposal)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, bid)
}

// List godoc
// @Summary List bids visible to the authenticated user
// @Description Owners see bids on their jobs, artisans see bids they placed.
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Bid
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bids [get]
func (h *BidHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	bids, err := h.bidService.ListBids(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, bids)
}

// Get godoc
// @Summary Get a single visible bid
// @Tags bids
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bid ID"
// @Success 200 {object} model.Bid
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bids/{id} [get]
func (h *BidHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid bid ID",
			Code:  "INVALID_UUID",
		})
	}

	bid, err := h.bidService.GetBid(c.Request().Context(), id, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, bid)
}
