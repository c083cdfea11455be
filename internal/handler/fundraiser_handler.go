package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubfund/internal/auth"
	"clubfund/internal/errors"
	"clubfund/internal/service"
)

// FundraiserHandler handles fundraiser endpoints.
type FundraiserHandler struct {
	fundraiserService service.FundraiserService
}

// NewFundraiserHandler creates a new fundraiser handler.
func NewFundraiserHandler(fundraiserService service.FundraiserService) *FundraiserHandler {
	return &FundraiserHandler{fundraiserService: fundraiserService}
}

// CreateFundraiserRequest represents a new fundraiser listing.
type CreateFundraiserRequest struct {
	ClubName       string `json:"clubName" validate:"required"`
	FundraiserName string `json:"fundraiserName" validate:"required"`
	Location       string `json:"location" validate:"required"`
	DateTime       string `json:"dateTime" validate:"required"`
	ProceedsInfo   string `json:"proceedsInfo"`
	InstagramLink  string `json:"instagramLink"`
	FlyerImage     string `json:"flyerImage"`
}

// MessageResponse carries a short human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Create godoc
// @Summary Create a fundraiser
// @Tags fundraisers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateFundraiserRequest true "Fundraiser fields"
// @Success 201 {object} model.Fundraiser
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fundraisers [post]
func (h *FundraiserHandler) Create(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	var req CreateFundraiserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "clubName, fundraiserName, location and dateTime are required")
	}

	fundraiser, err := h.fundraiserService.Create(c.Request().Context(), userID, service.CreateFundraiserInput{
		ClubName:       req.ClubName,
		FundraiserName: req.FundraiserName,
		Location:       req.Location,
		DateTime:       req.DateTime,
		ProceedsInfo:   req.ProceedsInfo,
		InstagramLink:  req.InstagramLink,
		FlyerImage:     req.FlyerImage,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("create fundraiser: %v", err)
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, fundraiser)
}

// List godoc
// @Summary List fundraisers
// @Tags fundraisers
// @Produce json
// @Param club query string false "Exact club name filter"
// @Param upcoming query bool false "Only fundraisers happening now or later"
// @Success 200 {array} model.Fundraiser
// @Failure 500 {object} errors.ErrorResponse
// @Router /fundraisers [get]
func (h *FundraiserHandler) List(c echo.Context) error {
	fundraisers, err := h.fundraiserService.List(c.Request().Context(), service.ListFundraisersInput{
		ClubName:     c.QueryParam("club"),
		UpcomingOnly: c.QueryParam("upcoming") == "true",
	})
	if err != nil {
		c.Logger().Errorf("list fundraisers: %v", err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, fundraisers)
}

// Get godoc
// @Summary Get a fundraiser by id
// @Tags fundraisers
// @Produce json
// @Param id path string true "Fundraiser ID"
// @Success 200 {object} model.Fundraiser
// @Failure 404 {object} errors.ErrorResponse
// @Router /fundraisers/{id} [get]
func (h *FundraiserHandler) Get(c echo.Context) error {
	fundraiser, err := h.fundraiserService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("get fundraiser: %v", err)
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, fundraiser)
}

// Delete godoc
// @Summary Delete a fundraiser
// @Description Only the user who created the fundraiser may delete it.
// @Tags fundraisers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fundraiser ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fundraisers/{id} [delete]
func (h *FundraiserHandler) Delete(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	if err := h.fundraiserService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("delete fundraiser: %v", err)
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Deleted"})
}
