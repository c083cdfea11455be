package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clubfund/internal/auth"
	"clubfund/internal/errors"
	"clubfund/internal/service"
)

// UserHandler handles endpoints about the authenticated user.
type UserHandler struct {
	userService       service.UserService
	fundraiserService service.FundraiserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, fundraiserService service.FundraiserService) *UserHandler {
	return &UserHandler{
		userService:       userService,
		fundraiserService: fundraiserService,
	}
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PublicView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	user, err := h.userService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			c.Logger().Errorf("current user: %v", err)
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, user.Public())
}

// MyFundraisers godoc
// @Summary List fundraisers created by the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Fundraiser
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me/fundraisers [get]
func (h *UserHandler) MyFundraisers(c echo.Context) error {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	fundraisers, err := h.fundraiserService.ListMine(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("list own fundraisers: %v", err)
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, fundraisers)
}
