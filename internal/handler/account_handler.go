package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"skicheck/internal/auth"
	"skicheck/internal/errors"
	"skicheck/internal/service"
)

// AccountHandler handles the self-service endpoints of a logged-in member.
type AccountHandler struct {
	userService       service.UserService
	userDetailService service.UserDetailService
	authService       service.AuthService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(userService service.UserService, userDetailService service.UserDetailService, authService service.AuthService) *AccountHandler {
	return &AccountHandler{
		userService:       userService,
		userDetailService: userDetailService,
		authService:       authService,
	}
}

// CurrentClaims extracts the JWT claims of the authenticated request.
func CurrentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// UpdateProfileRequest represents a member updating their own profile.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// UpdateDetailRequest represents a member updating their season record.
type UpdateDetailRequest struct {
	HasPaid   bool     `json:"has_paid"`
	Equipment []string `json:"equipment"`
}

// ChangePasswordRequest represents a member changing their own password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Me godoc
// @Summary Get the logged-in member
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	claims, err := CurrentClaims(c)
	if err != nil {
		return err
	}
	resp := h.userService.GetByUsername(c.Request().Context(), claims.Username)
	return respond(c, resp)
}

// UpdateProfile godoc
// @Summary Update the logged-in member's profile
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile data"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /me [put]
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	claims, err := CurrentClaims(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	lookup := h.userService.GetByUsername(ctx, claims.Username)
	user := lookup.FirstBusinessObject()
	if user == nil {
		return respond(c, lookup)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	return respondCommand(c, h.userService.Save(ctx, user))
}

// UpdateDetail godoc
// @Summary Update the logged-in member's season record
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateDetailRequest true "Season record"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} Envelope
// @Router /me/detail [put]
func (h *AccountHandler) UpdateDetail(c echo.Context) error {
	claims, err := CurrentClaims(c)
	if err != nil {
		return err
	}

	var req UpdateDetailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	lookup := h.userService.GetByUsername(ctx, claims.Username)
	user := lookup.FirstBusinessObject()
	if user == nil {
		return respond(c, lookup)
	}

	detail := user.Detail
	detail.HasPaid = req.HasPaid
	detail.SetEquipmentSet(equipmentFromStrings(req.Equipment)...)
	return respondCommand(c, h.userDetailService.Save(ctx, &detail))
}

// ChangePassword godoc
// @Summary Change the logged-in member's password
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Old and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /me/password [put]
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	claims, err := CurrentClaims(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), claims.Username, req.OldPassword, req.NewPassword); err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		case service.ErrUserNotFound:
			return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "USER_NOT_FOUND",
			})
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
				Error: "failed to change password",
				Code:  "PASSWORD_CHANGE_FAILED",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "password changed successfully",
	})
}
